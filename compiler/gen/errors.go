package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrInvalidArity indicates an arity outside the supported range.
	ErrInvalidArity = errors.New("pipei: invalid arity")
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("pipei: missing configuration")
	// ErrGenerationFailed indicates a code generation failure.
	ErrGenerationFailed = errors.New("pipei: code generation failed")
	// ErrStale indicates generated files that differ from what the
	// configuration renders.
	ErrStale = errors.New("pipei: generated files are stale")
)

// ArityError represents an arity that cannot be generated.
type ArityError struct {
	N       int // Requested arity
	Max     int // Largest arity allowed by the configuration
	Message string
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pipei: arity %d", e.N)
	if e.Max >= 0 {
		fmt.Fprintf(&b, " (max %d)", e.Max)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for ArityError.
func (e *ArityError) Is(target error) bool {
	return target == ErrInvalidArity
}

// NewArityError creates a new ArityError.
func NewArityError(n, maxArity int, message string) *ArityError {
	return &ArityError{
		N:       n,
		Max:     maxArity,
		Message: message,
	}
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("pipei: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("pipei: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a code generation error.
type GenerationError struct {
	Phase   string // "render", "format", "write", "cleanup"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("pipei: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// StaleError lists the generated files that are missing, outdated or no
// longer configured.
type StaleError struct {
	Missing  []string
	Outdated []string
	Orphaned []string
}

// Error implements the error interface.
func (e *StaleError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "pipei: %d generated files are stale", e.Len())
	for _, part := range []struct {
		label string
		files []string
	}{
		{"missing", e.Missing},
		{"outdated", e.Outdated},
		{"orphaned", e.Orphaned},
	} {
		if len(part.files) > 0 {
			fmt.Fprintf(&b, "; %s: %s", part.label, strings.Join(part.files, ", "))
		}
	}
	return b.String()
}

// Is reports whether the target matches the sentinel error for StaleError.
func (e *StaleError) Is(target error) bool {
	return target == ErrStale
}

// Len returns the number of stale files.
func (e *StaleError) Len() int {
	return len(e.Missing) + len(e.Outdated) + len(e.Orphaned)
}

// IsArityError reports whether the error is an ArityError.
func IsArityError(err error) bool {
	var arityErr *ArityError
	return errors.As(err, &arityErr)
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsStaleError reports whether the error is a StaleError.
func IsStaleError(err error) bool {
	var staleErr *StaleError
	return errors.As(err, &staleErr)
}
