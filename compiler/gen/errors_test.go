package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArityError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		err := NewArityError(101, 100, "out of range")

		assert.Equal(t, "pipei: arity 101 (max 100): out of range", err.Error())
	})

	t.Run("Error message without max", func(t *testing.T) {
		err := &ArityError{N: 7, Max: -1}
		assert.Equal(t, "pipei: arity 7", err.Error())
	})

	t.Run("Is matches ErrInvalidArity", func(t *testing.T) {
		err := fmt.Errorf("wrapped: %w", NewArityError(-1, 100, ""))
		assert.True(t, errors.Is(err, ErrInvalidArity))
		assert.False(t, errors.Is(err, ErrMissingConfig))
		assert.True(t, IsArityError(err))
	})
}

func TestConfigError(t *testing.T) {
	t.Run("Error message with value", func(t *testing.T) {
		err := NewConfigError("Package", "pipe-i", "not a valid package name")

		assert.Contains(t, err.Error(), "pipei: config error")
		assert.Contains(t, err.Error(), "Package")
		assert.Contains(t, err.Error(), "pipe-i")
		assert.Contains(t, err.Error(), "not a valid package name")
	})

	t.Run("Error message without value", func(t *testing.T) {
		err := NewConfigError("Target", nil, "cannot be empty")
		assert.NotContains(t, err.Error(), "value:")
	})

	t.Run("Is matches ErrMissingConfig", func(t *testing.T) {
		err := NewConfigError("Target", nil, "")
		assert.True(t, err.Is(ErrMissingConfig))
		assert.True(t, IsConfigError(err))
		assert.False(t, IsConfigError(errors.New("other")))
	})
}

func TestGenerationError(t *testing.T) {
	t.Run("Error message with all fields", func(t *testing.T) {
		cause := errors.New("disk full")
		err := NewGenerationError("write", "arity_002.go", "write file", cause)

		assert.Contains(t, err.Error(), "pipei: generation error")
		assert.Contains(t, err.Error(), "phase write")
		assert.Contains(t, err.Error(), "file: arity_002.go")
		assert.Contains(t, err.Error(), "write file")
		assert.Contains(t, err.Error(), "disk full")
	})

	t.Run("Unwrap returns cause", func(t *testing.T) {
		cause := errors.New("root cause")
		err := NewGenerationError("render", "", "", cause)

		assert.Equal(t, cause, err.Unwrap())
		assert.True(t, errors.Is(err, cause))
		assert.True(t, errors.Is(err, ErrGenerationFailed))
		assert.True(t, IsGenerationError(err))
	})
}

func TestStaleError(t *testing.T) {
	err := &StaleError{
		Missing:  []string{"arity_003.go"},
		Outdated: []string{"arity_001.go", "arity_002.go"},
	}

	require.Equal(t, 3, err.Len())
	assert.Equal(t, "pipei: 3 generated files are stale; missing: arity_003.go; outdated: arity_001.go, arity_002.go", err.Error())
	assert.True(t, errors.Is(err, ErrStale))
	assert.True(t, IsStaleError(fmt.Errorf("check: %w", err)))
	assert.False(t, IsStaleError(ErrStale))
}
