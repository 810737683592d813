// Package load reads the arity table that drives pipeigen.
package load

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultFile is the name of the arity table looked up by pipeigen.
	DefaultFile = "pipei.yaml"
	// MaxArity is the largest arity a table may name.
	MaxArity = 100
)

// Table is the declarative description of a generation run, as read from
// pipei.yaml. Zero values mean "use the generator default".
type Table struct {
	// Path is the file the table was loaded from, if any.
	Path string `yaml:"-"`

	Package   string            `yaml:"package,omitempty"`
	Target    string            `yaml:"target,omitempty"`
	Header    string            `yaml:"header,omitempty"`
	MaxArity  *int              `yaml:"max_arity,omitempty"`
	Arities   Ranges            `yaml:"arities,omitempty"`
	Features  []string          `yaml:"features,omitempty"`
	Names     map[string]string `yaml:"names,omitempty"`
	TagPrefix string            `yaml:"tag_prefix,omitempty"`
	SelectTag string            `yaml:"select_tag,omitempty"`
}

// Error describes a failure to load an arity table.
type Error struct {
	Path  string // File the table was read from, if any.
	Field string // Table field at fault, if known.
	Err   error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("pipei: load")
	if e.Path != "" {
		b.WriteString(" ")
		b.WriteString(e.Path)
	}
	if e.Field != "" {
		fmt.Fprintf(&b, " field %q", e.Field)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// File loads the arity table stored at path.
func File(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &Error{Path: path, Err: err}
	}
	t, err := Parse(data)
	if err != nil {
		var lerr *Error
		if errors.As(err, &lerr) {
			lerr.Path = path
			return nil, lerr
		}
		return nil, &Error{Path: path, Err: err}
	}
	t.Path = path
	return t, nil
}

// Parse decodes an arity table. Unknown fields are rejected.
func Parse(data []byte) (*Table, error) {
	t := &Table{}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(t); err != nil && !errors.Is(err, io.EOF) {
		var rerr *rangeError
		if errors.As(err, &rerr) {
			return nil, &Error{Field: "arities", Err: rerr}
		}
		return nil, &Error{Err: err}
	}
	if t.MaxArity != nil && *t.MaxArity < 0 {
		return nil, &Error{Field: "max_arity", Err: fmt.Errorf("negative value %d", *t.MaxArity)}
	}
	return t, nil
}

// Ranges is a sorted set of arities. In YAML it is written either as a
// string of comma separated values and inclusive ranges ("0-16, 20, 32"),
// or as a sequence whose items are numbers or such strings.
type Ranges []int

// UnmarshalYAML implements yaml.Unmarshaler.
func (r *Ranges) UnmarshalYAML(value *yaml.Node) error {
	var parts []string
	switch value.Kind {
	case yaml.ScalarNode:
		parts = append(parts, value.Value)
	case yaml.SequenceNode:
		for _, item := range value.Content {
			if item.Kind != yaml.ScalarNode {
				return &rangeError{line: item.Line, msg: "expected a number or a range"}
			}
			parts = append(parts, item.Value)
		}
	default:
		return &rangeError{line: value.Line, msg: "expected a string or a sequence"}
	}
	parsed, err := ParseRanges(strings.Join(parts, ","))
	if err != nil {
		var rerr *rangeError
		if errors.As(err, &rerr) {
			rerr.line = value.Line
		}
		return err
	}
	*r = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r Ranges) MarshalYAML() (any, error) {
	return r.String(), nil
}

// String formats the set in the compact range syntax.
func (r Ranges) String() string {
	var parts []string
	for i := 0; i < len(r); {
		j := i
		for j+1 < len(r) && r[j+1] == r[j]+1 {
			j++
		}
		switch {
		case j == i:
			parts = append(parts, strconv.Itoa(r[i]))
		default:
			parts = append(parts, strconv.Itoa(r[i])+"-"+strconv.Itoa(r[j]))
		}
		i = j + 1
	}
	return strings.Join(parts, ", ")
}

// ParseRanges parses comma separated values and inclusive ranges such as
// "0-16, 20, 32" into a sorted set without duplicates. Values above MaxArity
// are rejected before any range is expanded.
func ParseRanges(s string) (Ranges, error) {
	var out Ranges
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		lo, hi, isRange := strings.Cut(part, "-")
		from, err := parseArity(lo, part)
		if err != nil {
			return nil, err
		}
		to := from
		if isRange {
			if to, err = parseArity(hi, part); err != nil {
				return nil, err
			}
			if to < from {
				return nil, &rangeError{part: part, msg: "range end before start"}
			}
		}
		for n := from; n <= to; n++ {
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return slices.Compact(out), nil
}

func parseArity(s, part string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &rangeError{part: part, msg: "not an integer"}
	}
	if n < 0 {
		return 0, &rangeError{part: part, msg: "negative arity"}
	}
	if n > MaxArity {
		return 0, &rangeError{part: part, msg: fmt.Sprintf("arity %d above the limit %d", n, MaxArity)}
	}
	return n, nil
}

// rangeError reports malformed range syntax.
type rangeError struct {
	part string
	line int
	msg  string
}

func (e *rangeError) Error() string {
	var b strings.Builder
	if e.line > 0 {
		fmt.Fprintf(&b, "line %d: ", e.line)
	}
	if e.part != "" {
		fmt.Fprintf(&b, "%q: ", e.part)
	}
	b.WriteString(e.msg)
	return b.String()
}
