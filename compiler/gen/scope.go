package gen

import (
	"go/token"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
)

// Scope is what an emitter knows about a render besides the arity: which
// families are emitted and the exported names chosen for them. Emitters
// only refer to declarations of families the scope has.
type Scope struct {
	families map[string]bool
	names    map[string]string
}

// newScope returns the scope of a render of the given features. names maps
// renamable families to their base identifier.
func newScope(features []Feature, names map[string]string) Scope {
	s := Scope{
		families: make(map[string]bool, len(features)),
		names:    make(map[string]string, len(renamable)),
	}
	for _, f := range features {
		s.families[f.Name] = true
	}
	for _, family := range renamable {
		s.names[family] = baseName(family)
		if name, ok := names[family]; ok {
			s.names[family] = name
		}
	}
	return s
}

// Has reports whether the family is emitted.
func (s Scope) Has(family string) bool {
	return s.families[family]
}

// Name returns the exported base identifier of a family, e.g. "Pipe" for
// "pipe". Families that cannot be renamed use fixed identifiers.
func (s Scope) Name(family string) string {
	return s.names[family]
}

// renamable lists the families whose exported base identifier is
// configurable. Each base is suffixed with the arity, and the pipe base also
// prefixes the PipeMut and PipeOnce variants.
var renamable = []string{familyCurried, familyPipe, familyTap}

// fixedBases are the identifier bases emitted regardless of configuration.
var fixedBases = []string{"Effect", identImm, identMut, "ImmFn", "MutFn", "Comp", "CompMut", "Cond", "CondMut"}

// foldName folds a user supplied family or feature name for comparison, so
// "Pipe", "PIPE" and "pipe" name the same family.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// baseName turns a configured name into an exported identifier base:
// "thread_first", "thread-first" and "threadFirst" all become "ThreadFirst".
func baseName(name string) string {
	return inflect.Camelize(strings.TrimSpace(name))
}

// checkBase reports why base cannot be used as an identifier base, or "".
func checkBase(base string) string {
	switch {
	case !token.IsIdentifier(base):
		return "not a valid identifier"
	case !token.IsExported(base):
		return "must start with an upper-case letter"
	case unicode.IsDigit(lastRune(base)):
		// Pipe1 at arity 0 and Pipe at arity 10 would both be Pipe10.
		return "must not end with a digit"
	}
	return ""
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

// checkNames validates configured family names and reports the first
// collision between the bases a render would emit.
func checkNames(names map[string]string) error {
	seen := make(map[string]string)
	claim := func(base, owner string) error {
		if prev, ok := seen[base]; ok {
			return NewConfigError("Names", base, "collides with "+prev)
		}
		seen[base] = owner
		return nil
	}
	for family := range names {
		if !slices.Contains(renamable, family) {
			return NewConfigError("Names", family, "not a renamable family")
		}
	}
	for _, base := range fixedBases {
		if err := claim(base, "built-in "+base); err != nil {
			return err
		}
	}
	s := newScope(nil, names)
	for _, family := range renamable {
		base := s.Name(family)
		if msg := checkBase(base); msg != "" {
			return NewConfigError("Names", base, msg)
		}
		bases := []string{base}
		if family == familyPipe {
			bases = append(bases, base+"Mut", base+"Once")
		}
		for _, b := range bases {
			if err := claim(b, family+" family"); err != nil {
				return err
			}
		}
	}
	return nil
}

// orList joins names as "a", "a or b", "a, b or c".
func orList(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	default:
		return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
	}
}
