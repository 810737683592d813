package gen

var (
	// FeatureCurried provides the Curried{N} closure type returned by every
	// other family. It cannot be left out of a file that has any other family.
	FeatureCurried = Feature{
		Name:        familyCurried,
		Stage:       Stable,
		Default:     true,
		Description: "Curried closure type with Mode, Semantics, Arity and Reusable accessors",
		emitter:     curriedEmitter{},
	}

	// FeaturePipe provides Pipe{N}, PipeMut{N} and PipeOnce{N}.
	FeaturePipe = Feature{
		Name:        familyPipe,
		Stage:       Stable,
		Default:     true,
		Description: "Transform calls with shared, exclusive and by-value receivers",
		Requires:    []string{familyCurried},
		emitter:     pipeEmitter{},
	}

	// FeatureTap provides Effect{N}, Imm{N}, Mut{N} and Tap{N}.
	FeatureTap = Feature{
		Name:        familyTap,
		Stage:       Stable,
		Default:     true,
		Description: "Side-effect calls returning the receiver, accepting read or mutate functions",
		Requires:    []string{familyCurried},
		emitter:     tapEmitter{},
	}

	// FeatureProjection provides Comp{N}, CompMut{N}, Cond{N} and CondMut{N}.
	FeatureProjection = Feature{
		Name:        familyProjection,
		Stage:       Stable,
		Default:     true,
		Description: "Projection combinators narrowing the receiver before a tap, optionally gated by Option",
		Requires:    []string{familyTap},
		emitter:     projectionEmitter{},
	}

	// AllFeatures holds a list of all feature-flags, in emission order.
	AllFeatures = []Feature{
		FeatureCurried,
		FeaturePipe,
		FeatureTap,
		FeatureProjection,
	}
)

// FeatureStage describes the stage of the codegen feature.
type FeatureStage int

const (
	_ FeatureStage = iota

	// Experimental features are in development and may change shape.
	Experimental

	// Alpha features are complete, but breaking changes to their API are expected.
	Alpha

	// Beta features are documented, and no breaking changes are expected.
	Beta

	// Stable features are Beta features that have been in use for a while.
	Stable
)

// String returns the name of the stage.
func (s FeatureStage) String() string {
	switch s {
	case Experimental:
		return "experimental"
	case Alpha:
		return "alpha"
	case Beta:
		return "beta"
	case Stable:
		return "stable"
	default:
		return "unknown"
	}
}

// A Feature of the pipei codegen: one family of declarations emitted into
// every arity file.
type Feature struct {
	// Name of the feature.
	Name string

	// Stage of the feature.
	Stage FeatureStage

	// Default values indicates if this feature is enabled by default.
	Default bool

	// A Description of this feature.
	Description string

	// Requires lists the names of features whose declarations this one
	// refers to.
	Requires []string

	// emitter renders the feature's declarations.
	emitter Emitter
}

// Emitter returns the emitter that renders the feature.
func (f Feature) Emitter() Emitter {
	return f.emitter
}

// FeatureByName returns the feature with the given name. Names are matched
// case-insensitively.
func FeatureByName(name string) (Feature, bool) {
	name = foldName(name)
	for _, f := range AllFeatures {
		if f.Name == name {
			return f, true
		}
	}
	return Feature{}, false
}

// DefaultFeatures returns the features enabled when none are configured.
func DefaultFeatures() []Feature {
	var fs []Feature
	for _, f := range AllFeatures {
		if f.Default {
			fs = append(fs, f)
		}
	}
	return fs
}

// resolveFeatures orders the configured features by emission order, drops
// duplicates and checks that every requirement is present.
func resolveFeatures(configured []Feature) ([]Feature, error) {
	if len(configured) == 0 {
		return DefaultFeatures(), nil
	}
	enabled := make(map[string]bool, len(configured))
	for _, f := range configured {
		if _, ok := FeatureByName(f.Name); !ok {
			return nil, NewConfigError("Features", f.Name, "unknown feature")
		}
		enabled[f.Name] = true
	}
	var fs []Feature
	for _, f := range AllFeatures {
		if !enabled[f.Name] {
			continue
		}
		for _, req := range f.Requires {
			if !enabled[req] {
				return nil, NewConfigError("Features", f.Name, "requires feature "+req)
			}
		}
		fs = append(fs, f)
	}
	return fs, nil
}
