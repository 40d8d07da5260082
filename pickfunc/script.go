package pickfunc

// BuildFunc is the shape every Script's build step has: given a
// pick-function, produce a value or a (possibly Filtered) error.
type BuildFunc[T any] func(f *PickFunc) (T, error)

// Options configures a Script.
type Options struct {
	// Cachable means gen.Gen.Val hands back the stored value by
	// reference on every access instead of rebuilding it from recorded
	// picks after the first. The flag alone decides this; the value is
	// not checked for being deeply frozen. The flag is also copied into
	// the script's CallLog Group.
	Cachable bool
	// LogCalls is stored with the script but nothing reads it: a
	// top-level script's span is never recorded as a Group, whatever
	// its value, and nested calls always get a Group.
	LogCalls bool
}

// Script is a named build function plus its options. It is the trait
// object the spec calls for in place of a class hierarchy: build, name
// and opts are its entire capability set (Design Notes §9,
// "polymorphism over scripts").
type Script[T any] struct {
	name  string
	build BuildFunc[T]
	opts  Options
}

// Of names a build function as a Script.
func Of[T any](name string, build BuildFunc[T], opts Options) Script[T] {
	return Script[T]{name: name, build: build, opts: opts}
}

// Name is the script's name, used in CallLog groups and error messages.
func (s Script[T]) Name() string { return s.name }

// Options returns the script's configured options.
func (s Script[T]) Options() Options { return s.opts }

// Build runs the script's build function directly against f, with no
// call-group bookkeeping and no Filtered retry — the raw operation
// PickFrom and gen.Build each wrap with their own policy.
func (s Script[T]) Build(f *PickFunc) (T, error) { return s.build(f) }

// Then composes base with step: step receives base's built value and
// the same pick-function, and produces the combined script's value.
// The CallLog records a separate Group for each segment, so a shrinker
// can edit them independently even though generation treats the whole
// pipeline as one logical build.
func Then[T, U any](base Script[T], name string, step func(T, *PickFunc) (U, error)) Script[U] {
	combinedName := base.name + "." + name
	build := func(f *PickFunc) (U, error) {
		var zero U
		val, err := runSegment(f, base.name, base.opts.Cachable, base.build)
		if err != nil {
			return zero, err
		}
		return runSegment(f, name, false, func(f *PickFunc) (U, error) {
			return step(val, f)
		})
	}
	return Script[U]{name: combinedName, build: build}
}
