package resolver

// ContextKey is the reserved argument key that injects the container itself.
const ContextKey = "ctx"

// Reserved answers exactly one key with a fixed value.
type Reserved struct {
	key   string
	value any
}

// NewReserved creates a resolver that claims only key and resolves it to value.
func NewReserved(key string, value any) *Reserved {
	return &Reserved{key: key, value: value}
}

func (r *Reserved) CanResolve(key string) bool  { return key == r.key }
func (r *Reserved) Resolve(string) (any, error) { return r.value, nil }
func (r *Reserved) Validate(key string) bool    { return key == r.key }

// Dependency claims every key and resolves it as another mapping. It is
// meant to sit last in a chain.
type Dependency struct {
	get func(key string) (any, error)
	has func(key string) bool
}

// NewDependency creates the fallback resolver. get builds a mapping, has
// reports whether a mapping exists.
func NewDependency(get func(key string) (any, error), has func(key string) bool) *Dependency {
	return &Dependency{get: get, has: has}
}

func (d *Dependency) CanResolve(string) bool          { return true }
func (d *Dependency) Resolve(key string) (any, error) { return d.get(key) }
func (d *Dependency) Validate(key string) bool        { return d.has(key) }
