package mapping

import (
	"maps"
	"slices"
)

// Generic keys every mapping type shares.
const (
	KeyName      = "name"
	KeyType      = "type"
	KeyArguments = "arguments"
	KeyCache     = "cache"
	KeyTags      = "tags"
)

// DefaultType is the type assumed when a raw mapping does not declare one.
const DefaultType = "singleton"

// RawMapping is the user-supplied description of one object.
type RawMapping map[string]any

// Definitions is the raw input of a container: name to RawMapping, in
// insertion order. Order matters for tag lookups, which return objects in
// the order their mappings were defined.
type Definitions struct {
	names []string
	raw   map[string]RawMapping
}

// NewDefinitions creates an empty set of definitions.
func NewDefinitions() *Definitions {
	return &Definitions{raw: make(map[string]RawMapping)}
}

// DefinitionsFromMap builds definitions from a plain map. Go maps carry no
// order, so names are sorted.
func DefinitionsFromMap(m map[string]RawMapping) *Definitions {
	d := NewDefinitions()
	for _, name := range slices.Sorted(maps.Keys(m)) {
		d.Add(name, m[name])
	}
	return d
}

// Add appends a definition. Re-adding a name replaces its raw mapping but
// keeps its original position.
func (d *Definitions) Add(name string, raw RawMapping) *Definitions {
	if _, exists := d.raw[name]; !exists {
		d.names = append(d.names, name)
	}
	d.raw[name] = raw
	return d
}

// Get returns the raw mapping for name.
func (d *Definitions) Get(name string) (RawMapping, bool) {
	raw, ok := d.raw[name]
	return raw, ok
}

// Names returns every defined name in insertion order.
func (d *Definitions) Names() []string {
	return slices.Clone(d.names)
}

// Len returns the number of definitions.
func (d *Definitions) Len() int {
	return len(d.names)
}

// Each calls fn for every definition in insertion order.
func (d *Definitions) Each(fn func(name string, raw RawMapping)) {
	for _, name := range d.names {
		fn(name, d.raw[name])
	}
}
