// Package mapping holds the declarative side of the container: raw
// definitions as supplied by the caller, their normalized form, the
// mapping type strategies that know how to build objects from them, and
// the ordered store the container resolves against.
//
// Preprocessing turns Definitions into a Store: each raw mapping gets its
// name injected, a missing type defaults to "singleton", and the mapping's
// Type normalizes the rest. Nothing is resolved or constructed here.
//
//	defs := mapping.NewDefinitions().
//	    Add("db", mapping.RawMapping{"type": "factory", "factory": NewDB, "cache": true}).
//	    Add("users", mapping.RawMapping{"type": "factory", "factory": NewUsers, "arguments": []string{"db"}})
//	store, err := mapping.Preprocess(defs, registry)
package mapping
