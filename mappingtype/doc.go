// Package mappingtype provides the stock mapping types:
//
//   - singleton: wraps a prebuilt "instance" or calls a "constructor" once;
//     the result is always cached.
//   - factory: calls "factory" on every resolution unless "cache" is set.
//   - value: returns "value" as is.
//   - alias: resolves "target" in place of the mapping.
//
// Constructors and factories are Go functions. Their parameters receive the
// mapping's resolved arguments in order and they return either the object
// or the object and an error. A Catalog lets file-based definitions name
// functions instead of holding them:
//
//	types := mappingtype.Defaults(mappingtype.Catalog{"newDB": NewDB})
package mappingtype

// Field names read by the stock types.
const (
	FieldInstance    = "instance"
	FieldConstructor = "constructor"
	FieldFactory     = "factory"
	FieldValue       = "value"
	FieldTarget      = "target"
)

// Type names of the stock types.
const (
	Singleton = "singleton"
	Factory   = "factory"
	Value     = "value"
	Alias     = "alias"
)
