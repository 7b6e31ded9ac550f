// Package appcontext provides the application context: a lazy, memoizing
// dependency-injection container driven by declarative mappings.
//
// A context is built once from ordered mapping definitions and a set of
// mapping types. Building preprocesses every definition, validates the
// result and checks that every declared argument can be resolved. Objects
// are only created on demand.
//
// # Building
//
//	defs := mapping.NewDefinitions().
//	    Add("dsn", mapping.RawMapping{"type": "value", "value": "postgres://..."}).
//	    Add("db", mapping.RawMapping{"constructor": sql.Open, "arguments": []string{"driver", "dsn"}})
//
//	app, err := appcontext.New(defs, mappingtype.Defaults(nil),
//	    appcontext.WithResolvers(resolver.NewValues(map[string]any{"driver": "postgres"})),
//	)
//
// # Resolution
//
//	db := appcontext.MustResolve[*sql.DB](app, "db")
//
// Arguments are resolved by the first resolver in the chain that accepts
// them: resolvers passed with WithResolvers, then "ctx" (the context
// itself), then any other mapping by name.
package appcontext
