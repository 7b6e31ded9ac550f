// Package resolver turns argument keys into values.
//
// A Chain is an ordered list of Resolvers with first-match semantics: the
// first resolver whose CanResolve accepts a key both resolves and validates
// it, and later resolvers never see that key. Callers rely on this to
// shadow keys, so order is part of the contract.
//
// The container appends two resolvers after any supplied by the caller: a
// Reserved resolver answering "ctx" with the container itself, and a
// Dependency resolver that accepts every key and builds it as another
// mapping.
package resolver
