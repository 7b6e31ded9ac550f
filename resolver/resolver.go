package resolver

import (
	"github.com/mcortesi/dinjector/errors"
)

// Resolver turns a subset of argument keys into values.
type Resolver interface {
	// CanResolve reports whether this resolver claims key.
	CanResolve(key string) bool
	// Resolve produces the value for a claimed key.
	Resolve(key string) (any, error)
	// Validate reports, without producing it, whether key will resolve.
	Validate(key string) bool
}

// Chain is an ordered, immutable list of resolvers.
type Chain struct {
	resolvers []Resolver
}

// NewChain creates a chain consulting resolvers in the given order.
// Nil entries are skipped.
func NewChain(resolvers ...Resolver) *Chain {
	c := &Chain{resolvers: make([]Resolver, 0, len(resolvers))}
	for _, r := range resolvers {
		if r != nil {
			c.resolvers = append(c.resolvers, r)
		}
	}
	return c
}

// Append returns a new chain with resolvers added after the existing ones.
func (c *Chain) Append(resolvers ...Resolver) *Chain {
	all := make([]Resolver, 0, len(c.resolvers)+len(resolvers))
	all = append(all, c.resolvers...)
	all = append(all, resolvers...)
	return NewChain(all...)
}

// Find returns the first resolver that claims key.
func (c *Chain) Find(key string) (Resolver, bool) {
	for _, r := range c.resolvers {
		if r.CanResolve(key) {
			return r, true
		}
	}
	return nil, false
}

// Resolve delegates to the first resolver that claims key.
func (c *Chain) Resolve(key string) (any, error) {
	r, ok := c.Find(key)
	if !ok {
		return nil, errors.ArgumentUnresolvable(key)
	}
	return r.Resolve(key)
}

// Validate delegates to the first resolver that claims key. A key no
// resolver claims is invalid.
func (c *Chain) Validate(key string) bool {
	r, ok := c.Find(key)
	if !ok {
		return false
	}
	return r.Validate(key)
}

// Len returns the number of resolvers in the chain.
func (c *Chain) Len() int {
	return len(c.resolvers)
}

// Func adapts plain functions into a Resolver. A nil Check accepts every
// matched key.
type Func struct {
	Match func(key string) bool
	Get   func(key string) (any, error)
	Check func(key string) bool
}

func (f Func) CanResolve(key string) bool      { return f.Match(key) }
func (f Func) Resolve(key string) (any, error) { return f.Get(key) }

func (f Func) Validate(key string) bool {
	if f.Check == nil {
		return true
	}
	return f.Check(key)
}
