package appcontext

import "fmt"

// Getter is anything objects can be fetched from by key. *AppContext
// satisfies it.
type Getter interface {
	Get(key string) (any, error)
}

// MustResolve fetches an object with type safety, panics on error.
//
// Example:
//
//	repo := appcontext.MustResolve[orders.Repository](app, "orders_repository")
func MustResolve[T any](c Getter, key string) T {
	instance, err := c.Get(key)
	if err != nil {
		panic(fmt.Sprintf("appcontext: failed to resolve %s: %v", key, err))
	}
	result, ok := instance.(T)
	if !ok {
		var zero T
		panic(fmt.Sprintf("appcontext: object %s is %T, expected %T", key, instance, zero))
	}
	return result
}

// Resolve fetches an object with type safety, returns error on failure.
//
// Example:
//
//	repo, err := appcontext.Resolve[orders.Repository](app, "orders_repository")
//	if err != nil {
//	    return fmt.Errorf("failed to get orders repository: %w", err)
//	}
func Resolve[T any](c Getter, key string) (T, error) {
	var zero T
	instance, err := c.Get(key)
	if err != nil {
		return zero, fmt.Errorf("appcontext: failed to resolve %s: %w", key, err)
	}
	result, ok := instance.(T)
	if !ok {
		return zero, fmt.Errorf("appcontext: object %s is %T, expected %T", key, instance, zero)
	}
	return result, nil
}

// TryResolve fetches an object, returns zero value and false if it cannot
// be obtained or has another type. Use this when a dependency is optional.
func TryResolve[T any](c Getter, key string) (T, bool) {
	var zero T
	instance, err := c.Get(key)
	if err != nil {
		return zero, false
	}
	result, ok := instance.(T)
	if !ok {
		return zero, false
	}
	return result, true
}
