// Package factory provides a pass-through construction wrapper: Create
// forwards its arguments to the constructor and returns the new
// instance, unless the instance exposes a non-nil result override, in
// which case the override value is returned instead.
//
// There is no memoization here and no interaction with the singleton
// registry; the two wrappers are independent.
package factory

// Resulter is implemented by products whose Create call should yield a
// derived value rather than the product itself. A nil result means "no
// override" and the instance is returned as usual.
type Resulter interface {
	Result() any
}

// Factory wraps a constructor for T.
type Factory[T any] struct {
	ctor func(args ...any) (T, error)
}

// New binds a constructor to a Factory.
func New[T any](ctor func(args ...any) (T, error)) *Factory[T] {
	return &Factory[T]{ctor: ctor}
}

// Create constructs a new instance, forwarding all arguments.
// Constructor errors propagate unchanged. When the instance implements
// Resulter and reports a non-nil result, that value is returned in
// place of the instance.
func (f *Factory[T]) Create(args ...any) (any, error) {
	instance, err := f.ctor(args...)
	if err != nil {
		return nil, err
	}
	if r, ok := any(instance).(Resulter); ok {
		if result := r.Result(); result != nil {
			return result, nil
		}
	}
	return instance, nil
}
