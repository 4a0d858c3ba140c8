// Package asyncrun bridges goroutine-shaped work into synchronous call
// sites: the wrapped callable runs the original in its own goroutine,
// blocks until it finishes, and returns (or re-panics) identically.
//
// No timeout or cancellation semantics are added; the caller's context
// is passed through untouched and a hung callable blocks its caller.
package asyncrun

import "context"

type outcome[T any] struct {
	value    T
	err      error
	panicked any
}

// Wrap converts fn into a synchronous callable. Each invocation starts
// fn in a fresh goroutine and waits for completion. The result and
// error come back unchanged; a panic inside fn is re-raised in the
// caller's goroutine.
func Wrap[T any](fn func(context.Context) (T, error)) func(context.Context) (T, error) {
	return func(ctx context.Context) (T, error) {
		ch := make(chan outcome[T], 1)
		go func() {
			defer func() {
				if r := recover(); r != nil {
					ch <- outcome[T]{panicked: r}
				}
			}()
			value, err := fn(ctx)
			ch <- outcome[T]{value: value, err: err}
		}()
		out := <-ch
		if out.panicked != nil {
			panic(out.panicked)
		}
		return out.value, out.err
	}
}

// Run is a one-shot convenience for Wrap(fn)(ctx).
func Run[T any](ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	return Wrap(fn)(ctx)
}
