package errx

import "errors"

// Error is the base error type for the taxonomy.
type Error struct {
	kind     Kind
	message  string
	context  map[string]any
	cause    error
	exitCode int
}

// New creates a new Error of the given kind with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{
		kind:    kind,
		message: message,
	}
}

// Wrap creates a new Error and attaches a cause error.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{
		kind:    kind,
		message: message,
		cause:   cause,
	}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.message != "" {
		return e.message
	}
	if info, ok := InfoFor(e.kind); ok && info.Description != "" {
		return info.Description
	}
	return "error"
}

// Unwrap returns the immediate wrapped error (cause).
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Is matches another *Error of the same kind, or anything in the
// cause chain. This allows errors.Is(err, errx.New(errx.KindNetwork, ""))
// style kind matching.
func (e *Error) Is(target error) bool {
	if e == nil {
		return false
	}
	var t *Error
	if errors.As(target, &t) && t.kind == e.kind {
		return true
	}
	return errors.Is(e.cause, target)
}

// Kind returns the error's kind tag.
func (e *Error) Kind() Kind {
	if e == nil {
		return KindGeneric
	}
	return e.kind
}

// Message returns the user-facing message.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Context returns a copy of the structured context.
func (e *Error) Context() map[string]any {
	if e == nil || len(e.context) == 0 {
		return nil
	}
	return cloneContext(e.context)
}

// Cause returns the wrapped error, if any.
func (e *Error) Cause() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// ExitCode resolves the process exit code for this error: a per-instance
// override wins, then the kind table, then DefaultExitCode.
func (e *Error) ExitCode() int {
	if e == nil {
		return DefaultExitCode
	}
	if e.exitCode != 0 {
		return e.exitCode
	}
	return ExitCodeFor(e.kind)
}

// WithContext adds a context key/value pair.
// Returns a new error with the added context to avoid mutating the original.
func (e *Error) WithContext(key string, value any) *Error {
	if e == nil {
		return nil
	}
	clone := e.clone()
	if clone.context == nil {
		clone.context = make(map[string]any)
	}
	clone.context[key] = value
	return clone
}

// WithContextMap merges a context map into the error context.
// Always returns a clone to maintain immutability, even if ctx is empty.
func (e *Error) WithContextMap(ctx map[string]any) *Error {
	if e == nil {
		return nil
	}
	clone := e.clone()
	if len(ctx) > 0 {
		if clone.context == nil {
			clone.context = make(map[string]any, len(ctx))
		}
		for key, value := range ctx {
			clone.context[key] = value
		}
	}
	return clone
}

// WithExitCode overrides the kind table's exit code for this instance.
// Returns a new error to avoid mutating the original.
func (e *Error) WithExitCode(code int) *Error {
	if e == nil {
		return nil
	}
	clone := e.clone()
	clone.exitCode = code
	return clone
}

func (e *Error) clone() *Error {
	return &Error{
		kind:     e.kind,
		message:  e.message,
		cause:    e.cause,
		exitCode: e.exitCode,
		context:  cloneContext(e.context),
	}
}

func cloneContext(ctx map[string]any) map[string]any {
	if ctx == nil {
		return nil
	}
	clone := make(map[string]any, len(ctx))
	for key, value := range ctx {
		clone[key] = value
	}
	return clone
}
