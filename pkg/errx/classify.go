package errx

import (
	"errors"
	"fmt"
	"reflect"
	"runtime/debug"
	"strings"
)

// Class is the classification bucket assigned to a failure.
type Class int

const (
	// ClassUsage covers malformed command-line invocations.
	ClassUsage Class = iota
	// ClassDomain covers kinds registered in the domain hierarchy.
	ClassDomain
	// ClassUnexpected covers everything else, including the
	// hierarchy-external Transport and MCP kinds.
	ClassUnexpected
)

// Result is the structured outcome of classifying a failure.
// It carries everything a boundary needs to report the failure and
// terminate, without performing either itself.
type Result struct {
	Class     Class
	Success   bool
	Error     string
	ErrorType string
	ExitCode  int

	// Stack holds a goroutine stack trace captured at classification
	// time. Populated only when Classify is called with verbose=true.
	Stack string
}

// Classify maps a failure to a Result. It is pure: no printing, no
// process termination, no logging. err must be non-nil.
//
// Buckets are checked in fixed order: usage error, then known domain
// kind, then unexpected. Usage errors always resolve to exit code 2,
// domain kinds to their table exit code (default 1), and unexpected
// failures - foreign error types plus the hierarchy-external Transport
// and MCP kinds - always to exit code 1.
func Classify(err error, verbose bool) Result {
	res := Result{
		Success:  false,
		Error:    err.Error(),
		ExitCode: DefaultExitCode,
	}
	if verbose {
		res.Stack = string(debug.Stack())
	}

	var e *Error
	if errors.As(err, &e) {
		switch {
		case e.Kind() == KindUsage:
			res.Class = ClassUsage
			res.ErrorType = KindUsage.String()
			res.ExitCode = UsageExitCode
		case IsDomain(e.Kind()):
			res.Class = ClassDomain
			res.ErrorType = e.Kind().String()
			res.ExitCode = e.ExitCode()
		default:
			res.Class = ClassUnexpected
			res.ErrorType = e.Kind().String()
		}
		return res
	}

	res.Class = ClassUnexpected
	res.ErrorType = typeName(err)
	return res
}

// typeName returns the bare Go type name of an error value, without
// package qualifier or pointer marker.
func typeName(err error) string {
	t := reflect.TypeOf(err)
	if t == nil {
		return "nil"
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if name := t.Name(); name != "" {
		return name
	}
	// Anonymous types (e.g. func-backed errors) fall back to the full
	// type string with the package path trimmed.
	s := t.String()
	if i := strings.LastIndex(s, "."); i >= 0 {
		return s[i+1:]
	}
	return s
}

// Format renders the one-line body of an error report: the message for
// usage and domain failures, "Type: message" for unexpected ones.
func (r Result) Format() string {
	if r.Class == ClassUnexpected {
		return fmt.Sprintf("%s: %s", r.ErrorType, r.Error)
	}
	return r.Error
}
