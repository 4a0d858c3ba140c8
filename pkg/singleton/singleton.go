// Package singleton provides a memoizing construction wrapper: all
// attempts to construct a registered type yield one shared instance,
// divergent construction arguments produce an advisory warning, and an
// explicit reset allows a fresh instance to be built.
//
// State lives in an explicit Registry rather than on the types
// themselves, so tests can create throwaway registries and reset them
// between cases. A Registry is NOT safe for concurrent use: the
// check-then-create sequence is not atomic, and callers needing
// concurrent construction or reset must serialize externally.
package singleton

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"sort"

	"github.com/google/go-cmp/cmp"
)

// Args is the construction argument snapshot for a singleton or factory
// constructor: an ordered positional list plus a named keyword map.
// The snapshot taken on first successful construction becomes the
// entry's construction key, retained to detect later divergent requests.
type Args struct {
	Positional []any
	Keyword    map[string]any
}

// NewArgs builds an Args from positional values.
func NewArgs(positional ...any) Args {
	return Args{Positional: positional}
}

// With returns a copy of the Args with a keyword value set.
func (a Args) With(name string, value any) Args {
	out := a.clone()
	if out.Keyword == nil {
		out.Keyword = make(map[string]any, 1)
	}
	out.Keyword[name] = value
	return out
}

// IsEmpty reports whether the snapshot carries no arguments at all.
func (a Args) IsEmpty() bool {
	return len(a.Positional) == 0 && len(a.Keyword) == 0
}

func (a Args) clone() Args {
	out := Args{}
	if len(a.Positional) > 0 {
		out.Positional = make([]any, len(a.Positional))
		copy(out.Positional, a.Positional)
	}
	if len(a.Keyword) > 0 {
		out.Keyword = make(map[string]any, len(a.Keyword))
		for k, v := range a.Keyword {
			out.Keyword[k] = v
		}
	}
	return out
}

// Registry maps type names to their sole live instance and the
// construction key recorded on first construction.
type Registry struct {
	warn    io.Writer
	entries map[string]*entry
}

type entry struct {
	instance any
	key      Args
}

// Option configures a Registry.
type Option func(*Registry)

// WithWarnings redirects divergence warnings, which default to stderr.
func WithWarnings(w io.Writer) Option {
	return func(r *Registry) { r.warn = w }
}

// NewRegistry creates an empty registry.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		warn:    os.Stderr,
		entries: make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Handle is a typed view over one registry entry. All handles created
// for the same type in the same registry share the entry.
type Handle[T any] struct {
	reg  *Registry
	key  string
	name string
	ctor func(Args) (T, error)
}

// Register binds a constructor for T to the registry. Entries are
// keyed by T's package-qualified type identity, so same-named types
// from different packages stay distinct; the bare name is kept for
// warning text. Construction is deferred until the first New or Get
// call.
func Register[T any](r *Registry, ctor func(Args) (T, error)) *Handle[T] {
	key, name := typeIdentityOf[T]()
	return &Handle[T]{
		reg:  r,
		key:  key,
		name: name,
		ctor: ctor,
	}
}

// New returns the sole instance for T, constructing it with args on the
// first call. Later calls return the stored instance unchanged and
// never re-run the constructor; if their arguments differ from the
// construction key, an advisory warning is written listing each
// differing field. A constructor error leaves the entry empty, so a
// subsequent call retries cleanly.
func (h *Handle[T]) New(args Args) (T, error) {
	if e, ok := h.reg.entries[h.key]; ok {
		if diffs := diffArgs(e.key, args); len(diffs) > 0 {
			h.reg.warnDivergence(h.name, diffs)
		}
		return e.instance.(T), nil
	}
	instance, err := h.ctor(args)
	if err != nil {
		var zero T
		return zero, err
	}
	h.reg.entries[h.key] = &entry{instance: instance, key: args.clone()}
	return instance, nil
}

// Get returns the current instance, constructing one with empty Args if
// none exists yet. Unlike New, an existing instance is returned without
// comparing arguments.
func (h *Handle[T]) Get() (T, error) {
	if e, ok := h.reg.entries[h.key]; ok {
		return e.instance.(T), nil
	}
	return h.New(Args{})
}

// Reset discards the stored instance and construction key. The next New
// behaves as first-ever construction. Administrative operation, mainly
// for tests.
func (h *Handle[T]) Reset() {
	delete(h.reg.entries, h.key)
}

// Live reports whether an instance currently exists for T.
func (h *Handle[T]) Live() bool {
	_, ok := h.reg.entries[h.key]
	return ok
}

type fieldDiff struct {
	field string
	old   any
	new   any
}

// diffArgs compares a requested snapshot against the construction key:
// positional values by position (named arg1..argN), keyword values by
// name. A value present on one side only counts as a difference.
func diffArgs(key, req Args) []fieldDiff {
	var diffs []fieldDiff

	n := len(key.Positional)
	if len(req.Positional) > n {
		n = len(req.Positional)
	}
	for i := 0; i < n; i++ {
		oldVal, newVal := positional(key, i), positional(req, i)
		if !equalValues(oldVal, newVal) {
			diffs = append(diffs, fieldDiff{
				field: fmt.Sprintf("arg%d", i+1),
				old:   oldVal,
				new:   newVal,
			})
		}
	}

	names := map[string]bool{}
	for name := range key.Keyword {
		names[name] = true
	}
	for name := range req.Keyword {
		names[name] = true
	}
	ordered := make([]string, 0, len(names))
	for name := range names {
		ordered = append(ordered, name)
	}
	sort.Strings(ordered)
	for _, name := range ordered {
		oldVal, newVal := key.Keyword[name], req.Keyword[name]
		if !equalValues(oldVal, newVal) {
			diffs = append(diffs, fieldDiff{field: name, old: oldVal, new: newVal})
		}
	}
	return diffs
}

// equalValues compares two argument values. The divergence check is
// strictly advisory, so it must never take down a construction call:
// go-cmp panics on struct values with unexported fields and no Equal
// method, and those fall back to reflect.DeepEqual.
func equalValues(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return cmp.Equal(a, b)
}

func positional(a Args, i int) any {
	if i < len(a.Positional) {
		return a.Positional[i]
	}
	return nil
}

func (r *Registry) warnDivergence(name string, diffs []fieldDiff) {
	fmt.Fprintf(r.warn, "WARNING: Requested %s instance with different parameters\n", name)
	for _, d := range diffs {
		fmt.Fprintf(r.warn, "  %s=%s (was %s)\n", d.field, formatValue(d.new), formatValue(d.old))
	}
}

func formatValue(v any) string {
	if v == nil {
		return "<none>"
	}
	return fmt.Sprintf("%v", v)
}

// typeIdentityOf returns the registry key and the display name for T.
// The key is package-qualified so same-named types from different
// packages never share an entry; the name is bare for warning text.
func typeIdentityOf[T any]() (key, name string) {
	t := reflect.TypeOf((*T)(nil)).Elem()
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Name() != "" {
		return t.PkgPath() + "." + t.Name(), t.Name()
	}
	return t.String(), t.String()
}
