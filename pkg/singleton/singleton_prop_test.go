package singleton

import (
	"bytes"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

type propProbe struct {
	value string
}

// TestProperty_SingletonInvariants checks the construction invariants
// over arbitrary argument pairs.
func TestProperty_SingletonInvariants(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("first construction wins and divergence warns once", prop.ForAll(
		func(first, second string) bool {
			var warnings bytes.Buffer
			reg := NewRegistry(WithWarnings(&warnings))
			h := Register(reg, func(args Args) (*propProbe, error) {
				v, _ := args.Positional[0].(string)
				return &propProbe{value: v}, nil
			})

			a, err := h.New(NewArgs(first))
			if err != nil || a.value != first {
				return false
			}
			b, err := h.New(NewArgs(second))
			if err != nil || b != a {
				return false
			}
			if first == second {
				return warnings.Len() == 0
			}
			return strings.Count(warnings.String(), "WARNING") == 1 && a.value == first
		},
		gen.AlphaString(),
		gen.AlphaString(),
	))

	properties.Property("reset always allows a fresh instance", prop.ForAll(
		func(value string) bool {
			reg := NewRegistry(WithWarnings(&bytes.Buffer{}))
			h := Register(reg, func(args Args) (*propProbe, error) {
				v, _ := args.Positional[0].(string)
				return &propProbe{value: v}, nil
			})
			a, _ := h.New(NewArgs("seed"))
			h.Reset()
			b, _ := h.New(NewArgs(value))
			return a != b && b.value == value
		},
		gen.AlphaString(),
	))

	properties.TestingRun(t, gopter.ConsoleReporter(false))
}
