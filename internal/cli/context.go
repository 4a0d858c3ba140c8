package cli

// Process-wide CLI state lives in an explicit singleton registry so
// tests can reset it between cases instead of fighting package globals.

import (
	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/pkg/singleton"
)

var (
	registry      = singleton.NewRegistry()
	printerHandle = singleton.Register(registry, func(args singleton.Args) (*Printer, error) {
		quiet, _ := args.Keyword["quiet"].(bool)
		return &Printer{Quiet: quiet}, nil
	})
)

// DefaultPrinter returns the shared stderr printer, constructing it on
// first use.
func DefaultPrinter() *Printer {
	p, _ := printerHandle.Get()
	return p
}

// ResetPrinter discards the shared printer. Test helper.
func ResetPrinter() {
	printerHandle.Reset()
}
