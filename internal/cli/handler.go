package cli

// This file implements the catch-all error boundary for CLI commands.
// A command body's failure is classified (pkg/errx), rendered as a
// boxed diagnostic, optionally logged with structured fields, and
// converted into a process exit code. Nothing propagates past the
// boundary as an error; the exit code IS the terminal status.
//
// This boundary is for command entry points only and must not be used
// inside library code, where errors propagate normally.

import (
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/pkg/errx"
)

// exitFunc is swapped out in tests.
var exitFunc = os.Exit

// Options configures the error boundary.
type Options struct {
	// Verbose adds a stack trace beneath the error report.
	Verbose bool
	// Logger receives structured error logs when debug mode is on.
	Logger *zap.Logger
	// Printer renders the diagnostics. Nil means stderr.
	Printer *Printer
}

// HandleError runs fn and converts any failure into diagnostic output
// plus an exit code. A nil return from fn yields 0 with no output.
// Otherwise the failure is classified and reported:
//
//   - usage error: "Error: {message}" verbatim, exit code 2
//   - known domain error: box titled "ERROR" with "➤ {message}",
//     the kind's exit code (default 1)
//   - unexpected error: box titled "UNEXPECTED ERROR" with
//     "➤ {TypeName}: {message}", exit code 1
//
// With Verbose set, the stack trace is printed beneath the box (but
// never for usage errors, whose output stays verbatim).
func HandleError(fn func() error, opts Options) int {
	err := fn()
	if err == nil {
		return 0
	}

	res := errx.Classify(err, opts.Verbose)
	p := opts.Printer
	if p == nil {
		p = DefaultPrinter()
	}

	switch res.Class {
	case errx.ClassUsage:
		p.Usage(res.Error)
	case errx.ClassDomain:
		p.ErrorBox("ERROR", res.Format())
		if res.Stack != "" {
			p.Stack(res.Stack)
		}
	default:
		p.ErrorBox("UNEXPECTED ERROR", res.Format())
		if res.Stack != "" {
			p.Stack(res.Stack)
		}
	}

	logStructuredError(opts.Logger, err, "command failed")
	return res.ExitCode
}

// RunE adapts a command body into a cobra RunE that never surfaces an
// error to cobra: failures are handled by HandleError and the process
// exits with the classified code. The persistent --verbose flag on the
// command tree controls stack trace output.
func RunE(logger *zap.Logger, fn func(cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		verbose, _ := cmd.Root().PersistentFlags().GetBool("verbose")
		code := HandleError(func() error { return fn(cmd, args) }, Options{
			Verbose: verbose,
			Logger:  logger,
		})
		if code != 0 {
			exitFunc(code)
		}
		return nil
	}
}
