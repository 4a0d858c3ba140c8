package cli

// This file implements terminal output for the CLI: colored helpers,
// table rendering, and the boxed error reports produced by the error
// handler. All styling goes through pterm so it can be disabled
// globally for non-TTY output or --no-color.

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// ConfigureStyling disables pterm styling when color output is
// unwanted: either explicitly via noColor or because stderr is not a
// terminal (piped or redirected output).
func ConfigureStyling(noColor bool) {
	if noColor || !term.IsTerminal(int(os.Stderr.Fd())) {
		pterm.DisableStyling()
	}
}

// Green returns the string styled green.
func Green(s string) string { return pterm.Green(s) }

// Yellow returns the string styled yellow.
func Yellow(s string) string { return pterm.Yellow(s) }

// Red returns the string styled red.
func Red(s string) string { return pterm.Red(s) }

// Cyan returns the string styled cyan.
func Cyan(s string) string { return pterm.Cyan(s) }

// Table renders rows (first row is the header) to stdout.
func Table(data [][]string) {
	if len(data) == 0 {
		return
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(data)).Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stdout, out)
}

// TableBoxed renders rows inside a box to stdout.
func TableBoxed(data [][]string) {
	if len(data) == 0 {
		return
	}
	out, err := pterm.DefaultTable.WithHasHeader().WithData(pterm.TableData(data)).WithBoxed().Srender()
	if err != nil {
		return
	}
	fmt.Fprintln(os.Stdout, out)
}

// Printer writes user-facing diagnostics. The zero value writes to
// stderr; tests inject a buffer via Out. Quiet suppresses informational
// output but never error reports.
type Printer struct {
	Out   io.Writer
	Quiet bool
}

func (p *Printer) writer() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stderr
}

// Section prints a section heading.
func (p *Printer) Section(title string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.writer(), pterm.Bold.Sprint(title))
}

// Info prints an informational line.
func (p *Printer) Info(msg string) {
	if p.Quiet {
		return
	}
	fmt.Fprintln(p.writer(), msg)
}

// Printf prints formatted output.
func (p *Printer) Printf(format string, args ...any) {
	if p.Quiet {
		return
	}
	fmt.Fprintf(p.writer(), format, args...)
}

// ErrorBox prints a boxed error report with the given title ("ERROR" or
// "UNEXPECTED ERROR") and a marker-prefixed body line.
func (p *Printer) ErrorBox(title, body string) {
	box := pterm.DefaultBox.
		WithTitle(pterm.LightRed(title)).
		WithTitleTopCenter().
		Sprint("➤ " + body)
	fmt.Fprintln(p.writer(), box)
}

// Usage prints a usage error exactly as "Error: {message}". Usage
// messages are already user-formatted, so no box and no marker.
func (p *Printer) Usage(msg string) {
	fmt.Fprintf(p.writer(), "Error: %s\n", msg)
}

// Stack prints a stack trace beneath an error box.
func (p *Printer) Stack(stack string) {
	fmt.Fprintln(p.writer(), pterm.Gray(strings.TrimRight(stack, "\n")))
}
