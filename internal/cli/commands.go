package cli

// This file implements the "errors" and "fail" subcommands.
// "errors" prints the error kind table; "fail" is a hidden command that
// raises a chosen failure through the boundary for manual verification
// of output framing and exit codes.

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/pkg/errx"
)

// NewErrorsCmd builds the errors subcommand listing the kind table.
func NewErrorsCmd(logger *zap.Logger) *cobra.Command {
	var output string
	var boxed bool

	cmd := &cobra.Command{
		Use:   "errors",
		Short: "List registered error kinds",
		Long:  "List the error kind table with descriptions and exit codes",
		RunE: RunE(logger, func(cmd *cobra.Command, args []string) error {
			switch output {
			case "table":
				printKindTable(boxed)
				return nil
			case "yaml":
				return printKindYAML()
			default:
				return errx.Usage(fmt.Sprintf("unknown output format %q (expected table or yaml)", output))
			}
		}),
	}

	cmd.Flags().StringVar(&output, "output", "table", "Output format: table or yaml")
	cmd.Flags().BoolVar(&boxed, "boxed", false, "Draw a box around the table")

	return cmd
}

// kindTableRows builds the table rows for the kind listing, header
// first. Kind names are cyan, non-default exit codes red, and the
// domain column green/yellow so hierarchy-external kinds stand out.
func kindTableRows() [][]string {
	data := [][]string{{"KIND", "DESCRIPTION", "EXIT CODE", "DOMAIN"}}
	for _, info := range errx.KindRegistry() {
		code := strconv.Itoa(errx.ExitCodeFor(info.Kind))
		if errx.ExitCodeFor(info.Kind) != errx.DefaultExitCode {
			code = Red(code)
		}
		domain := Yellow("no")
		if info.Domain {
			domain = Green("yes")
		}
		data = append(data, []string{
			Cyan(info.Name),
			info.Description,
			code,
			domain,
		})
	}
	return data
}

func printKindTable(boxed bool) {
	p := &Printer{Out: os.Stdout}
	p.Section("Registered error kinds")

	rows := kindTableRows()
	if boxed {
		TableBoxed(rows)
	} else {
		Table(rows)
	}

	p.Info(fmt.Sprintf("%d kinds registered", len(rows)-1))
}

func printKindYAML() error {
	out, err := yaml.Marshal(errx.KindRegistry())
	if err != nil {
		return errx.WrapGeneric("failed to marshal kind table", err)
	}
	fmt.Fprint(os.Stdout, string(out))
	return nil
}

// failModes maps --kind flag values to error builders.
var failModes = map[string]func(msg string) error{
	"generic":    func(msg string) error { return errx.Generic(msg) },
	"auth":       func(msg string) error { return errx.Authentication(msg) },
	"build":      func(msg string) error { return errx.Build(msg) },
	"config":     func(msg string) error { return errx.Configuration(msg) },
	"crawler":    func(msg string) error { return errx.CrawlerOp(msg) },
	"extraction": func(msg string) error { return errx.DataExtraction(msg) },
	"network":    func(msg string) error { return errx.Network(msg) },
	"publish":    func(msg string) error { return errx.Publish(msg) },
	"not-found":  func(msg string) error { return errx.ResourceNotFound(msg) },
	"transport":  func(msg string) error { return errx.Transport(msg) },
	"mcp":        func(msg string) error { return errx.MCP(msg) },
	"usage":      func(msg string) error { return errx.Usage(msg) },
	"unexpected": func(msg string) error { return errors.New(msg) },
}

// NewFailCmd builds the hidden fail subcommand used to exercise the
// error boundary end to end.
func NewFailCmd(logger *zap.Logger) *cobra.Command {
	var kind string
	var message string

	cmd := &cobra.Command{
		Use:    "fail",
		Short:  "Raise a failure of the given kind",
		Hidden: true,
		RunE: RunE(logger, func(cmd *cobra.Command, args []string) error {
			build, ok := failModes[kind]
			if !ok {
				return errx.Usage(fmt.Sprintf("unknown kind %q", kind))
			}
			return build(message)
		}),
	}

	cmd.Flags().StringVar(&kind, "kind", "generic", "Failure kind to raise")
	cmd.Flags().StringVar(&message, "message", "simulated failure", "Failure message")

	return cmd
}
