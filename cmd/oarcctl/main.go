package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Ollama-Agent-Roll-Cage/oarc-decorators/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	logger, err := newConsoleLogger(viper.GetBool("debug"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	initCommands(logger)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
}

var rootCmd = &cobra.Command{
	Use:   "oarcctl",
	Short: "OARC decorators demo CLI",
	Long: `oarcctl exercises the oarc-decorators library end to end:
- Error kind table listing
- Error classification and exit-code mapping
- Boxed diagnostic output`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		cli.SetDebugMode(viper.GetBool("debug"))
		cli.ConfigureStyling(viper.GetBool("no-color"))
	},
}

func init() {
	rootCmd.PersistentFlags().Bool("verbose", false, "Print stack traces with error reports")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug mode with structured error logging")
	rootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")

	viper.SetEnvPrefix("OARCCTL")
	viper.AutomaticEnv()
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag("no-color", rootCmd.PersistentFlags().Lookup("no-color"))
}

func initCommands(logger *zap.Logger) {
	rootCmd.AddCommand(cli.NewErrorsCmd(logger))
	rootCmd.AddCommand(cli.NewFailCmd(logger))
}

// newConsoleLogger returns a human-friendly console logger.
// If debug is true, sets log level to Debug to enable all debug logs.
// Otherwise, sets to ErrorLevel so structured error logs (when the
// debug flag is enabled) will show.
func newConsoleLogger(debug bool) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Encoding = "console"
	level := zap.ErrorLevel
	if debug {
		level = zap.DebugLevel
	}
	cfg.Level = zap.NewAtomicLevelAt(level)
	cfg.EncoderConfig = zapcore.EncoderConfig{
		TimeKey:        "ts",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.CapitalColorLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}
	cfg.OutputPaths = []string{"stdout"}
	cfg.ErrorOutputPaths = []string{"stderr"}
	cfg.DisableCaller = true
	cfg.DisableStacktrace = true
	return cfg.Build()
}
