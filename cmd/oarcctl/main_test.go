package main

import "testing"

func TestNewConsoleLogger(t *testing.T) {
	for _, debug := range []bool{false, true} {
		logger, err := newConsoleLogger(debug)
		if err != nil {
			t.Fatalf("newConsoleLogger(%v) error = %v", debug, err)
		}
		if logger == nil {
			t.Fatalf("newConsoleLogger(%v) = nil logger", debug)
		}
		_ = logger.Sync()
	}
}

func TestRootCmdRegistersCommands(t *testing.T) {
	logger, err := newConsoleLogger(false)
	if err != nil {
		t.Fatalf("newConsoleLogger() error = %v", err)
	}
	initCommands(logger)

	want := map[string]bool{"errors": false, "fail": false}
	for _, cmd := range rootCmd.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("subcommand %q not registered", name)
		}
	}
}

func TestRootCmdPersistentFlags(t *testing.T) {
	for _, name := range []string{"verbose", "debug", "no-color"} {
		if rootCmd.PersistentFlags().Lookup(name) == nil {
			t.Errorf("persistent flag %q not defined", name)
		}
	}
}
