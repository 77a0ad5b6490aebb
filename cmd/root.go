package cmd

import (
	"errors"
	"fmt"
	"os"

	"imagine-api/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "imagine-api",
	Short: "Imagine API server",
	Long: `Imagine API serves the user and image routes behind an origin
allow-list. The database is connected before the port is bound.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// exitError carries a process exit code for a failure that was already logged.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	RootCmd.SetArgs(args)
	err := RootCmd.Execute()
	if err == nil {
		return 0
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	// Console encoding at debug level for readable CLI output
	cfg := &logger.Config{
		Level:  "debug",
		Format: "console",
	}
	l, logErr := logger.New(cfg)
	if logErr == nil {
		l.Error("command failed", zap.Error(err))
		_ = l.Sync()
	} else {
		fmt.Fprintln(os.Stderr, err)
	}
	return 1
}
