// Package commands wires the cobra command tree. Running the bare
// binary opens the interactive UI; subcommands cover the same actions
// for scripting.
package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"tally/internal/cli"
	"tally/internal/config"
	"tally/internal/service"
)

var rootCmd = &cobra.Command{
	Use:   "tally",
	Short: "Personal expense tracker",
	Long:  "Track expenses, budgets and category breakdowns from the terminal.",
	RunE:  runTUI,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// app bundles everything a command needs after bootstrap.
type app struct {
	cfg    *config.Config
	ledger *service.Ledger
	close  func() error
}

// setup is the shared bootstrap path used by all commands: env file,
// config, logging, storage backend, seeded defaults.
func setup(ctx context.Context) (*app, error) {
	cli.LoadEnvFile()

	cfg, err := cli.LoadAndValidateConfig()
	if err != nil {
		return nil, err
	}
	cli.SetupLogger(cfg, os.Stderr)

	st, closer, err := cli.OpenStore(cfg)
	if err != nil {
		return nil, err
	}
	if err := st.Initialize(ctx); err != nil {
		_ = closer()
		return nil, fmt.Errorf("initialize store: %w", err)
	}

	return &app{
		cfg:    cfg,
		ledger: service.NewLedger(st),
		close:  closer,
	}, nil
}
