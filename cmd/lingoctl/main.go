// Command lingoctl is the operator tool: schema migrations and dataset checks.
package main

import (
	"log/slog"
	"os"

	"lingo/config"
	logs "lingo/internal/infra/log"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "lingoctl",
		Short:        "Operator commands for the lingo service",
		SilenceUsage: true,
	}

	root.AddCommand(
		newMigrateCmd(),
		newContentCmd(),
	)

	return root
}

// loadConfig reads the same configuration as the service and logs to stderr,
// keeping stdout for command output.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, nil, err
	}

	logger, err := logs.NewWithWriter(os.Stderr, cfg)
	if err != nil {
		return nil, nil, err
	}

	return cfg, logger, nil
}
