package main

import (
	"fmt"

	"quoteintake/internal/config"
	"quoteintake/pkg/logger"

	"github.com/spf13/cobra"
)

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "quote-service",
		Short:         "Quote request intake service",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "Path to the config file (defaults to $CONFIG_PATH)")

	root.AddCommand(
		serveCmd(),
		migrateCmd(),
		smtpCheckCmd(),
		seedCmd(),
	)

	return root
}

// bootstrap loads the configuration named by --config and builds the logger.
func bootstrap(cmd *cobra.Command) (*config.Config, logger.Logger, error) {
	path, _ := cmd.Flags().GetString("config")

	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.NewAdapter(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, log, nil
}
