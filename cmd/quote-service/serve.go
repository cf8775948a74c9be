package main

import (
	"os/signal"
	"syscall"

	"quoteintake/internal/app"

	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer cancel()

			log.Infow("application starting", "env", cfg.Env, "version", cfg.App.Version)

			if err = app.Run(ctx, cfg, log); err != nil {
				log.Errorw("application failed", "error", err)
				return err
			}

			log.Infow("application exited normally")
			return nil
		},
	}
}
