package main

import (
	"errors"
	"fmt"

	"quoteintake/internal/app"
	"quoteintake/internal/entity"

	"github.com/spf13/cobra"
)

func smtpCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "smtp-check",
		Short: "Connect and authenticate to the mail server without sending",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, log, err := bootstrap(cmd)
			if err != nil {
				return err
			}

			m, err := app.NewMailer(&cfg.Mail, log)
			if err != nil {
				return err
			}

			if err = m.Ping(cmd.Context()); err != nil {
				if errors.Is(err, entity.ErrMailAuth) {
					return fmt.Errorf("mail server rejected credentials for %s: %w", cfg.Mail.Username, err)
				}
				return fmt.Errorf("mail server %s:%d unreachable: %w", cfg.Mail.Host, cfg.Mail.Port, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "SMTP OK: %s:%d as %s\n", cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username)
			return nil
		},
	}
}
