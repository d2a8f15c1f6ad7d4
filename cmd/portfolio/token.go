package main

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"portfolio/internal/lib/jwt"
)

func newTokenCmd() *cobra.Command {
	var (
		ttl     time.Duration
		subject string
	)

	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue a bearer token for the admin API",
		Long:  `Sign a token with admin.secret for use as "Authorization: Bearer <token>" on /api/v1/admin routes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := loadConfig(os.Stderr)
			if err != nil {
				return err
			}
			if cfg.Admin.Secret == "" {
				return errors.New("admin.secret is not configured")
			}

			if !cmd.Flags().Changed("ttl") {
				ttl = cfg.Admin.TokenTTL
			}

			token, err := jwt.NewToken(subject, cfg.Admin.Secret, ttl)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().DurationVar(&ttl, "ttl", time.Hour, "token lifetime (defaults to admin.token_ttl)")
	cmd.Flags().StringVar(&subject, "subject", "admin", "token subject")

	return cmd
}
