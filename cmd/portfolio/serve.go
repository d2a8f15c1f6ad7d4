package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"portfolio/internal/app"
	"portfolio/internal/lib/logger/sl"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Long:  `Run the API, the landing page, metrics and Swagger UI until SIGINT or SIGTERM.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := loadConfig(os.Stdout)
			if err != nil {
				return err
			}

			log.Info("starting portfolio", "env", cfg.Env)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			application, err := app.New(ctx, log, cfg)
			if err != nil {
				log.Error("failed to initialise application", sl.Err(err))
				return err
			}
			defer application.Close()

			errCh := make(chan error, 1)
			go func() {
				errCh <- application.HTTPServer.Start()
			}()

			select {
			case err := <-errCh:
				if err != nil {
					log.Error("server stopped", sl.Err(err))
					return err
				}
			case <-ctx.Done():
			}

			if err := application.HTTPServer.Stop(context.Background()); err != nil {
				log.Error("failed to stop server", sl.Err(err))
				return err
			}

			log.Info("Gracefully stopped")
			return nil
		},
	}
}
