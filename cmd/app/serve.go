package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/TemirB/smm-orders/internal/auth"
	"github.com/TemirB/smm-orders/internal/httpapi"
)

func newServeCmd(verbose *bool) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the order form and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(*verbose)
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(logger)
			if err != nil {
				logger.Error("Error while loading config", zap.Error(err))
				return err
			}

			gate, err := auth.NewGate(a.cfg.Secret, a.metrics, logger)
			if err != nil {
				return err
			}
			sessions, err := auth.NewStore(a.cfg.SessionCap)
			if err != nil {
				return err
			}

			server := httpapi.New(a.service, a.catalog, gate, sessions, logger, a.metrics)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := server.ListenAndServe(ctx, a.cfg.HTTPAddr); err != nil {
				logger.Error("HTTP server stopped", zap.Error(err))
				return err
			}
			logger.Info("Shut down gracefully")
			return nil
		},
	}
}
