package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/achievement-card/internal/server"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the card HTTP server",
		Long:  `Start an HTTP server exposing GET /card?username=, GET /api?username=, and GET /health.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Port = port
			}

			logger, err := newLogger(cfg)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			renderer, err := newRenderer(cfg, newStore(cfg), logger)
			if err != nil {
				return err
			}

			srv, err := server.New(server.Config{
				Port:     cfg.Port,
				Renderer: renderer,
				Logger:   logger,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}

			logger.Info("serving achievement cards",
				zap.String("mode", string(cfg.Mode)),
				zap.String("upstream", cfg.UpstreamBaseURL),
				zap.Duration("cache_ttl", time.Duration(cfg.CacheTTL)),
			)
			return srv.Start()
		},
	}
	cmd.Flags().IntVarP(&port, "port", "p", 3000, "Port to listen on; overrides config and PORT")
	return cmd
}
