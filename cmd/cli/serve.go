package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/limaJavier/councils/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the upload API (POST /api/arrangements)",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr = serveAddr
		}

		srv := server.New(cfg, logger)

		signals := make(chan os.Signal, 1)
		signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-signals
			logger.Info("shutting down")
			if err := srv.Shutdown(); err != nil {
				logger.Error("shutdown failed", zap.Error(err))
			}
		}()

		return srv.Listen(cfg.Server.Addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
}
