package main

import (
	"context"
	"fmt"

	"github.com/NeyGuaiume2/sdisc/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	serveFlags commonFlags
	servePort  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that scores assessments over REST. Results are stored when DATABASE_URL is set.`,
	RunE:  runServe,
}

func init() {
	serveFlags.register(serveCmd)
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (default 8080)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := serveFlags.resolve(servePort)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	data := newDataCache(cfg, logger)
	engine, err := newEngine(context.Background(), cfg, data, logger)
	if err != nil {
		return err
	}
	logger.Debug("reference data ready", zap.Int64("loads", data.Loads()))

	srv, err := server.New(server.Config{
		Port:            cfg.Port,
		DatabaseURL:     cfg.DatabaseURL,
		ResultCacheSize: max(cfg.ResultCacheSize, 0),
	}, engine, server.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
