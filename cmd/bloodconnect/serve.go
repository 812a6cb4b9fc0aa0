package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bloodconnect/internal/content"
	"bloodconnect/internal/directory"
	"bloodconnect/internal/server"

	"github.com/urfave/cli/v2"
)

var serveCommand = &cli.Command{
	Name:   "serve",
	Usage:  "Start the HTTP server",
	Action: serve,
}

func serve(cCtx *cli.Context) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	config, err := loadConfig(cCtx)
	if err != nil {
		return err
	}

	logger := newLogger(config)

	src, closeSources, err := openSources(ctx, config, logger)
	if err != nil {
		return err
	}
	defer closeSources()

	generator, err := newGenerator(ctx, config, logger)
	if err != nil {
		return err
	}

	notifier, err := newNotifier(ctx, config, logger)
	if err != nil {
		return err
	}

	srv, err := server.New(
		config,
		logger,
		directory.New(src.donors),
		content.New(src.drives, src.articles),
		generator,
		notifier,
	)
	if err != nil {
		return err
	}

	go func() {
		logger.WithField("port", config.ServerPort).Infof("server starting http://localhost:%d", config.ServerPort)
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Stop(shutdownCtx)
}
