// Command arena-indexer follows arena contract notifications on a Neo N3
// chain and serves the indexed state over HTTP.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dragonfly-xyz/nottingham-contracts-sub001/internal/indexer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 15 * time.Second
)

func main() {
	if err := run(); err != nil {
		os.Stderr.WriteString("arena-indexer: " + err.Error() + "\n")
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := indexer.LoadConfig()
	if err != nil {
		return err
	}

	log, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	contract, err := cfg.Contract()
	if err != nil {
		return err
	}

	store, err := indexer.NewStore(ctx, cfg.RedisURL, cfg.RedisPoolSize)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	metrics := indexer.NewMetrics()

	listener, err := indexer.NewListener(ctx, log, cfg.RPCEndpoint, contract, store, metrics)
	if err != nil {
		return err
	}
	defer listener.Close()

	srv := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           indexer.NewAPI(log, store, metrics).Router(),
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 2)
	go func() {
		log.Info("starting HTTP server", zap.String("addr", cfg.ListenAddr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	go func() {
		errCh <- listener.Run(ctx)
	}()

	select {
	case <-ctx.Done():
		log.Info("shutting down")
	case err = <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			log.Error("fatal error", zap.Error(err))
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if sErr := srv.Shutdown(shutdownCtx); sErr != nil {
		log.Warn("HTTP shutdown failed", zap.Error(sErr))
	}

	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(lvl)
	return cfg.Build()
}
