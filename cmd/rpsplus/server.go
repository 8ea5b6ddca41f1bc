package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/lox/rpsplus/cmd/rpsplus/shared"
	"github.com/lox/rpsplus/internal/history"
	"github.com/lox/rpsplus/internal/randutil"
	"github.com/lox/rpsplus/internal/server"
)

// ServerCmd runs the WebSocket match service
type ServerCmd struct {
	Config     string `kong:"default='rpsplus.hcl',help='HCL config file (defaults apply if absent)'"`
	Addr       string `kong:"help='Listen address, overrides the config file'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
	Seed       *int64 `kong:"help='Deterministic RNG seed for the server (optional)'"`
	HistoryDir string `kong:"help='Record completed matches under this directory, overrides the config file'"`
}

func (c *ServerCmd) Run() error {
	logger := shared.SetupLogger(c.Debug)

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if c.HistoryDir != "" {
		cfg.History = &server.HistoryConfig{Dir: c.HistoryDir}
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	addr := cfg.GetAddress()
	if c.Addr != "" {
		addr = c.Addr
	}

	var seed int64
	switch {
	case c.Seed != nil:
		seed = *c.Seed
	case cfg.Bot.Seed != nil:
		seed = *cfg.Bot.Seed
	default:
		seed = time.Now().UnixNano()
	}
	logger.Info("seeding RNG", "seed", seed)

	var opts []server.ServiceOption
	if cfg.History != nil {
		recorder, err := history.NewRecorder(cfg.History.Dir, logger)
		if err != nil {
			return err
		}
		opts = append(opts, server.WithRecorder(recorder))
	}

	srv, _ := server.NewFromConfig(cfg, randutil.New(seed), logger, opts...)

	logger.Info("starting rpsplus server",
		"addr", addr,
		"strategy", cfg.Bot.Strategy,
		"roundLimit", cfg.Server.RoundLimit,
		"idleTimeout", cfg.IdleTimeout(),
		"wasteOnInvalid", cfg.WasteOnInvalid())

	ctx := shared.SetupSignalHandler(logger)

	serverErr := make(chan error, 1)
	go func() {
		if err := srv.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-serverErr:
		return err
	}
}
