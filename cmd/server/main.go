package main

import (
	"context"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/honeycarbs/jobnest/internal/app"
	"github.com/honeycarbs/jobnest/internal/auth"
	"github.com/honeycarbs/jobnest/internal/config"
	"github.com/honeycarbs/jobnest/internal/httpapi"
	"github.com/honeycarbs/jobnest/internal/mcp"
	"github.com/honeycarbs/jobnest/pkg/logging"
	"github.com/honeycarbs/jobnest/pkg/shutdown"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := logging.New(cfg.LogLevel, cfg.Environment)
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	res, err := app.Build(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize resources", "err", err)
		os.Exit(1)
	}

	tokens, err := auth.NewTokenService(cfg.AccessTokenSecret, cfg.TokenTTL)
	if err != nil {
		logger.Error("failed to initialize token service", "err", err)
		_ = res.Close(ctx)
		os.Exit(1)
	}

	router := httpapi.NewRouter(httpapi.Deps{
		Jobs:          res.Jobs,
		Applications:  res.Applications,
		Tokens:        tokens,
		Logger:        logger,
		SecureCookies: cfg.IsProduction(),
		CORSOrigins:   cfg.CORSOrigins,
		MCP: mcp.NewHandler(logger, mcp.Deps{
			Jobs:         res.Jobs,
			Applications: res.Applications,
			Sheets:       res.Sheets,
		}),
	})

	srv := httpapi.NewServer(logger, cfg, router)

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		shutdown.Graceful(
			[]os.Signal{os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT, syscall.SIGHUP},
			srv,
			10*time.Second,
			logger,
			res.Close,
		)
	}()

	logger.Info("JobNest server initialized and starting", "addr", srv.Addr(), "store", cfg.StoreDriver)

	if err := srv.Run(); err != nil {
		logger.Error("HTTP server exited with error", "err", err)
		_ = res.Close(ctx)
		os.Exit(1)
	}

	<-stopped
	logger.Info("JobNest server stopped")
}
