package main

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"os"
	"time"

	"resqcart/internal/bot"
	"resqcart/internal/handler/middleware"
	"resqcart/internal/pkg/clock"
	"resqcart/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

func newLogger(cfg config.BotConfig) *slog.Logger {
	logger := middleware.NewLogger(cfg.Log)
	slog.SetDefault(logger)
	return logger
}

func newEngine(logger *slog.Logger) *gin.Engine {
	engine := gin.New()
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.RequestLogger(logger, "/health"))
	return engine
}

func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.BotConfig, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			logger.Info("🤖 starting WhatsApp bot", "address", srv.Addr)
			go func() {
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("bot server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info("🛑 stopping WhatsApp bot")
			return srv.Shutdown(ctx)
		},
	})
}

func main() {
	app := fx.New(
		fx.Provide(
			config.LoadBotConfig,
			newLogger,
			newEngine,
			clock.NewRealClock,
			func() bot.Intn { return rand.IntN },
			bot.NewResponder,
			bot.NewHandler,
		),
		fx.Invoke(
			bot.NewRouter,
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("bot failed to start", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	stopCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("bot failed to stop cleanly", "error", err)
	}
}
