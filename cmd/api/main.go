package main

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/loyalbox/loyalbox/internal/api"
	"github.com/loyalbox/loyalbox/internal/api/middleware"
	v1 "github.com/loyalbox/loyalbox/internal/api/v1"
	"github.com/loyalbox/loyalbox/internal/api/validator"
	"github.com/loyalbox/loyalbox/internal/cache"
	"github.com/loyalbox/loyalbox/internal/config"
	"github.com/loyalbox/loyalbox/internal/database"
	"github.com/loyalbox/loyalbox/internal/metrics"
	"github.com/loyalbox/loyalbox/internal/repository"
	"github.com/loyalbox/loyalbox/internal/service"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	fx.New(
		fx.Provide(
			config.Load,
			zap.NewProduction,
			database.NewConnection,
			metrics.NewMetrics,
			metrics.NewDatabaseMetricsCollector,
			cache.NewBalanceCache,
			validator.New,
			repository.NewTransactionManager,
			repository.NewUserRepository,
			repository.NewRewardRepository,
			repository.NewTransactionRepository,
			service.NewAuthService,
			service.NewRewardService,
			service.NewLedgerService,
			v1.NewHandler,
			newFiberApp,
		),
		fx.Invoke(startServer),
	).Run()
}

func newFiberApp(m *metrics.Metrics, logger *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(metrics.HTTPMetricsMiddleware(m, logger))
	return app
}

func startServer(app *fiber.App, handler *v1.Handler, users repository.UserRepository,
	dbMetrics *metrics.DatabaseMetricsCollector, cfg *config.Config, logger *zap.Logger, lc fx.Lifecycle) {
	auth := middleware.RequireAuth(cfg, logger)
	admin := middleware.RequireAdmin(users, logger)
	api.SetupRoutes(app, handler, auth, admin)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			dbMetrics.Start(15 * time.Second)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			dbMetrics.Stop()
			return nil
		},
	})

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := app.Listen(cfg.API.Port); err != nil {
					logger.Error("Server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return app.ShutdownWithContext(ctx)
		},
	})
}
