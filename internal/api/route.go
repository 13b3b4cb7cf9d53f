package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	v1 "github.com/loyalbox/loyalbox/internal/api/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(app *fiber.App, handler *v1.Handler, auth fiber.Handler, admin fiber.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	authGroup := app.Group("/api/auth")
	authGroup.Post("/register", handler.Register)
	authGroup.Post("/login", handler.Login)
	authGroup.Put("/promote/:id", auth, admin, handler.Promote)
	authGroup.Get("/me", auth, handler.Me)

	rewards := app.Group("/api/rewards", auth)
	rewards.Get("/", handler.ListRewards)
	rewards.Post("/", admin, handler.CreateReward)
	rewards.Put("/:id", admin, handler.UpdateReward)
	rewards.Delete("/:id", admin, handler.DeleteReward)

	transactions := app.Group("/api/transactions", auth)
	transactions.Post("/buy", handler.Buy)
	transactions.Post("/redeem/:rewardId", handler.Redeem)
	transactions.Get("/balance", handler.Balance)
	transactions.Get("/history", handler.History)
	transactions.Get("/users", admin, handler.ListUsers)
	transactions.Get("/all-transactions", admin, handler.AllTransactions)
}
