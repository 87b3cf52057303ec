// Package routes wires the API routing configuration: repositories,
// services, handlers and per-route middleware.
package routes

import (
	"nisapoti-admin/internal/handlers"
	"nisapoti-admin/internal/middleware"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/services/auth"
	"nisapoti-admin/internal/services/creator"
	"nisapoti-admin/internal/services/dashboard"
	"nisapoti-admin/internal/services/supporter"
	"nisapoti-admin/internal/services/withdrawal"
	"nisapoti-admin/internal/services/wishlist"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	adminRepo := repositories.NewAdminUserRepository(db)
	creatorRepo := repositories.NewCreatorRepository(db)
	supporterRepo := repositories.NewSupporterRepository(db)
	withdrawalRepo := repositories.NewWithdrawalRepository(db)
	wishlistRepo := repositories.NewWishlistRepository(db)
	statsRepo := repositories.NewStatsRepository(db)

	authHandler := handlers.NewAuthHandler(auth.NewService(adminRepo))
	creatorHandler := handlers.NewCreatorHandler(creator.NewService(creatorRepo))
	supporterHandler := handlers.NewSupporterHandler(supporter.NewService(supporterRepo))
	withdrawalHandler := handlers.NewWithdrawalHandler(withdrawal.NewService(withdrawalRepo))
	wishlistHandler := handlers.NewWishlistHandler(wishlist.NewService(wishlistRepo))
	dashboardHandler := handlers.NewDashboardHandler(dashboard.NewService(statsRepo))

	app.Get("/health", handlers.Health)

	api := app.Group("/api")

	// Public endpoint (rate-limited in main)
	api.Post("/admin/login", authHandler.Login)

	// Everything else re-verifies the bearer token per request
	protected := api.Use(middleware.RequireAuth)
	protected.Get("/creators", creatorHandler.List)
	protected.Get("/supporters", supporterHandler.List)
	protected.Get("/withdrawals", withdrawalHandler.List)
	protected.Put("/withdrawals/:id/status", withdrawalHandler.UpdateStatus)
	protected.Get("/wishlist", wishlistHandler.List)
	protected.Get("/dashboard/stats", dashboardHandler.Stats)
}
