// Package main is the entry point for the Nisapoti admin API. It loads
// configuration, opens the pooled MySQL connection and starts the HTTP
// server.
package main

import (
	"log"
	"time"

	"nisapoti-admin/internal/config"
	"nisapoti-admin/internal/repositories"
	"nisapoti-admin/internal/routes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/storage/redis"
)

func main() {
	config.LoadEnv()

	repositories.InitDB()

	defer func() {
		if repositories.DB != nil {
			sqlDB, err := repositories.DB.DB()
			if err != nil {
				log.Printf("Failed to get database instance: %v", err)
				return
			}
			if err := sqlDB.Close(); err != nil {
				log.Printf("Failed to close database connection: %v", err)
			}
		}
	}()

	app := fiber.New()

	allowOrigins := "http://localhost:5173"
	if config.IsProduction() {
		allowOrigins = config.GetEnv("CORS_ORIGIN", "https://nisapoti.co.tz")
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET,POST,HEAD,PUT,DELETE",
		AllowCredentials: true,
	}))

	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${latency} ${method} ${path}\n",
	}))

	// Brute-force protection on login. Counters live in Redis when
	// configured so limits survive restarts and span replicas.
	var store fiber.Storage
	if host := config.GetEnv("REDIS_HOST", ""); host != "" {
		store = redis.New(redis.Config{
			Host:     host,
			Port:     config.GetIntEnv("REDIS_PORT", 6379),
			Password: config.GetEnv("REDIS_PASSWORD", ""),
			Database: config.GetIntEnv("REDIS_DB", 0),
		})
	}
	app.Use("/api/admin/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 1 * time.Minute,
		Storage:    store,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		LimitReached: func(c *fiber.Ctx) error {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests. Please try again later.",
			})
		},
	}))

	routes.SetupRoutes(app, repositories.DB)

	log.Fatal(app.Listen(":" + config.GetEnv("PORT", "3000")))
}
