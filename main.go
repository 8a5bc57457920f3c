package main

import (
	"log"

	"nexzen-fees/app/config"
	"nexzen-fees/app/database"
	"nexzen-fees/app/routes"
	"nexzen-fees/app/routes/dashboard"
	"nexzen-fees/app/routes/fees"
	"nexzen-fees/app/routes/promotion"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: routes.ErrorHandler,
	})

	// Middleware
	app.Use(logger.New())
	app.Use(cors.New())

	// Health check
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})

	// Routes
	fees.SetupFeesRoutes(app)
	dashboard.SetupDashboardRoutes(app)
	promotion.SetupPromotionRoutes(app)

	log.Printf("Starting fee ledger service on %s", config.AppConfig.ListenAddr)
	log.Fatal(app.Listen(config.AppConfig.ListenAddr))
}
