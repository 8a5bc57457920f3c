package promotion

import (
	"nexzen-fees/app/config"
	"nexzen-fees/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupPromotionRoutes sets up the promotion eligibility routes
func SetupPromotionRoutes(app *fiber.App) {
	api := app.Group("/api/promotion")
	api.Use(auth.AuthMiddleware)

	api.Get("/eligibility", func(c *fiber.Ctx) error {
		return CheckEligibilityAPI(c, config.GetDB())
	})
}
