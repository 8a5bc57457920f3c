package dashboard

import (
	"nexzen-fees/app/config"
	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupDashboardRoutes sets up the fee dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	api := app.Group("/api/dashboard")
	api.Use(auth.AuthMiddleware)

	api.Get("/fees", GetFeeDashboardStatsAPI)
}

// GetFeeDashboardStatsAPI returns fee collection statistics as JSON. An
// empty scope is fine: all-zero stats, never an error.
func GetFeeDashboardStatsAPI(c *fiber.Ctx) error {
	scope := models.BalanceScope{
		BranchID: auth.BranchID(c),
		ClassID:  c.Query("class_id"),
		PeriodID: c.Query("period_id"),
	}

	stats, err := database.NewStore(config.GetDB()).GetFeeDashboardStats(scope)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    stats,
	})
}
