package fees

import (
	"nexzen-fees/app/config"
	"nexzen-fees/app/routes/auth"

	"github.com/gofiber/fiber/v2"
)

// SetupFeesRoutes sets up the balance and fee structure routes
func SetupFeesRoutes(app *fiber.App) {
	feesAPI := app.Group("/api/fees")
	feesAPI.Use(auth.AuthMiddleware)

	// Balance records
	feesAPI.Post("/balances/initialize", func(c *fiber.Ctx) error {
		return InitializeBalancesAPI(c, config.GetDB())
	})

	feesAPI.Get("/balances", func(c *fiber.Ctx) error {
		return ListBalancesAPI(c, config.GetDB())
	})

	feesAPI.Get("/balances/enrollment/:enrollment_id", func(c *fiber.Ctx) error {
		return GetBalanceAPI(c, config.GetDB())
	})

	feesAPI.Post("/balances/:id/payments", func(c *fiber.Ctx) error {
		return PostPaymentAPI(c, config.GetDB())
	})

	feesAPI.Post("/balances/:id/concession", func(c *fiber.Ctx) error {
		return AdjustConcessionAPI(c, config.GetDB())
	})

	// Fee structure registry
	feesAPI.Put("/structures", func(c *fiber.Ctx) error {
		return UpsertFeeStructureAPI(c, config.GetDB())
	})

	feesAPI.Get("/structures/:class_id", func(c *fiber.Ctx) error {
		return GetFeeStructureAPI(c, config.GetDB())
	})

	// Transport route/slab registry
	feesAPI.Put("/transport-slabs", func(c *fiber.Ctx) error {
		return UpsertTransportSlabAPI(c, config.GetDB())
	})

	feesAPI.Get("/transport-slabs/:route_id/:slab_id", func(c *fiber.Ctx) error {
		return GetTransportFeeAPI(c, config.GetDB())
	})
}
