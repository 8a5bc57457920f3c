package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
	"nexzen-fees/app/services"
)

type AdjustConcessionRequest struct {
	ConcessionAmount float64 `json:"concession_amount" validate:"gte=0"`
}

// AdjustConcessionAPI replaces the concession on a tuition record. Rejected
// once any installment payment has been posted.
func AdjustConcessionAPI(c *fiber.Ctx, db *sql.DB) error {
	recordID := c.Params("id")

	var req AdjustConcessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError("body", err.Error())
	}

	concessions := services.NewConcessionService(database.NewStore(db))
	updated, err := concessions.AdjustConcession(auth.BranchID(c), recordID, req.ConcessionAmount)
	if err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "balance": updated})
}
