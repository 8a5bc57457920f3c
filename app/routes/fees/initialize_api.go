package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
	"nexzen-fees/app/services"
)

type InitializeBalancesRequest struct {
	ClassID   string `json:"class_id" validate:"required,uuid"`
	PeriodID  string `json:"period_id" validate:"required,uuid"`
	SectionID string `json:"section_id" validate:"omitempty,uuid"`
}

// InitializeBalancesAPI creates balance records for every active enrollment
// of a class that does not have one yet. Re-running it is safe; a run that
// creates nothing is reported as a normal outcome.
func InitializeBalancesAPI(c *fiber.Ctx, db *sql.DB) error {
	var req InitializeBalancesRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError("body", err.Error())
	}

	store := database.NewStore(db)
	initializer := services.NewInitializer(store, store, store)

	result, err := initializer.InitializeBalances(auth.BranchID(c), req.ClassID, req.PeriodID, req.SectionID)
	if err != nil {
		return err
	}

	message := "Balance records created"
	if result.CreatedCount == 0 {
		message = "All requested enrollments already had balance records"
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": message,
		"result":  result,
	})
}
