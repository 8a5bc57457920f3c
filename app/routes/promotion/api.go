package promotion

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
	"nexzen-fees/app/services"
)

// CheckEligibilityAPI reports whether outstanding dues block promotion, for
// one enrollment or a whole class. The promotion action itself lives with
// the enrollment service and is gated on this output.
func CheckEligibilityAPI(c *fiber.Ctx, db *sql.DB) error {
	enrollmentID := c.Query("enrollment_id")
	classID := c.Query("class_id")
	periodID := c.Query("period_id")
	requireFeesPaid := c.QueryBool("require_fees_paid", true)

	if enrollmentID == "" && classID == "" {
		return models.NewValidationError("enrollment_id", "either enrollment_id or class_id is required")
	}

	store := database.NewStore(db)
	checker := services.NewEligibilityChecker(store, store)
	branchID := auth.BranchID(c)

	if enrollmentID != "" {
		result, err := checker.CheckEnrollment(branchID, enrollmentID, periodID, requireFeesPaid)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{
			"success": true,
			"results": []*models.EligibilityResult{result},
		})
	}

	results, err := checker.CheckClass(branchID, classID, c.Query("section_id"), periodID, requireFeesPaid)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"success": true,
		"results": results,
	})
}
