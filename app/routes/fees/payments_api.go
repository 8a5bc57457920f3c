package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
	"nexzen-fees/app/services"
)

type PostPaymentRequest struct {
	Kind   models.BalanceKind   `json:"kind" validate:"omitempty,oneof=tuition transport"`
	Target models.PaymentTarget `json:"target" validate:"required,oneof=book term_1 term_2 term_3"`
	Amount float64              `json:"amount" validate:"required,gt=0"`
}

// PostPaymentAPI applies a payment amount against one slot of a balance
// record and returns the updated record. Receipt issuance is the caller's
// concern, built from the returned record.
func PostPaymentAPI(c *fiber.Ctx, db *sql.DB) error {
	recordID := c.Params("id")

	var req PostPaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError("body", err.Error())
	}
	if req.Kind == "" {
		req.Kind = models.KindTuition
	}

	poster := services.NewPaymentPoster(database.NewStore(db))

	switch req.Kind {
	case models.KindTransport:
		updated, err := poster.PostTransportPayment(auth.BranchID(c), recordID, req.Target, req.Amount)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "balance": updated})
	default:
		updated, err := poster.PostTuitionPayment(auth.BranchID(c), recordID, req.Target, req.Amount)
		if err != nil {
			return err
		}
		return c.JSON(fiber.Map{"success": true, "balance": updated})
	}
}
