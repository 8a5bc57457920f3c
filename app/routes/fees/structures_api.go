package fees

import (
	"database/sql"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
)

type UpsertFeeStructureRequest struct {
	ClassID    string  `json:"class_id" validate:"required,uuid"`
	PeriodID   string  `json:"period_id" validate:"required,uuid"`
	BookFee    float64 `json:"book_fee" validate:"gte=0"`
	TuitionFee float64 `json:"tuition_fee" validate:"gte=0"`
}

// UpsertFeeStructureAPI creates or updates the fee catalog row for a class
// and period. Balance records built from earlier amounts are not changed.
func UpsertFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpsertFeeStructureRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError("body", err.Error())
	}

	fs := &models.FeeStructure{
		BranchID:   auth.BranchID(c),
		ClassID:    req.ClassID,
		PeriodID:   req.PeriodID,
		BookFee:    req.BookFee,
		TuitionFee: req.TuitionFee,
	}
	if err := database.NewStore(db).UpsertFeeStructure(fs); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "structure": fs})
}

// GetFeeStructureAPI returns the fee catalog row for a class and period
func GetFeeStructureAPI(c *fiber.Ctx, db *sql.DB) error {
	periodID := c.Query("period_id")
	if periodID == "" {
		return models.NewValidationError("period_id", "is required")
	}

	fs, err := database.NewStore(db).GetFeeStructure(auth.BranchID(c), c.Params("class_id"), periodID)
	if err != nil {
		return err
	}
	return c.JSON(fs)
}

type UpsertTransportSlabRequest struct {
	RouteID string  `json:"route_id" validate:"required,uuid"`
	SlabID  string  `json:"slab_id" validate:"required,uuid"`
	Amount  float64 `json:"amount" validate:"gte=0"`
}

// UpsertTransportSlabAPI creates or updates one transport route/slab fee
func UpsertTransportSlabAPI(c *fiber.Ctx, db *sql.DB) error {
	var req UpsertTransportSlabRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validate.Struct(req); err != nil {
		return models.NewValidationError("body", err.Error())
	}

	slab := &models.TransportFeeSlab{
		RouteID: req.RouteID,
		SlabID:  req.SlabID,
		Amount:  req.Amount,
	}
	if err := database.NewStore(db).UpsertTransportSlab(slab); err != nil {
		return err
	}

	return c.JSON(fiber.Map{"success": true, "slab": slab})
}

// GetTransportFeeAPI returns the catalog amount for a route and slab
func GetTransportFeeAPI(c *fiber.Ctx, db *sql.DB) error {
	amount, err := database.NewStore(db).GetTransportFee(c.Params("route_id"), c.Params("slab_id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"route_id": c.Params("route_id"),
		"slab_id":  c.Params("slab_id"),
		"amount":   amount,
	})
}
