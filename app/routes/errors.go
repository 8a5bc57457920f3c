package routes

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/models"
)

// ErrorHandler maps domain errors onto HTTP status codes. The caller always
// gets the specific reason, never a generic failure.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var (
		fiberErr   *fiber.Error
		validation *models.ValidationError
		notFound   *models.NotFoundError
		overpay    *models.OverpaymentError
		conflict   *models.ConflictError
		invariant  *models.InvariantViolationError
	)
	switch {
	case errors.As(err, &fiberErr):
		code = fiberErr.Code
	case errors.As(err, &validation):
		code = fiber.StatusBadRequest
	case errors.As(err, &notFound):
		code = fiber.StatusNotFound
	case errors.As(err, &overpay):
		code = fiber.StatusUnprocessableEntity
	case errors.As(err, &conflict):
		code = fiber.StatusConflict
	case errors.As(err, &invariant):
		code = fiber.StatusInternalServerError
	}

	if code == fiber.StatusInternalServerError {
		log.Printf("Internal error on %s %s: %v", c.Method(), c.Path(), err)
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}
