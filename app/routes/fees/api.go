package fees

import (
	"database/sql"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nexzen-fees/app/database"
	"nexzen-fees/app/models"
	"nexzen-fees/app/routes/auth"
)

var validate = validator.New()

// ListBalancesResponse pairs one page of records with its paging fields.
type ListBalancesResponse struct {
	Balances   []*models.TuitionBalance `json:"balances"`
	Pagination models.Pagination        `json:"pagination"`
}

func pageParams(c *fiber.Ctx) (int, int) {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	pageSize := c.QueryInt("page_size", 25)
	if pageSize < 1 || pageSize > 200 {
		pageSize = 25
	}
	return page, pageSize
}

// ListBalancesAPI returns one page of tuition balance records for a scope
func ListBalancesAPI(c *fiber.Ctx, db *sql.DB) error {
	scope := models.BalanceScope{
		BranchID:  auth.BranchID(c),
		ClassID:   c.Query("class_id"),
		SectionID: c.Query("section_id"),
		PeriodID:  c.Query("period_id"),
	}
	page, pageSize := pageParams(c)

	balances, total, err := database.NewStore(db).ListTuitionBalances(scope, page, pageSize)
	if err != nil {
		return err
	}
	if balances == nil {
		balances = []*models.TuitionBalance{}
	}

	totalPages := 0
	if total > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(pageSize)))
	}

	return c.JSON(ListBalancesResponse{
		Balances: balances,
		Pagination: models.Pagination{
			TotalPages:  totalPages,
			CurrentPage: page,
			PageSize:    pageSize,
			TotalCount:  total,
		},
	})
}

// GetBalanceAPI returns the tuition and transport records of one enrollment
// for a period. Either record may be null when never initialized.
func GetBalanceAPI(c *fiber.Ctx, db *sql.DB) error {
	enrollmentID := c.Params("enrollment_id")
	periodID := c.Query("period_id")
	if periodID == "" {
		return models.NewValidationError("period_id", "is required")
	}

	tuition, transport, err := database.NewStore(db).
		GetBalancesForEnrollment(auth.BranchID(c), enrollmentID, periodID)
	if err != nil {
		return err
	}
	if tuition == nil && transport == nil {
		return &models.NotFoundError{Resource: "balance record", ID: enrollmentID}
	}

	return c.JSON(fiber.Map{
		"tuition":   tuition,
		"transport": transport,
	})
}
