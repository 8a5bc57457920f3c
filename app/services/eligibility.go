package services

import (
	"log"
	"strings"

	"nexzen-fees/app/ledger"
	"nexzen-fees/app/models"
)

// EligibilityChecker joins enrollments with their balance records to decide
// whether outstanding dues block promotion. It performs no writes; the
// promotion action itself belongs to the enrollment side.
type EligibilityChecker struct {
	enrollments EnrollmentDirectory
	balances    BalanceStore
}

func NewEligibilityChecker(enrollments EnrollmentDirectory, balances BalanceStore) *EligibilityChecker {
	return &EligibilityChecker{enrollments: enrollments, balances: balances}
}

func buildResult(enrollment *models.Enrollment, tuition *models.TuitionBalance, transport *models.TransportBalance, requireFeesPaid bool) *models.EligibilityResult {
	r := &models.EligibilityResult{
		EnrollmentID: enrollment.ID,
		StudentName:  enrollment.StudentName,
	}

	r.TuitionPending = tuition.OverallBalance
	r.BookPending = tuition.BookRemaining()
	if transport != nil {
		r.TransportPending = transport.OverallBalance
	}
	r.TotalPendingAmount = ledger.Round2(r.TuitionPending + r.BookPending + r.TransportPending)

	var pending []string
	if r.TuitionPending > 0 {
		pending = append(pending, string(models.FeeTuition))
	}
	if r.BookPending > 0 {
		pending = append(pending, string(models.FeeBook))
	}
	if r.TransportPending > 0 {
		pending = append(pending, string(models.FeeTransport))
	}
	r.PendingFeeTypes = strings.Join(pending, ",")

	// A caller may explicitly waive the fee gate; the pending amount is
	// still reported.
	r.IsPromotable = r.TotalPendingAmount == 0 || !requireFeesPaid
	return r
}

// CheckEnrollment gates one enrollment. A missing tuition record means fees
// were never assessed for the period and surfaces as NotFoundError.
func (c *EligibilityChecker) CheckEnrollment(branchID, enrollmentID, periodID string, requireFeesPaid bool) (*models.EligibilityResult, error) {
	if periodID == "" {
		return nil, models.NewValidationError("period_id", "is required")
	}
	enrollment, err := c.enrollments.GetEnrollment(branchID, enrollmentID)
	if err != nil {
		return nil, err
	}
	tuition, transport, err := c.balances.GetBalancesForEnrollment(branchID, enrollmentID, periodID)
	if err != nil {
		return nil, err
	}
	if tuition == nil {
		return nil, &models.NotFoundError{Resource: "tuition balance", ID: enrollmentID}
	}
	return buildResult(enrollment, tuition, transport, requireFeesPaid), nil
}

// CheckClass gates every active enrollment of a class. Enrollments without a
// balance record for the period are left out of the result, matching the
// enrollment-to-balance join.
func (c *EligibilityChecker) CheckClass(branchID, classID, sectionID, periodID string, requireFeesPaid bool) ([]*models.EligibilityResult, error) {
	if periodID == "" {
		return nil, models.NewValidationError("period_id", "is required")
	}
	enrollments, err := c.enrollments.ListActiveEnrollments(branchID, classID, sectionID)
	if err != nil {
		return nil, err
	}

	results := []*models.EligibilityResult{}
	for _, enrollment := range enrollments {
		tuition, transport, err := c.balances.GetBalancesForEnrollment(branchID, enrollment.ID, periodID)
		if err != nil {
			return nil, err
		}
		if tuition == nil {
			log.Printf("Enrollment %s has no balance record for period %s, excluded from eligibility", enrollment.ID, periodID)
			continue
		}
		results = append(results, buildResult(enrollment, tuition, transport, requireFeesPaid))
	}
	return results, nil
}
