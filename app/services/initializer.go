package services

import (
	"log"

	"github.com/pkg/errors"

	"nexzen-fees/app/ledger"
	"nexzen-fees/app/models"
)

// Initializer creates balance records for every active enrollment of a class
// that does not already have one for the period. Safe to re-run: existing
// records are skipped, never duplicated.
type Initializer struct {
	enrollments EnrollmentDirectory
	structures  StructureRegistry
	balances    BalanceStore
}

func NewInitializer(enrollments EnrollmentDirectory, structures StructureRegistry, balances BalanceStore) *Initializer {
	return &Initializer{enrollments: enrollments, structures: structures, balances: balances}
}

// InitializeBalances runs one bulk initialization for a class and period.
// sectionID is optional. CreatedCount == 0 means every requested enrollment
// already had a record, which is an informational outcome, not a failure.
func (in *Initializer) InitializeBalances(branchID, classID, periodID, sectionID string) (*models.InitializationResult, error) {
	if classID == "" {
		return nil, models.NewValidationError("class_id", "is required")
	}
	if periodID == "" {
		return nil, models.NewValidationError("period_id", "is required")
	}

	enrollments, err := in.enrollments.ListActiveEnrollments(branchID, classID, sectionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list enrollments")
	}

	result := &models.InitializationResult{
		SkippedEnrollmentIDs: []string{},
		TotalRequested:       len(enrollments),
	}
	if len(enrollments) == 0 {
		return result, nil
	}

	structure, err := in.structures.GetFeeStructure(branchID, classID, periodID)
	if err != nil {
		return nil, err
	}

	for _, enrollment := range enrollments {
		tuition, err := ledger.NewTuitionBalance(structure.TuitionFee, 0, structure.BookFee)
		if err != nil {
			// A bad split here means the fee structure is broken; no record
			// for this class can be built from it.
			return nil, err
		}
		tuition.BranchID = branchID
		tuition.EnrollmentID = enrollment.ID
		tuition.PeriodID = periodID

		var transport *models.TransportBalance
		if enrollment.HasTransport() {
			amount, err := in.structures.GetTransportFee(*enrollment.TransportRouteID, *enrollment.TransportSlabID)
			if err != nil {
				log.Printf("No transport fee for enrollment %s (route %s): %v, skipping transport record",
					enrollment.ID, *enrollment.TransportRouteID, err)
			} else {
				t, err := ledger.NewTransportBalance(amount, 0)
				if err != nil {
					return nil, err
				}
				t.BranchID = branchID
				t.EnrollmentID = enrollment.ID
				t.PeriodID = periodID
				transport = &t
			}
		}

		err = in.balances.InsertEnrollmentBalances(&tuition, transport)
		if errors.Is(err, models.ErrDuplicateRecord) {
			result.SkippedEnrollmentIDs = append(result.SkippedEnrollmentIDs, enrollment.ID)
			continue
		}
		if err != nil {
			return nil, errors.Wrapf(err, "failed to initialize balances for enrollment %s", enrollment.ID)
		}
		result.CreatedCount++
		if transport != nil {
			result.TransportCreatedCount++
		}
	}

	log.Printf("Initialized balances for class %s period %s: %d created, %d skipped of %d requested",
		classID, periodID, result.CreatedCount, len(result.SkippedEnrollmentIDs), result.TotalRequested)
	return result, nil
}
