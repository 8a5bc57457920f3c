package database

import (
	"database/sql"

	"github.com/pkg/errors"

	"nexzen-fees/app/models"
)

// GetFeeStructure returns the fee catalog row for a class and period.
func (s *Store) GetFeeStructure(branchID, classID, periodID string) (*models.FeeStructure, error) {
	query := `SELECT id, branch_id, class_id, period_id, book_fee, tuition_fee, created_at, updated_at
	          FROM fee_structures
	          WHERE branch_id = $1 AND class_id = $2 AND period_id = $3`

	fs := &models.FeeStructure{}
	err := s.db.QueryRow(query, branchID, classID, periodID).Scan(
		&fs.ID, &fs.BranchID, &fs.ClassID, &fs.PeriodID,
		&fs.BookFee, &fs.TuitionFee, &fs.CreatedAt, &fs.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "fee structure", ID: classID}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch fee structure")
	}
	return fs, nil
}

// UpsertFeeStructure creates or updates the catalog row for a branch, class
// and period. The conflict target includes branch_id so one branch can never
// overwrite another branch's row for the same class and period. Existing
// balance records built from the old amounts are not touched.
func (s *Store) UpsertFeeStructure(fs *models.FeeStructure) error {
	query := `INSERT INTO fee_structures (branch_id, class_id, period_id, book_fee, tuition_fee)
	          VALUES ($1, $2, $3, $4, $5)
	          ON CONFLICT (branch_id, class_id, period_id)
	          DO UPDATE SET book_fee = EXCLUDED.book_fee, tuition_fee = EXCLUDED.tuition_fee, updated_at = NOW()
	          RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(query, fs.BranchID, fs.ClassID, fs.PeriodID, fs.BookFee, fs.TuitionFee).
		Scan(&fs.ID, &fs.CreatedAt, &fs.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to upsert fee structure")
	}
	return nil
}

// GetTransportFee returns the catalog amount for a route and distance slab.
func (s *Store) GetTransportFee(routeID, slabID string) (float64, error) {
	var amount float64
	err := s.db.QueryRow(
		`SELECT amount FROM transport_fee_slabs WHERE route_id = $1 AND slab_id = $2`,
		routeID, slabID,
	).Scan(&amount)
	if err == sql.ErrNoRows {
		return 0, &models.NotFoundError{Resource: "transport fee slab", ID: routeID + "/" + slabID}
	}
	if err != nil {
		return 0, errors.Wrap(err, "failed to fetch transport fee")
	}
	return amount, nil
}

// UpsertTransportSlab creates or updates one route/slab catalog row.
func (s *Store) UpsertTransportSlab(slab *models.TransportFeeSlab) error {
	query := `INSERT INTO transport_fee_slabs (route_id, slab_id, amount)
	          VALUES ($1, $2, $3)
	          ON CONFLICT (route_id, slab_id)
	          DO UPDATE SET amount = EXCLUDED.amount, updated_at = NOW()
	          RETURNING id, created_at, updated_at`

	err := s.db.QueryRow(query, slab.RouteID, slab.SlabID, slab.Amount).
		Scan(&slab.ID, &slab.CreatedAt, &slab.UpdatedAt)
	if err != nil {
		return errors.Wrap(err, "failed to upsert transport slab")
	}
	return nil
}
