package database

import (
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/pkg/errors"

	"nexzen-fees/app/models"
)

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	return false
}

const tuitionColumns = `id, branch_id, enrollment_id, period_id,
	book_fee, book_paid, book_status,
	actual_fee, concession_amount, total_fee,
	term1_amount, term1_paid, term1_balance, term1_status,
	term2_amount, term2_paid, term2_balance, term2_status,
	term3_amount, term3_paid, term3_balance, term3_status,
	overall_balance_fee, version, created_at, updated_at`

const transportColumns = `id, branch_id, enrollment_id, period_id,
	actual_fee, concession_amount, total_fee,
	term1_amount, term1_paid, term1_balance, term1_status,
	term2_amount, term2_paid, term2_balance, term2_status,
	overall_balance_fee, version, created_at, updated_at`

func scanTuitionBalance(row interface{ Scan(...interface{}) error }) (*models.TuitionBalance, error) {
	b := &models.TuitionBalance{}
	err := row.Scan(
		&b.ID, &b.BranchID, &b.EnrollmentID, &b.PeriodID,
		&b.BookFee, &b.BookPaid, &b.BookStatus,
		&b.ActualFee, &b.ConcessionAmount, &b.TotalFee,
		&b.Term1.Amount, &b.Term1.Paid, &b.Term1.Balance, &b.Term1.Status,
		&b.Term2.Amount, &b.Term2.Paid, &b.Term2.Balance, &b.Term2.Status,
		&b.Term3.Amount, &b.Term3.Paid, &b.Term3.Balance, &b.Term3.Status,
		&b.OverallBalance, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func scanTransportBalance(row interface{ Scan(...interface{}) error }) (*models.TransportBalance, error) {
	b := &models.TransportBalance{}
	err := row.Scan(
		&b.ID, &b.BranchID, &b.EnrollmentID, &b.PeriodID,
		&b.ActualFee, &b.ConcessionAmount, &b.TotalFee,
		&b.Term1.Amount, &b.Term1.Paid, &b.Term1.Balance, &b.Term1.Status,
		&b.Term2.Amount, &b.Term2.Paid, &b.Term2.Balance, &b.Term2.Status,
		&b.OverallBalance, &b.Version, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func insertTuitionBalance(tx *sql.Tx, b *models.TuitionBalance) error {
	query := `INSERT INTO tuition_balances (
			branch_id, enrollment_id, period_id,
			book_fee, book_paid, book_status,
			actual_fee, concession_amount, total_fee,
			term1_amount, term1_paid, term1_balance, term1_status,
			term2_amount, term2_paid, term2_balance, term2_status,
			term3_amount, term3_paid, term3_balance, term3_status,
			overall_balance_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13,
		        $14, $15, $16, $17, $18, $19, $20, $21, $22)
		RETURNING id, version, created_at, updated_at`

	return tx.QueryRow(query,
		b.BranchID, b.EnrollmentID, b.PeriodID,
		b.BookFee, b.BookPaid, b.BookStatus,
		b.ActualFee, b.ConcessionAmount, b.TotalFee,
		b.Term1.Amount, b.Term1.Paid, b.Term1.Balance, b.Term1.Status,
		b.Term2.Amount, b.Term2.Paid, b.Term2.Balance, b.Term2.Status,
		b.Term3.Amount, b.Term3.Paid, b.Term3.Balance, b.Term3.Status,
		b.OverallBalance,
	).Scan(&b.ID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
}

func insertTransportBalance(tx *sql.Tx, b *models.TransportBalance) error {
	query := `INSERT INTO transport_balances (
			branch_id, enrollment_id, period_id,
			actual_fee, concession_amount, total_fee,
			term1_amount, term1_paid, term1_balance, term1_status,
			term2_amount, term2_paid, term2_balance, term2_status,
			overall_balance_fee)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING id, version, created_at, updated_at`

	return tx.QueryRow(query,
		b.BranchID, b.EnrollmentID, b.PeriodID,
		b.ActualFee, b.ConcessionAmount, b.TotalFee,
		b.Term1.Amount, b.Term1.Paid, b.Term1.Balance, b.Term1.Status,
		b.Term2.Amount, b.Term2.Paid, b.Term2.Balance, b.Term2.Status,
		b.OverallBalance,
	).Scan(&b.ID, &b.Version, &b.CreatedAt, &b.UpdatedAt)
}

// InsertEnrollmentBalances creates the tuition record, and the transport
// record when present, for one enrollment in a single transaction. A unique
// violation on either table rolls the whole transaction back and reports
// ErrDuplicateRecord so the initializer can skip the enrollment.
func (s *Store) InsertEnrollmentBalances(tuition *models.TuitionBalance, transport *models.TransportBalance) error {
	tx, err := s.db.Begin()
	if err != nil {
		return errors.Wrap(err, "failed to begin transaction")
	}
	defer tx.Rollback()

	if err := insertTuitionBalance(tx, tuition); err != nil {
		if isUniqueViolation(err) {
			return models.ErrDuplicateRecord
		}
		return errors.Wrap(err, "failed to insert tuition balance")
	}
	if transport != nil {
		if err := insertTransportBalance(tx, transport); err != nil {
			if isUniqueViolation(err) {
				return models.ErrDuplicateRecord
			}
			return errors.Wrap(err, "failed to insert transport balance")
		}
	}
	return tx.Commit()
}

// GetTuitionBalanceByID loads one tuition record within the branch scope.
func (s *Store) GetTuitionBalanceByID(branchID, id string) (*models.TuitionBalance, error) {
	query := fmt.Sprintf(`SELECT %s FROM tuition_balances WHERE branch_id = $1 AND id = $2`, tuitionColumns)
	b, err := scanTuitionBalance(s.db.QueryRow(query, branchID, id))
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "tuition balance", ID: id}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch tuition balance")
	}
	return b, nil
}

// GetTransportBalanceByID loads one transport record within the branch scope.
func (s *Store) GetTransportBalanceByID(branchID, id string) (*models.TransportBalance, error) {
	query := fmt.Sprintf(`SELECT %s FROM transport_balances WHERE branch_id = $1 AND id = $2`, transportColumns)
	b, err := scanTransportBalance(s.db.QueryRow(query, branchID, id))
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "transport balance", ID: id}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch transport balance")
	}
	return b, nil
}

// GetBalancesForEnrollment returns both balance records for an enrollment and
// period. Either may be nil when it was never initialized.
func (s *Store) GetBalancesForEnrollment(branchID, enrollmentID, periodID string) (*models.TuitionBalance, *models.TransportBalance, error) {
	tQuery := fmt.Sprintf(`SELECT %s FROM tuition_balances
		WHERE branch_id = $1 AND enrollment_id = $2 AND period_id = $3`, tuitionColumns)
	tuition, err := scanTuitionBalance(s.db.QueryRow(tQuery, branchID, enrollmentID, periodID))
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, errors.Wrap(err, "failed to fetch tuition balance")
	}
	if err == sql.ErrNoRows {
		tuition = nil
	}

	trQuery := fmt.Sprintf(`SELECT %s FROM transport_balances
		WHERE branch_id = $1 AND enrollment_id = $2 AND period_id = $3`, transportColumns)
	transport, err := scanTransportBalance(s.db.QueryRow(trQuery, branchID, enrollmentID, periodID))
	if err != nil && err != sql.ErrNoRows {
		return nil, nil, errors.Wrap(err, "failed to fetch transport balance")
	}
	if err == sql.ErrNoRows {
		transport = nil
	}

	return tuition, transport, nil
}

// UpdateTuitionBalance persists a recomputed record guarded by its version.
// Zero rows updated means another writer got there first.
func (s *Store) UpdateTuitionBalance(b *models.TuitionBalance) error {
	query := `UPDATE tuition_balances SET
			book_paid = $3, book_status = $4,
			concession_amount = $5, total_fee = $6,
			term1_amount = $7, term1_paid = $8, term1_balance = $9, term1_status = $10,
			term2_amount = $11, term2_paid = $12, term2_balance = $13, term2_status = $14,
			term3_amount = $15, term3_paid = $16, term3_balance = $17, term3_status = $18,
			overall_balance_fee = $19,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`

	err := s.db.QueryRow(query,
		b.ID, b.Version,
		b.BookPaid, b.BookStatus,
		b.ConcessionAmount, b.TotalFee,
		b.Term1.Amount, b.Term1.Paid, b.Term1.Balance, b.Term1.Status,
		b.Term2.Amount, b.Term2.Paid, b.Term2.Balance, b.Term2.Status,
		b.Term3.Amount, b.Term3.Paid, b.Term3.Balance, b.Term3.Status,
		b.OverallBalance,
	).Scan(&b.Version, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.ConflictError{RecordID: b.ID}
	}
	if err != nil {
		return errors.Wrap(err, "failed to update tuition balance")
	}
	return nil
}

// UpdateTransportBalance persists a recomputed transport record guarded by
// its version.
func (s *Store) UpdateTransportBalance(b *models.TransportBalance) error {
	query := `UPDATE transport_balances SET
			concession_amount = $3, total_fee = $4,
			term1_amount = $5, term1_paid = $6, term1_balance = $7, term1_status = $8,
			term2_amount = $9, term2_paid = $10, term2_balance = $11, term2_status = $12,
			overall_balance_fee = $13,
			version = version + 1, updated_at = NOW()
		WHERE id = $1 AND version = $2
		RETURNING version, updated_at`

	err := s.db.QueryRow(query,
		b.ID, b.Version,
		b.ConcessionAmount, b.TotalFee,
		b.Term1.Amount, b.Term1.Paid, b.Term1.Balance, b.Term1.Status,
		b.Term2.Amount, b.Term2.Paid, b.Term2.Balance, b.Term2.Status,
		b.OverallBalance,
	).Scan(&b.Version, &b.UpdatedAt)
	if err == sql.ErrNoRows {
		return &models.ConflictError{RecordID: b.ID}
	}
	if err != nil {
		return errors.Wrap(err, "failed to update transport balance")
	}
	return nil
}

// ListTuitionBalances returns one page of tuition records for a scope plus
// the total matching count.
func (s *Store) ListTuitionBalances(scope models.BalanceScope, page, pageSize int) ([]*models.TuitionBalance, int, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 25
	}

	where := `FROM tuition_balances b
	          JOIN enrollments e ON e.id = b.enrollment_id
	          WHERE b.branch_id = $1`
	args := []interface{}{scope.BranchID}

	if scope.ClassID != "" {
		where += fmt.Sprintf(" AND e.class_id = $%d", len(args)+1)
		args = append(args, scope.ClassID)
	}
	if scope.SectionID != "" {
		where += fmt.Sprintf(" AND e.section_id = $%d", len(args)+1)
		args = append(args, scope.SectionID)
	}
	if scope.PeriodID != "" {
		where += fmt.Sprintf(" AND b.period_id = $%d", len(args)+1)
		args = append(args, scope.PeriodID)
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) "+where, args...).Scan(&total); err != nil {
		return nil, 0, errors.Wrap(err, "failed to count tuition balances")
	}

	cols := "b.id, b.branch_id, b.enrollment_id, b.period_id, " +
		"b.book_fee, b.book_paid, b.book_status, " +
		"b.actual_fee, b.concession_amount, b.total_fee, " +
		"b.term1_amount, b.term1_paid, b.term1_balance, b.term1_status, " +
		"b.term2_amount, b.term2_paid, b.term2_balance, b.term2_status, " +
		"b.term3_amount, b.term3_paid, b.term3_balance, b.term3_status, " +
		"b.overall_balance_fee, b.version, b.created_at, b.updated_at"

	query := fmt.Sprintf("SELECT %s %s ORDER BY e.student_name, b.created_at LIMIT $%d OFFSET $%d",
		cols, where, len(args)+1, len(args)+2)
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list tuition balances")
	}
	defer rows.Close()

	var balances []*models.TuitionBalance
	for rows.Next() {
		b, err := scanTuitionBalance(rows)
		if err != nil {
			return nil, 0, errors.Wrap(err, "failed to scan tuition balance")
		}
		balances = append(balances, b)
	}
	return balances, total, rows.Err()
}
