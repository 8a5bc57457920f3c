package database

import (
	"fmt"

	"github.com/pkg/errors"

	"nexzen-fees/app/models"
)

// GetFeeDashboardStats folds the balance records in scope into summary
// statistics. A scope with no records yields all-zero stats.
func (s *Store) GetFeeDashboardStats(scope models.BalanceScope) (*models.FeeDashboardStats, error) {
	stats := &models.FeeDashboardStats{}

	where := `FROM tuition_balances b
	          JOIN enrollments e ON e.id = b.enrollment_id
	          WHERE b.branch_id = $1`
	args := []interface{}{scope.BranchID}
	if scope.ClassID != "" {
		where += fmt.Sprintf(" AND e.class_id = $%d", len(args)+1)
		args = append(args, scope.ClassID)
	}
	if scope.PeriodID != "" {
		where += fmt.Sprintf(" AND b.period_id = $%d", len(args)+1)
		args = append(args, scope.PeriodID)
	}

	query := `SELECT
			COUNT(*),
			COALESCE(SUM(b.actual_fee), 0),
			COALESCE(SUM(b.concession_amount), 0),
			COALESCE(SUM(b.total_fee), 0),
			COALESCE(SUM(b.book_paid + b.term1_paid + b.term2_paid + b.term3_paid), 0),
			COALESCE(SUM(b.overall_balance_fee), 0),
			COUNT(*) FILTER (WHERE b.book_status = 'pending'),
			COUNT(*) FILTER (WHERE b.book_status = 'partial'),
			COUNT(*) FILTER (WHERE b.book_status = 'paid'),
			COUNT(*) FILTER (WHERE b.term1_status = 'pending'),
			COUNT(*) FILTER (WHERE b.term1_status = 'partial'),
			COUNT(*) FILTER (WHERE b.term1_status = 'paid'),
			COUNT(*) FILTER (WHERE b.term2_status = 'pending'),
			COUNT(*) FILTER (WHERE b.term2_status = 'partial'),
			COUNT(*) FILTER (WHERE b.term2_status = 'paid'),
			COUNT(*) FILTER (WHERE b.term3_status = 'pending'),
			COUNT(*) FILTER (WHERE b.term3_status = 'partial'),
			COUNT(*) FILTER (WHERE b.term3_status = 'paid')
		` + where

	err := s.db.QueryRow(query, args...).Scan(
		&stats.TotalBalances,
		&stats.TotalActualFee,
		&stats.TotalConcession,
		&stats.TotalNetFee,
		&stats.TotalPaid,
		&stats.TotalOutstanding,
		&stats.Book.Pending, &stats.Book.Partial, &stats.Book.Paid,
		&stats.Term1.Pending, &stats.Term1.Partial, &stats.Term1.Paid,
		&stats.Term2.Pending, &stats.Term2.Partial, &stats.Term2.Paid,
		&stats.Term3.Pending, &stats.Term3.Partial, &stats.Term3.Paid,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate tuition balances")
	}

	trWhere := `FROM transport_balances b
	            JOIN enrollments e ON e.id = b.enrollment_id
	            WHERE b.branch_id = $1`
	trArgs := []interface{}{scope.BranchID}
	if scope.ClassID != "" {
		trWhere += fmt.Sprintf(" AND e.class_id = $%d", len(trArgs)+1)
		trArgs = append(trArgs, scope.ClassID)
	}
	if scope.PeriodID != "" {
		trWhere += fmt.Sprintf(" AND b.period_id = $%d", len(trArgs)+1)
		trArgs = append(trArgs, scope.PeriodID)
	}

	trQuery := `SELECT
			COUNT(*),
			COALESCE(SUM(b.term1_paid + b.term2_paid), 0),
			COALESCE(SUM(b.overall_balance_fee), 0),
			COUNT(*) FILTER (WHERE b.term1_status = 'pending'),
			COUNT(*) FILTER (WHERE b.term1_status = 'partial'),
			COUNT(*) FILTER (WHERE b.term1_status = 'paid'),
			COUNT(*) FILTER (WHERE b.term2_status = 'pending'),
			COUNT(*) FILTER (WHERE b.term2_status = 'partial'),
			COUNT(*) FILTER (WHERE b.term2_status = 'paid')
		` + trWhere

	err = s.db.QueryRow(trQuery, trArgs...).Scan(
		&stats.TransportBalances,
		&stats.TransportPaid,
		&stats.TransportOutstanding,
		&stats.TransportTerm1.Pending, &stats.TransportTerm1.Partial, &stats.TransportTerm1.Paid,
		&stats.TransportTerm2.Pending, &stats.TransportTerm2.Partial, &stats.TransportTerm2.Paid,
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate transport balances")
	}

	return stats, nil
}
