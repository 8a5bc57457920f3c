package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexzen-fees/app/ledger"
	"nexzen-fees/app/models"
)

const (
	testBranch = "7f0b2c4d-58a1-4e9b-9c3d-6a5f8e7d9b10"
	testClass  = "3e9a1b2c-7d64-4f58-a0b1-c2d3e4f5a6b7"
	testPeriod = "912f3a4b-5c6d-4e7f-8091-a2b3c4d5e6f7"
)

var tuitionStatCols = []string{
	"count", "actual_fee", "concession", "net_fee", "paid", "outstanding",
	"book_pending", "book_partial", "book_paid",
	"t1_pending", "t1_partial", "t1_paid",
	"t2_pending", "t2_partial", "t2_paid",
	"t3_pending", "t3_partial", "t3_paid",
}

var transportStatCols = []string{
	"count", "paid", "outstanding",
	"t1_pending", "t1_partial", "t1_paid",
	"t2_pending", "t2_partial", "t2_paid",
}

func tally(counts *models.StatusCounts, status models.InstallmentStatus) {
	switch status {
	case models.StatusPending:
		counts.Pending++
	case models.StatusPartial:
		counts.Partial++
	case models.StatusPaid:
		counts.Paid++
	}
}

// The dashboard stats must equal the per-record sums: total_paid is the sum
// of every paid slot and total_outstanding the sum of overall balances.
func TestGetFeeDashboardStatsFoldsBalances(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	a, err := ledger.NewTuitionBalance(9000, 0, 500)
	require.NoError(t, err)
	require.NoError(t, ledger.ApplyTuitionPayment(&a, models.TargetTerm1, 1000))
	b, err := ledger.NewTuitionBalance(10000, 1000, 0)
	require.NoError(t, err)

	expected := &models.FeeDashboardStats{}
	for _, r := range []*models.TuitionBalance{&a, &b} {
		expected.TotalBalances++
		expected.TotalActualFee += r.ActualFee
		expected.TotalConcession += r.ConcessionAmount
		expected.TotalNetFee += r.TotalFee
		expected.TotalPaid += r.BookPaid + r.Term1.Paid + r.Term2.Paid + r.Term3.Paid
		expected.TotalOutstanding += r.OverallBalance
		tally(&expected.Book, r.BookStatus)
		tally(&expected.Term1, r.Term1.Status)
		tally(&expected.Term2, r.Term2.Status)
		tally(&expected.Term3, r.Term3.Status)
	}

	tr, err := ledger.NewTransportBalance(1500, 0)
	require.NoError(t, err)
	require.NoError(t, ledger.ApplyTransportPayment(&tr, models.TargetTerm1, 750))
	expected.TransportBalances = 1
	expected.TransportPaid = tr.Term1.Paid + tr.Term2.Paid
	expected.TransportOutstanding = tr.OverallBalance
	tally(&expected.TransportTerm1, tr.Term1.Status)
	tally(&expected.TransportTerm2, tr.Term2.Status)

	mock.ExpectQuery("FROM tuition_balances").
		WithArgs(testBranch, testClass, testPeriod).
		WillReturnRows(sqlmock.NewRows(tuitionStatCols).AddRow(
			expected.TotalBalances, expected.TotalActualFee, expected.TotalConcession,
			expected.TotalNetFee, expected.TotalPaid, expected.TotalOutstanding,
			expected.Book.Pending, expected.Book.Partial, expected.Book.Paid,
			expected.Term1.Pending, expected.Term1.Partial, expected.Term1.Paid,
			expected.Term2.Pending, expected.Term2.Partial, expected.Term2.Paid,
			expected.Term3.Pending, expected.Term3.Partial, expected.Term3.Paid,
		))
	mock.ExpectQuery("FROM transport_balances").
		WithArgs(testBranch, testClass, testPeriod).
		WillReturnRows(sqlmock.NewRows(transportStatCols).AddRow(
			expected.TransportBalances, expected.TransportPaid, expected.TransportOutstanding,
			expected.TransportTerm1.Pending, expected.TransportTerm1.Partial, expected.TransportTerm1.Paid,
			expected.TransportTerm2.Pending, expected.TransportTerm2.Partial, expected.TransportTerm2.Paid,
		))

	stats, err := NewStore(db).GetFeeDashboardStats(models.BalanceScope{
		BranchID: testBranch,
		ClassID:  testClass,
		PeriodID: testPeriod,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}

// A scope matching no records must yield all-zero stats, never an error.
func TestGetFeeDashboardStatsEmptyScope(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM tuition_balances").
		WithArgs(testBranch).
		WillReturnRows(sqlmock.NewRows(tuitionStatCols).AddRow(
			0, 0.0, 0.0, 0.0, 0.0, 0.0,
			0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
		))
	mock.ExpectQuery("FROM transport_balances").
		WithArgs(testBranch).
		WillReturnRows(sqlmock.NewRows(transportStatCols).AddRow(
			0, 0.0, 0.0, 0, 0, 0, 0, 0, 0,
		))

	stats, err := NewStore(db).GetFeeDashboardStats(models.BalanceScope{BranchID: testBranch})
	require.NoError(t, err)
	assert.Equal(t, &models.FeeDashboardStats{}, stats)
	require.NoError(t, mock.ExpectationsWereMet())
}
