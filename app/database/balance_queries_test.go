package database

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexzen-fees/app/models"
)

// Out-of-range paging from a caller must never reach the database as a
// negative OFFSET.
func TestListTuitionBalancesClampsPaging(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("SELECT COUNT").
		WithArgs(testBranch).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("ORDER BY e.student_name").
		WithArgs(testBranch, 25, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	balances, total, err := NewStore(db).
		ListTuitionBalances(models.BalanceScope{BranchID: testBranch}, 0, 0)
	require.NoError(t, err)
	assert.Zero(t, total)
	assert.Empty(t, balances)
	require.NoError(t, mock.ExpectationsWereMet())
}
