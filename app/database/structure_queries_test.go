package database

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexzen-fees/app/models"
)

// The upsert conflict target must be qualified by branch_id so a caller from
// one branch can never land on, and overwrite, another branch's row for the
// same class and period.
func TestUpsertFeeStructureConflictScopedToBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	const rowID = "5b8c1d2e-3f4a-4b5c-8d6e-7f8091a2b3c4"
	now := time.Now()

	mock.ExpectQuery(`ON CONFLICT \(branch_id, class_id, period_id\)`).
		WithArgs(testBranch, testClass, testPeriod, 500.0, 9000.0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(rowID, now, now))

	fs := &models.FeeStructure{
		BranchID:   testBranch,
		ClassID:    testClass,
		PeriodID:   testPeriod,
		BookFee:    500,
		TuitionFee: 9000,
	}
	require.NoError(t, NewStore(db).UpsertFeeStructure(fs))
	assert.Equal(t, rowID, fs.ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetFeeStructureScopedToBranch(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery("FROM fee_structures").
		WithArgs(testBranch, testClass, testPeriod).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err = NewStore(db).GetFeeStructure(testBranch, testClass, testPeriod)
	var notFound *models.NotFoundError
	require.ErrorAs(t, err, &notFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
