package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexzen-fees/app/models"
)

func initializedStore(t *testing.T, n int) (*memStore, []*models.Enrollment) {
	t.Helper()
	directory := &memDirectory{enrollments: makeEnrollments(testBranch, testClass, n)}
	store := newMemStore()
	_, err := NewInitializer(directory, testRegistry(), store).
		InitializeBalances(testBranch, testClass, testPeriod, "")
	require.NoError(t, err)
	return store, directory.enrollments
}

func tuitionRecordID(t *testing.T, store *memStore, enrollmentID string) string {
	t.Helper()
	tuition, _, err := store.GetBalancesForEnrollment(testBranch, enrollmentID, testPeriod)
	require.NoError(t, err)
	require.NotNil(t, tuition)
	return tuition.ID
}

func TestPostTuitionPayment(t *testing.T) {
	store, enrollments := initializedStore(t, 1)
	recordID := tuitionRecordID(t, store, enrollments[0].ID)
	poster := NewPaymentPoster(store)

	updated, err := poster.PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 1000)
	require.NoError(t, err)
	assert.Equal(t, 1970.0, updated.Term1.Balance)
	assert.Equal(t, models.StatusPartial, updated.Term1.Status)
	assert.Equal(t, 8000.0, updated.OverallBalance)
	assert.Equal(t, 2, updated.Version)

	// The persisted record matches what the poster returned.
	stored, err := store.GetTuitionBalanceByID(testBranch, recordID)
	require.NoError(t, err)
	assert.Equal(t, updated, stored)
}

func TestPostPaymentRejectsOverpayment(t *testing.T) {
	store, enrollments := initializedStore(t, 1)
	recordID := tuitionRecordID(t, store, enrollments[0].ID)
	poster := NewPaymentPoster(store)

	before, err := store.GetTuitionBalanceByID(testBranch, recordID)
	require.NoError(t, err)

	var over *models.OverpaymentError
	_, err = poster.PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 2970.01)
	require.ErrorAs(t, err, &over)
	assert.Equal(t, models.TargetTerm1, over.Target)
	assert.Equal(t, 2970.0, over.Remaining)

	// Record untouched, version included.
	after, err := store.GetTuitionBalanceByID(testBranch, recordID)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestPostPaymentUnknownRecord(t *testing.T) {
	store, _ := initializedStore(t, 1)
	poster := NewPaymentPoster(store)

	var nf *models.NotFoundError
	_, err := poster.PostTuitionPayment(testBranch, "44444444-4444-4444-4444-444444444444", models.TargetTerm1, 100)
	require.ErrorAs(t, err, &nf)
}

func TestPostPaymentConflictOnStaleRead(t *testing.T) {
	store, enrollments := initializedStore(t, 1)
	recordID := tuitionRecordID(t, store, enrollments[0].ID)

	// Second writer read the record before the first write landed; its
	// version check must fail rather than double-apply.
	stale := newStaleReadStore(store)

	// First writer posts normally.
	_, err := NewPaymentPoster(store).PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 1000)
	require.NoError(t, err)
	stalePoster := NewPaymentPoster(stale)

	var conflict *models.ConflictError
	_, err = stalePoster.PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 1970)
	require.ErrorAs(t, err, &conflict)

	// Retrying against fresh data succeeds.
	updated, err := NewPaymentPoster(store).PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 1970)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, updated.Term1.Status)
	assert.Equal(t, 6030.0, updated.OverallBalance)
}

func TestPostTransportPayment(t *testing.T) {
	routeID := "55555555-5555-5555-5555-555555555555"
	slabID := "66666666-6666-6666-6666-666666666666"

	enrollments := makeEnrollments(testBranch, testClass, 1)
	enrollments[0].TransportRouteID = strptr(routeID)
	enrollments[0].TransportSlabID = strptr(slabID)

	registry := testRegistry()
	registry.transportFees[routeID+"|"+slabID] = 2000

	store := newMemStore()
	_, err := NewInitializer(&memDirectory{enrollments: enrollments}, registry, store).
		InitializeBalances(testBranch, testClass, testPeriod, "")
	require.NoError(t, err)

	_, transport, err := store.GetBalancesForEnrollment(testBranch, enrollments[0].ID, testPeriod)
	require.NoError(t, err)
	require.NotNil(t, transport)

	poster := NewPaymentPoster(store)
	updated, err := poster.PostTransportPayment(testBranch, transport.ID, models.TargetTerm1, 1000)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPaid, updated.Term1.Status)
	assert.Equal(t, 1000.0, updated.OverallBalance)

	var verr *models.ValidationError
	_, err = poster.PostTransportPayment(testBranch, transport.ID, models.TargetTerm3, 10)
	require.ErrorAs(t, err, &verr)
}

func TestAdjustConcession(t *testing.T) {
	store, enrollments := initializedStore(t, 1)
	recordID := tuitionRecordID(t, store, enrollments[0].ID)
	concessions := NewConcessionService(store)

	updated, err := concessions.AdjustConcession(testBranch, recordID, 1000)
	require.NoError(t, err)
	assert.Equal(t, 8000.0, updated.TotalFee)
	assert.Equal(t, 8000.0, updated.OverallBalance)
	assert.InDelta(t, 8000.0, updated.Term1.Amount+updated.Term2.Amount+updated.Term3.Amount, 1e-9)

	// Locked once a term payment exists.
	_, err = NewPaymentPoster(store).PostTuitionPayment(testBranch, recordID, models.TargetTerm1, 50)
	require.NoError(t, err)

	var verr *models.ValidationError
	_, err = concessions.AdjustConcession(testBranch, recordID, 500)
	require.ErrorAs(t, err, &verr)
}
