package services

import (
	"fmt"

	"github.com/google/uuid"

	"nexzen-fees/app/models"
)

// In-memory collaborators backing the service tests. The store enforces the
// same contracts as the SQL layer: unique (enrollment_id, period_id) and
// version-guarded updates.

type memDirectory struct {
	enrollments []*models.Enrollment
}

func (d *memDirectory) ListActiveEnrollments(branchID, classID, sectionID string) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for _, e := range d.enrollments {
		if e.BranchID != branchID || e.ClassID != classID || !e.IsActive {
			continue
		}
		if sectionID != "" && (e.SectionID == nil || *e.SectionID != sectionID) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (d *memDirectory) GetEnrollment(branchID, enrollmentID string) (*models.Enrollment, error) {
	for _, e := range d.enrollments {
		if e.BranchID == branchID && e.ID == enrollmentID {
			return e, nil
		}
	}
	return nil, &models.NotFoundError{Resource: "enrollment", ID: enrollmentID}
}

type memRegistry struct {
	structures    map[string]*models.FeeStructure // class|period
	transportFees map[string]float64              // route|slab
}

func (r *memRegistry) GetFeeStructure(branchID, classID, periodID string) (*models.FeeStructure, error) {
	if fs, ok := r.structures[classID+"|"+periodID]; ok {
		return fs, nil
	}
	return nil, &models.NotFoundError{Resource: "fee structure", ID: classID}
}

func (r *memRegistry) GetTransportFee(routeID, slabID string) (float64, error) {
	if amount, ok := r.transportFees[routeID+"|"+slabID]; ok {
		return amount, nil
	}
	return 0, &models.NotFoundError{Resource: "transport fee slab", ID: routeID + "/" + slabID}
}

type memStore struct {
	tuition     map[string]*models.TuitionBalance
	transport   map[string]*models.TransportBalance
	tuitionKeys map[string]string // enrollment|period -> record id
	transKeys   map[string]string
}

func newMemStore() *memStore {
	return &memStore{
		tuition:     map[string]*models.TuitionBalance{},
		transport:   map[string]*models.TransportBalance{},
		tuitionKeys: map[string]string{},
		transKeys:   map[string]string{},
	}
}

func key(enrollmentID, periodID string) string {
	return fmt.Sprintf("%s|%s", enrollmentID, periodID)
}

func (s *memStore) InsertEnrollmentBalances(tuition *models.TuitionBalance, transport *models.TransportBalance) error {
	k := key(tuition.EnrollmentID, tuition.PeriodID)
	if _, exists := s.tuitionKeys[k]; exists {
		return models.ErrDuplicateRecord
	}
	if transport != nil {
		if _, exists := s.transKeys[key(transport.EnrollmentID, transport.PeriodID)]; exists {
			return models.ErrDuplicateRecord
		}
	}

	tuition.ID = uuid.NewString()
	tuition.Version = 1
	stored := *tuition
	s.tuition[tuition.ID] = &stored
	s.tuitionKeys[k] = tuition.ID

	if transport != nil {
		transport.ID = uuid.NewString()
		transport.Version = 1
		storedTr := *transport
		s.transport[transport.ID] = &storedTr
		s.transKeys[key(transport.EnrollmentID, transport.PeriodID)] = transport.ID
	}
	return nil
}

func (s *memStore) GetTuitionBalanceByID(branchID, id string) (*models.TuitionBalance, error) {
	if b, ok := s.tuition[id]; ok && b.BranchID == branchID {
		cp := *b
		return &cp, nil
	}
	return nil, &models.NotFoundError{Resource: "tuition balance", ID: id}
}

func (s *memStore) GetTransportBalanceByID(branchID, id string) (*models.TransportBalance, error) {
	if b, ok := s.transport[id]; ok && b.BranchID == branchID {
		cp := *b
		return &cp, nil
	}
	return nil, &models.NotFoundError{Resource: "transport balance", ID: id}
}

func (s *memStore) GetBalancesForEnrollment(branchID, enrollmentID, periodID string) (*models.TuitionBalance, *models.TransportBalance, error) {
	var tuition *models.TuitionBalance
	var transport *models.TransportBalance
	if id, ok := s.tuitionKeys[key(enrollmentID, periodID)]; ok {
		cp := *s.tuition[id]
		tuition = &cp
	}
	if id, ok := s.transKeys[key(enrollmentID, periodID)]; ok {
		cp := *s.transport[id]
		transport = &cp
	}
	return tuition, transport, nil
}

func (s *memStore) UpdateTuitionBalance(b *models.TuitionBalance) error {
	stored, ok := s.tuition[b.ID]
	if !ok {
		return &models.NotFoundError{Resource: "tuition balance", ID: b.ID}
	}
	if stored.Version != b.Version {
		return &models.ConflictError{RecordID: b.ID}
	}
	b.Version++
	cp := *b
	s.tuition[b.ID] = &cp
	return nil
}

func (s *memStore) UpdateTransportBalance(b *models.TransportBalance) error {
	stored, ok := s.transport[b.ID]
	if !ok {
		return &models.NotFoundError{Resource: "transport balance", ID: b.ID}
	}
	if stored.Version != b.Version {
		return &models.ConflictError{RecordID: b.ID}
	}
	b.Version++
	cp := *b
	s.transport[b.ID] = &cp
	return nil
}

// staleReadStore serves every read from a snapshot taken at construction,
// so a second writer works from stale data and trips the version guard.
type staleReadStore struct {
	*memStore
	snapshot map[string]models.TuitionBalance
}

func newStaleReadStore(inner *memStore) *staleReadStore {
	snap := map[string]models.TuitionBalance{}
	for id, b := range inner.tuition {
		snap[id] = *b
	}
	return &staleReadStore{memStore: inner, snapshot: snap}
}

func (s *staleReadStore) GetTuitionBalanceByID(branchID, id string) (*models.TuitionBalance, error) {
	if b, ok := s.snapshot[id]; ok && b.BranchID == branchID {
		cp := b
		return &cp, nil
	}
	return nil, &models.NotFoundError{Resource: "tuition balance", ID: id}
}

func strptr(s string) *string { return &s }

func makeEnrollments(branchID, classID string, n int) []*models.Enrollment {
	out := make([]*models.Enrollment, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, &models.Enrollment{
			ID:          uuid.NewString(),
			BranchID:    branchID,
			StudentName: fmt.Sprintf("Student %02d", i+1),
			AdmissionNo: fmt.Sprintf("ADM-%04d", i+1),
			ClassID:     classID,
			IsActive:    true,
		})
	}
	return out
}
