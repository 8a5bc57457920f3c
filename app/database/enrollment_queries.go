package database

import (
	"database/sql"
	"fmt"

	"github.com/pkg/errors"

	"nexzen-fees/app/models"
)

func scanEnrollment(row interface{ Scan(...interface{}) error }) (*models.Enrollment, error) {
	e := &models.Enrollment{}
	err := row.Scan(
		&e.ID, &e.BranchID, &e.StudentName, &e.AdmissionNo,
		&e.ClassID, &e.SectionID, &e.IsActive,
		&e.TransportRouteID, &e.TransportSlabID,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListActiveEnrollments returns the active enrollments of a class, optionally
// narrowed to one section.
func (s *Store) ListActiveEnrollments(branchID, classID, sectionID string) ([]*models.Enrollment, error) {
	query := `SELECT id, branch_id, student_name, admission_no, class_id, section_id, is_active,
	                 transport_route_id, transport_slab_id, created_at, updated_at
	          FROM enrollments
	          WHERE branch_id = $1 AND class_id = $2 AND is_active = true AND deleted_at IS NULL`

	args := []interface{}{branchID, classID}
	if sectionID != "" {
		query += fmt.Sprintf(" AND section_id = $%d", len(args)+1)
		args = append(args, sectionID)
	}
	query += " ORDER BY student_name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch enrollments")
	}
	defer rows.Close()

	var enrollments []*models.Enrollment
	for rows.Next() {
		e, err := scanEnrollment(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan enrollment")
		}
		enrollments = append(enrollments, e)
	}
	return enrollments, rows.Err()
}

// GetEnrollment returns one enrollment by id within the branch scope.
func (s *Store) GetEnrollment(branchID, enrollmentID string) (*models.Enrollment, error) {
	query := `SELECT id, branch_id, student_name, admission_no, class_id, section_id, is_active,
	                 transport_route_id, transport_slab_id, created_at, updated_at
	          FROM enrollments
	          WHERE branch_id = $1 AND id = $2 AND deleted_at IS NULL`

	e, err := scanEnrollment(s.db.QueryRow(query, branchID, enrollmentID))
	if err == sql.ErrNoRows {
		return nil, &models.NotFoundError{Resource: "enrollment", ID: enrollmentID}
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch enrollment")
	}
	return e, nil
}
