package models

import "time"

// Enrollment is the slice of the student directory the fee engine needs:
// identity, class/section placement, and the optional transport assignment.
type Enrollment struct {
	ID               string     `json:"id" gorm:"primaryKey;type:uuid;default:gen_random_uuid()"`
	BranchID         string     `json:"branch_id" gorm:"not null;index;type:uuid"`
	StudentName      string     `json:"student_name" gorm:"not null"`
	AdmissionNo      string     `json:"admission_no" gorm:"not null;index"`
	ClassID          string     `json:"class_id" gorm:"not null;index;type:uuid"`
	SectionID        *string    `json:"section_id,omitempty" gorm:"index;type:uuid"`
	IsActive         bool       `json:"is_active" gorm:"default:true"`
	TransportRouteID *string    `json:"transport_route_id,omitempty" gorm:"index;type:uuid"`
	TransportSlabID  *string    `json:"transport_slab_id,omitempty" gorm:"index;type:uuid"`
	CreatedAt        time.Time  `json:"created_at" gorm:"default:now()"`
	UpdatedAt        time.Time  `json:"updated_at" gorm:"default:now()"`
	DeletedAt        *time.Time `json:"deleted_at,omitempty" gorm:"index"`
}

// HasTransport returns true when the enrollment carries a transport
// assignment and therefore gets a transport balance record.
func (e *Enrollment) HasTransport() bool {
	return e.TransportRouteID != nil && e.TransportSlabID != nil
}
