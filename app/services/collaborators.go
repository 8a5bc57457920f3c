package services

import "nexzen-fees/app/models"

// EnrollmentDirectory supplies enrollment identity and class placement. The
// fee engine only reads it.
type EnrollmentDirectory interface {
	ListActiveEnrollments(branchID, classID, sectionID string) ([]*models.Enrollment, error)
	GetEnrollment(branchID, enrollmentID string) (*models.Enrollment, error)
}

// StructureRegistry supplies the fee catalogs balance records are built from.
type StructureRegistry interface {
	GetFeeStructure(branchID, classID, periodID string) (*models.FeeStructure, error)
	GetTransportFee(routeID, slabID string) (float64, error)
}

// BalanceStore owns balance record persistence. Inserts are atomic per
// enrollment and updates are guarded by the record version.
type BalanceStore interface {
	InsertEnrollmentBalances(tuition *models.TuitionBalance, transport *models.TransportBalance) error
	GetTuitionBalanceByID(branchID, id string) (*models.TuitionBalance, error)
	GetTransportBalanceByID(branchID, id string) (*models.TransportBalance, error)
	GetBalancesForEnrollment(branchID, enrollmentID, periodID string) (*models.TuitionBalance, *models.TransportBalance, error)
	UpdateTuitionBalance(b *models.TuitionBalance) error
	UpdateTransportBalance(b *models.TransportBalance) error
}
