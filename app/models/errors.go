package models

import (
	"errors"
	"fmt"
)

// ErrDuplicateRecord is returned by the store when an insert hits the unique
// (enrollment_id, period_id) constraint. The bulk initializer treats it as a
// skip, never as a failure.
var ErrDuplicateRecord = errors.New("balance record already exists for enrollment and period")

// ValidationError reports malformed input. The store is never touched.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Reason)
}

// NewValidationError builds a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

// NotFoundError reports a missing record (e.g. posting a payment before the
// balance record was initialized).
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// OverpaymentError reports a payment exceeding the remaining balance of its
// target slot. Business-rule violation, not a system fault; the record is
// left untouched.
type OverpaymentError struct {
	Target    PaymentTarget
	Amount    float64
	Remaining float64
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment of %.2f exceeds remaining balance %.2f on %s",
		e.Amount, e.Remaining, e.Target)
}

// ConflictError reports a concurrent write detected via the record version.
// The caller should reload and retry.
type ConflictError struct {
	RecordID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("balance record %s was modified concurrently, retry with fresh data", e.RecordID)
}

// InvariantViolationError reports a ledger invariant broken during record
// construction (installments not summing to the total fee). Such a record
// must never be persisted.
type InvariantViolationError struct {
	Reason string
}

func (e *InvariantViolationError) Error() string {
	return "ledger invariant violated: " + e.Reason
}
