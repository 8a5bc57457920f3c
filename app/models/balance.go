package models

import "time"

// Installment is one slot of a balance record. Balance and Status are derived
// fields and are only ever written by the ledger engine.
type Installment struct {
	Amount  float64           `json:"amount"`
	Paid    float64           `json:"paid"`
	Balance float64           `json:"balance"`
	Status  InstallmentStatus `json:"status"`
}

// Remaining returns how much can still be applied against the installment.
func (i *Installment) Remaining() float64 {
	return i.Balance
}

// TuitionBalance is the per-enrollment, per-period tuition ledger record:
// book fee plus three installments. Version backs the optimistic lock on
// every mutation.
type TuitionBalance struct {
	ID               string            `json:"id"`
	BranchID         string            `json:"branch_id"`
	EnrollmentID     string            `json:"enrollment_id"`
	PeriodID         string            `json:"period_id"`
	BookFee          float64           `json:"book_fee"`
	BookPaid         float64           `json:"book_paid"`
	BookStatus       InstallmentStatus `json:"book_paid_status"`
	ActualFee        float64           `json:"actual_fee"`
	ConcessionAmount float64           `json:"concession_amount"`
	TotalFee         float64           `json:"total_fee"`
	Term1            Installment       `json:"term_1"`
	Term2            Installment       `json:"term_2"`
	Term3            Installment       `json:"term_3"`
	OverallBalance   float64           `json:"overall_balance_fee"`
	Version          int               `json:"version"`
	CreatedAt        time.Time         `json:"created_at"`
	UpdatedAt        time.Time         `json:"updated_at"`
}

// Terms returns the three tuition installments in posting order.
func (b *TuitionBalance) Terms() []*Installment {
	return []*Installment{&b.Term1, &b.Term2, &b.Term3}
}

// BookRemaining returns the unpaid part of the book fee.
func (b *TuitionBalance) BookRemaining() float64 {
	if r := b.BookFee - b.BookPaid; r > 0 {
		return r
	}
	return 0
}

// HasAnyTermPayment reports whether any tuition installment has received a
// payment. Concession adjustments are locked once this is true.
func (b *TuitionBalance) HasAnyTermPayment() bool {
	return b.Term1.Paid > 0 || b.Term2.Paid > 0 || b.Term3.Paid > 0
}

// TransportBalance is the optional per-enrollment, per-period transport
// ledger record: two installments, no book component.
type TransportBalance struct {
	ID               string      `json:"id"`
	BranchID         string      `json:"branch_id"`
	EnrollmentID     string      `json:"enrollment_id"`
	PeriodID         string      `json:"period_id"`
	ActualFee        float64     `json:"actual_fee"`
	ConcessionAmount float64     `json:"concession_amount"`
	TotalFee         float64     `json:"total_fee"`
	Term1            Installment `json:"term_1"`
	Term2            Installment `json:"term_2"`
	OverallBalance   float64     `json:"overall_balance_fee"`
	Version          int         `json:"version"`
	CreatedAt        time.Time   `json:"created_at"`
	UpdatedAt        time.Time   `json:"updated_at"`
}

// Terms returns the two transport installments in posting order.
func (b *TransportBalance) Terms() []*Installment {
	return []*Installment{&b.Term1, &b.Term2}
}
