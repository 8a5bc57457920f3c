package models

// InstallmentStatus defines the payment status of a single installment slot.
type InstallmentStatus string

const (
	StatusPending InstallmentStatus = "pending"
	StatusPartial InstallmentStatus = "partial"
	StatusPaid    InstallmentStatus = "paid"
)

// PaymentTarget identifies which slot of a balance record a payment is
// applied against.
type PaymentTarget string

const (
	TargetBook  PaymentTarget = "book"
	TargetTerm1 PaymentTarget = "term_1"
	TargetTerm2 PaymentTarget = "term_2"
	TargetTerm3 PaymentTarget = "term_3"
)

// BalanceKind distinguishes the two balance record tables.
type BalanceKind string

const (
	KindTuition   BalanceKind = "tuition"
	KindTransport BalanceKind = "transport"
)

// FeeCategory tags which fee components are still owed, used by the
// promotion eligibility report.
type FeeCategory string

const (
	FeeTuition   FeeCategory = "TUITION"
	FeeBook      FeeCategory = "BOOK"
	FeeTransport FeeCategory = "TRANSPORT"
)
