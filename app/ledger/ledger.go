// Package ledger holds the pure derivation rules for balance records. It
// performs no I/O: the bulk initializer and the payment poster both call the
// same functions here, so a record always carries identical derived fields no
// matter which path produced it.
package ledger

import (
	"fmt"
	"math"

	"nexzen-fees/app/models"
)

// Tolerance is the rounding tolerance for money comparisons, one cent.
const Tolerance = 0.01

// epsilon guards float comparisons below cent precision.
const epsilon = 1e-6

// tuitionWeights split tuition across three terms; the last term absorbs the
// rounding remainder.
var tuitionWeights = []float64{0.33, 0.33, 0.34}

// transportWeights split transport fees into two equal halves.
var transportWeights = []float64{0.50, 0.50}

// Round2 rounds a money amount to cents.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Split distributes totalFee across len(weights) installments. The first n-1
// amounts are the cent-rounded weighted shares; the last absorbs the
// remainder so the amounts sum to totalFee exactly.
func Split(totalFee float64, weights []float64) ([]float64, error) {
	if totalFee < 0 {
		return nil, &models.InvariantViolationError{Reason: fmt.Sprintf("total fee %.2f is negative", totalFee)}
	}
	amounts := make([]float64, len(weights))
	var allocated float64
	for i := 0; i < len(weights)-1; i++ {
		amounts[i] = Round2(totalFee * weights[i])
		allocated += amounts[i]
	}
	last := Round2(totalFee - allocated)
	if last < 0 {
		return nil, &models.InvariantViolationError{
			Reason: fmt.Sprintf("split of %.2f produced a negative final installment %.2f", totalFee, last),
		}
	}
	amounts[len(weights)-1] = last

	var sum float64
	for _, a := range amounts {
		sum += a
	}
	if math.Abs(sum-totalFee) > Tolerance {
		return nil, &models.InvariantViolationError{
			Reason: fmt.Sprintf("installments sum to %.2f, expected %.2f", sum, totalFee),
		}
	}
	return amounts, nil
}

// Derive returns the balance and status for one installment slot.
func Derive(amount, paid float64) (float64, models.InstallmentStatus) {
	balance := Round2(amount - paid)
	if balance < 0 {
		balance = 0
	}
	switch {
	case paid >= amount-epsilon:
		return balance, models.StatusPaid
	case paid <= epsilon:
		return balance, models.StatusPending
	default:
		return balance, models.StatusPartial
	}
}

// OverallBalance sums the unpaid balances of the given installments,
// clamped at zero.
func OverallBalance(terms []*models.Installment) float64 {
	var sum float64
	for _, t := range terms {
		sum += t.Balance
	}
	if sum < 0 {
		return 0
	}
	return Round2(sum)
}

func validateFees(actualFee, concession float64) error {
	if actualFee < 0 {
		return models.NewValidationError("actual_fee", "must not be negative")
	}
	if concession < 0 {
		return models.NewValidationError("concession_amount", "must not be negative")
	}
	if concession > actualFee+epsilon {
		return models.NewValidationError("concession_amount", "must not exceed the actual fee")
	}
	return nil
}

// NewTuitionBalance builds an unpaid tuition record from the fee structure
// amounts and an optional concession.
func NewTuitionBalance(actualFee, concession, bookFee float64) (models.TuitionBalance, error) {
	var b models.TuitionBalance
	if err := validateFees(actualFee, concession); err != nil {
		return b, err
	}
	if bookFee < 0 {
		return b, models.NewValidationError("book_fee", "must not be negative")
	}

	b.ActualFee = Round2(actualFee)
	b.ConcessionAmount = Round2(concession)
	b.TotalFee = Round2(actualFee - concession)
	b.BookFee = Round2(bookFee)

	amounts, err := Split(b.TotalFee, tuitionWeights)
	if err != nil {
		return b, err
	}
	b.Term1.Amount = amounts[0]
	b.Term2.Amount = amounts[1]
	b.Term3.Amount = amounts[2]

	RecomputeTuition(&b)
	return b, nil
}

// NewTransportBalance builds an unpaid transport record split into two terms.
func NewTransportBalance(actualFee, concession float64) (models.TransportBalance, error) {
	var b models.TransportBalance
	if err := validateFees(actualFee, concession); err != nil {
		return b, err
	}

	b.ActualFee = Round2(actualFee)
	b.ConcessionAmount = Round2(concession)
	b.TotalFee = Round2(actualFee - concession)

	amounts, err := Split(b.TotalFee, transportWeights)
	if err != nil {
		return b, err
	}
	b.Term1.Amount = amounts[0]
	b.Term2.Amount = amounts[1]

	RecomputeTransport(&b)
	return b, nil
}

// RecomputeTuition re-derives every derived field of a tuition record from
// its amounts and paid totals.
func RecomputeTuition(b *models.TuitionBalance) {
	_, b.BookStatus = Derive(b.BookFee, b.BookPaid)
	for _, t := range b.Terms() {
		t.Balance, t.Status = Derive(t.Amount, t.Paid)
	}
	b.OverallBalance = OverallBalance(b.Terms())
}

// RecomputeTransport re-derives every derived field of a transport record.
func RecomputeTransport(b *models.TransportBalance) {
	for _, t := range b.Terms() {
		t.Balance, t.Status = Derive(t.Amount, t.Paid)
	}
	b.OverallBalance = OverallBalance(b.Terms())
}

// CheckTuitionInvariants verifies that the installment amounts still sum to
// the total fee and that no installment is overpaid. It is run before any
// record is persisted.
func CheckTuitionInvariants(b *models.TuitionBalance) error {
	sum := b.Term1.Amount + b.Term2.Amount + b.Term3.Amount
	if math.Abs(sum-b.TotalFee) > Tolerance {
		return &models.InvariantViolationError{
			Reason: fmt.Sprintf("term amounts sum to %.2f, total fee is %.2f", sum, b.TotalFee),
		}
	}
	if b.TotalFee < -epsilon {
		return &models.InvariantViolationError{Reason: "total fee is negative"}
	}
	for n, t := range b.Terms() {
		if t.Paid < -epsilon || t.Paid > t.Amount+epsilon {
			return &models.InvariantViolationError{
				Reason: fmt.Sprintf("term %d paid %.2f outside [0, %.2f]", n+1, t.Paid, t.Amount),
			}
		}
	}
	if b.BookPaid < -epsilon || b.BookPaid > b.BookFee+epsilon {
		return &models.InvariantViolationError{
			Reason: fmt.Sprintf("book paid %.2f outside [0, %.2f]", b.BookPaid, b.BookFee),
		}
	}
	return nil
}

func applyToSlot(target models.PaymentTarget, amount float64, slotAmount, slotPaid *float64) error {
	remaining := *slotAmount - *slotPaid
	if remaining < 0 {
		remaining = 0
	}
	if amount > remaining+epsilon {
		return &models.OverpaymentError{Target: target, Amount: amount, Remaining: Round2(remaining)}
	}
	*slotPaid = Round2(*slotPaid + amount)
	return nil
}

// ApplyTuitionPayment applies amount against one slot of a tuition record
// and re-derives it. The record is untouched when an error is returned.
func ApplyTuitionPayment(b *models.TuitionBalance, target models.PaymentTarget, amount float64) error {
	if amount <= 0 {
		return models.NewValidationError("amount", "must be greater than zero")
	}
	var err error
	switch target {
	case models.TargetBook:
		err = applyToSlot(target, amount, &b.BookFee, &b.BookPaid)
	case models.TargetTerm1:
		err = applyToSlot(target, amount, &b.Term1.Amount, &b.Term1.Paid)
	case models.TargetTerm2:
		err = applyToSlot(target, amount, &b.Term2.Amount, &b.Term2.Paid)
	case models.TargetTerm3:
		err = applyToSlot(target, amount, &b.Term3.Amount, &b.Term3.Paid)
	default:
		return models.NewValidationError("target", fmt.Sprintf("unknown payment target %q", target))
	}
	if err != nil {
		return err
	}
	RecomputeTuition(b)
	return CheckTuitionInvariants(b)
}

// ApplyTransportPayment applies amount against one term of a transport
// record and re-derives it.
func ApplyTransportPayment(b *models.TransportBalance, target models.PaymentTarget, amount float64) error {
	if amount <= 0 {
		return models.NewValidationError("amount", "must be greater than zero")
	}
	var err error
	switch target {
	case models.TargetTerm1:
		err = applyToSlot(target, amount, &b.Term1.Amount, &b.Term1.Paid)
	case models.TargetTerm2:
		err = applyToSlot(target, amount, &b.Term2.Amount, &b.Term2.Paid)
	default:
		return models.NewValidationError("target", fmt.Sprintf("target %q is not valid for a transport record", target))
	}
	if err != nil {
		return err
	}
	RecomputeTransport(b)
	return nil
}

// AdjustTuitionConcession replaces the concession on an untouched record and
// re-splits the total. Locked once any term has received a payment, so paid
// amounts are never redistributed.
func AdjustTuitionConcession(b *models.TuitionBalance, concession float64) error {
	if b.HasAnyTermPayment() {
		return models.NewValidationError("concession_amount", "cannot adjust concession after installment payments were posted")
	}
	if err := validateFees(b.ActualFee, concession); err != nil {
		return err
	}

	b.ConcessionAmount = Round2(concession)
	b.TotalFee = Round2(b.ActualFee - concession)

	amounts, err := Split(b.TotalFee, tuitionWeights)
	if err != nil {
		return err
	}
	b.Term1.Amount = amounts[0]
	b.Term2.Amount = amounts[1]
	b.Term3.Amount = amounts[2]

	RecomputeTuition(b)
	return CheckTuitionInvariants(b)
}
