package services

import (
	"nexzen-fees/app/ledger"
	"nexzen-fees/app/models"
)

// PaymentPoster applies payment amounts against one slot of a balance record.
// The read-modify-write is guarded by the record version; a concurrent writer
// surfaces as a ConflictError and the caller retries with fresh data.
type PaymentPoster struct {
	balances BalanceStore
}

func NewPaymentPoster(balances BalanceStore) *PaymentPoster {
	return &PaymentPoster{balances: balances}
}

// PostTuitionPayment applies amount against the book fee or one tuition term
// and returns the updated record.
func (p *PaymentPoster) PostTuitionPayment(branchID, recordID string, target models.PaymentTarget, amount float64) (*models.TuitionBalance, error) {
	balance, err := p.balances.GetTuitionBalanceByID(branchID, recordID)
	if err != nil {
		return nil, err
	}
	if err := ledger.ApplyTuitionPayment(balance, target, amount); err != nil {
		return nil, err
	}
	if err := p.balances.UpdateTuitionBalance(balance); err != nil {
		return nil, err
	}
	return balance, nil
}

// PostTransportPayment applies amount against one transport term and returns
// the updated record.
func (p *PaymentPoster) PostTransportPayment(branchID, recordID string, target models.PaymentTarget, amount float64) (*models.TransportBalance, error) {
	balance, err := p.balances.GetTransportBalanceByID(branchID, recordID)
	if err != nil {
		return nil, err
	}
	if err := ledger.ApplyTransportPayment(balance, target, amount); err != nil {
		return nil, err
	}
	if err := p.balances.UpdateTransportBalance(balance); err != nil {
		return nil, err
	}
	return balance, nil
}
