package services

import (
	"nexzen-fees/app/ledger"
	"nexzen-fees/app/models"
)

// ConcessionService adjusts the concession on a tuition record. The edit is
// only allowed while no installment payment has been posted, so paid amounts
// are never redistributed.
type ConcessionService struct {
	balances BalanceStore
}

func NewConcessionService(balances BalanceStore) *ConcessionService {
	return &ConcessionService{balances: balances}
}

// AdjustConcession replaces the concession amount, re-splits the installments
// and returns the updated record.
func (c *ConcessionService) AdjustConcession(branchID, recordID string, concession float64) (*models.TuitionBalance, error) {
	balance, err := c.balances.GetTuitionBalanceByID(branchID, recordID)
	if err != nil {
		return nil, err
	}
	if err := ledger.AdjustTuitionConcession(balance, concession); err != nil {
		return nil, err
	}
	if err := c.balances.UpdateTuitionBalance(balance); err != nil {
		return nil, err
	}
	return balance, nil
}
