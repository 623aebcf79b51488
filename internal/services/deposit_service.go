package services

import (
	"fmt"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// DepositService handles deposit documents. The deposit amount is a
// separate two-slot calculation (amount x pax) persisted on its own;
// it is never folded into the pricing subtotal.
type DepositService struct {
	Repo      repositories.DepositRepository
	RequestID string
}

func (s DepositService) validateDeposit(d models.Deposit) error {
	if err := validateHeader(d.DocumentHeader); err != nil {
		return err
	}
	if err := validateLines(d.Pricing, d.Extras); err != nil {
		return err
	}
	if d.DepositAmount < 0 || d.DepositPax < 0 {
		return domain.ValidationError{Field: "deposit", Msg: "amount and pax must not be negative"}
	}
	return nil
}

func (s DepositService) Create(d models.Deposit) (int64, error) {
	if err := s.validateDeposit(d); err != nil {
		return 0, err
	}
	d.Extras = ensureExtrasRow(d.Extras)
	d.DepositTotal = utils.Round2(d.DepositAmount * float64(d.DepositPax))
	recomputeTotals(&d.DocumentHeader, d.Pricing, d.Extras)

	id, err := s.Repo.CreateComplete(d)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "deposits", "create", fmt.Sprintf("id=%d deposit_total=%.2f", id, d.DepositTotal))
	return id, nil
}

func (s DepositService) UpdateComplete(d models.Deposit) error {
	if d.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := s.validateDeposit(d); err != nil {
		return err
	}
	d.Extras = ensureExtrasRow(d.Extras)
	d.DepositTotal = utils.Round2(d.DepositAmount * float64(d.DepositPax))
	recomputeTotals(&d.DocumentHeader, d.Pricing, d.Extras)

	if err := s.Repo.UpdateComplete(d); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "deposits", "update_complete", fmt.Sprintf("id=%d", d.ID))
	return nil
}

func (s DepositService) GetForEdit(id int64) (models.Deposit, error) {
	d, err := s.Repo.GetForEdit(id)
	if err != nil {
		return d, err
	}
	resolveStoredVAT(&d.DocumentHeader)
	d.Extras = ensureExtrasRow(d.Extras)
	return d, nil
}

func (s DepositService) Cancel(id int64, reason, cancelledBy string) error {
	if err := s.Repo.Cancel(id, reason, cancelledBy); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "deposits", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}
