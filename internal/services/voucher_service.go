package services

import (
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// VoucherService handles hotel and land-service voucher documents.
type VoucherService struct {
	Repo      repositories.VoucherRepository
	RequestID string
}

func (s VoucherService) validateVoucher(v models.Voucher) error {
	if err := validateHeader(v.DocumentHeader); err != nil {
		return err
	}
	if err := validateLines(v.Pricing, v.Extras); err != nil {
		return err
	}
	if strings.TrimSpace(v.ServiceType) == "" {
		return domain.ValidationError{Field: "service_type", Msg: "required"}
	}
	if v.CheckinDate != "" {
		if err := validate.Var(v.CheckinDate, "datetime=2006-01-02"); err != nil {
			return domain.ValidationError{Field: "checkin_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if v.CheckoutDate != "" {
		if err := validate.Var(v.CheckoutDate, "datetime=2006-01-02"); err != nil {
			return domain.ValidationError{Field: "checkout_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	return nil
}

func (s VoucherService) Create(v models.Voucher) (int64, error) {
	if err := s.validateVoucher(v); err != nil {
		return 0, err
	}
	v.Extras = ensureExtrasRow(v.Extras)
	recomputeTotals(&v.DocumentHeader, v.Pricing, v.Extras)

	id, err := s.Repo.CreateComplete(v)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "vouchers", "create", fmt.Sprintf("id=%d", id))
	return id, nil
}

func (s VoucherService) UpdateComplete(v models.Voucher) error {
	if v.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := s.validateVoucher(v); err != nil {
		return err
	}
	v.Extras = ensureExtrasRow(v.Extras)
	recomputeTotals(&v.DocumentHeader, v.Pricing, v.Extras)

	if err := s.Repo.UpdateComplete(v); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vouchers", "update_complete", fmt.Sprintf("id=%d", v.ID))
	return nil
}

func (s VoucherService) GetForEdit(id int64) (models.Voucher, error) {
	v, err := s.Repo.GetForEdit(id)
	if err != nil {
		return v, err
	}
	resolveStoredVAT(&v.DocumentHeader)
	v.Extras = ensureExtrasRow(v.Extras)
	return v, nil
}

func (s VoucherService) Cancel(id int64, reason, cancelledBy string) error {
	if err := s.Repo.Cancel(id, reason, cancelledBy); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "vouchers", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}
