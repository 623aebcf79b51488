package services

import (
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// OtherServiceService handles miscellaneous sale documents: insurance,
// visa handling and anything else without a dedicated document type.
type OtherServiceService struct {
	Repo      repositories.OtherRepository
	RequestID string
}

func (s OtherServiceService) validateOther(o models.OtherService) error {
	if err := validateHeader(o.DocumentHeader); err != nil {
		return err
	}
	if err := validateLines(o.Pricing, o.Extras); err != nil {
		return err
	}
	if strings.TrimSpace(o.ServiceType) == "" && strings.TrimSpace(o.Description) == "" {
		return domain.ValidationError{Field: "service_type", Msg: "service type or description is required"}
	}
	return nil
}

func (s OtherServiceService) Create(o models.OtherService) (int64, error) {
	if err := s.validateOther(o); err != nil {
		return 0, err
	}
	o.Extras = ensureExtrasRow(o.Extras)
	recomputeTotals(&o.DocumentHeader, o.Pricing, o.Extras)

	id, err := s.Repo.CreateComplete(o)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "others", "create", fmt.Sprintf("id=%d", id))
	return id, nil
}

func (s OtherServiceService) UpdateComplete(o models.OtherService) error {
	if o.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := s.validateOther(o); err != nil {
		return err
	}
	o.Extras = ensureExtrasRow(o.Extras)
	recomputeTotals(&o.DocumentHeader, o.Pricing, o.Extras)

	if err := s.Repo.UpdateComplete(o); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "others", "update_complete", fmt.Sprintf("id=%d", o.ID))
	return nil
}

func (s OtherServiceService) GetForEdit(id int64) (models.OtherService, error) {
	o, err := s.Repo.GetForEdit(id)
	if err != nil {
		return o, err
	}
	resolveStoredVAT(&o.DocumentHeader)
	o.Extras = ensureExtrasRow(o.Extras)
	return o, nil
}

func (s OtherServiceService) Cancel(id int64, reason, cancelledBy string) error {
	if err := s.Repo.Cancel(id, reason, cancelledBy); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "others", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}
