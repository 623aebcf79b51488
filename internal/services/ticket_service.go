package services

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

var validate = validator.New()

// TicketService owns the flight-ticket document lifecycle: create,
// full-document replace, edit loads and cancellation.
type TicketService struct {
	Repo      repositories.TicketRepository
	RequestID string
}

func validateHeader(h models.DocumentHeader) error {
	if strings.TrimSpace(h.CustomerName) == "" && h.CustomerID <= 0 {
		return domain.ValidationError{Field: "customer", Msg: "customer is required"}
	}
	if err := validate.Var(h.Date, "required,datetime=2006-01-02"); err != nil {
		return domain.ValidationError{Field: "date", Msg: "must be YYYY-MM-DD", Err: err}
	}
	if h.DueDate != "" {
		if err := validate.Var(h.DueDate, "datetime=2006-01-02"); err != nil {
			return domain.ValidationError{Field: "due_date", Msg: "must be YYYY-MM-DD", Err: err}
		}
	}
	if err := validate.Var(h.VATPercent, "gte=0,lte=100"); err != nil {
		return domain.ValidationError{Field: "vat_percent", Msg: "must be between 0 and 100", Err: err}
	}
	if h.CreditDays < 0 {
		return domain.ValidationError{Field: "credit_days", Msg: "must not be negative"}
	}
	return nil
}

func validateLines(lines []models.PricingLine, extras []models.ExtraLine) error {
	for _, l := range lines {
		if l.Pax < 0 {
			return domain.ValidationError{Field: "pricing." + l.FareClass + ".pax", Msg: "must not be negative"}
		}
		if l.SalePrice < 0 || l.NetPrice < 0 {
			return domain.ValidationError{Field: "pricing." + l.FareClass, Msg: "prices must not be negative"}
		}
	}
	for _, e := range extras {
		if e.Quantity < 0 {
			return domain.ValidationError{Field: "extras.quantity", Msg: "must not be negative"}
		}
	}
	return nil
}

// ensureExtrasRow keeps the at-least-one-extras-row invariant on the
// stored document so edit views always have a row to show.
func ensureExtrasRow(extras []models.ExtraLine) []models.ExtraLine {
	if len(extras) == 0 {
		return []models.ExtraLine{{ID: 1}}
	}
	return extras
}

func (s TicketService) validateTicket(t models.FlightTicket) error {
	if err := validateHeader(t.DocumentHeader); err != nil {
		return err
	}
	if err := validateLines(t.Pricing, t.Extras); err != nil {
		return err
	}
	for i, p := range t.Passengers {
		if strings.TrimSpace(p.Name) == "" {
			return domain.ValidationError{Field: fmt.Sprintf("passengers[%d].name", i), Msg: "required"}
		}
	}
	return nil
}

// Create inserts a new ticket with server-computed totals.
func (s TicketService) Create(t models.FlightTicket) (int64, error) {
	if err := s.validateTicket(t); err != nil {
		return 0, err
	}
	t.Extras = ensureExtrasRow(t.Extras)
	recomputeTotals(&t.DocumentHeader, t.Pricing, t.Extras)

	id, err := s.Repo.CreateComplete(t)
	if err != nil {
		return 0, err
	}
	utils.LogEvent(s.RequestID, "tickets", "create", fmt.Sprintf("id=%d grand_total=%.2f", id, t.GrandTotal))
	return id, nil
}

// UpdateComplete replaces the whole document. There is no field-level
// PATCH; the caller always submits every sub-section.
func (s TicketService) UpdateComplete(t models.FlightTicket) error {
	if t.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	if err := s.validateTicket(t); err != nil {
		return err
	}
	t.Extras = ensureExtrasRow(t.Extras)
	recomputeTotals(&t.DocumentHeader, t.Pricing, t.Extras)

	if err := s.Repo.UpdateComplete(t); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "tickets", "update_complete", fmt.Sprintf("id=%d grand_total=%.2f", t.ID, t.GrandTotal))
	return nil
}

// GetForEdit loads the full document for the edit view, repairing
// legacy rows whose VAT amount was never stored.
func (s TicketService) GetForEdit(id int64) (models.FlightTicket, error) {
	t, err := s.Repo.GetForEdit(id)
	if err != nil {
		return t, err
	}
	resolveStoredVAT(&t.DocumentHeader)
	t.Extras = ensureExtrasRow(t.Extras)
	return t, nil
}

// GetDetail returns the document as stored, for read-only views.
func (s TicketService) GetDetail(id int64) (models.FlightTicket, error) {
	return s.Repo.GetForEdit(id)
}

// Cancel marks the ticket cancelled. The reason is mandatory.
func (s TicketService) Cancel(id int64, reason, cancelledBy string) error {
	if err := s.Repo.Cancel(id, reason, cancelledBy); err != nil {
		return err
	}
	utils.LogEvent(s.RequestID, "tickets", "cancel", fmt.Sprintf("id=%d", id))
	return nil
}

// ListForInvoice returns active tickets that have no invoice number yet.
func (s TicketService) ListForInvoice() ([]repositories.TicketSummary, error) {
	return s.Repo.ListForInvoice()
}

// ListForReceipt returns invoiced tickets awaiting a receipt.
func (s TicketService) ListForReceipt() ([]repositories.TicketSummary, error) {
	return s.Repo.ListForReceipt()
}
