// Package formsync keeps a document form consistent with the selected
// customer/supplier and the derived date/credit fields, mirroring the
// booking-entry behavior shared by ticket, deposit and voucher forms.
package formsync

import (
	"strconv"
	"strings"
	"time"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// Form holds the synchronized slice of a document's field set. The
// selected customer/supplier is copied in field by field; afterwards the
// form is the source of truth and edits never touch the master record.
type Form struct {
	CustomerID      int64
	CustomerCode    string
	CustomerName    string
	CustomerAddress string
	CustomerPhone   string
	TaxID           string
	BranchType      string
	BranchNumber    string

	// CreditDays stays a string because the field is free-typed.
	CreditDays string
	Date       time.Time
	DueDate    time.Time

	SupplierID          int64
	SupplierCode        string
	SupplierName        string
	SupplierNumericCode string

	Passengers []models.Passenger

	// ManualCustomer flags the "type a new customer" UI mode.
	ManualCustomer bool
}

// NewForm starts a blank form dated today.
func NewForm(today time.Time) *Form {
	return &Form{
		CreditDays: "0",
		Date:       today,
		DueDate:    today,
	}
}

// ApplyCustomer copies the selected customer into the form, stamps the
// document date to today and derives the due date from credit days.
func (f *Form) ApplyCustomer(c models.Customer, today time.Time) {
	f.CustomerID = c.ID
	f.CustomerCode = c.Code
	f.CustomerName = c.Name
	f.CustomerAddress = utils.JoinAddress(c.AddressLine1, c.AddressLine2, c.AddressLine3)
	f.CustomerPhone = c.Phone
	f.TaxID = c.TaxID
	f.BranchType = c.BranchType
	f.BranchNumber = c.BranchNumber
	f.CreditDays = strconv.Itoa(c.CreditDays)
	f.Date = today
	f.DueDate = utils.AddDays(today, c.CreditDays)
	f.ManualCustomer = false
}

// ClearCustomer resets customer-derived fields and the date pair.
func (f *Form) ClearCustomer(today time.Time) {
	f.CustomerID = 0
	f.CustomerCode = ""
	f.CustomerName = ""
	f.CustomerAddress = ""
	f.CustomerPhone = ""
	f.TaxID = ""
	f.BranchType = ""
	f.BranchNumber = ""
	f.CreditDays = "0"
	f.Date = today
	f.DueDate = today
}

// SetCreditDays recomputes the due date from the document date. The
// date itself never moves.
func (f *Form) SetCreditDays(value string) {
	days := utils.ParseCount(value)
	f.CreditDays = strings.TrimSpace(value)
	if f.CreditDays == "" {
		f.CreditDays = "0"
	}
	f.DueDate = utils.AddDays(f.Date, days)
}

// SetDueDate accepts a free-typed DD/MM/YYYY value and recomputes
// credit days as the non-negative day distance from the document date.
// Malformed text returns a validation error without mutating the form.
func (f *Form) SetDueDate(text string) error {
	due, err := utils.ParseDMY(text)
	if err != nil {
		return domain.ValidationError{Field: "due_date", Msg: err.Error(), Err: err}
	}
	f.DueDate = due
	days := utils.DaysBetween(f.Date, due)
	if days < 0 {
		days = 0
	}
	f.CreditDays = strconv.Itoa(days)
	return nil
}

// ApplySupplier copies supplier fields into the form and propagates the
// numeric code into every passenger row's ticket-number field, so all
// rows show the same prefix without extra operator input.
func (f *Form) ApplySupplier(s models.Supplier) {
	f.SupplierID = s.ID
	f.SupplierCode = s.Code
	f.SupplierName = s.Name
	f.SupplierNumericCode = s.NumericCode
	for i := range f.Passengers {
		f.Passengers[i].TicketNumber = s.NumericCode
	}
}

// ClearSupplier blanks supplier fields and every row's ticket number.
func (f *Form) ClearSupplier() {
	f.SupplierID = 0
	f.SupplierCode = ""
	f.SupplierName = ""
	f.SupplierNumericCode = ""
	for i := range f.Passengers {
		f.Passengers[i].TicketNumber = ""
	}
}

// SetManualCustomer toggles between "search existing customer" and
// "type a new customer manually". Switching into manual mode clears the
// selected customer; switching back re-blanks whatever was typed.
func (f *Form) SetManualCustomer(on bool, today time.Time) {
	f.ClearCustomer(today)
	f.ManualCustomer = on
}
