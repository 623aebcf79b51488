package formsync

import (
	"testing"
	"time"

	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

var today = time.Date(2026, 3, 10, 0, 0, 0, 0, time.Local)

func sampleCustomer() models.Customer {
	return models.Customer{
		ID:           7,
		Code:         "C-0042",
		Name:         "Siam Traders Co., Ltd.",
		AddressLine1: "123 Main Rd",
		AddressLine2: "",
		AddressLine3: "Bangkok",
		Phone:        "02-555-0101",
		TaxID:        "0105551234567",
		BranchType:   "head_office",
		BranchNumber: "00000",
		CreditDays:   15,
	}
}

func TestApplyCustomerDerivesDates(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)

	if f.CustomerAddress != "123 Main Rd Bangkok" {
		t.Fatalf("address = %q", f.CustomerAddress)
	}
	if f.CreditDays != "15" {
		t.Fatalf("credit days = %q", f.CreditDays)
	}
	if !f.Date.Equal(today) {
		t.Fatalf("date moved to %v", f.Date)
	}
	if got := utils.FormatISODate(f.DueDate); got != "2026-03-25" {
		t.Fatalf("due date = %s, want 2026-03-25", got)
	}
}

func TestSetCreditDaysMovesDueDateOnly(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)

	f.SetCreditDays("30")
	if !f.Date.Equal(today) {
		t.Fatalf("date changed")
	}
	if got := utils.FormatISODate(f.DueDate); got != "2026-04-09" {
		t.Fatalf("due date = %s, want 2026-04-09", got)
	}
}

func TestSetDueDateRecomputesCreditDays(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)

	if err := f.SetDueDate("20/03/2026"); err != nil {
		t.Fatalf("SetDueDate error: %v", err)
	}
	if f.CreditDays != "10" {
		t.Fatalf("credit days = %q, want 10", f.CreditDays)
	}

	// due date before the document date clamps to zero
	if err := f.SetDueDate("01/03/2026"); err != nil {
		t.Fatalf("SetDueDate error: %v", err)
	}
	if f.CreditDays != "0" {
		t.Fatalf("credit days = %q, want 0", f.CreditDays)
	}
}

func TestSetDueDateRejectsMalformedWithoutMutation(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)
	before := f.DueDate
	beforeDays := f.CreditDays

	if err := f.SetDueDate("31-02-2026"); err == nil {
		t.Fatalf("malformed due date accepted")
	}
	if !f.DueDate.Equal(before) || f.CreditDays != beforeDays {
		t.Fatalf("form mutated on invalid input")
	}
}

func TestClearCustomerResetsDerivedFields(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)

	f.ClearCustomer(today)
	if f.CustomerID != 0 || f.CustomerName != "" || f.CustomerAddress != "" || f.TaxID != "" {
		t.Fatalf("customer fields not cleared: %+v", f)
	}
	if f.CreditDays != "0" {
		t.Fatalf("credit days = %q, want 0", f.CreditDays)
	}
	if !f.Date.Equal(today) || !f.DueDate.Equal(today) {
		t.Fatalf("dates not reset to today")
	}
}

func TestSupplierNumericCodePropagation(t *testing.T) {
	f := NewForm(today)
	f.Passengers = []models.Passenger{
		{Name: "A", FareClass: "adult"},
		{Name: "B", FareClass: "adult"},
		{Name: "C", FareClass: "child"},
	}

	f.ApplySupplier(models.Supplier{ID: 3, Code: "TG", Name: "Thai Airways", NumericCode: "217"})
	for i, p := range f.Passengers {
		if p.TicketNumber != "217" {
			t.Fatalf("row %d ticket number = %q", i, p.TicketNumber)
		}
	}

	f.ClearSupplier()
	if f.SupplierID != 0 || f.SupplierName != "" || f.SupplierNumericCode != "" {
		t.Fatalf("supplier fields not cleared")
	}
	for i, p := range f.Passengers {
		if p.TicketNumber != "" {
			t.Fatalf("row %d ticket number not cleared", i)
		}
	}
}

func TestManualCustomerToggleClearsFields(t *testing.T) {
	f := NewForm(today)
	f.ApplyCustomer(sampleCustomer(), today)

	f.SetManualCustomer(true, today)
	if !f.ManualCustomer || f.CustomerName != "" {
		t.Fatalf("manual toggle did not clear selection")
	}

	f.SetManualCustomer(false, today)
	if f.ManualCustomer {
		t.Fatalf("manual flag still set")
	}
}
