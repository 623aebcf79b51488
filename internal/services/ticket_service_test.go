package services

import (
	"testing"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

func TestRecomputeTotalsIsAuthoritative(t *testing.T) {
	h := models.DocumentHeader{VATPercent: 7, Subtotal: 999999, GrandTotal: 1}
	lines := []models.PricingLine{
		{FareClass: "adult", NetPrice: 1000, SalePrice: 1200, Pax: 2, Total: 5},
		{FareClass: "child", SalePrice: 800, Pax: 1},
		{FareClass: "infant", SalePrice: 900, Pax: 0},
	}
	extras := []models.ExtraLine{
		{ID: 1, SalePrice: 500, Quantity: 1, TotalAmount: 123},
	}

	recomputeTotals(&h, lines, extras)

	if lines[0].Total != 2400 || lines[1].Total != 800 || lines[2].Total != 0 {
		t.Fatalf("line totals = %v %v %v", lines[0].Total, lines[1].Total, lines[2].Total)
	}
	if extras[0].TotalAmount != 500 {
		t.Fatalf("extras total = %v", extras[0].TotalAmount)
	}
	if h.Subtotal != 3700 {
		t.Fatalf("subtotal = %v, want 3700", h.Subtotal)
	}
	if h.VATAmount != 259 {
		t.Fatalf("vat = %v, want 259", h.VATAmount)
	}
	if h.GrandTotal != 3959 {
		t.Fatalf("grand total = %v, want 3959", h.GrandTotal)
	}
}

func TestResolveStoredVATRepairsLegacyRows(t *testing.T) {
	h := models.DocumentHeader{Subtotal: 3700, VATPercent: 7, VATAmount: 0}
	resolveStoredVAT(&h)
	if h.VATAmount != 259 || h.GrandTotal != 3959 {
		t.Fatalf("vat=%v grand=%v", h.VATAmount, h.GrandTotal)
	}

	kept := models.DocumentHeader{Subtotal: 3700, VATPercent: 7, VATAmount: 200}
	resolveStoredVAT(&kept)
	if kept.VATAmount != 200 {
		t.Fatalf("non-zero stored VAT must be kept, got %v", kept.VATAmount)
	}
}

func TestValidateTicketRejectsBadDate(t *testing.T) {
	svc := TicketService{}
	tk := models.FlightTicket{
		DocumentHeader: models.DocumentHeader{Date: "30/08/2026", CustomerName: "Siam Holidays"},
	}
	if _, err := svc.Create(tk); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestValidateTicketRejectsNamelessPassenger(t *testing.T) {
	svc := TicketService{}
	tk := models.FlightTicket{
		DocumentHeader: models.DocumentHeader{Date: "2026-08-30", CustomerName: "Siam Holidays"},
		Passengers:     []models.Passenger{{Name: "   "}},
	}
	if _, err := svc.Create(tk); !domain.IsValidation(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestEnsureExtrasRowKeepsMinimumOne(t *testing.T) {
	rows := ensureExtrasRow(nil)
	if len(rows) != 1 || rows[0].ID != 1 {
		t.Fatalf("unexpected seed row: %+v", rows)
	}
	same := ensureExtrasRow(rows)
	if len(same) != 1 {
		t.Fatalf("existing row must be kept as-is")
	}
}
