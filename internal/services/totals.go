package services

import (
	"backoffice/internal/domain/models"
	"backoffice/internal/pricing"
	"backoffice/internal/utils"
)

// recomputeTotals makes the server authoritative over money fields:
// line totals, subtotal, VAT and grand total are derived from the
// submitted net/sale/pax/quantity values, never trusted from the client.
// The document subtotal is the fare-class sum plus the extras sum.
func recomputeTotals(h *models.DocumentHeader, lines []models.PricingLine, extras []models.ExtraLine) {
	subtotal := 0.0
	for i := range lines {
		lines[i].Total = utils.Round2(lines[i].SalePrice * float64(lines[i].Pax))
		subtotal += lines[i].Total
	}
	for i := range extras {
		extras[i].TotalAmount = utils.Round2(extras[i].SalePrice * float64(extras[i].Quantity))
		subtotal += extras[i].TotalAmount
	}

	h.Subtotal = utils.Round2(subtotal)
	h.VATAmount = pricing.VATAmount(h.Subtotal, h.VATPercent)
	h.GrandTotal = pricing.GrandTotal(h.Subtotal, h.VATAmount)
}

// resolveStoredVAT patches documents persisted before VAT amounts were
// stored: a zero amount with a non-zero percent is recomputed on load.
func resolveStoredVAT(h *models.DocumentHeader) {
	h.VATAmount = pricing.ResolveVAT(h.VATAmount, h.VATPercent, h.Subtotal, true)
	h.GrandTotal = pricing.GrandTotal(h.Subtotal, h.VATAmount)
}
