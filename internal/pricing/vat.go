package pricing

import "backoffice/internal/utils"

// VATAmount applies a percentage to a subtotal, rounded to 2 decimals
// half away from zero. Monetary results always round the same way so
// different forms cannot disagree on the printed figures.
func VATAmount(subtotal, vatPercent float64) float64 {
	return utils.Round2(subtotal * vatPercent / 100)
}

// GrandTotal sums subtotal and VAT, rounded to 2 decimals.
func GrandTotal(subtotal, vatAmount float64) float64 {
	return utils.Round2(subtotal + vatAmount)
}

// ResolveVAT decides which VAT amount to trust when a document is
// loaded from storage. Legacy records sometimes carry vat_amount=0 with
// a non-zero vat_percent; recomputeWhenZero controls whether such rows
// get their amount recomputed from the percent.
func ResolveVAT(stored, vatPercent, subtotal float64, recomputeWhenZero bool) float64 {
	if recomputeWhenZero && stored == 0 && vatPercent != 0 {
		return VATAmount(subtotal, vatPercent)
	}
	return utils.Round2(stored)
}
