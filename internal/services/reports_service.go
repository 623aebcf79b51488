package services

import (
	"fmt"
	"strings"

	"backoffice/internal/domain"
	"backoffice/internal/repositories"
	"backoffice/internal/utils"
)

// ReportsService composes the sales report across document types.
type ReportsService struct {
	Repo      repositories.ReportRepository
	RequestID string
}

// SalesReport is the report payload: rows plus totals composed from
// the same stored amounts the documents carry.
type SalesReport struct {
	Rows       []repositories.SalesRow `json:"rows"`
	Count      int                     `json:"count"`
	Subtotal   float64                 `json:"subtotal"`
	VATAmount  float64                 `json:"vat_amount"`
	GrandTotal float64                 `json:"grand_total"`
}

// GetSalesReport returns documents in a date range, optionally filtered
// to a single document type. Cancelled documents are listed but only
// active ones count toward the totals.
func (s ReportsService) GetSalesReport(docType, startDate, endDate string) (SalesReport, error) {
	docType = strings.TrimSpace(docType)
	switch docType {
	case "", repositories.DocTicket, repositories.DocDeposit, repositories.DocVoucher, repositories.DocOther:
	default:
		return SalesReport{}, domain.ValidationError{Field: "doc_type", Msg: "unknown document type " + docType}
	}
	for _, d := range []struct{ field, value string }{{"start_date", startDate}, {"end_date", endDate}} {
		if d.value == "" {
			continue
		}
		if _, err := utils.ParseISODate(d.value); err != nil {
			return SalesReport{}, domain.ValidationError{Field: d.field, Msg: "must be YYYY-MM-DD", Err: err}
		}
	}

	rows, err := s.Repo.ListSales(docType, startDate, endDate)
	if err != nil {
		return SalesReport{}, err
	}

	report := SalesReport{Rows: rows, Count: len(rows)}
	for _, r := range rows {
		if r.Status == string(domain.StatusCancelled) {
			continue
		}
		report.Subtotal += r.Subtotal
		report.VATAmount += r.VATAmount
		report.GrandTotal += r.GrandTotal
	}
	report.Subtotal = utils.Round2(report.Subtotal)
	report.VATAmount = utils.Round2(report.VATAmount)
	report.GrandTotal = utils.Round2(report.GrandTotal)

	utils.LogEvent(s.RequestID, "reports", "sales", fmt.Sprintf("doc_type=%s rows=%d", docType, len(rows)))
	return report, nil
}
