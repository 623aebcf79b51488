package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
)

// SalesRow is one document in the sales report.
type SalesRow struct {
	DocType      string  `json:"doc_type"`
	DocID        int64   `json:"doc_id"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	Subtotal     float64 `json:"subtotal"`
	VATAmount    float64 `json:"vat_amount"`
	GrandTotal   float64 `json:"grand_total"`
	Status       string  `json:"status"`
}

type ReportRepository struct {
	DB *sql.DB
}

func (r ReportRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

var salesTables = map[string]string{
	DocTicket:  "flight_tickets",
	DocDeposit: "deposits",
	DocVoucher: "vouchers",
	DocOther:   "other_services",
}

// ListSales returns documents in a date range, optionally for a single
// document type. Cancelled documents are included with their status so
// callers can show them while excluding them from totals. Dates are
// YYYY-MM-DD; blank bounds are open.
func (r ReportRepository) ListSales(docType, startDate, endDate string) ([]SalesRow, error) {
	types := []string{}
	if t := strings.TrimSpace(docType); t != "" {
		if _, ok := salesTables[t]; !ok {
			return []SalesRow{}, nil
		}
		types = append(types, t)
	} else {
		types = append(types, DocTicket, DocDeposit, DocVoucher, DocOther)
	}

	selects := []string{}
	args := []any{}
	for _, t := range types {
		q := `SELECT '` + t + `' AS doc_type, id AS doc_id, COALESCE(date,'') AS doc_date, COALESCE(customer_name,''),
			COALESCE(subtotal,0), COALESCE(vat_amount,0), COALESCE(grand_total,0), COALESCE(status,'active')
			FROM ` + salesTables[t] + ` WHERE 1=1`
		if strings.TrimSpace(startDate) != "" {
			q += ` AND date >= ?`
			args = append(args, startDate)
		}
		if strings.TrimSpace(endDate) != "" {
			q += ` AND date <= ?`
			args = append(args, endDate)
		}
		selects = append(selects, q)
	}

	rows, err := r.db().Query(strings.Join(selects, " UNION ALL ")+" ORDER BY doc_date ASC, doc_id ASC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []SalesRow{}
	for rows.Next() {
		var s SalesRow
		if err := rows.Scan(&s.DocType, &s.DocID, &s.Date, &s.CustomerName, &s.Subtotal, &s.VATAmount, &s.GrandTotal, &s.Status); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
