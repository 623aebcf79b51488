package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// Document types shared by the pricing/extras child tables.
const (
	DocTicket  = "ticket"
	DocDeposit = "deposit"
	DocVoucher = "voucher"
	DocOther   = "other"
)

// headerColumns is the SELECT list shared by every document table.
const headerColumns = `id, COALESCE(status,'active'), COALESCE(date,''), COALESCE(due_date,''), COALESCE(credit_days,0),
	COALESCE(customer_id,0), COALESCE(customer_name,''), COALESCE(customer_override,'{}'),
	COALESCE(supplier_id,0), COALESCE(supplier_code,''), COALESCE(supplier_name,''),
	COALESCE(payment_method,''),
	COALESCE(subtotal,0), COALESCE(vat_percent,0), COALESCE(vat_amount,0), COALESCE(grand_total,0),
	COALESCE(po_number,''), COALESCE(inv_number,''), COALESCE(rc_number,''), COALESCE(vc_number,''),
	COALESCE(cancel_reason,''), COALESCE(cancelled_at,'')`

func scanHeader(row interface{ Scan(...any) error }) (models.DocumentHeader, error) {
	var (
		h           models.DocumentHeader
		overrideRaw string
	)
	err := row.Scan(
		&h.ID, &h.Status, &h.Date, &h.DueDate, &h.CreditDays,
		&h.CustomerID, &h.CustomerName, &overrideRaw,
		&h.SupplierID, &h.SupplierCode, &h.SupplierName,
		&h.PaymentMethod,
		&h.Subtotal, &h.VATPercent, &h.VATAmount, &h.GrandTotal,
		&h.PONumber, &h.INVNumber, &h.RCNumber, &h.VCNumber,
		&h.CancelReason, &h.CancelledAt,
	)
	if err != nil {
		return h, err
	}
	decodeOverride(overrideRaw, &h.Override)
	return h, nil
}

func decodeOverride(raw string, dst *models.CustomerOverride) {
	if strings.TrimSpace(raw) == "" {
		return
	}
	_ = json.Unmarshal([]byte(raw), dst)
}

func overrideJSON(o models.CustomerOverride) string {
	raw, err := json.Marshal(o)
	if err != nil {
		return "{}"
	}
	return string(raw)
}

// headerSetClause is the UPDATE assignment list matching headerArgs.
const headerSetClause = `status=?, date=?, due_date=?, credit_days=?,
	customer_id=?, customer_name=?, customer_override=?,
	supplier_id=?, supplier_code=?, supplier_name=?,
	payment_method=?,
	subtotal=?, vat_percent=?, vat_amount=?, grand_total=?, updated_at=NOW()`

func headerArgs(h models.DocumentHeader) []any {
	status := h.Status
	if status == "" {
		status = string(domain.StatusActive)
	}
	return []any{
		status, h.Date, h.DueDate, h.CreditDays,
		h.CustomerID, strings.TrimSpace(h.CustomerName), overrideJSON(h.Override),
		h.SupplierID, strings.TrimSpace(h.SupplierCode), strings.TrimSpace(h.SupplierName),
		h.PaymentMethod,
		h.Subtotal, h.VATPercent, h.VATAmount, h.GrandTotal,
	}
}

// checkHeaderUpdated verifies a header UPDATE touched an existing row.
// RowsAffected is 0 both for a missing id and for an identical rewrite,
// so zero is disambiguated with an existence lookup before the child
// sections are replaced.
func checkHeaderUpdated(tx *sql.Tx, table, resource string, id int64, res sql.Result) error {
	if n, _ := res.RowsAffected(); n > 0 {
		return nil
	}
	var exists int
	if err := tx.QueryRow(`SELECT COUNT(*) FROM `+table+` WHERE id=?`, id).Scan(&exists); err != nil {
		return err
	}
	if exists == 0 {
		return domain.NotFoundError{Resource: resource}
	}
	return nil
}

// replacePricing deletes and reinserts a document's fare-class rows.
// Complete updates always replace the whole section.
func replacePricing(tx *sql.Tx, docType string, docID int64, lines []models.PricingLine) error {
	if _, err := tx.Exec(`DELETE FROM document_pricing WHERE doc_type=? AND doc_id=?`, docType, docID); err != nil {
		return err
	}
	for _, l := range lines {
		if _, err := tx.Exec(`
			INSERT INTO document_pricing (doc_type, doc_id, fare_class, net_price, sale_price, pax, total)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			docType, docID, l.FareClass, l.NetPrice, l.SalePrice, l.Pax, l.Total,
		); err != nil {
			return err
		}
	}
	return nil
}

func replaceExtras(tx *sql.Tx, docType string, docID int64, rows []models.ExtraLine) error {
	if _, err := tx.Exec(`DELETE FROM document_extras WHERE doc_type=? AND doc_id=?`, docType, docID); err != nil {
		return err
	}
	for _, e := range rows {
		if _, err := tx.Exec(`
			INSERT INTO document_extras (doc_type, doc_id, line_no, description, net_price, sale_price, quantity, total_amount)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			docType, docID, e.ID, e.Description, e.NetPrice, e.SalePrice, e.Quantity, e.TotalAmount,
		); err != nil {
			return err
		}
	}
	return nil
}

func loadPricing(db *sql.DB, docType string, docID int64) ([]models.PricingLine, error) {
	rows, err := db.Query(`
		SELECT fare_class, net_price, sale_price, pax, total
		FROM document_pricing WHERE doc_type=? AND doc_id=? ORDER BY fare_class ASC`, docType, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.PricingLine{}
	for rows.Next() {
		var l models.PricingLine
		if err := rows.Scan(&l.FareClass, &l.NetPrice, &l.SalePrice, &l.Pax, &l.Total); err != nil {
			return out, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

func loadExtras(db *sql.DB, docType string, docID int64) ([]models.ExtraLine, error) {
	rows, err := db.Query(`
		SELECT line_no, COALESCE(description,''), net_price, sale_price, quantity, total_amount
		FROM document_extras WHERE doc_type=? AND doc_id=? ORDER BY line_no ASC`, docType, docID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.ExtraLine{}
	for rows.Next() {
		var e models.ExtraLine
		if err := rows.Scan(&e.ID, &e.Description, &e.NetPrice, &e.SalePrice, &e.Quantity, &e.TotalAmount); err != nil {
			return out, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

// cancelDocument marks a document cancelled and writes an audit row.
// The reason is mandatory; cancellation never deletes data.
func cancelDocument(tx *sql.Tx, table, docType string, docID int64, reason, cancelledBy string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domain.ValidationError{Field: "reason", Msg: "cancel reason is required"}
	}

	res, err := tx.Exec(`UPDATE `+table+` SET status=?, cancel_reason=?, cancelled_at=NOW() WHERE id=? AND status<>?`,
		string(domain.StatusCancelled), reason, docID, string(domain.StatusCancelled))
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ConflictError{Resource: docType, Msg: "already cancelled or not found"}
	}

	_, err = tx.Exec(`
		INSERT INTO cancel_audit (audit_id, doc_type, doc_id, reason, cancelled_by, created_at)
		VALUES (?, ?, ?, ?, ?, NOW())`,
		uuid.NewString(), docType, docID, reason, strings.TrimSpace(cancelledBy),
	)
	return err
}
