package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

// OtherRepository persists miscellaneous service documents (insurance,
// visa handling, transfers) that share the common header shape.
type OtherRepository struct {
	DB *sql.DB
}

func (r OtherRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r OtherRepository) GetForEdit(id int64) (models.OtherService, error) {
	db := r.db()
	var o models.OtherService

	row := db.QueryRow(`SELECT `+headerColumns+`, COALESCE(service_type,''), COALESCE(description,'')
		FROM other_services WHERE id=? LIMIT 1`, id)

	var overrideRaw string
	err := row.Scan(
		&o.ID, &o.Status, &o.Date, &o.DueDate, &o.CreditDays,
		&o.CustomerID, &o.CustomerName, &overrideRaw,
		&o.SupplierID, &o.SupplierCode, &o.SupplierName,
		&o.PaymentMethod,
		&o.Subtotal, &o.VATPercent, &o.VATAmount, &o.GrandTotal,
		&o.PONumber, &o.INVNumber, &o.RCNumber, &o.VCNumber,
		&o.CancelReason, &o.CancelledAt,
		&o.ServiceType, &o.Description,
	)
	if err == sql.ErrNoRows {
		return o, domain.NotFoundError{Resource: "other service"}
	}
	if err != nil {
		return o, err
	}
	decodeOverride(overrideRaw, &o.Override)

	if o.Pricing, err = loadPricing(db, DocOther, id); err != nil {
		return o, err
	}
	if o.Extras, err = loadExtras(db, DocOther, id); err != nil {
		return o, err
	}
	return o, nil
}

func (r OtherRepository) CreateComplete(o models.OtherService) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO other_services SET `+headerSetClause+`, service_type=?, description=?, created_at=NOW()`,
		append(headerArgs(o.DocumentHeader), o.ServiceType, o.Description)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := replacePricing(tx, DocOther, id, o.Pricing); err != nil {
		return 0, err
	}
	if err := replaceExtras(tx, DocOther, id, o.Extras); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func (r OtherRepository) UpdateComplete(o models.OtherService) error {
	if o.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE other_services SET `+headerSetClause+`, service_type=?, description=? WHERE id=?`,
		append(headerArgs(o.DocumentHeader), o.ServiceType, o.Description, o.ID)...)
	if err != nil {
		return err
	}
	if err := checkHeaderUpdated(tx, "other_services", "other service", o.ID, res); err != nil {
		return err
	}

	if err := replacePricing(tx, DocOther, o.ID, o.Pricing); err != nil {
		return err
	}
	if err := replaceExtras(tx, DocOther, o.ID, o.Extras); err != nil {
		return err
	}
	return tx.Commit()
}

func (r OtherRepository) Cancel(id int64, reason, cancelledBy string) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := cancelDocument(tx, "other_services", DocOther, id, reason, cancelledBy); err != nil {
		return err
	}
	return tx.Commit()
}

// SetNumber stores a minted VC number on the header.
func (r OtherRepository) SetNumber(tx *sql.Tx, id int64, number string) error {
	_, err := tx.Exec(`UPDATE other_services SET vc_number=?, updated_at=NOW() WHERE id=?`, number, id)
	return err
}
