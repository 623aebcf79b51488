package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type VoucherRepository struct {
	DB *sql.DB
}

func (r VoucherRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r VoucherRepository) GetForEdit(id int64) (models.Voucher, error) {
	db := r.db()
	var v models.Voucher

	row := db.QueryRow(`SELECT `+headerColumns+`,
		COALESCE(service_type,''), COALESCE(trip_from,''), COALESCE(trip_to,''),
		COALESCE(checkin_date,''), COALESCE(checkout_date,'')
		FROM vouchers WHERE id=? LIMIT 1`, id)

	var overrideRaw string
	err := row.Scan(
		&v.ID, &v.Status, &v.Date, &v.DueDate, &v.CreditDays,
		&v.CustomerID, &v.CustomerName, &overrideRaw,
		&v.SupplierID, &v.SupplierCode, &v.SupplierName,
		&v.PaymentMethod,
		&v.Subtotal, &v.VATPercent, &v.VATAmount, &v.GrandTotal,
		&v.PONumber, &v.INVNumber, &v.RCNumber, &v.VCNumber,
		&v.CancelReason, &v.CancelledAt,
		&v.ServiceType, &v.TripFrom, &v.TripTo, &v.CheckinDate, &v.CheckoutDate,
	)
	if err == sql.ErrNoRows {
		return v, domain.NotFoundError{Resource: "voucher"}
	}
	if err != nil {
		return v, err
	}
	decodeOverride(overrideRaw, &v.Override)

	if v.Pricing, err = loadPricing(db, DocVoucher, id); err != nil {
		return v, err
	}
	if v.Extras, err = loadExtras(db, DocVoucher, id); err != nil {
		return v, err
	}
	return v, nil
}

func (r VoucherRepository) CreateComplete(v models.Voucher) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO vouchers SET `+headerSetClause+`,
		service_type=?, trip_from=?, trip_to=?, checkin_date=?, checkout_date=?, created_at=NOW()`,
		append(headerArgs(v.DocumentHeader), v.ServiceType, v.TripFrom, v.TripTo, v.CheckinDate, v.CheckoutDate)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := replacePricing(tx, DocVoucher, id, v.Pricing); err != nil {
		return 0, err
	}
	if err := replaceExtras(tx, DocVoucher, id, v.Extras); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func (r VoucherRepository) UpdateComplete(v models.Voucher) error {
	if v.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE vouchers SET `+headerSetClause+`,
		service_type=?, trip_from=?, trip_to=?, checkin_date=?, checkout_date=? WHERE id=?`,
		append(headerArgs(v.DocumentHeader), v.ServiceType, v.TripFrom, v.TripTo, v.CheckinDate, v.CheckoutDate, v.ID)...)
	if err != nil {
		return err
	}
	if err := checkHeaderUpdated(tx, "vouchers", "voucher", v.ID, res); err != nil {
		return err
	}

	if err := replacePricing(tx, DocVoucher, v.ID, v.Pricing); err != nil {
		return err
	}
	if err := replaceExtras(tx, DocVoucher, v.ID, v.Extras); err != nil {
		return err
	}
	return tx.Commit()
}

func (r VoucherRepository) Cancel(id int64, reason, cancelledBy string) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := cancelDocument(tx, "vouchers", DocVoucher, id, reason, cancelledBy); err != nil {
		return err
	}
	return tx.Commit()
}

// SetNumber stores a minted VC number on the voucher header.
func (r VoucherRepository) SetNumber(tx *sql.Tx, id int64, number string) error {
	_, err := tx.Exec(`UPDATE vouchers SET vc_number=?, updated_at=NOW() WHERE id=?`, number, id)
	return err
}
