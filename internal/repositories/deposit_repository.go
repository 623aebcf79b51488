package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type DepositRepository struct {
	DB *sql.DB
}

func (r DepositRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r DepositRepository) GetForEdit(id int64) (models.Deposit, error) {
	db := r.db()
	var d models.Deposit

	row := db.QueryRow(`SELECT `+headerColumns+`, COALESCE(deposit_amount,0), COALESCE(deposit_pax,0), COALESCE(deposit_total,0)
		FROM deposits WHERE id=? LIMIT 1`, id)

	var overrideRaw string
	err := row.Scan(
		&d.ID, &d.Status, &d.Date, &d.DueDate, &d.CreditDays,
		&d.CustomerID, &d.CustomerName, &overrideRaw,
		&d.SupplierID, &d.SupplierCode, &d.SupplierName,
		&d.PaymentMethod,
		&d.Subtotal, &d.VATPercent, &d.VATAmount, &d.GrandTotal,
		&d.PONumber, &d.INVNumber, &d.RCNumber, &d.VCNumber,
		&d.CancelReason, &d.CancelledAt,
		&d.DepositAmount, &d.DepositPax, &d.DepositTotal,
	)
	if err == sql.ErrNoRows {
		return d, domain.NotFoundError{Resource: "deposit"}
	}
	if err != nil {
		return d, err
	}
	decodeOverride(overrideRaw, &d.Override)

	if d.Pricing, err = loadPricing(db, DocDeposit, id); err != nil {
		return d, err
	}
	if d.Extras, err = loadExtras(db, DocDeposit, id); err != nil {
		return d, err
	}
	return d, nil
}

func (r DepositRepository) CreateComplete(d models.Deposit) (int64, error) {
	tx, err := r.db().Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO deposits SET `+headerSetClause+`, deposit_amount=?, deposit_pax=?, deposit_total=?, created_at=NOW()`,
		append(headerArgs(d.DocumentHeader), d.DepositAmount, d.DepositPax, d.DepositTotal)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := replacePricing(tx, DocDeposit, id, d.Pricing); err != nil {
		return 0, err
	}
	if err := replaceExtras(tx, DocDeposit, id, d.Extras); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

func (r DepositRepository) UpdateComplete(d models.Deposit) error {
	if d.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE deposits SET `+headerSetClause+`, deposit_amount=?, deposit_pax=?, deposit_total=? WHERE id=?`,
		append(headerArgs(d.DocumentHeader), d.DepositAmount, d.DepositPax, d.DepositTotal, d.ID)...)
	if err != nil {
		return err
	}
	if err := checkHeaderUpdated(tx, "deposits", "deposit", d.ID, res); err != nil {
		return err
	}

	if err := replacePricing(tx, DocDeposit, d.ID, d.Pricing); err != nil {
		return err
	}
	if err := replaceExtras(tx, DocDeposit, d.ID, d.Extras); err != nil {
		return err
	}
	return tx.Commit()
}

func (r DepositRepository) Cancel(id int64, reason, cancelledBy string) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := cancelDocument(tx, "deposits", DocDeposit, id, reason, cancelledBy); err != nil {
		return err
	}
	return tx.Commit()
}
