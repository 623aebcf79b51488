package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type CustomerRepository struct {
	DB *sql.DB
}

func (r CustomerRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const customerColumns = `id, COALESCE(code,''), COALESCE(name,''),
	COALESCE(address_line1,''), COALESCE(address_line2,''), COALESCE(address_line3,''),
	COALESCE(phone,''), COALESCE(email,''), COALESCE(tax_id,''),
	COALESCE(branch_type,''), COALESCE(branch_number,''), COALESCE(credit_days,0)`

func scanCustomer(row interface{ Scan(...any) error }) (models.Customer, error) {
	var c models.Customer
	err := row.Scan(
		&c.ID, &c.Code, &c.Name,
		&c.AddressLine1, &c.AddressLine2, &c.AddressLine3,
		&c.Phone, &c.Email, &c.TaxID,
		&c.BranchType, &c.BranchNumber, &c.CreditDays,
	)
	return c, err
}

// List returns customers matching a name/code search, newest first.
func (r CustomerRepository) List(search string, page, pageSize int) ([]models.Customer, int, error) {
	db := r.db()
	where := "1=1"
	args := []any{}
	if s := strings.TrimSpace(search); s != "" {
		where = "(name LIKE ? OR code LIKE ?)"
		like := "%" + s + "%"
		args = append(args, like, like)
	}

	var total int
	if err := db.QueryRow(`SELECT COUNT(*) FROM customers WHERE `+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := db.Query(`SELECT `+customerColumns+` FROM customers WHERE `+where+` ORDER BY id DESC LIMIT ? OFFSET ?`, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return out, total, err
		}
		out = append(out, c)
	}
	return out, total, rows.Err()
}

func (r CustomerRepository) GetByID(id int64) (models.Customer, error) {
	row := r.db().QueryRow(`SELECT `+customerColumns+` FROM customers WHERE id=? LIMIT 1`, id)
	c, err := scanCustomer(row)
	if err == sql.ErrNoRows {
		return c, domain.NotFoundError{Resource: "customer"}
	}
	return c, err
}

func (r CustomerRepository) codeTaken(code string, excludeID int64) (bool, error) {
	var n int
	err := r.db().QueryRow(`SELECT COUNT(*) FROM customers WHERE code=? AND id<>?`, code, excludeID).Scan(&n)
	return n > 0, err
}

func (r CustomerRepository) Create(c models.Customer) (int64, error) {
	if strings.TrimSpace(c.Code) == "" || strings.TrimSpace(c.Name) == "" {
		return 0, domain.ValidationError{Field: "code/name", Msg: "required"}
	}
	taken, err := r.codeTaken(c.Code, 0)
	if err != nil {
		return 0, err
	}
	if taken {
		return 0, domain.ConflictError{Resource: "customer", Msg: "code already exists"}
	}

	res, err := r.db().Exec(`
		INSERT INTO customers (code, name, address_line1, address_line2, address_line3,
			phone, email, tax_id, branch_type, branch_number, credit_days, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		strings.TrimSpace(c.Code), strings.TrimSpace(c.Name),
		c.AddressLine1, c.AddressLine2, c.AddressLine3,
		c.Phone, c.Email, c.TaxID, c.BranchType, c.BranchNumber, c.CreditDays,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CustomerRepository) Update(c models.Customer) error {
	if c.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	taken, err := r.codeTaken(c.Code, c.ID)
	if err != nil {
		return err
	}
	if taken {
		return domain.ConflictError{Resource: "customer", Msg: "code already exists"}
	}

	res, err := r.db().Exec(`
		UPDATE customers SET code=?, name=?, address_line1=?, address_line2=?, address_line3=?,
			phone=?, email=?, tax_id=?, branch_type=?, branch_number=?, credit_days=?, updated_at=NOW()
		WHERE id=?`,
		strings.TrimSpace(c.Code), strings.TrimSpace(c.Name),
		c.AddressLine1, c.AddressLine2, c.AddressLine3,
		c.Phone, c.Email, c.TaxID, c.BranchType, c.BranchNumber, c.CreditDays, c.ID,
	)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		// the row may exist with identical values; distinguish via lookup
		if _, err := r.GetByID(c.ID); err != nil {
			return err
		}
	}
	return nil
}
