package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type SupplierRepository struct {
	DB *sql.DB
}

func (r SupplierRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

const supplierColumns = `id, COALESCE(code,''), COALESCE(name,''), COALESCE(numeric_code,''),
	COALESCE(phone,''), COALESCE(email,''), COALESCE(notes,'')`

func scanSupplier(row interface{ Scan(...any) error }) (models.Supplier, error) {
	var s models.Supplier
	err := row.Scan(&s.ID, &s.Code, &s.Name, &s.NumericCode, &s.Phone, &s.Email, &s.Notes)
	return s, err
}

func (r SupplierRepository) List(search string) ([]models.Supplier, error) {
	where := "1=1"
	args := []any{}
	if s := strings.TrimSpace(search); s != "" {
		where = "(name LIKE ? OR code LIKE ?)"
		like := "%" + s + "%"
		args = append(args, like, like)
	}

	rows, err := r.db().Query(`SELECT `+supplierColumns+` FROM suppliers WHERE `+where+` ORDER BY code ASC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// SearchByCode backs the lookup-as-you-type supplier field on booking
// forms. Matches are prefix matches on the short code, case-insensitive.
func (r SupplierRepository) SearchByCode(code string) ([]models.Supplier, error) {
	code = strings.TrimSpace(code)
	if len(code) < 2 || len(code) > 5 {
		return []models.Supplier{}, nil
	}

	rows, err := r.db().Query(`SELECT `+supplierColumns+` FROM suppliers WHERE UPPER(code) LIKE ? ORDER BY code ASC LIMIT 10`,
		strings.ToUpper(code)+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.Supplier{}
	for rows.Next() {
		s, err := scanSupplier(rows)
		if err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (r SupplierRepository) GetByID(id int64) (models.Supplier, error) {
	row := r.db().QueryRow(`SELECT `+supplierColumns+` FROM suppliers WHERE id=? LIMIT 1`, id)
	s, err := scanSupplier(row)
	if err == sql.ErrNoRows {
		return s, domain.NotFoundError{Resource: "supplier"}
	}
	return s, err
}

func (r SupplierRepository) Create(s models.Supplier) (int64, error) {
	if strings.TrimSpace(s.Code) == "" || strings.TrimSpace(s.Name) == "" {
		return 0, domain.ValidationError{Field: "code/name", Msg: "required"}
	}

	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM suppliers WHERE code=?`, s.Code).Scan(&n); err != nil {
		return 0, err
	}
	if n > 0 {
		return 0, domain.ConflictError{Resource: "supplier", Msg: "code already exists"}
	}

	res, err := r.db().Exec(`
		INSERT INTO suppliers (code, name, numeric_code, phone, email, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, NOW(), NOW())`,
		strings.ToUpper(strings.TrimSpace(s.Code)), strings.TrimSpace(s.Name),
		strings.TrimSpace(s.NumericCode), s.Phone, s.Email, s.Notes,
	)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r SupplierRepository) Update(s models.Supplier) error {
	if s.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}

	var n int
	if err := r.db().QueryRow(`SELECT COUNT(*) FROM suppliers WHERE code=? AND id<>?`, s.Code, s.ID).Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return domain.ConflictError{Resource: "supplier", Msg: "code already exists"}
	}

	_, err := r.db().Exec(`
		UPDATE suppliers SET code=?, name=?, numeric_code=?, phone=?, email=?, notes=?, updated_at=NOW()
		WHERE id=?`,
		strings.ToUpper(strings.TrimSpace(s.Code)), strings.TrimSpace(s.Name),
		strings.TrimSpace(s.NumericCode), s.Phone, s.Email, s.Notes, s.ID,
	)
	return err
}
