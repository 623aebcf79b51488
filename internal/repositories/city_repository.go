package repositories

import (
	"database/sql"
	"strings"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type CityRepository struct {
	DB *sql.DB
}

func (r CityRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

func (r CityRepository) List() ([]models.City, error) {
	rows, err := r.db().Query(`SELECT id, COALESCE(code,''), COALESCE(name,''), COALESCE(country,'') FROM cities ORDER BY name ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.City{}
	for rows.Next() {
		var c models.City
		if err := rows.Scan(&c.ID, &c.Code, &c.Name, &c.Country); err != nil {
			return out, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r CityRepository) Create(c models.City) (int64, error) {
	if strings.TrimSpace(c.Name) == "" {
		return 0, domain.ValidationError{Field: "name", Msg: "required"}
	}
	res, err := r.db().Exec(`INSERT INTO cities (code, name, country) VALUES (?, ?, ?)`,
		strings.ToUpper(strings.TrimSpace(c.Code)), strings.TrimSpace(c.Name), strings.TrimSpace(c.Country))
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r CityRepository) Update(c models.City) error {
	if c.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	res, err := r.db().Exec(`UPDATE cities SET code=?, name=?, country=? WHERE id=?`,
		strings.ToUpper(strings.TrimSpace(c.Code)), strings.TrimSpace(c.Name), strings.TrimSpace(c.Country), c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "city"}
	}
	return nil
}

func (r CityRepository) Delete(id int64) error {
	res, err := r.db().Exec(`DELETE FROM cities WHERE id=?`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "city"}
	}
	return nil
}
