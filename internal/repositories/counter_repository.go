package repositories

import (
	"database/sql"
	"fmt"
	"time"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
)

// Document number kinds minted by the back office.
const (
	KindPO  = "PO"
	KindINV = "INV"
	KindRC  = "RC"
	KindVC  = "VC"
)

// CounterRepository mints sequential document numbers. The counter row
// is locked for the duration of the transaction so two operators can
// never receive the same number.
type CounterRepository struct {
	DB *sql.DB
}

func (r CounterRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// NextNumber reserves and returns the next number for a kind within the
// current year, formatted like PO-2026-000123. Must run inside tx.
func (r CounterRepository) NextNumber(tx *sql.Tx, kind string) (string, error) {
	switch kind {
	case KindPO, KindINV, KindRC, KindVC:
	default:
		return "", domain.ValidationError{Field: "kind", Msg: "unknown document kind " + kind}
	}

	year := time.Now().Year()

	var last int64
	err := tx.QueryRow(`SELECT last_value FROM document_counters WHERE kind=? AND year=? FOR UPDATE`, kind, year).Scan(&last)
	switch {
	case err == sql.ErrNoRows:
		if _, err := tx.Exec(`INSERT INTO document_counters (kind, year, last_value) VALUES (?, ?, 1)`, kind, year); err != nil {
			return "", err
		}
		last = 1
	case err != nil:
		return "", err
	default:
		last++
		if _, err := tx.Exec(`UPDATE document_counters SET last_value=? WHERE kind=? AND year=?`, last, kind, year); err != nil {
			return "", err
		}
	}

	return fmt.Sprintf("%s-%d-%06d", kind, year, last), nil
}
