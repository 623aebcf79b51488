package repositories

import (
	"database/sql"

	intconfig "backoffice/internal/config"
	"backoffice/internal/domain"
	"backoffice/internal/domain/models"
)

type TicketRepository struct {
	DB *sql.DB
}

func (r TicketRepository) db() *sql.DB {
	if r.DB != nil {
		return r.DB
	}
	return intconfig.DB
}

// GetForEdit loads the full document: header plus passengers, routes,
// pricing and extras, the shape the edit view replaces on save.
func (r TicketRepository) GetForEdit(id int64) (models.FlightTicket, error) {
	db := r.db()
	var t models.FlightTicket

	row := db.QueryRow(`SELECT `+headerColumns+` FROM flight_tickets WHERE id=? LIMIT 1`, id)
	h, err := scanHeader(row)
	if err == sql.ErrNoRows {
		return t, domain.NotFoundError{Resource: "flight ticket"}
	}
	if err != nil {
		return t, err
	}
	t.DocumentHeader = h

	rows, err := db.Query(`
		SELECT id, COALESCE(name,''), COALESCE(fare_class,''), COALESCE(ticket_number,'')
		FROM ticket_passengers WHERE ticket_id=? ORDER BY id ASC`, id)
	if err != nil {
		return t, err
	}
	for rows.Next() {
		var p models.Passenger
		if err := rows.Scan(&p.ID, &p.Name, &p.FareClass, &p.TicketNumber); err != nil {
			rows.Close()
			return t, err
		}
		t.Passengers = append(t.Passengers, p)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return t, err
	}

	rows, err = db.Query(`
		SELECT id, COALESCE(origin,''), COALESCE(destination,''), COALESCE(airline,''), COALESCE(flight_no,''),
		       COALESCE(depart_date,''), COALESCE(depart_time,''), COALESCE(arrive_time,''), COALESCE(class,'')
		FROM ticket_routes WHERE ticket_id=? ORDER BY id ASC`, id)
	if err != nil {
		return t, err
	}
	for rows.Next() {
		var seg models.RouteSegment
		if err := rows.Scan(&seg.ID, &seg.Origin, &seg.Destination, &seg.Airline, &seg.FlightNo,
			&seg.DepartDate, &seg.DepartTime, &seg.ArriveTime, &seg.Class); err != nil {
			rows.Close()
			return t, err
		}
		t.Routes = append(t.Routes, seg)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return t, err
	}

	if t.Pricing, err = loadPricing(db, DocTicket, id); err != nil {
		return t, err
	}
	if t.Extras, err = loadExtras(db, DocTicket, id); err != nil {
		return t, err
	}
	return t, nil
}

// CreateComplete inserts the header and every sub-section in one
// transaction and returns the new document id.
func (r TicketRepository) CreateComplete(t models.FlightTicket) (int64, error) {
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`
		INSERT INTO flight_tickets SET `+headerSetClause+`, created_at=NOW()`,
		headerArgs(t.DocumentHeader)...)
	if err != nil {
		return 0, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	if err := r.replaceChildren(tx, id, t); err != nil {
		return 0, err
	}
	return id, tx.Commit()
}

// UpdateComplete replaces the whole document in one transaction:
// header update plus delete-and-reinsert of every child section. This
// matches the gateway's full-document contract; there is no field PATCH.
func (r TicketRepository) UpdateComplete(t models.FlightTicket) error {
	if t.ID <= 0 {
		return domain.ValidationError{Field: "id", Msg: "required"}
	}
	db := r.db()
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.Exec(`UPDATE flight_tickets SET `+headerSetClause+` WHERE id=?`,
		append(headerArgs(t.DocumentHeader), t.ID)...)
	if err != nil {
		return err
	}
	if err := checkHeaderUpdated(tx, "flight_tickets", "flight ticket", t.ID, res); err != nil {
		return err
	}

	if err := r.replaceChildren(tx, t.ID, t); err != nil {
		return err
	}
	return tx.Commit()
}

func (r TicketRepository) replaceChildren(tx *sql.Tx, id int64, t models.FlightTicket) error {
	if _, err := tx.Exec(`DELETE FROM ticket_passengers WHERE ticket_id=?`, id); err != nil {
		return err
	}
	for _, p := range t.Passengers {
		if _, err := tx.Exec(`
			INSERT INTO ticket_passengers (ticket_id, name, fare_class, ticket_number)
			VALUES (?, ?, ?, ?)`, id, p.Name, p.FareClass, p.TicketNumber); err != nil {
			return err
		}
	}

	if _, err := tx.Exec(`DELETE FROM ticket_routes WHERE ticket_id=?`, id); err != nil {
		return err
	}
	for _, seg := range t.Routes {
		if _, err := tx.Exec(`
			INSERT INTO ticket_routes (ticket_id, origin, destination, airline, flight_no, depart_date, depart_time, arrive_time, class)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			id, seg.Origin, seg.Destination, seg.Airline, seg.FlightNo,
			seg.DepartDate, seg.DepartTime, seg.ArriveTime, seg.Class); err != nil {
			return err
		}
	}

	if err := replacePricing(tx, DocTicket, id, t.Pricing); err != nil {
		return err
	}
	return replaceExtras(tx, DocTicket, id, t.Extras)
}

// Cancel marks the ticket cancelled with an audit row.
func (r TicketRepository) Cancel(id int64, reason, cancelledBy string) error {
	tx, err := r.db().Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := cancelDocument(tx, "flight_tickets", DocTicket, id, reason, cancelledBy); err != nil {
		return err
	}
	return tx.Commit()
}

// SetNumber stores a freshly minted document number on the header.
func (r TicketRepository) SetNumber(tx *sql.Tx, id int64, kind, number string) error {
	col := ""
	switch kind {
	case KindPO:
		col = "po_number"
	case KindINV:
		col = "inv_number"
	case KindRC:
		col = "rc_number"
	case KindVC:
		col = "vc_number"
	default:
		return domain.ValidationError{Field: "kind", Msg: "unknown document kind " + kind}
	}
	_, err := tx.Exec(`UPDATE flight_tickets SET `+col+`=?, updated_at=NOW() WHERE id=?`, number, id)
	return err
}

// TicketSummary is the list row for invoice/receipt pickers.
type TicketSummary struct {
	ID           int64   `json:"id"`
	Date         string  `json:"date"`
	CustomerName string  `json:"customer_name"`
	GrandTotal   float64 `json:"grand_total"`
	PONumber     string  `json:"po_number"`
	INVNumber    string  `json:"inv_number"`
	RCNumber     string  `json:"rc_number"`
}

func (r TicketRepository) listSummaries(filter string, args ...any) ([]TicketSummary, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(date,''), COALESCE(customer_name,''), COALESCE(grand_total,0),
		       COALESCE(po_number,''), COALESCE(inv_number,''), COALESCE(rc_number,'')
		FROM flight_tickets WHERE `+filter+` ORDER BY id DESC`, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []TicketSummary{}
	for rows.Next() {
		var s TicketSummary
		if err := rows.Scan(&s.ID, &s.Date, &s.CustomerName, &s.GrandTotal, &s.PONumber, &s.INVNumber, &s.RCNumber); err != nil {
			return out, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListForInvoice returns active tickets not yet invoiced.
func (r TicketRepository) ListForInvoice() ([]TicketSummary, error) {
	return r.listSummaries(`status='active' AND COALESCE(inv_number,'')=''`)
}

// ListForReceipt returns invoiced tickets without a receipt yet.
func (r TicketRepository) ListForReceipt() ([]TicketSummary, error) {
	return r.listSummaries(`status='active' AND COALESCE(inv_number,'')<>'' AND COALESCE(rc_number,'')=''`)
}
