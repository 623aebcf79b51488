package pricing

import (
	"backoffice/internal/domain/models"
	"backoffice/internal/utils"
)

// ExtraField selects which column of an extras row an update touches.
type ExtraField string

const (
	ExtraDescription ExtraField = "description"
	ExtraNetPrice    ExtraField = "net_price"
	ExtraSalePrice   ExtraField = "sale_price"
	ExtraQuantity    ExtraField = "quantity"
)

// ExtraLines manages a form's ordered extras rows. A form always keeps
// at least one, possibly blank, row.
type ExtraLines struct {
	rows   []models.ExtraLine
	nextID int64
}

// NewExtraLines starts with a single blank row.
func NewExtraLines() *ExtraLines {
	e := &ExtraLines{nextID: 1}
	e.Add()
	return e
}

// ExtraLinesFrom adopts persisted rows; an empty slice still yields one
// blank row.
func ExtraLinesFrom(rows []models.ExtraLine) *ExtraLines {
	e := &ExtraLines{}
	for _, r := range rows {
		if r.ID >= e.nextID {
			e.nextID = r.ID + 1
		}
		e.rows = append(e.rows, r)
	}
	if len(e.rows) == 0 {
		e.nextID = 1
		e.Add()
	}
	return e
}

// Add appends a zeroed row with the next sequential id.
func (e *ExtraLines) Add() models.ExtraLine {
	row := models.ExtraLine{ID: e.nextID}
	e.nextID++
	e.rows = append(e.rows, row)
	return row
}

// Remove deletes a row unless it is the last remaining one.
func (e *ExtraLines) Remove(id int64) {
	if len(e.rows) <= 1 {
		return
	}
	for i, r := range e.rows {
		if r.ID == id {
			e.rows = append(e.rows[:i], e.rows[i+1:]...)
			return
		}
	}
}

// UpdateField sets one column of one row. Sale price and quantity edits
// recompute total_amount; net price is cost basis and never does.
func (e *ExtraLines) UpdateField(id int64, field ExtraField, value string) {
	for i := range e.rows {
		if e.rows[i].ID != id {
			continue
		}
		switch field {
		case ExtraDescription:
			e.rows[i].Description = value
		case ExtraNetPrice:
			e.rows[i].NetPrice = utils.ParseAmount(value)
		case ExtraSalePrice:
			e.rows[i].SalePrice = utils.ParseAmount(value)
			e.rows[i].TotalAmount = e.rows[i].SalePrice * float64(e.rows[i].Quantity)
		case ExtraQuantity:
			e.rows[i].Quantity = utils.ParseCount(value)
			e.rows[i].TotalAmount = e.rows[i].SalePrice * float64(e.rows[i].Quantity)
		}
		return
	}
}

// Total sums total_amount across all rows.
func (e *ExtraLines) Total() float64 {
	var sum float64
	for _, r := range e.rows {
		sum += r.TotalAmount
	}
	return sum
}

// Rows returns a copy of the current rows in order.
func (e *ExtraLines) Rows() []models.ExtraLine {
	out := make([]models.ExtraLine, len(e.rows))
	copy(out, e.rows)
	return out
}

// ExtrasTotal sums persisted rows without constructing a manager.
func ExtrasTotal(rows []models.ExtraLine) float64 {
	var sum float64
	for _, r := range rows {
		sum += r.TotalAmount
	}
	return sum
}
