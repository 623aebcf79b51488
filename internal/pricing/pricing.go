// Package pricing implements the per-fare-class pricing table shared by
// ticket, deposit and voucher forms: net/sale/pax line totals, subtotal
// aggregation and VAT math.
package pricing

import (
	"sort"

	"backoffice/internal/utils"
)

// Field selects which sub-field of an entry an update touches.
type Field string

const (
	FieldNet  Field = "net"
	FieldSale Field = "sale"
	FieldPax  Field = "pax"
)

// Entry holds one fare-class row. Total follows Sale*Pax unless the
// caller supplied an explicit total.
type Entry struct {
	Net   float64 `json:"net"`
	Sale  float64 `json:"sale"`
	Pax   int     `json:"pax"`
	Total float64 `json:"total"`
}

// Table maps fare-class keys (adult/child/infant, adt1..adt3, ...) to
// entries. Unknown keys are created on first touch; the table never
// rejects an update.
type Table map[string]Entry

// NewTable returns a table pre-seeded with zeroed entries for the
// given fare-class keys.
func NewTable(keys ...string) Table {
	t := Table{}
	for _, k := range keys {
		t[k] = Entry{}
	}
	return t
}

// Update sets one field of one fare-class entry from user-typed input
// and recomputes that entry's line total. Non-numeric input coerces to
// zero. When explicitTotal is non-nil it wins over the Sale*Pax rule.
func (t Table) Update(key string, field Field, value string, explicitTotal *float64) {
	e := t[key]
	switch field {
	case FieldNet:
		e.Net = utils.ParseAmount(value)
	case FieldSale:
		e.Sale = utils.ParseAmount(value)
	case FieldPax:
		e.Pax = utils.ParseCount(value)
	}
	if explicitTotal != nil {
		e.Total = *explicitTotal
	} else {
		e.Total = e.Sale * float64(e.Pax)
	}
	t[key] = e
}

// Subtotal sums all line totals currently in the table. Extras are not
// included; callers compose the two sums themselves.
func (t Table) Subtotal() float64 {
	var sum float64
	for _, e := range t {
		sum += e.Total
	}
	return sum
}

// Keys returns fare-class keys in stable order, for persistence.
func (t Table) Keys() []string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// DepositPricing is the deposit form's two-slot structure. Deposits are
// tracked and persisted separately from the fare-class table.
type DepositPricing struct {
	Amount float64 `json:"amount"`
	Pax    int     `json:"pax"`
	Total  float64 `json:"total"`
}

// SetAmount updates the per-pax deposit amount and recomputes the total.
func (d *DepositPricing) SetAmount(value string) {
	d.Amount = utils.ParseAmount(value)
	d.Total = d.Amount * float64(d.Pax)
}

// SetPax updates the deposit pax count and recomputes the total.
func (d *DepositPricing) SetPax(value string) {
	d.Pax = utils.ParseCount(value)
	d.Total = d.Amount * float64(d.Pax)
}
