package pricing

import (
	"testing"

	"backoffice/internal/domain/models"
)

func TestExtrasTotalFollowsSalePriceAndQuantity(t *testing.T) {
	e := NewExtraLines()
	id := e.Rows()[0].ID

	e.UpdateField(id, ExtraSalePrice, "500")
	e.UpdateField(id, ExtraQuantity, "2")
	if got := e.Rows()[0].TotalAmount; got != 1000 {
		t.Fatalf("total_amount = %v, want 1000", got)
	}

	// net price edits never touch total_amount
	e.UpdateField(id, ExtraNetPrice, "400")
	if got := e.Rows()[0].TotalAmount; got != 1000 {
		t.Fatalf("net price edit changed total_amount: %v", got)
	}

	e.UpdateField(id, ExtraQuantity, "3")
	if got := e.Rows()[0].TotalAmount; got != 1500 {
		t.Fatalf("total_amount = %v, want 1500", got)
	}
}

func TestExtrasRemoveKeepsLastRow(t *testing.T) {
	e := NewExtraLines()
	first := e.Rows()[0].ID

	e.Remove(first)
	if len(e.Rows()) != 1 {
		t.Fatalf("last row removed, count = %d", len(e.Rows()))
	}

	second := e.Add()
	e.Remove(first)
	rows := e.Rows()
	if len(rows) != 1 || rows[0].ID != second.ID {
		t.Fatalf("unexpected rows after remove: %+v", rows)
	}
}

func TestExtrasSequentialIDs(t *testing.T) {
	e := NewExtraLines()
	a := e.Add()
	b := e.Add()
	if b.ID != a.ID+1 {
		t.Fatalf("ids not sequential: %d then %d", a.ID, b.ID)
	}
}

func TestExtraLinesFromPersistedRows(t *testing.T) {
	e := ExtraLinesFrom(nil)
	if len(e.Rows()) != 1 {
		t.Fatalf("empty input should seed one blank row")
	}

	e = ExtraLinesFrom([]models.ExtraLine{
		{ID: 3, Description: "Baggage", SalePrice: 500, Quantity: 1, TotalAmount: 500},
	})
	next := e.Add()
	if next.ID != 4 {
		t.Fatalf("next id after persisted rows = %d, want 4", next.ID)
	}
	if got := e.Total(); got != 500 {
		t.Fatalf("total = %v, want 500", got)
	}
}
