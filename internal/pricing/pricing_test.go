package pricing

import "testing"

func TestUpdateRecomputesLineTotal(t *testing.T) {
	tbl := NewTable("adult", "child", "infant")

	tbl.Update("adult", FieldNet, "1000", nil)
	tbl.Update("adult", FieldSale, "1200", nil)
	tbl.Update("adult", FieldPax, "2", nil)
	if tbl["adult"].Total != 2400 {
		t.Fatalf("adult total = %v, want 2400", tbl["adult"].Total)
	}

	tbl.Update("child", FieldSale, "800", nil)
	tbl.Update("child", FieldPax, "1", nil)
	if tbl["child"].Total != 800 {
		t.Fatalf("child total = %v, want 800", tbl["child"].Total)
	}

	tbl.Update("infant", FieldPax, "0", nil)
	if tbl["infant"].Total != 0 {
		t.Fatalf("infant total = %v, want 0", tbl["infant"].Total)
	}
}

func TestUpdateCreatesUnknownKeys(t *testing.T) {
	tbl := Table{}
	tbl.Update("adt3", FieldSale, "500", nil)
	e, ok := tbl["adt3"]
	if !ok {
		t.Fatalf("entry not created for new key")
	}
	if e.Sale != 500 || e.Pax != 0 || e.Total != 0 {
		t.Fatalf("unexpected entry %+v", e)
	}
}

func TestUpdateCoercesBadInput(t *testing.T) {
	tbl := NewTable("adult")
	tbl.Update("adult", FieldSale, "abc", nil)
	tbl.Update("adult", FieldPax, "", nil)
	if tbl["adult"].Sale != 0 || tbl["adult"].Pax != 0 || tbl["adult"].Total != 0 {
		t.Fatalf("bad input not coerced: %+v", tbl["adult"])
	}
}

func TestUpdateExplicitTotalWins(t *testing.T) {
	tbl := NewTable("deposit")
	explicit := 9999.0
	tbl.Update("deposit", FieldSale, "100", &explicit)
	if tbl["deposit"].Total != 9999 {
		t.Fatalf("explicit total ignored: %v", tbl["deposit"].Total)
	}
	// next update without explicit total falls back to sale*pax
	tbl.Update("deposit", FieldPax, "3", nil)
	if tbl["deposit"].Total != 300 {
		t.Fatalf("recompute after explicit total = %v, want 300", tbl["deposit"].Total)
	}
}

func TestSubtotal(t *testing.T) {
	if got := (Table{}).Subtotal(); got != 0 {
		t.Fatalf("empty table subtotal = %v", got)
	}

	tbl := NewTable("adult", "child")
	tbl.Update("adult", FieldSale, "1200", nil)
	tbl.Update("adult", FieldPax, "2", nil)
	tbl.Update("child", FieldSale, "800", nil)
	tbl.Update("child", FieldPax, "1", nil)
	if got := tbl.Subtotal(); got != 3200 {
		t.Fatalf("subtotal = %v, want 3200", got)
	}
}

// Ticket pricing scenario: adult 1200x2 + child 800x1 + infant 0 +
// one extras row 500x1, VAT 7%.
func TestTicketPricingScenario(t *testing.T) {
	tbl := NewTable("adult", "child", "infant")
	tbl.Update("adult", FieldNet, "1000", nil)
	tbl.Update("adult", FieldSale, "1200", nil)
	tbl.Update("adult", FieldPax, "2", nil)
	tbl.Update("child", FieldSale, "800", nil)
	tbl.Update("child", FieldPax, "1", nil)
	tbl.Update("infant", FieldPax, "0", nil)

	extras := NewExtraLines()
	rows := extras.Rows()
	extras.UpdateField(rows[0].ID, ExtraSalePrice, "500")
	extras.UpdateField(rows[0].ID, ExtraQuantity, "1")

	subtotal := tbl.Subtotal() + extras.Total()
	if subtotal != 3700 {
		t.Fatalf("subtotal = %v, want 3700", subtotal)
	}

	vat := VATAmount(subtotal, 7)
	if vat != 259.00 {
		t.Fatalf("vat = %v, want 259.00", vat)
	}
	if got := GrandTotal(subtotal, vat); got != 3959.00 {
		t.Fatalf("grand total = %v, want 3959.00", got)
	}
}

// Deposit scenario: 5000 per pax x 2, independent of the pricing table.
func TestDepositScenario(t *testing.T) {
	var d DepositPricing
	d.SetAmount("5000")
	d.SetPax("2")
	if d.Total != 10000 {
		t.Fatalf("deposit total = %v, want 10000", d.Total)
	}

	tbl := NewTable("adult")
	tbl.Update("adult", FieldSale, "300", nil)
	tbl.Update("adult", FieldPax, "1", nil)
	extras := NewExtraLines()

	// combined subtotal excludes the deposit total per the document model
	if got := tbl.Subtotal() + extras.Total(); got != 300 {
		t.Fatalf("combined subtotal = %v, want 300", got)
	}
}
