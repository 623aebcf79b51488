package pricing

import "testing"

func TestVATAmountRounds(t *testing.T) {
	if got := VATAmount(3700, 7); got != 259.00 {
		t.Fatalf("VATAmount(3700, 7) = %v, want 259.00", got)
	}
	if got := VATAmount(1234.56, 7); got != 86.42 {
		t.Fatalf("VATAmount(1234.56, 7) = %v, want 86.42", got)
	}
	if got := VATAmount(100, 0); got != 0 {
		t.Fatalf("zero percent should yield 0, got %v", got)
	}
}

func TestGrandTotal(t *testing.T) {
	if got := GrandTotal(3700, 259); got != 3959.00 {
		t.Fatalf("GrandTotal = %v, want 3959.00", got)
	}
}

func TestResolveVATFallback(t *testing.T) {
	// stored zero with non-zero percent: only recomputes when opted in
	if got := ResolveVAT(0, 7, 1000, true); got != 70 {
		t.Fatalf("ResolveVAT recompute = %v, want 70", got)
	}
	if got := ResolveVAT(0, 7, 1000, false); got != 0 {
		t.Fatalf("ResolveVAT should trust stored zero, got %v", got)
	}
	// stored non-zero always wins
	if got := ResolveVAT(65.5, 7, 1000, true); got != 65.5 {
		t.Fatalf("ResolveVAT overwrote stored value: %v", got)
	}
}
