package utils

import "testing"

func TestParseAmountCoercesBadInputToZero(t *testing.T) {
	cases := map[string]float64{
		"":        0,
		"  ":      0,
		"abc":     0,
		"1200":    1200,
		"1,200.5": 1200.5,
		"-3":      -3,
		"0.07":    0.07,
	}
	for in, want := range cases {
		if got := ParseAmount(in); got != want {
			t.Fatalf("ParseAmount(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestParseCount(t *testing.T) {
	cases := map[string]int{
		"":    0,
		"2":   2,
		"2.0": 2,
		"x":   0,
		"-1":  -1,
	}
	for in, want := range cases {
		if got := ParseCount(in); got != want {
			t.Fatalf("ParseCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestRound2HalfAwayFromZero(t *testing.T) {
	if got := Round2(2.675); got != 2.68 {
		t.Fatalf("Round2(2.675) = %v, want 2.68", got)
	}
	if got := Round2(-2.675); got != -2.68 {
		t.Fatalf("Round2(-2.675) = %v, want -2.68", got)
	}
	if got := Round2(259.004); got != 259.00 {
		t.Fatalf("Round2(259.004) = %v", got)
	}
}

func TestFormatBaht(t *testing.T) {
	if got := FormatBaht(3959); got != "3,959.00" {
		t.Fatalf("FormatBaht(3959) = %q", got)
	}
	if got := FormatBaht(-1200.5); got != "-1,200.50" {
		t.Fatalf("FormatBaht(-1200.5) = %q", got)
	}
}

func TestFormatBahtCarriesRoundedFraction(t *testing.T) {
	// legacy rows can store >2dp amounts; rounding up must carry into
	// the whole-baht figure instead of printing a 3-digit satang field
	cases := map[float64]string{
		9.999:    "10.00",
		999.995:  "1,000.00",
		-9.999:   "-10.00",
		2.675:    "2.68",
		1234.005: "1,234.01",
	}
	for in, want := range cases {
		if got := FormatBaht(in); got != want {
			t.Fatalf("FormatBaht(%v) = %q, want %q", in, got, want)
		}
	}
}
