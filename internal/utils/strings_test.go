package utils

import "testing"

func TestJoinAddressSkipsEmptySegments(t *testing.T) {
	got := JoinAddress("123 Main Rd", "", "Bangkok")
	if got != "123 Main Rd Bangkok" {
		t.Fatalf("JoinAddress = %q", got)
	}
	if JoinAddress("", "  ", "") != "" {
		t.Fatalf("all-empty address should be blank")
	}
}

func TestFirstNonEmpty(t *testing.T) {
	if got := FirstNonEmpty("", "  ", "x", "y"); got != "x" {
		t.Fatalf("FirstNonEmpty = %q", got)
	}
}
