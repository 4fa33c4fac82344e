package model

import "testing"

func TestNormalizeSymbol(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"msft", "MSFT"},
		{"MSFT", "MSFT"},
		{" tsla ", "TSLA"},
		{"brk.b", "BRK.B"},
		{"", ""},
		{"  ", ""},
	}
	for _, tt := range tests {
		if got := NormalizeSymbol(tt.in); got != tt.want {
			t.Errorf("NormalizeSymbol(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNormalizeSymbolIdempotent(t *testing.T) {
	inputs := []string{"msft", " aapl ", "GOOGL", "brk.b", ""}
	for _, in := range inputs {
		once := NormalizeSymbol(in)
		twice := NormalizeSymbol(once)
		if once != twice {
			t.Errorf("NormalizeSymbol not idempotent for %q: %q != %q", in, once, twice)
		}
	}
}

func TestSessionPresent(t *testing.T) {
	if (Session{}).Present() {
		t.Error("zero session should be absent")
	}
	if !(Session{Token: "abc"}).Present() {
		t.Error("session with token should be present")
	}
}
