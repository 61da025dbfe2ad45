package autofin

import "testing"

func TestMoneyString(t *testing.T) {
	tests := []struct {
		m    Money
		want string
	}{
		{M(1234.56, "USD"), "$1,234.56"},
		{M(1234.56, "EUR"), "€1,234.56"},
		{M(0, "USD"), "$0.00"},
		{M(-12.5, "USD"), "-$12.50"},
	}
	for _, tt := range tests {
		if got := tt.m.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestMoneySignedString(t *testing.T) {
	if got := M(10, "USD").SignedString(); got != "+$10.00" {
		t.Errorf("positive = %q, want +$10.00", got)
	}
	if got := M(0, "USD").SignedString(); got != "-" {
		t.Errorf("zero = %q, want -", got)
	}
}

func TestMoneyArithmetic(t *testing.T) {
	a := M(10.10, "USD")
	b := M(0.20, "USD")
	if got := a.Add(b); !got.Equal(M(10.30, "USD")) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); !got.Equal(M(9.90, "USD")) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mul(2); !got.Equal(M(20.20, "USD")) {
		t.Errorf("Mul = %v", got)
	}
	// The empty currency is weak.
	if got := M(1, "").Add(M(1, "USD")); got.Currency() != "USD" {
		t.Errorf("weak currency lost: %q", got.Currency())
	}
}

func TestMoneyCurrencyMismatch(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("adding USD and EUR did not panic")
		}
	}()
	M(1, "USD").Add(M(1, "EUR"))
}

func TestPercentString(t *testing.T) {
	tests := []struct {
		p            Percent
		want, signed string
	}{
		{12.345, "12.35%", "+12.35%"},
		{-3.2, "-3.20%", "-3.20%"},
		{0, "0.00%", "-"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String(%v) = %q, want %q", float64(tt.p), got, tt.want)
		}
		if got := tt.p.SignedString(); got != tt.signed {
			t.Errorf("SignedString(%v) = %q, want %q", float64(tt.p), got, tt.signed)
		}
	}
}
