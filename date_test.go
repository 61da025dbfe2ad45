package autofin

import (
	"encoding/json"
	"testing"
	"time"
)

// TestTime asserts that time() is canonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := NewDate(2025, 7, 31)
	d2 := NewDate(2025, 7, 31)
	if d1.time() != d2.time() {
		t.Errorf("same day gives two different times")
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		input    string
		expected Date
		err      bool
	}{
		{"2025-01-15", NewDate(2025, time.January, 15), false},
		{"2025-7-1", NewDate(2025, time.July, 1), false},
		{"invalid-date", Date{}, true},
		{"2025-13-01", Date{}, true},
		{"", Date{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.err {
				if err == nil {
					t.Fatalf("ParseDate(%q) = %v, want an error", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			if got != tt.expected {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.expected)
			}
		})
	}
}

func TestDateNormalization(t *testing.T) {
	// Out-of-range components roll over like time.Date.
	if got := NewDate(2025, time.January, 32); got != NewDate(2025, time.February, 1) {
		t.Errorf("NewDate(2025, 1, 32) = %v, want 2025-02-01", got)
	}
	if got := NewDate(2024, time.February, 28).Add(1); got != NewDate(2024, time.February, 29) {
		t.Errorf("leap day: got %v, want 2024-02-29", got)
	}
	if got := NewDate(2025, time.December, 31).Add(1); got != NewDate(2026, time.January, 1) {
		t.Errorf("year rollover: got %v, want 2026-01-01", got)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2025, time.March, 1)
	b := NewDate(2025, time.March, 2)
	if !a.Before(b) || b.Before(a) || !b.After(a) {
		t.Errorf("ordering of %v and %v is wrong", a, b)
	}
}

func TestDateJSON(t *testing.T) {
	d := NewDate(2025, time.July, 4)
	data, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `"2025-07-04"` {
		t.Errorf("marshal = %s, want \"2025-07-04\"", data)
	}

	var back Date
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}
