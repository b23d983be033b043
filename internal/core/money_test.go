package core

import (
	"encoding/json"
	"testing"
)

func TestParseDecimalToCents(t *testing.T) {
	cases := []struct {
		in  string
		out int64
		ok  bool
	}{
		{"1", 100, true},
		{"1.0", 100, true},
		{"1.23", 123, true},
		{"1,23", 123, true},
		{"0.01", 1, true},
		{"1.005", 101, true}, // half-up rounding
		{" 2.50 ", 250, true},
		{"-1", 0, false},
		{"0", 0, false},
		{"abc", 0, false},
		{"1.2.3", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseDecimalToCents(tc.in)
		if tc.ok {
			if err != nil || got != tc.out {
				t.Fatalf("%q expected %d, got %d (err=%v)", tc.in, tc.out, got, err)
			}
		} else {
			if err == nil {
				t.Fatalf("%q expected error", tc.in)
			}
		}
	}
}

func TestDecimalString(t *testing.T) {
	cases := []struct {
		cents int64
		out   string
	}{
		{100, "1"},
		{123, "1.23"},
		{150, "1.5"},
		{1_000_000, "10000"},
		{1, "0.01"},
	}
	for _, tc := range cases {
		if got := (Money{Cents: tc.cents}).DecimalString(); got != tc.out {
			t.Fatalf("%d cents expected %q, got %q", tc.cents, tc.out, got)
		}
	}
}

func TestMoneyJSONRoundTrip(t *testing.T) {
	cases := []struct {
		cents int64
		wire  string
	}{
		{12345, "123.45"},
		{5000, "50"},
		{50, "0.5"},
	}
	for _, tc := range cases {
		b, err := json.Marshal(Money{Cents: tc.cents})
		if err != nil {
			t.Fatalf("marshal %d: %v", tc.cents, err)
		}
		if string(b) != tc.wire {
			t.Fatalf("%d cents expected wire %q, got %q", tc.cents, tc.wire, b)
		}
		var m Money
		if err := json.Unmarshal(b, &m); err != nil {
			t.Fatalf("unmarshal %q: %v", b, err)
		}
		if m.Cents != tc.cents {
			t.Fatalf("round trip expected %d, got %d", tc.cents, m.Cents)
		}
	}
}

func TestMoneyUnmarshalQuotedString(t *testing.T) {
	var m Money
	if err := json.Unmarshal([]byte(`"12.34"`), &m); err != nil {
		t.Fatalf("expected ok, got %v", err)
	}
	if m.Cents != 1234 {
		t.Fatalf("expected 1234, got %d", m.Cents)
	}
}

func TestParseBudget(t *testing.T) {
	if _, err := ParseBudget("0"); err == nil {
		t.Fatal("expected error for zero budget")
	}
	if _, err := ParseBudget("nope"); err == nil {
		t.Fatal("expected error for garbage budget")
	}
	b, err := ParseBudget("10000")
	if err != nil || b.Cents != 1_000_000 {
		t.Fatalf("expected 1000000 cents, got %d (err=%v)", b.Cents, err)
	}
}
