package cli

import (
	"strings"
	"testing"
	"time"

	"tally/internal/core"
)

func TestFormatMoney(t *testing.T) {
	tests := []struct {
		cents int64
		want  string
	}{
		{15000, "₹150"},
		{12345, "₹123.45"},
		{1050, "₹10.5"},
		{0, "₹0"},
	}
	for _, tt := range tests {
		if got := FormatMoney(core.Money{Cents: tt.cents}); got != tt.want {
			t.Errorf("FormatMoney(%d) = %q, want %q", tt.cents, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	if got := FormatPercent(85.7); got != "85.7%" {
		t.Errorf("FormatPercent(85.7) = %q", got)
	}
	if got := FormatPercent(100); got != "100.0%" {
		t.Errorf("FormatPercent(100) = %q", got)
	}
}

func TestFormatDate(t *testing.T) {
	d := time.Date(2025, 8, 30, 10, 0, 0, 0, time.UTC)
	if got := FormatDate(d); got != "Aug 30, 2025" {
		t.Errorf("FormatDate = %q", got)
	}
}

func TestRenderTableSeparator(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Today", "₹150"},
			{"---"},
			{"Month", "₹350"},
		},
	})
	if !strings.Contains(out, "Today") || !strings.Contains(out, "₹350") {
		t.Fatalf("table missing rows:\n%s", out)
	}
	if strings.Contains(out, "---") {
		t.Error("separator marker should render as a rule, not text")
	}
}

func TestRenderBudgetBar(t *testing.T) {
	out := RenderBudgetBar(core.Money{Cents: 5000}, core.Money{Cents: 10000}, 10)
	if !strings.Contains(out, "₹50 / ₹100") {
		t.Errorf("bar missing amounts: %q", out)
	}
	if RenderBudgetBar(core.Money{Cents: 1}, core.Money{}, 10) != "" {
		t.Error("zero budget should render nothing")
	}
}
