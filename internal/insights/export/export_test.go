package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/clothmarket/clothmarket/internal/insights"
)

func TestWriteMonthlyPnLCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteMonthlyPnLCSV(&buf, []insights.MonthlyEntry{
		{Month: "2026-03", Revenue: 1234567.5, Cost: 400000, Profit: 834567.5},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out := buf.String()
	if !strings.HasPrefix(out, "Month,Revenue,Cost,Profit\n") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, `"1,234,567.50"`) {
		t.Fatalf("expected grouped money formatting, got %q", out)
	}
}

func TestWriteCategoryCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteCategoryCSV(&buf, []insights.CategoryStat{
		{Category: "Shirts", Revenue: 200, UnitsSold: 3},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(buf.String(), "Shirts,200.00,3") {
		t.Fatalf("unexpected csv %q", buf.String())
	}
}

func TestWriteDailyCSV(t *testing.T) {
	var buf bytes.Buffer
	err := WriteDailyCSV(&buf, insights.DailySummary{
		Day: "2026-03-10", Revenue: 160, Profit: 90, OrdersCount: 2, ItemsSold: 2,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Day,2026-03-10", "Revenue,160.00", "Orders,2"} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in %q", want, out)
		}
	}
}
