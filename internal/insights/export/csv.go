package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/clothmarket/clothmarket/internal/insights"
)

var printer = message.NewPrinter(language.English)

// WriteDailyCSV serialises a daily trading summary to CSV.
func WriteDailyCSV(w io.Writer, s insights.DailySummary) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()

	if err := writer.Write([]string{"Metric", "Value"}); err != nil {
		return err
	}
	records := [][]string{
		{"Day", s.Day},
		{"Revenue", formatMoney(s.Revenue)},
		{"Profit", formatMoney(s.Profit)},
		{"Orders", strconv.Itoa(s.OrdersCount)},
		{"Items Sold", strconv.Itoa(s.ItemsSold)},
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteMonthlyPnLCSV emits the monthly P&L movement as CSV.
func WriteMonthlyPnLCSV(w io.Writer, entries []insights.MonthlyEntry) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"Month", "Revenue", "Cost", "Profit"}); err != nil {
		return err
	}
	for _, e := range entries {
		if err := writer.Write([]string{
			e.Month,
			formatMoney(e.Revenue),
			formatMoney(e.Cost),
			formatMoney(e.Profit),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteCategoryCSV prints category rollups to CSV.
func WriteCategoryCSV(w io.Writer, stats []insights.CategoryStat) error {
	writer := csv.NewWriter(w)
	defer writer.Flush()
	if err := writer.Write([]string{"Category", "Revenue", "Units Sold"}); err != nil {
		return err
	}
	for _, s := range stats {
		if err := writer.Write([]string{
			s.Category,
			formatMoney(s.Revenue),
			strconv.Itoa(s.UnitsSold),
		}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

func formatMoney(v float64) string {
	return printer.Sprintf("%.2f", v)
}
