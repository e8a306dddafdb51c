package screener

import (
	"fmt"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
)

// FormatReport renders the console report: title banner with the current
// date, the preset's criteria, the source URL, a grid table of results
// with a 1-based index column, and a comma-joined ticker list. An empty
// result prints "No results found." in place of the table and tickers;
// the header blocks are printed either way.
func FormatReport(stocks []Stock, url string, preset Preset) string {
	var b strings.Builder

	today := time.Now().Format("2006-01-02")
	fmt.Fprintf(&b, "Finviz Screener Results - %s - %s\n", preset.Name, today)
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString("Screening Criteria:\n")
	for _, c := range preset.Criteria {
		b.WriteString("- " + c + "\n")
	}
	b.WriteString("\n")

	b.WriteString("URL:\n")
	b.WriteString(url + "\n")
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	if len(stocks) == 0 {
		b.WriteString("No results found.\n")
		return b.String()
	}

	tickers := make([]string, 0, len(stocks))
	t := table.NewWriter()
	t.Style().Options.SeparateRows = true
	t.AppendHeader(table.Row{
		"No", "Ticker", "Company", "Sector", "Industry",
		"Country", "Market Cap", "P/E", "Price", "Change", "Volume",
	})
	for i, s := range stocks {
		t.AppendRow(table.Row{
			i + 1, s.Ticker, s.Company, s.Sector, s.Industry,
			s.Country, s.MarketCap, s.PE, s.Price, s.Change, s.Volume,
		})
		tickers = append(tickers, s.Ticker)
	}
	b.WriteString(t.Render() + "\n\n")

	b.WriteString("Ticker Symbols:\n")
	b.WriteString(strings.Join(tickers, ", ") + "\n")

	return b.String()
}
