package screener

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// The results table class on the current page version. Older and A/B
// variants use other "screener*" classes, hence the fuzzy fallback.
const screenerTableClass = "screener_table"

// A row needs at least this many cells to be a data row; shorter rows are
// ads or spacers and are dropped.
const minScreenerCells = 11

// screenerColumns maps fixed cell positions to record fields, in table
// order. Cell 0 is the row number on the page and is skipped. A column
// reorder on the page is a one-line change here.
var screenerColumns = []struct {
	cell  int
	field func(*Stock) *string
}{
	{1, func(s *Stock) *string { return &s.Ticker }},
	{2, func(s *Stock) *string { return &s.Company }},
	{3, func(s *Stock) *string { return &s.Sector }},
	{4, func(s *Stock) *string { return &s.Industry }},
	{5, func(s *Stock) *string { return &s.Country }},
	{6, func(s *Stock) *string { return &s.MarketCap }},
	{7, func(s *Stock) *string { return &s.PE }},
	{8, func(s *Stock) *string { return &s.Price }},
	{9, func(s *Stock) *string { return &s.Change }},
	{10, func(s *Stock) *string { return &s.Volume }},
}

// ExtractStocks parses a screener page body and returns the table rows in
// document order. A missing table or a table with no data rows is a valid
// "no results" outcome, not an error; the only error is a body that can't
// be parsed as a document at all.
func ExtractStocks(body io.Reader) ([]Stock, error) {
	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, err
	}

	table := findScreenerTable(doc)
	if table == nil {
		return nil, nil
	}

	rows := table.Find("tr")

	// Prefer the structural header signal (th cells); only a table with
	// no th anywhere falls back to skipping row 0.
	positionalSkip := table.Find("tr th").Length() == 0

	var stocks []Stock
	rows.Each(func(i int, row *goquery.Selection) {
		if row.Find("th").Length() > 0 {
			return
		}
		if positionalSkip && i == 0 {
			return
		}

		cells := row.Find("td")
		if cells.Length() < minScreenerCells {
			return
		}

		var stock Stock
		for _, col := range screenerColumns {
			// Text() flattens nested markup (ticker links, change spans).
			*col.field(&stock) = strings.TrimSpace(cells.Eq(col.cell).Text())
		}
		stocks = append(stocks, stock)
	})

	return stocks, nil
}

// findScreenerTable locates the results table: exact class match first,
// then the first table whose class mentions "screener" in any casing.
func findScreenerTable(doc *goquery.Document) *goquery.Selection {
	table := doc.Find("table." + screenerTableClass).First()
	if table.Length() > 0 {
		return table
	}

	table = doc.Find("table").FilterFunction(func(_ int, s *goquery.Selection) bool {
		class, ok := s.Attr("class")
		return ok && strings.Contains(strings.ToLower(class), "screener")
	}).First()
	if table.Length() > 0 {
		return table
	}

	return nil
}
