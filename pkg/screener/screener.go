package screener

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	// DefaultBaseURL is the finviz screener endpoint.
	DefaultBaseURL = "https://finviz.com/screener.ashx"

	// Servers reject requests without a desktop browser User-Agent.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"

	fetchTimeout = 10 * time.Second
)

// Stock is one row of the screener results table. All fields are kept as
// the page's display text, no numeric parsing.
type Stock struct {
	Ticker    string `json:"ticker"`
	Company   string `json:"company"`
	Sector    string `json:"sector"`
	Industry  string `json:"industry"`
	Country   string `json:"country"`
	MarketCap string `json:"market_cap"`
	PE        string `json:"pe"`
	Price     string `json:"price"`
	Change    string `json:"change"`
	Volume    string `json:"volume"`
}

// Filter is a single finviz filter code and its value, serialized on the
// wire as "<code>_<value>".
type Filter struct {
	Code  string
	Value string
}

// FilterSet is an ordered set of filters. Order is preserved in the query
// string, so the same set always produces the same URL.
type FilterSet []Filter

// Add appends a filter, replacing the value in place if the code is
// already present.
func (fs FilterSet) Add(code, value string) FilterSet {
	for i := range fs {
		if fs[i].Code == code {
			fs[i].Value = value
			return fs
		}
	}
	return append(fs, Filter{Code: code, Value: value})
}

// Encode joins the filters as comma-separated "<code>_<value>" tokens in
// insertion order. Values are not escaped; callers supply finviz codes.
func (fs FilterSet) Encode() string {
	tokens := make([]string, 0, len(fs))
	for _, f := range fs {
		tokens = append(tokens, f.Code+"_"+f.Value)
	}
	return strings.Join(tokens, ",")
}

// Preset is a named scan: its filters plus the criteria lines shown in
// the report header. Keeping both on the preset means the printed
// criteria can't drift from the codes actually sent.
type Preset struct {
	Name     string
	Criteria []string
	Filters  FilterSet
	Output   string
	Order    string
}

// Daily3Up returns the "Daily 3% UP" scan: stocks only, price over $30,
// relative volume over 2, ATR over 2, up 3%+ on the day, above the 200 SMA.
func Daily3Up() Preset {
	return Preset{
		Name: "daily-3up",
		Criteria: []string{
			"Daily 3% UP",
			"Price > $30",
			"Above 200 SMA",
			"ATR 2",
			"RVOL 2",
		},
		Filters: FilterSet{
			{Code: "ind", Value: "stocksonly"},
			{Code: "sh_price", Value: "o30"},
			{Code: "sh_relvol", Value: "o2"},
			{Code: "ta_averagetruerange", Value: "o2"},
			{Code: "ta_change", Value: "u3"},
			{Code: "ta_sma200", Value: "pa"},
		},
		Output: "111", // overview columns
		Order:  "-volume",
	}
}

// Scanner fetches and parses finviz screener results.
type Scanner struct {
	BaseURL    string
	UserAgent  string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewScanner returns a scanner against the given endpoint with the fixed
// request timeout. An empty baseURL means the finviz endpoint.
func NewScanner(baseURL string, logger *zap.Logger) *Scanner {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Scanner{
		BaseURL:    baseURL,
		UserAgent:  defaultUserAgent,
		HTTPClient: &http.Client{Timeout: fetchTimeout},
		Logger:     logger,
	}
}

// BuildURL assembles the screener query string. Filter values are used
// as-is; malformed codes produce a malformed URL that surfaces as an HTTP
// failure at fetch time rather than an error here.
func (s *Scanner) BuildURL(filters FilterSet, output, order string) string {
	return fmt.Sprintf("%s?v=%s&f=%s&ft=4&o=%s", s.BaseURL, output, filters.Encode(), order)
}

// PresetURL builds the URL for a named preset.
func (s *Scanner) PresetURL(p Preset) string {
	return s.BuildURL(p.Filters, p.Output, p.Order)
}
