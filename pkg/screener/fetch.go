package screener

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

// FetchResult is the outcome of one fetch-and-parse pass. A failed fetch
// and a screen with zero matches both carry no stocks; Err tells them
// apart for callers that care, even though the report output collapses
// the two.
type FetchResult struct {
	Stocks []Stock
	Err    error
}

// Fetch performs a single GET against the screener URL and extracts the
// results table. It never propagates failures: network errors, non-2xx
// statuses, and unparseable bodies are logged with a stack trace and
// returned as an empty result. No retries.
func (s *Scanner) Fetch(url string) FetchResult {
	stocks, err := s.fetch(url)
	if err != nil {
		s.Logger.Error("error fetching screener results",
			zap.String("url", url),
			zap.Error(err),
			zap.Stack("stacktrace"),
		)
		return FetchResult{Err: err}
	}
	return FetchResult{Stocks: stocks}
}

func (s *Scanner) fetch(url string) ([]Stock, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", s.UserAgent)

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("HTTP status %d for %s", resp.StatusCode, url)
	}

	stocks, err := ExtractStocks(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return stocks, nil
}
