package price

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

const alphaVantageAPIURL = "https://www.alphavantage.co/query"

// AlphaVantageProvider fetches daily OHLCV bars from Alpha Vantage
type AlphaVantageProvider struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// NewAlphaVantageProvider creates new Alpha Vantage price provider
func NewAlphaVantageProvider(apiKey string) *AlphaVantageProvider {
	return &AlphaVantageProvider{
		apiKey:  apiKey,
		baseURL: alphaVantageAPIURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (av *AlphaVantageProvider) GetName() string {
	return "alphavantage"
}

// FetchDaily returns the daily close and volume for symbol within [start, end].
// Days the provider does not report (weekends, holidays) are simply absent.
func (av *AlphaVantageProvider) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]models.PricePoint, error) {
	params := url.Values{}
	params.Set("function", "TIME_SERIES_DAILY")
	params.Set("symbol", symbol)
	params.Set("outputsize", "full")
	params.Set("apikey", av.apiKey)

	req, err := http.NewRequestWithContext(ctx, "GET", av.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := av.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("API error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		ErrorMessage string `json:"Error Message"`
		Note         string `json:"Note"`
		TimeSeries   map[string]struct {
			Close  string `json:"4. close"`
			Volume string `json:"5. volume"`
		} `json:"Time Series (Daily)"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	// Alpha Vantage reports errors and rate limits inside a 200 body
	if result.ErrorMessage != "" {
		return nil, fmt.Errorf("provider error: %s", result.ErrorMessage)
	}
	if result.Note != "" {
		return nil, fmt.Errorf("provider throttled: %s", result.Note)
	}
	if len(result.TimeSeries) == 0 {
		return nil, fmt.Errorf("no daily series for %s", symbol)
	}

	startDay, endDay := models.Day(start), models.Day(end)

	points := make([]models.PricePoint, 0, len(result.TimeSeries))
	for dateStr, bar := range result.TimeSeries {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, fmt.Errorf("bad series date %q: %w", dateStr, err)
		}
		day = models.Day(day)

		if day.Before(startDay) || day.After(endDay) {
			continue
		}

		closePrice, err := decimal.NewFromString(bar.Close)
		if err != nil {
			return nil, fmt.Errorf("bad close %q for %s: %w", bar.Close, dateStr, err)
		}

		// Volume occasionally arrives malformed from the free tier; treat as 0
		volume, err := strconv.ParseInt(bar.Volume, 10, 64)
		if err != nil {
			volume = 0
		}

		points = append(points, models.PricePoint{
			Date:   day,
			Price:  closePrice,
			Volume: volume,
		})
	}

	sort.Slice(points, func(i, j int) bool {
		return points[i].Date.Before(points[j].Date)
	})

	return points, nil
}
