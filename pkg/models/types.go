package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Day normalizes a timestamp to its calendar date (UTC midnight).
// Every date comparison in the pipeline is a calendar-date comparison.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NewDecimal creates decimal from float64
func NewDecimal(value float64) decimal.Decimal {
	return decimal.NewFromFloat(value)
}

// ToFloat64 safely converts decimal to float64
func ToFloat64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// PricePoint represents one daily close for a ticker
type PricePoint struct {
	Date   time.Time       `json:"date"`
	Price  decimal.Decimal `json:"price"`
	Volume int64           `json:"volume"`
}

// MergedRecord joins a news item with the same-date price point.
// HasPrice is false when no price point exists for the item's date;
// the news fields are kept either way.
type MergedRecord struct {
	News     NewsItem        `json:"news"`
	Price    decimal.Decimal `json:"price"`
	Volume   int64           `json:"volume"`
	HasPrice bool            `json:"has_price"`
}

// ScoredRecord is a merged record with its title sentiment attached
type ScoredRecord struct {
	MergedRecord
	Sentiment float64 `json:"sentiment"`
}

// DailySentiment is the mean sentiment over one calendar date
type DailySentiment struct {
	Date  time.Time `json:"date"`
	Mean  float64   `json:"mean"`
	Count int       `json:"count"`
}
