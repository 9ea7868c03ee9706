package indicators

import (
	"fmt"

	"github.com/cinar/indicator"
	"github.com/shopspring/decimal"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

// smaPeriod is one trading week
const smaPeriod = 5

// Summary describes a daily close series for reporting
type Summary struct {
	Days      int
	First     decimal.Decimal
	Last      decimal.Decimal
	ChangePct decimal.Decimal
	Low       decimal.Decimal
	High      decimal.Decimal
	SMA       decimal.Decimal
	SMAPeriod int
}

// Summarize computes summary statistics over an ascending daily close
// series
func Summarize(points []models.PricePoint) (*Summary, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("empty price series")
	}

	closes := make([]float64, len(points))
	for i, p := range points {
		closes[i] = models.ToFloat64(p.Price)
	}

	period := smaPeriod
	if len(closes) < period {
		period = len(closes)
	}
	sma := indicator.Sma(period, closes)

	first, last := points[0].Price, points[len(points)-1].Price
	low, high := points[0].Price, points[0].Price
	for _, p := range points[1:] {
		if p.Price.LessThan(low) {
			low = p.Price
		}
		if p.Price.GreaterThan(high) {
			high = p.Price
		}
	}

	return &Summary{
		Days:      len(points),
		First:     first,
		Last:      last,
		ChangePct: last.Sub(first).Div(first).Mul(decimal.NewFromInt(100)).Round(2),
		Low:       low,
		High:      high,
		SMA:       models.NewDecimal(sma[len(sma)-1]).Round(2),
		SMAPeriod: period,
	}, nil
}
