package price

import (
	"context"
	"time"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

// Provider provides historical daily stock prices
type Provider interface {
	// FetchDaily returns one price point per trading day in [start, end],
	// ordered by date ascending
	FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]models.PricePoint, error)

	// GetName returns provider name
	GetName() string
}
