package news

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/logger"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

// Query describes one news search over a closed date window
type Query struct {
	Text     string
	Start    time.Time
	End      time.Time
	Language string
	Limit    int
}

// Provider represents news source provider interface
type Provider interface {
	// GetName returns provider name
	GetName() string

	// FetchNews fetches news items matching the query
	FetchNews(ctx context.Context, q Query) ([]models.NewsItem, error)

	// IsEnabled returns whether provider is enabled
	IsEnabled() bool
}

// ProviderError records one provider whose fetch failed
type ProviderError struct {
	Provider string
	Err      error
}

// FetchResult carries the fetched items together with the providers that
// failed. A failed provider degrades the result instead of aborting it;
// an empty item list is a valid outcome.
type FetchResult struct {
	Items    []models.NewsItem
	Degraded []ProviderError
}

// Aggregator fetches news from all enabled providers
type Aggregator struct {
	providers []Provider
}

// NewAggregator creates new news aggregator
func NewAggregator(providers ...Provider) *Aggregator {
	return &Aggregator{providers: providers}
}

// FetchAll queries each enabled provider in order. Provider failures are
// logged and collected; they never propagate.
func (a *Aggregator) FetchAll(ctx context.Context, q Query) FetchResult {
	result := FetchResult{Items: make([]models.NewsItem, 0)}

	for _, provider := range a.providers {
		if !provider.IsEnabled() {
			continue
		}

		items, err := provider.FetchNews(ctx, q)
		if err != nil {
			logger.Warn("news provider failed, continuing without it",
				zap.String("provider", provider.GetName()),
				zap.Error(err),
			)
			result.Degraded = append(result.Degraded, ProviderError{Provider: provider.GetName(), Err: err})
			continue
		}

		result.Items = append(result.Items, items...)
	}

	logger.Info("news fetch complete",
		zap.Int("items", len(result.Items)),
		zap.Int("degraded_providers", len(result.Degraded)),
	)

	return result
}

// queryTerms extracts the plain search terms from a boolean query string
func queryTerms(query string) []string {
	cleaned := strings.NewReplacer("(", " ", ")", " ", "\"", " ").Replace(query)

	terms := make([]string, 0)
	for _, word := range strings.Fields(cleaned) {
		if word == "AND" || word == "OR" || word == "NOT" {
			continue
		}
		terms = append(terms, word)
	}

	return terms
}
