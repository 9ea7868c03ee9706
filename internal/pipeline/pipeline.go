package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/config"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/news"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/price"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/analysis"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/reports"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/logger"
)

// Pipeline runs the full analysis sequence: fetch prices, fetch news,
// join, score, aggregate around the event date, render the report.
// Strictly sequential; one outstanding external call at a time.
type Pipeline struct {
	cfg       *config.Config
	prices    price.Provider
	news      *news.Aggregator
	scorer    analysis.Scorer
	generator *reports.Generator
}

// New creates the pipeline from its collaborators
func New(cfg *config.Config, prices price.Provider, aggregator *news.Aggregator, scorer analysis.Scorer, generator *reports.Generator) *Pipeline {
	return &Pipeline{
		cfg:       cfg,
		prices:    prices,
		news:      aggregator,
		scorer:    scorer,
		generator: generator,
	}
}

// Run executes the pipeline once and returns the report path. Any stage
// failure other than a degraded news fetch aborts the run.
func (p *Pipeline) Run(ctx context.Context) (string, error) {
	started := time.Now()

	if err := os.MkdirAll(p.cfg.Report.OutputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	window := p.cfg.Analysis

	pricePoints, err := p.prices.FetchDaily(ctx, p.cfg.Market.Symbol, window.StartDate.Time, window.EndDate.Time)
	if err != nil {
		return "", fmt.Errorf("failed to fetch stock data: %w", err)
	}
	logger.Info("fetched stock data",
		zap.String("symbol", p.cfg.Market.Symbol),
		zap.Int("trading_days", len(pricePoints)),
	)

	// News degrades to empty on provider failure; the join and the
	// aggregation both tolerate an empty item list
	newsResult := p.news.FetchAll(ctx, news.Query{
		Text:     p.cfg.News.Query,
		Start:    window.StartDate.Time,
		End:      window.EndDate.Time,
		Language: p.cfg.News.Language,
		Limit:    p.cfg.News.MaxResults,
	})

	merged := analysis.LeftJoin(newsResult.Items, pricePoints)
	scored := analysis.ScoreAll(p.scorer, merged)
	series := analysis.EventWindow(scored, window.EventDate.Time)

	logger.Info("event study complete",
		zap.String("event_date", window.EventDate.Format("2006-01-02")),
		zap.Int("scored_records", len(scored)),
		zap.Int("window_days", len(series)),
	)

	path, err := p.generator.Generate(reports.Results{
		Symbol:    p.cfg.Market.Symbol,
		Prices:    pricePoints,
		Sentiment: series,
	})
	if err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}

	logger.Info("analysis completed",
		zap.Duration("elapsed", time.Since(started)),
	)

	return path, nil
}
