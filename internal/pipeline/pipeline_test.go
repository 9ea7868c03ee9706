package pipeline

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/config"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/news"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/reports"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/sentiment"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

type stubPrices struct {
	points []models.PricePoint
	err    error
}

func (s *stubPrices) GetName() string { return "stub" }
func (s *stubPrices) FetchDaily(ctx context.Context, symbol string, start, end time.Time) ([]models.PricePoint, error) {
	return s.points, s.err
}

type stubNews struct {
	items []models.NewsItem
	err   error
}

func (s *stubNews) GetName() string { return "stub" }
func (s *stubNews) IsEnabled() bool { return true }
func (s *stubNews) FetchNews(ctx context.Context, q news.Query) ([]models.NewsItem, error) {
	return s.items, s.err
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()

	var start, end, event config.Date
	_ = start.Decode("2025-01-20")
	_ = end.Decode("2025-02-03")
	_ = event.Decode("2025-01-27")

	return &config.Config{
		Market:   config.MarketConfig{Symbol: "NVDA", AlphaVantageAPIKey: "demo"},
		News:     config.NewsConfig{Query: "(Nvidia OR NVDA) AND (AI OR DeepSeek)", Language: "en", MaxResults: 100},
		Analysis: config.AnalysisConfig{StartDate: start, EndDate: end, EventDate: event},
		Report:   config.ReportConfig{OutputDir: filepath.Join(t.TempDir(), "analysis_output"), Title: "NVIDIA DeepSeek Impact Analysis"},
	}
}

func eventDay() time.Time {
	return time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)
}

func newPipeline(cfg *config.Config, prices *stubPrices, newsProvider news.Provider) *Pipeline {
	return New(
		cfg,
		prices,
		news.NewAggregator(newsProvider),
		sentiment.NewAnalyzer(),
		reports.NewGenerator(cfg.Report.OutputDir, cfg.Report.Title),
	)
}

func TestPipeline_Run(t *testing.T) {
	cfg := testConfig(t)

	prices := &stubPrices{points: []models.PricePoint{
		{Date: eventDay(), Price: decimal.NewFromFloat(118.42), Volume: 802966446},
	}}
	newsProvider := &stubNews{items: []models.NewsItem{
		{Date: eventDay(), Title: "Nvidia surges", Source: "wire"},
	}}

	path, err := newPipeline(cfg, prices, newsProvider).Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	slides, err := reports.ReadSlideTexts(path)
	if err != nil {
		t.Fatalf("report unreadable: %v", err)
	}
	if slides[0][0] != cfg.Report.Title {
		t.Errorf("title slide = %v, want %q", slides[0], cfg.Report.Title)
	}

	// Positive headline on the event date must show up in the window
	sentimentSlide := strings.Join(slides[2], "\n")
	if !strings.Contains(sentimentSlide, "2025-01-27: +") {
		t.Errorf("expected positive mean for event date, got %q", sentimentSlide)
	}
}

func TestPipeline_Run_EmptyNews(t *testing.T) {
	cfg := testConfig(t)

	prices := &stubPrices{points: []models.PricePoint{
		{Date: eventDay(), Price: decimal.NewFromFloat(118.42)},
	}}
	// Failing provider degrades to an empty news set
	newsProvider := &stubNews{err: errors.New("quota exceeded")}

	path, err := newPipeline(cfg, prices, newsProvider).Run(context.Background())
	if err != nil {
		t.Fatalf("pipeline must tolerate zero news items, got error: %v", err)
	}

	slides, err := reports.ReadSlideTexts(path)
	if err != nil {
		t.Fatalf("report unreadable: %v", err)
	}

	// Price series still rendered, sentiment slide degrades to placeholder
	if !strings.Contains(strings.Join(slides[1], " "), "118.42") {
		t.Errorf("price slide missing data: %v", slides[1])
	}
	if !strings.Contains(strings.Join(slides[2], " "), "No news") {
		t.Errorf("sentiment slide should be the placeholder, got %v", slides[2])
	}
}

func TestPipeline_Run_PriceFetchFails(t *testing.T) {
	cfg := testConfig(t)

	prices := &stubPrices{err: errors.New("provider down")}
	newsProvider := &stubNews{}

	if _, err := newPipeline(cfg, prices, newsProvider).Run(context.Background()); err == nil {
		t.Fatal("price fetch failure must abort the run")
	}
}
