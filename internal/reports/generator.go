package reports

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/raiberahul/NVIDIA-DeepSeek/internal/indicators"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/logger"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

// ReportFilename is the fixed name of the rendered deck
const ReportFilename = "analysis_report.pptx"

// Results is the bundle the renderer consumes
type Results struct {
	Symbol    string
	Prices    []models.PricePoint
	Sentiment []models.DailySentiment
}

// Generator renders the analysis results as a slide deck
type Generator struct {
	outputDir string
	title     string
}

// NewGenerator creates report generator
func NewGenerator(outputDir, title string) *Generator {
	return &Generator{
		outputDir: outputDir,
		title:     title,
	}
}

// Generate renders the deck and writes it under the output directory,
// creating the directory if absent. Returns the written path.
func (g *Generator) Generate(results Results) (string, error) {
	if err := os.MkdirAll(g.outputDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}

	deck := NewDeck()
	deck.AddSlide(g.title)
	deck.AddSlide(fmt.Sprintf("%s Price Summary", results.Symbol), g.priceLines(results.Prices)...)
	deck.AddSlide("Sentiment Around Event", g.sentimentLines(results.Sentiment)...)

	path := filepath.Join(g.outputDir, ReportFilename)
	if err := deck.Save(path); err != nil {
		return "", err
	}

	logger.Info("report written",
		zap.String("path", path),
		zap.Int("price_days", len(results.Prices)),
		zap.Int("sentiment_days", len(results.Sentiment)),
	)

	return path, nil
}

func (g *Generator) priceLines(prices []models.PricePoint) []string {
	summary, err := indicators.Summarize(prices)
	if err != nil {
		return []string{"No price data in range"}
	}

	return []string{
		fmt.Sprintf("Trading days: %d (%s to %s)",
			summary.Days,
			prices[0].Date.Format("2006-01-02"),
			prices[len(prices)-1].Date.Format("2006-01-02")),
		fmt.Sprintf("Close: %s to %s (%s%%)", summary.First, summary.Last, summary.ChangePct),
		fmt.Sprintf("Range: %s to %s", summary.Low, summary.High),
		fmt.Sprintf("Trailing %d-day SMA: %s", summary.SMAPeriod, summary.SMA),
	}
}

func (g *Generator) sentimentLines(series []models.DailySentiment) []string {
	if len(series) == 0 {
		return []string{"No news in the event window"}
	}

	lines := make([]string, 0, len(series))
	for _, day := range series {
		lines = append(lines, fmt.Sprintf("%s: %+.3f (%d items)",
			day.Date.Format("2006-01-02"), day.Mean, day.Count))
	}
	return lines
}
