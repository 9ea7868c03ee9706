package reports

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

func TestGenerator_Generate_RoundTrip(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "analysis_output")
	title := "NVIDIA DeepSeek Impact Analysis"

	results := Results{
		Symbol: "NVDA",
		Prices: []models.PricePoint{
			{Date: time.Date(2025, 1, 24, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromFloat(142.62), Volume: 100},
			{Date: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromFloat(118.42), Volume: 200},
		},
		Sentiment: []models.DailySentiment{
			{Date: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), Mean: 0.4, Count: 2},
		},
	}

	path, err := NewGenerator(dir, title).Generate(results)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	if filepath.Base(path) != ReportFilename {
		t.Errorf("report filename = %s, want %s", filepath.Base(path), ReportFilename)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("report file missing: %v", err)
	}

	// Reopen the deck and verify the title slide heading
	slides, err := ReadSlideTexts(path)
	if err != nil {
		t.Fatalf("ReadSlideTexts() error = %v", err)
	}
	if len(slides) != 3 {
		t.Fatalf("expected 3 slides, got %d", len(slides))
	}
	if len(slides[0]) == 0 || slides[0][0] != title {
		t.Errorf("title slide heading = %v, want %q", slides[0], title)
	}

	joined := strings.Join(slides[1], "\n")
	if !strings.Contains(joined, "142.62") || !strings.Contains(joined, "118.42") {
		t.Errorf("price slide missing series values: %q", joined)
	}

	if !strings.Contains(strings.Join(slides[2], "\n"), "2025-01-27") {
		t.Errorf("sentiment slide missing event date: %v", slides[2])
	}
}

func TestGenerator_Generate_EmptySentiment(t *testing.T) {
	dir := t.TempDir()

	results := Results{
		Symbol: "NVDA",
		Prices: []models.PricePoint{
			{Date: time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC), Price: decimal.NewFromFloat(118.42)},
		},
	}

	path, err := NewGenerator(dir, "Title").Generate(results)
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}

	slides, err := ReadSlideTexts(path)
	if err != nil {
		t.Fatalf("ReadSlideTexts() error = %v", err)
	}
	if !strings.Contains(strings.Join(slides[2], " "), "No news") {
		t.Errorf("empty sentiment series should render placeholder, got %v", slides[2])
	}
}

func TestDeck_Save_Empty(t *testing.T) {
	if err := NewDeck().Save(filepath.Join(t.TempDir(), "x.pptx")); err == nil {
		t.Error("saving an empty deck should fail")
	}
}

func TestDeck_EscapesText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "escaped.pptx")

	deck := NewDeck()
	deck.AddSlide(`AT&T <up> "quotes"`)
	if err := deck.Save(path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	slides, err := ReadSlideTexts(path)
	if err != nil {
		t.Fatalf("ReadSlideTexts() error = %v", err)
	}
	if slides[0][0] != `AT&T <up> "quotes"` {
		t.Errorf("text did not round-trip through escaping: %q", slides[0][0])
	}
}
