package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Date is a civil date decoded from YYYY-MM-DD. Time-of-day is always
// midnight UTC so dates compare as calendar dates.
type Date struct {
	time.Time
}

// Decode implements envconfig.Decoder
func (d *Date) Decode(value string) error {
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", value, err)
	}
	d.Time = t.UTC()
	return nil
}

// Config represents application configuration
type Config struct {
	Market   MarketConfig   `envconfig:"MARKET"`
	News     NewsConfig     `envconfig:"NEWS"`
	Analysis AnalysisConfig `envconfig:"ANALYSIS"`
	Report   ReportConfig   `envconfig:"REPORT"`
	Logging  LoggingConfig  `envconfig:"LOGGING"`
}

// MarketConfig represents market-data provider parameters
type MarketConfig struct {
	Symbol             string `envconfig:"MARKET_SYMBOL" default:"NVDA"`
	AlphaVantageAPIKey string `envconfig:"ALPHA_VANTAGE_API_KEY" required:"false"`
}

// NewsConfig represents news provider parameters
type NewsConfig struct {
	GNewsAPIToken string   `envconfig:"GNEWS_API_TOKEN" required:"false"`
	Query         string   `envconfig:"NEWS_QUERY" default:"(Nvidia OR NVDA) AND (AI OR DeepSeek)"`
	Language      string   `envconfig:"NEWS_LANGUAGE" default:"en"`
	MaxResults    int      `envconfig:"NEWS_MAX_RESULTS" default:"100"`
	RedditEnabled bool     `envconfig:"REDDIT_ENABLED" default:"false"`
	Subreddits    []string `envconfig:"REDDIT_SUBREDDITS" default:"stocks,nvidia,artificial"`
}

// AnalysisConfig represents the date window and event date
type AnalysisConfig struct {
	StartDate Date `envconfig:"ANALYSIS_START_DATE" default:"2025-01-20"`
	EndDate   Date `envconfig:"ANALYSIS_END_DATE" default:"2025-02-03"`
	EventDate Date `envconfig:"ANALYSIS_EVENT_DATE" default:"2025-01-27"`
}

// ReportConfig represents report output parameters
type ReportConfig struct {
	OutputDir string `envconfig:"REPORT_OUTPUT_DIR" default:"analysis_output"`
	Title     string `envconfig:"REPORT_TITLE" default:"NVIDIA DeepSeek Impact Analysis"`
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level string `envconfig:"LOG_LEVEL" default:"info"`
	File  string `envconfig:"LOG_FILE" required:"false"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	var cfg Config

	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks if configuration is valid
func (c *Config) Validate() error {
	if c.Market.Symbol == "" {
		return fmt.Errorf("market symbol is required")
	}
	if c.Market.AlphaVantageAPIKey == "" {
		return fmt.Errorf("alpha vantage api key is required")
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report output dir is required")
	}

	start, end, event := c.Analysis.StartDate.Time, c.Analysis.EndDate.Time, c.Analysis.EventDate.Time
	if end.Before(start) {
		return fmt.Errorf("end date %s is before start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}
	if event.Before(start) || event.After(end) {
		return fmt.Errorf("event date %s is outside analysis window [%s, %s]",
			event.Format("2006-01-02"), start.Format("2006-01-02"), end.Format("2006-01-02"))
	}

	if c.News.MaxResults < 1 {
		return fmt.Errorf("news max_results must be at least 1")
	}

	return nil
}
