package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/config"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/news"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/adapters/price"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/pipeline"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/reports"
	"github.com/raiberahul/NVIDIA-DeepSeek/internal/sentiment"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/logger"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigChan
		fmt.Println("\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.File); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	logger.Info("market analysis starting",
		zap.String("symbol", cfg.Market.Symbol),
		zap.String("window", fmt.Sprintf("%s to %s",
			cfg.Analysis.StartDate.Format("2006-01-02"),
			cfg.Analysis.EndDate.Format("2006-01-02"))),
		zap.String("event_date", cfg.Analysis.EventDate.Format("2006-01-02")),
	)

	aggregator := news.NewAggregator(
		news.NewGNewsProvider(cfg.News.GNewsAPIToken),
		news.NewRedditProvider(cfg.News.RedditEnabled, cfg.News.Subreddits),
	)

	p := pipeline.New(
		cfg,
		price.NewAlphaVantageProvider(cfg.Market.AlphaVantageAPIKey),
		aggregator,
		sentiment.NewAnalyzer(),
		reports.NewGenerator(cfg.Report.OutputDir, cfg.Report.Title),
	)

	path, err := p.Run(ctx)
	if err != nil {
		return err
	}

	logger.Info("report saved", zap.String("path", path))
	return nil
}
