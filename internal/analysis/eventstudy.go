package analysis

import (
	"sort"
	"time"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

// eventWindowDays is the half-width of the closed window around the
// event date
const eventWindowDays = 3

// Scorer assigns a polarity score in [-1.0, 1.0] to a text
type Scorer interface {
	Score(text string) float64
}

// LeftJoin joins news items with same-date price points. News drives the
// join: every news item appears exactly once, with HasPrice=false when
// its date has no price point. Price-only dates do not appear.
func LeftJoin(news []models.NewsItem, prices []models.PricePoint) []models.MergedRecord {
	byDate := make(map[time.Time]models.PricePoint, len(prices))
	for _, p := range prices {
		byDate[models.Day(p.Date)] = p
	}

	merged := make([]models.MergedRecord, 0, len(news))
	for _, item := range news {
		record := models.MergedRecord{News: item}

		if p, ok := byDate[models.Day(item.Date)]; ok {
			record.Price = p.Price
			record.Volume = p.Volume
			record.HasPrice = true
		}

		merged = append(merged, record)
	}

	return merged
}

// ScoreAll attaches a title sentiment to each merged record
func ScoreAll(scorer Scorer, merged []models.MergedRecord) []models.ScoredRecord {
	scored := make([]models.ScoredRecord, 0, len(merged))
	for _, record := range merged {
		scored = append(scored, models.ScoredRecord{
			MergedRecord: record,
			Sentiment:    scorer.Score(record.News.Title),
		})
	}

	return scored
}

// EventWindow computes the mean sentiment per date over the closed
// interval [eventDate-3d, eventDate+3d], ordered by date ascending.
// Dates with no contributing records are absent.
func EventWindow(scored []models.ScoredRecord, eventDate time.Time) []models.DailySentiment {
	windowStart := models.Day(eventDate).AddDate(0, 0, -eventWindowDays)
	windowEnd := models.Day(eventDate).AddDate(0, 0, eventWindowDays)

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)

	for _, record := range scored {
		day := models.Day(record.News.Date)
		if day.Before(windowStart) || day.After(windowEnd) {
			continue
		}
		sums[day] += record.Sentiment
		counts[day]++
	}

	series := make([]models.DailySentiment, 0, len(sums))
	for day, sum := range sums {
		series = append(series, models.DailySentiment{
			Date:  day,
			Mean:  sum / float64(counts[day]),
			Count: counts[day],
		})
	}

	sort.Slice(series, func(i, j int) bool {
		return series[i].Date.Before(series[j].Date)
	})

	return series
}
