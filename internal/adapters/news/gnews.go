package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

const gnewsSearchURL = "https://gnews.io/api/v4/search"

// maxContentChars truncates article bodies to keep records small
const maxContentChars = 500

// GNewsProvider fetches news from the GNews search API
type GNewsProvider struct {
	token   string
	baseURL string
	client  *http.Client
}

// NewGNewsProvider creates new GNews provider. The provider is disabled
// when no API token is configured.
func NewGNewsProvider(token string) *GNewsProvider {
	return &GNewsProvider{
		token:   token,
		baseURL: gnewsSearchURL,
		client:  &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GNewsProvider) GetName() string {
	return "gnews"
}

func (g *GNewsProvider) IsEnabled() bool {
	return g.token != ""
}

// FetchNews performs one search call and returns the matching articles in
// provider-return order. Articles whose publish date falls outside the
// query window are dropped even if the provider returned them.
func (g *GNewsProvider) FetchNews(ctx context.Context, q Query) ([]models.NewsItem, error) {
	params := url.Values{}
	params.Set("q", q.Text)
	params.Set("from", q.Start.Format("2006-01-02")+"T00:00:00Z")
	params.Set("to", q.End.Format("2006-01-02")+"T23:59:59Z")
	params.Set("token", g.token)
	params.Set("lang", q.Language)
	params.Set("max", fmt.Sprintf("%d", q.Limit))

	req, err := http.NewRequestWithContext(ctx, "GET", g.baseURL+"?"+params.Encode(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Articles []struct {
			Title       string `json:"title"`
			Content     string `json:"content"`
			URL         string `json:"url"`
			PublishedAt string `json:"publishedAt"`
			Source      struct {
				Name string `json:"name"`
			} `json:"source"`
		} `json:"articles"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	startDay, endDay := models.Day(q.Start), models.Day(q.End)

	items := make([]models.NewsItem, 0, len(result.Articles))
	for _, article := range result.Articles {
		// Publish date is the YYYY-MM-DD prefix of the timestamp
		if len(article.PublishedAt) < 10 {
			continue
		}
		day, err := time.Parse("2006-01-02", article.PublishedAt[:10])
		if err != nil {
			continue
		}
		day = models.Day(day)

		if day.Before(startDay) || day.After(endDay) {
			continue
		}

		source := article.Source.Name
		if source == "" {
			source = "Unknown"
		}

		items = append(items, models.NewsItem{
			Date:    day,
			Title:   article.Title,
			Source:  source,
			Content: truncate(article.Content, maxContentChars),
			URL:     article.URL,
		})
	}

	return items, nil
}

// truncate returns the first max characters of s
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
