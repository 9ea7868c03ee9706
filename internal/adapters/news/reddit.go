package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/logger"
	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

const redditAPIURL = "https://www.reddit.com/r/%s/hot.json?limit=%d"

// RedditProvider fetches discussion posts from Reddit as a secondary
// news source
type RedditProvider struct {
	enabled    bool
	subreddits []string
	baseURL    string
	client     *http.Client
}

// NewRedditProvider creates new Reddit provider
func NewRedditProvider(enabled bool, subreddits []string) *RedditProvider {
	if len(subreddits) == 0 {
		subreddits = []string{"stocks", "nvidia", "artificial"}
	}

	return &RedditProvider{
		enabled:    enabled,
		subreddits: subreddits,
		baseURL:    redditAPIURL,
		client:     &http.Client{Timeout: 15 * time.Second},
	}
}

func (r *RedditProvider) GetName() string {
	return "reddit"
}

func (r *RedditProvider) IsEnabled() bool {
	return r.enabled
}

// FetchNews fetches hot posts from each configured subreddit, keeping
// posts that mention a query term and were created inside the window.
func (r *RedditProvider) FetchNews(ctx context.Context, q Query) ([]models.NewsItem, error) {
	terms := queryTerms(q.Text)
	perSubreddit := q.Limit / len(r.subreddits)
	if perSubreddit < 1 {
		perSubreddit = 1
	}

	allPosts := make([]models.NewsItem, 0)
	failures := 0

	for _, subreddit := range r.subreddits {
		posts, err := r.fetchSubreddit(ctx, subreddit, perSubreddit, q)
		if err != nil {
			logger.Warn("failed to fetch reddit posts",
				zap.String("subreddit", subreddit),
				zap.Error(err),
			)
			failures++
			continue
		}

		for _, post := range posts {
			if isRelevant(post.Title+" "+post.Content, terms) {
				allPosts = append(allPosts, post)
			}
		}
	}

	if failures == len(r.subreddits) {
		return nil, fmt.Errorf("all %d subreddits failed", failures)
	}

	return allPosts, nil
}

// fetchSubreddit fetches posts from specific subreddit
func (r *RedditProvider) fetchSubreddit(ctx context.Context, subreddit string, limit int, q Query) ([]models.NewsItem, error) {
	url := fmt.Sprintf(r.baseURL, subreddit, limit)

	req, err := http.NewRequestWithContext(ctx, "GET", url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	// Reddit rejects requests without a User-Agent
	req.Header.Set("User-Agent", "MarketAnalysis/1.0")

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("HTTP error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		Data struct {
			Children []struct {
				Data struct {
					Title      string  `json:"title"`
					Selftext   string  `json:"selftext"`
					Permalink  string  `json:"permalink"`
					CreatedUTC float64 `json:"created_utc"`
				} `json:"data"`
			} `json:"children"`
		} `json:"data"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	startDay, endDay := models.Day(q.Start), models.Day(q.End)

	posts := make([]models.NewsItem, 0, len(result.Data.Children))
	for _, child := range result.Data.Children {
		post := child.Data

		day := models.Day(time.Unix(int64(post.CreatedUTC), 0).UTC())
		if day.Before(startDay) || day.After(endDay) {
			continue
		}

		posts = append(posts, models.NewsItem{
			Date:    day,
			Title:   post.Title,
			Source:  "reddit/r/" + subreddit,
			Content: truncate(post.Selftext, maxContentChars),
			URL:     "https://www.reddit.com" + post.Permalink,
		})
	}

	return posts, nil
}

// isRelevant checks if text mentions any of the query terms
func isRelevant(text string, terms []string) bool {
	if len(terms) == 0 {
		return true
	}

	lowerText := strings.ToLower(text)
	for _, term := range terms {
		if strings.Contains(lowerText, strings.ToLower(term)) {
			return true
		}
	}

	return false
}
