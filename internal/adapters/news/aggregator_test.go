package news

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/raiberahul/NVIDIA-DeepSeek/pkg/models"
)

type stubProvider struct {
	name    string
	enabled bool
	items   []models.NewsItem
	err     error
}

func (s *stubProvider) GetName() string { return s.name }
func (s *stubProvider) IsEnabled() bool { return s.enabled }
func (s *stubProvider) FetchNews(ctx context.Context, q Query) ([]models.NewsItem, error) {
	return s.items, s.err
}

func TestAggregator_FetchAll(t *testing.T) {
	day := time.Date(2025, 1, 27, 0, 0, 0, 0, time.UTC)

	good := &stubProvider{
		name:    "good",
		enabled: true,
		items:   []models.NewsItem{{Date: day, Title: "Nvidia surges", Source: "wire"}},
	}
	broken := &stubProvider{name: "broken", enabled: true, err: errors.New("boom")}
	disabled := &stubProvider{name: "off", enabled: false, err: errors.New("must not be called")}

	result := NewAggregator(good, broken, disabled).FetchAll(context.Background(), Query{})

	if len(result.Items) != 1 || result.Items[0].Title != "Nvidia surges" {
		t.Fatalf("unexpected items: %+v", result.Items)
	}
	if len(result.Degraded) != 1 || result.Degraded[0].Provider != "broken" {
		t.Fatalf("expected one degraded provider (broken), got %+v", result.Degraded)
	}
}

func TestAggregator_FetchAll_AllFailed(t *testing.T) {
	broken := &stubProvider{name: "broken", enabled: true, err: errors.New("boom")}

	result := NewAggregator(broken).FetchAll(context.Background(), Query{})

	// Degraded to empty, never an error
	if result.Items == nil || len(result.Items) != 0 {
		t.Errorf("expected empty non-nil item list, got %v", result.Items)
	}
	if len(result.Degraded) != 1 {
		t.Errorf("expected 1 degraded provider, got %d", len(result.Degraded))
	}
}

func TestQueryTerms(t *testing.T) {
	got := queryTerms("(Nvidia OR NVDA) AND (AI OR DeepSeek)")
	want := []string{"Nvidia", "NVDA", "AI", "DeepSeek"}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("queryTerms() = %v, want %v", got, want)
	}
}

func TestIsRelevant(t *testing.T) {
	terms := []string{"Nvidia", "DeepSeek"}

	if !isRelevant("DeepSeek model shakes the market", terms) {
		t.Error("expected match on DeepSeek")
	}
	if isRelevant("Unrelated tour news", terms) {
		t.Error("expected no match")
	}
	if !isRelevant("anything", nil) {
		t.Error("empty term list matches everything")
	}
}
