package sentiment

import (
	"math"
	"testing"
)

func TestAnalyzer_Score(t *testing.T) {
	analyzer := NewAnalyzer()

	tests := []struct {
		name     string
		text     string
		expected string // positive, negative, or neutral
	}{
		{
			name:     "positive headline",
			text:     "Nvidia surges after record earnings beat",
			expected: "positive",
		},
		{
			name:     "negative headline",
			text:     "Chip stocks plunge as selloff deepens, investors panic",
			expected: "negative",
		},
		{
			name:     "neutral headline",
			text:     "Nvidia schedules annual shareholder meeting",
			expected: "neutral",
		},
		{
			name:     "mixed but negative",
			text:     "Nvidia gains evaporate as market crashes on DeepSeek fears",
			expected: "negative",
		},
		{
			name:     "punctuation stripped",
			text:     "\"Surges!\" say analysts",
			expected: "positive",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score := analyzer.Score(tt.text)

			var got string
			if score > 0 {
				got = "positive"
			} else if score < 0 {
				got = "negative"
			} else {
				got = "neutral"
			}

			if got != tt.expected {
				t.Errorf("expected %s sentiment, got %s (score: %.3f)",
					tt.expected, got, score)
			}
		})
	}
}

func TestAnalyzer_Score_DegenerateInput(t *testing.T) {
	analyzer := NewAnalyzer()

	for _, text := range []string{"", "   ", "\t\n", "...", "12345"} {
		score := analyzer.Score(text)
		if score != 0.0 {
			t.Errorf("degenerate input %q should score 0.0, got %.3f", text, score)
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			t.Errorf("score for %q is not finite: %v", text, score)
		}
	}
}

func TestAnalyzer_ScoreRange(t *testing.T) {
	analyzer := NewAnalyzer()

	texts := []string{
		"surge rally jump record bullish",
		"crash plunge selloff panic bearish",
		"stable sideways unchanged",
	}

	for _, text := range texts {
		score := analyzer.Score(text)

		if score < -1.0 || score > 1.0 {
			t.Errorf("score should be between -1.0 and 1.0, got %.3f for: %s",
				score, text)
		}
	}
}
