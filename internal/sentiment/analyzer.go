package sentiment

import (
	"strings"
)

// Analyzer performs keyword-based polarity scoring of news text
type Analyzer struct {
	positiveWords map[string]float64
	negativeWords map[string]float64
}

// NewAnalyzer creates new sentiment analyzer
func NewAnalyzer() *Analyzer {
	return &Analyzer{
		positiveWords: buildPositiveWords(),
		negativeWords: buildNegativeWords(),
	}
}

// Score returns the polarity of text in [-1.0, 1.0]. Empty or
// unrecognized text scores 0.0; scoring never fails.
func (a *Analyzer) Score(text string) float64 {
	words := strings.Fields(strings.ToLower(text))
	if len(words) == 0 {
		return 0.0
	}

	var score float64
	matchCount := 0

	for _, word := range words {
		word = strings.Trim(word, ".,!?;:'\"()")

		if weight, ok := a.positiveWords[word]; ok {
			score += weight
			matchCount++
		}

		if weight, ok := a.negativeWords[word]; ok {
			score -= weight
			matchCount++
		}
	}

	if matchCount == 0 {
		return 0.0
	}

	// Normalize by text length and clamp
	normalized := score / float64(len(words))
	if normalized > 1.0 {
		normalized = 1.0
	} else if normalized < -1.0 {
		normalized = -1.0
	}

	return normalized
}

// buildPositiveWords returns positive keywords for equity and AI news
func buildPositiveWords() map[string]float64 {
	return map[string]float64{
		// Price action
		"surge":   0.8,
		"surges":  0.8,
		"soar":    0.8,
		"soars":   0.8,
		"rally":   0.9,
		"rallies": 0.9,
		"jump":    0.7,
		"jumps":   0.7,
		"climb":   0.6,
		"climbs":  0.6,
		"gain":    0.6,
		"gains":   0.6,
		"rebound": 0.7,
		"record":  0.6,
		"high":    0.5,
		"up":      0.5,
		"rise":    0.5,
		"rises":   0.5,

		// Fundamentals
		"beat":         0.7,
		"beats":        0.7,
		"outperform":   0.7,
		"upgrade":      0.7,
		"upgraded":     0.7,
		"growth":       0.5,
		"profit":       0.6,
		"profitable":   0.6,
		"strong":       0.5,
		"bullish":      1.0,
		"optimistic":   0.5,
		"breakthrough": 0.6,
		"innovation":   0.5,
		"partnership":  0.5,
		"demand":       0.4,
		"buy":          0.5,
	}
}

// buildNegativeWords returns negative keywords for equity and AI news
func buildNegativeWords() map[string]float64 {
	return map[string]float64{
		// Price action
		"crash":   1.0,
		"crashes": 1.0,
		"plunge":  0.8,
		"plunges": 0.8,
		"plummet": 0.8,
		"tumble":  0.7,
		"tumbles": 0.7,
		"slide":   0.6,
		"slides":  0.6,
		"slump":   0.7,
		"sink":    0.6,
		"sinks":   0.6,
		"fall":    0.6,
		"falls":   0.6,
		"drop":    0.6,
		"drops":   0.6,
		"decline": 0.6,
		"down":    0.5,
		"low":     0.4,
		"selloff": 0.7,
		"rout":    0.8,

		// Fundamentals
		"miss":       0.7,
		"misses":     0.7,
		"downgrade":  0.7,
		"downgraded": 0.7,
		"loss":       0.7,
		"losses":     0.7,
		"weak":       0.5,
		"bearish":    1.0,
		"fear":       0.6,
		"fears":      0.6,
		"panic":      0.8,
		"lawsuit":    0.7,
		"probe":      0.6,
		"ban":        0.8,
		"threat":     0.6,
		"bubble":     0.6,
		"overvalued": 0.6,
		"layoffs":    0.7,
		"warning":    0.6,
		"sell":       0.5,
	}
}
