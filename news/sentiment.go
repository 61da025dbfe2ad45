// Package news scores financial headlines and aggregates their
// sentiment into the figures the analyst prompt consumes.
package news

import (
	"math"
	"strings"
)

// Sentiment is a scored piece of text.
type Sentiment struct {
	Score float64 // in [-1, 1]
	Label string  // positive, negative or neutral
}

// Financial news vocabulary with polarities. Small on purpose: headline
// language is formulaic and a short lexicon already separates the three
// classes well.
var lexicon = map[string]float64{
	"beat": 1, "beats": 1, "record": 1, "surge": 1, "surges": 1,
	"soar": 1, "soars": 1, "rally": 1, "rallies": 1, "gain": 1,
	"gains": 1, "jump": 1, "jumps": 1, "upgrade": 1, "upgraded": 1,
	"growth": 1, "strong": 1, "bullish": 1, "outperform": 1,
	"profit": 1, "profits": 1, "rise": 1, "rises": 1, "buyback": 1,
	"dividend": 0.5, "expands": 0.5, "partnership": 0.5,

	"miss": -1, "misses": -1, "plunge": -1, "plunges": -1,
	"drop": -1, "drops": -1, "fall": -1, "falls": -1, "slump": -1,
	"slumps": -1, "downgrade": -1, "downgraded": -1, "weak": -1,
	"bearish": -1, "loss": -1, "losses": -1, "lawsuit": -1,
	"recall": -1, "probe": -1, "investigation": -1, "fraud": -1,
	"layoffs": -1, "bankruptcy": -1, "decline": -1, "declines": -1,
	"warning": -0.5, "cuts": -0.5, "delay": -0.5,
}

// Analyze scores a piece of text. The score is the average polarity of
// the lexicon words found, zero when none match.
func Analyze(text string) Sentiment {
	words := strings.Fields(strings.ToLower(text))
	var sum float64
	var hits int
	for _, w := range words {
		w = strings.Trim(w, ".,;:!?'\"()")
		if polarity, ok := lexicon[w]; ok {
			sum += polarity
			hits++
		}
	}
	if hits == 0 {
		return Sentiment{Score: 0, Label: "neutral"}
	}
	score := sum / float64(hits)
	switch {
	case score > 0.1:
		return Sentiment{Score: score, Label: "positive"}
	case score < -0.1:
		return Sentiment{Score: score, Label: "negative"}
	default:
		return Sentiment{Score: score, Label: "neutral"}
	}
}

// Aggregate holds sentiment statistics over a set of headlines.
type Aggregate struct {
	AverageScore float64        `json:"average_score"`
	Distribution map[string]int `json:"sentiment_distribution"`
	Dispersion   float64        `json:"confidence"` // stddev of the scores
}

// Aggregated computes sentiment statistics over many texts.
func Aggregated(texts []string) Aggregate {
	agg := Aggregate{Distribution: map[string]int{"positive": 0, "neutral": 0, "negative": 0}}
	if len(texts) == 0 {
		return agg
	}
	scores := make([]float64, 0, len(texts))
	for _, t := range texts {
		s := Analyze(t)
		agg.Distribution[s.Label]++
		scores = append(scores, s.Score)
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	agg.AverageScore = sum / float64(len(scores))

	if len(scores) > 1 {
		var variance float64
		for _, s := range scores {
			d := s - agg.AverageScore
			variance += d * d
		}
		agg.Dispersion = math.Sqrt(variance / float64(len(scores)))
	}
	return agg
}

// Overall maps an aggregate onto the label the analysis schema expects.
func (a Aggregate) Overall() string {
	pos, neg := a.Distribution["positive"], a.Distribution["negative"]
	switch {
	case pos > 0 && neg > 0 && abs(pos-neg) <= 1:
		return "mixed"
	case a.AverageScore > 0.1:
		return "positive"
	case a.AverageScore < -0.1:
		return "negative"
	default:
		return "neutral"
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
