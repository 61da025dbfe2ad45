package autofin

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Recommendation is the action advised by a stock analysis.
type Recommendation string

const (
	Buy  Recommendation = "BUY"
	Hold Recommendation = "HOLD"
	Sell Recommendation = "SELL"
)

// TechnicalView is the technical section of a stock analysis.
type TechnicalView struct {
	Trend            string    `json:"trend"` // bullish, bearish, sideways or neutral
	SupportLevels    []float64 `json:"support_levels"`
	ResistanceLevels []float64 `json:"resistance_levels"`
	Momentum         string    `json:"momentum"`
	VolumeAnalysis   string    `json:"volume_analysis"`
}

// FundamentalView is the fundamental section of a stock analysis.
type FundamentalView struct {
	Valuation           string `json:"valuation"`
	GrowthPotential     string `json:"growth_potential"`
	FinancialHealth     string `json:"financial_health"`
	CompetitivePosition string `json:"competitive_position"`
	IndustryOutlook     string `json:"industry_outlook"`
}

// NewsView is the news section of a stock analysis.
type NewsView struct {
	OverallSentiment string   `json:"overall_sentiment"`
	KeyDevelopments  []string `json:"key_developments"`
	MarketPerception string   `json:"market_perception"`
}

// PriceTargets holds price targets over three horizons.
type PriceTargets struct {
	ShortTerm  float64 `json:"short_term"`
	MediumTerm float64 `json:"medium_term"`
	LongTerm   float64 `json:"long_term"`
}

// StockAnalysis is a complete, validated analysis of one stock as
// produced by the analyst model.
type StockAnalysis struct {
	Symbol         string          `json:"symbol,omitempty"`
	Recommendation Recommendation  `json:"recommendation"`
	Confidence     float64         `json:"confidence_level"`
	Summary        string          `json:"summary"`
	Technical      TechnicalView   `json:"technical_analysis"`
	Fundamental    FundamentalView `json:"fundamental_analysis"`
	News           NewsView        `json:"news_analysis"`
	RiskFactors    []string        `json:"risk_factors"`
	Opportunities  []string        `json:"opportunities"`
	PriceTargets   PriceTargets    `json:"price_targets"`
}

// ParseAnalysis extracts and validates a StockAnalysis from raw model
// output. The model is asked for pure JSON but occasionally wraps it in
// prose or a code fence, so the first top-level JSON object is used.
func ParseAnalysis(text string) (*StockAnalysis, error) {
	raw, err := extractJSON(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	var a StockAnalysis
	if err := json.Unmarshal([]byte(raw), &a); err != nil {
		return nil, fmt.Errorf("failed to parse model response: %w", err)
	}

	a.Technical.Trend = normalizeTrend(a.Technical.Trend)

	if err := a.Validate(); err != nil {
		return nil, err
	}
	return &a, nil
}

// Validate checks the schema constraints on the analysis.
func (a *StockAnalysis) Validate() error {
	switch a.Recommendation {
	case Buy, Hold, Sell:
	default:
		return fmt.Errorf("invalid recommendation %q", a.Recommendation)
	}
	if a.Confidence < 0 || a.Confidence > 1 {
		return fmt.Errorf("confidence level %v out of [0,1]", a.Confidence)
	}
	if a.Summary == "" {
		return fmt.Errorf("empty summary")
	}
	if a.PriceTargets.ShortTerm <= 0 || a.PriceTargets.MediumTerm <= 0 || a.PriceTargets.LongTerm <= 0 {
		return fmt.Errorf("price targets must be positive, got %+v", a.PriceTargets)
	}
	return nil
}

// normalizeTrend maps the model's free-text trend wording onto one of the
// four canonical values.
func normalizeTrend(trend string) string {
	t := strings.ToLower(trend)
	switch {
	case strings.Contains(t, "bullish"):
		return "bullish"
	case strings.Contains(t, "bearish"):
		return "bearish"
	case strings.Contains(t, "sideways"):
		return "sideways"
	default:
		return "neutral"
	}
}

// extractJSON returns the first top-level JSON object found in text.
func extractJSON(text string) (string, error) {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	raw := text[start : end+1]
	if !json.Valid([]byte(raw)) {
		return "", fmt.Errorf("response contains invalid JSON")
	}
	return raw, nil
}
