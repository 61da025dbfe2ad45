package renderer

import (
	"strings"
	"testing"

	"github.com/autofin/autofin"
)

func TestRenderAnalysis(t *testing.T) {
	a := &autofin.StockAnalysis{
		Symbol:         "AAPL",
		Recommendation: autofin.Buy,
		Confidence:     0.85,
		Summary:        "Momentum supports an entry.",
		Technical: autofin.TechnicalView{
			Trend:         "bullish",
			SupportLevels: []float64{150, 145},
			Momentum:      "positive",
		},
		RiskFactors:   []string{"rate hikes"},
		Opportunities: []string{"services growth"},
		PriceTargets:  autofin.PriceTargets{ShortTerm: 160, MediumTerm: 175, LongTerm: 200},
	}

	got := RenderAnalysis(a)
	for _, want := range []string{
		"# AAPL: BUY",
		"Confidence: 0.85",
		"Momentum supports an entry.",
		"| Trend | bullish |",
		"150.00 145.00",
		"- rate hikes",
		"- services growth",
		"| 160.00 | 175.00 | 200.00 |",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered analysis misses %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "error") {
		t.Errorf("render error:\n%s", got)
	}
}

func TestRenderPortfolio(t *testing.T) {
	p := autofin.NewPortfolio()
	p.Cash = 1000
	p.Positions = []*autofin.Position{{
		Symbol:       "AAPL",
		Shares:       10,
		AverageCost:  100,
		CurrentPrice: 150,
		CurrentValue: 1500,
		ProfitLoss:   500,
		Weight:       60,
	}}

	got := RenderPortfolio(p)
	for _, want := range []string{
		"# Portfolio Summary",
		"| AAPL | 10 | $100.00 | $150.00 | $1,500.00 |",
		"| Cash | $1,000.00 |",
		"**$2,500.00**",
		"Risk tolerance: moderate, horizon: medium.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered portfolio misses %q:\n%s", want, got)
		}
	}
}

func TestRenderRebalance(t *testing.T) {
	p := autofin.NewPortfolio()

	// No recommendations.
	got := RenderRebalance(p, nil)
	if !strings.Contains(got, "nothing to do") {
		t.Errorf("empty rebalance should say there is nothing to do:\n%s", got)
	}

	recs := []autofin.RebalanceRecommendation{{
		Action:         autofin.ActionSell,
		Symbol:         "BIG",
		Shares:         40,
		Reason:         "BIG is 60.0% of the portfolio, above the 20% cap",
		Priority:       1,
		ExpectedImpact: "reduces concentration risk",
	}}
	got = RenderRebalance(p, recs)
	for _, want := range []string{
		"| 1 | SELL | BIG | 40 |",
		"**SELL BIG**: reduces concentration risk",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("rendered rebalance misses %q:\n%s", want, got)
		}
	}
}
