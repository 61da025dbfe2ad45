package autofin

import (
	"fmt"
	"math"
	"sort"
)

// RebalancePolicy bounds position sizes and defines when a drift is
// worth acting on.
type RebalancePolicy struct {
	MaxPositionSize float64 // maximum weight of a single position, e.g. 0.20
	MinPositionSize float64 // minimum weight of a single position, e.g. 0.02
	DriftThreshold  float64 // deviation that triggers a rebalance, e.g. 0.05
}

// DefaultPolicy mirrors the standard moderate risk settings.
var DefaultPolicy = RebalancePolicy{
	MaxPositionSize: 0.20,
	MinPositionSize: 0.02,
	DriftThreshold:  0.05,
}

// RebalanceAction is what a recommendation tells the user to do.
type RebalanceAction string

const (
	ActionBuy       RebalanceAction = "BUY"
	ActionSell      RebalanceAction = "SELL"
	ActionRebalance RebalanceAction = "REBALANCE"
)

// RebalanceRecommendation is one prioritized portfolio adjustment.
type RebalanceRecommendation struct {
	Action         RebalanceAction `json:"action"`
	Symbol         string          `json:"symbol,omitempty"`
	Shares         float64         `json:"shares,omitempty"`
	Reason         string          `json:"reason"`
	Priority       int             `json:"priority"` // 1 is highest
	ExpectedImpact string          `json:"expected_impact"`
}

// Rebalance inspects the refreshed portfolio against the policy and
// returns recommendations sorted by priority. An empty slice means the
// portfolio is within bounds.
func (p *Portfolio) Rebalance(policy RebalancePolicy) []RebalanceRecommendation {
	var recs []RebalanceRecommendation
	total := p.TotalValue()
	if total == 0 {
		return recs
	}

	for _, pos := range p.Positions {
		weight := pos.CurrentValue / total
		switch {
		case weight > policy.MaxPositionSize+policy.DriftThreshold:
			// From values, not weights: the weight product reintroduces
			// float error and can floor to one share short.
			excess := pos.CurrentValue - policy.MaxPositionSize*total
			shares := sharesFor(excess, pos.CurrentPrice)
			recs = append(recs, RebalanceRecommendation{
				Action:   ActionSell,
				Symbol:   pos.Symbol,
				Shares:   shares,
				Reason:   fmt.Sprintf("%s is %.1f%% of the portfolio, above the %.0f%% cap", pos.Symbol, weight*100, policy.MaxPositionSize*100),
				Priority: 1,
				ExpectedImpact: fmt.Sprintf("reduces concentration risk by trimming %.1f%% of total value",
					(weight-policy.MaxPositionSize)*100),
			})
		case weight > policy.MaxPositionSize:
			recs = append(recs, RebalanceRecommendation{
				Action:         ActionRebalance,
				Symbol:         pos.Symbol,
				Reason:         fmt.Sprintf("%s is slightly above the %.0f%% cap", pos.Symbol, policy.MaxPositionSize*100),
				Priority:       3,
				ExpectedImpact: "keeps the position within policy on the next trade",
			})
		case weight < policy.MinPositionSize:
			recs = append(recs, RebalanceRecommendation{
				Action:         ActionRebalance,
				Symbol:         pos.Symbol,
				Reason:         fmt.Sprintf("%s is only %.2f%% of the portfolio, below the %.0f%% floor", pos.Symbol, weight*100, policy.MinPositionSize*100),
				Priority:       4,
				ExpectedImpact: "either grow the position to a meaningful size or exit it",
			})
		}
	}

	// Idle cash beyond the drift threshold is a missed opportunity.
	cashWeight := p.Cash / total
	if cashWeight > policy.DriftThreshold+policy.MaxPositionSize {
		recs = append(recs, RebalanceRecommendation{
			Action:         ActionBuy,
			Reason:         fmt.Sprintf("cash is %.1f%% of the portfolio", cashWeight*100),
			Priority:       2,
			ExpectedImpact: "deploys idle cash into the market",
		})
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Priority < recs[j].Priority })
	return recs
}

// sharesFor converts an amount to a whole number of shares, at least one.
func sharesFor(amount, price float64) float64 {
	if price <= 0 {
		return 0
	}
	return math.Max(1, math.Floor(amount/price))
}
