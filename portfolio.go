package autofin

import (
	"fmt"
	"sort"
	"time"
)

// Position represents a single holding in the portfolio.
type Position struct {
	Symbol      string  `json:"symbol"`
	Shares      float64 `json:"shares"`
	AverageCost float64 `json:"averageCost"`

	// Refreshed from market data, not persisted.
	CurrentPrice      float64   `json:"-"`
	CurrentValue      float64   `json:"-"`
	ProfitLoss        float64   `json:"-"`
	ProfitLossPercent Percent   `json:"-"`
	Weight            Percent   `json:"-"`
	LastUpdated       time.Time `json:"-"`
}

// Metrics holds portfolio level performance figures.
type Metrics struct {
	TotalValue         float64
	CashBalance        float64
	InvestedValue      float64
	TotalProfitLoss    float64
	TotalProfitLossPct Percent
	DiversityScore     float64 // 0-1, higher is better diversified
}

// Portfolio is the complete portfolio state.
type Portfolio struct {
	Positions     []*Position
	Cash          float64
	Currency      string
	RiskTolerance string // conservative, moderate or aggressive
	Horizon       string // short, medium or long
}

// NewPortfolio returns an empty portfolio with moderate defaults.
func NewPortfolio() *Portfolio {
	return &Portfolio{
		Currency:      "USD",
		RiskTolerance: "moderate",
		Horizon:       "medium",
	}
}

// Position returns the position for symbol, or nil.
func (p *Portfolio) Position(symbol string) *Position {
	for _, pos := range p.Positions {
		if pos.Symbol == symbol {
			return pos
		}
	}
	return nil
}

// Symbols returns the held symbols in alphabetical order.
func (p *Portfolio) Symbols() []string {
	symbols := make([]string, 0, len(p.Positions))
	for _, pos := range p.Positions {
		symbols = append(symbols, pos.Symbol)
	}
	sort.Strings(symbols)
	return symbols
}

// Quoter provides the latest traded price for a symbol.
type Quoter interface {
	Quote(symbol string) (float64, error)
}

// Refresh updates every position with the latest price from the quoter
// and recomputes values, profit and weights.
func (p *Portfolio) Refresh(q Quoter) error {
	for _, pos := range p.Positions {
		price, err := q.Quote(pos.Symbol)
		if err != nil {
			return fmt.Errorf("refreshing %s: %w", pos.Symbol, err)
		}
		pos.CurrentPrice = price
		pos.CurrentValue = pos.Shares * price
		pos.ProfitLoss = pos.CurrentValue - pos.Shares*pos.AverageCost
		if pos.AverageCost != 0 {
			pos.ProfitLossPercent = Percent((price - pos.AverageCost) / pos.AverageCost * 100)
		}
		pos.LastUpdated = time.Now()
	}
	total := p.TotalValue()
	for _, pos := range p.Positions {
		if total != 0 {
			pos.Weight = Percent(pos.CurrentValue / total * 100)
		}
	}
	return nil
}

// TotalValue is cash plus the current value of all positions.
func (p *Portfolio) TotalValue() float64 {
	total := p.Cash
	for _, pos := range p.Positions {
		total += pos.CurrentValue
	}
	return total
}

// Metrics computes portfolio level figures. Refresh first.
func (p *Portfolio) Metrics() Metrics {
	m := Metrics{CashBalance: p.Cash}
	var cost float64
	for _, pos := range p.Positions {
		m.InvestedValue += pos.CurrentValue
		m.TotalProfitLoss += pos.ProfitLoss
		cost += pos.Shares * pos.AverageCost
	}
	m.TotalValue = m.CashBalance + m.InvestedValue
	if cost != 0 {
		m.TotalProfitLossPct = Percent(m.TotalProfitLoss / cost * 100)
	}
	m.DiversityScore = p.diversityScore()
	return m
}

// diversityScore is 1 minus the Herfindahl concentration of position
// weights, scaled so an equally weighted portfolio approaches 1.
func (p *Portfolio) diversityScore() float64 {
	if len(p.Positions) == 0 {
		return 0
	}
	invested := 0.0
	for _, pos := range p.Positions {
		invested += pos.CurrentValue
	}
	if invested == 0 {
		return 0
	}
	herfindahl := 0.0
	for _, pos := range p.Positions {
		w := pos.CurrentValue / invested
		herfindahl += w * w
	}
	n := float64(len(p.Positions))
	// Normalize between 1/n (equal weights) and 1 (single position).
	if n == 1 {
		return 0
	}
	return (1 - herfindahl) / (1 - 1/n)
}
