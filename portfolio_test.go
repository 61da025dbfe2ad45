package autofin

import (
	"fmt"
	"math"
	"testing"
)

// fakeQuoter serves canned prices.
type fakeQuoter map[string]float64

func (q fakeQuoter) Quote(symbol string) (float64, error) {
	price, ok := q[symbol]
	if !ok {
		return 0, fmt.Errorf("unknown symbol %q", symbol)
	}
	return price, nil
}

func testPortfolio() *Portfolio {
	p := NewPortfolio()
	p.Cash = 1000
	p.Positions = []*Position{
		{Symbol: "AAPL", Shares: 10, AverageCost: 100},
		{Symbol: "MSFT", Shares: 5, AverageCost: 200},
	}
	return p
}

func TestRefresh(t *testing.T) {
	p := testPortfolio()
	q := fakeQuoter{"AAPL": 150, "MSFT": 180}
	if err := p.Refresh(q); err != nil {
		t.Fatal(err)
	}

	aapl := p.Position("AAPL")
	if aapl.CurrentValue != 1500 {
		t.Errorf("AAPL value = %v, want 1500", aapl.CurrentValue)
	}
	if aapl.ProfitLoss != 500 {
		t.Errorf("AAPL P&L = %v, want 500", aapl.ProfitLoss)
	}
	if !aapl.ProfitLossPercent.Equal(50) {
		t.Errorf("AAPL P&L%% = %v, want 50%%", aapl.ProfitLossPercent)
	}

	msft := p.Position("MSFT")
	if msft.ProfitLoss != -100 {
		t.Errorf("MSFT P&L = %v, want -100", msft.ProfitLoss)
	}

	// Total is 1000 cash + 1500 + 900 = 3400.
	if got := p.TotalValue(); got != 3400 {
		t.Errorf("total = %v, want 3400", got)
	}
	if !aapl.Weight.Equal(Percent(1500.0 / 3400 * 100)) {
		t.Errorf("AAPL weight = %v", aapl.Weight)
	}
}

func TestRefreshUnknownSymbol(t *testing.T) {
	p := testPortfolio()
	if err := p.Refresh(fakeQuoter{"AAPL": 150}); err == nil {
		t.Fatal("expected an error for an unquotable symbol")
	}
}

func TestMetrics(t *testing.T) {
	p := testPortfolio()
	if err := p.Refresh(fakeQuoter{"AAPL": 150, "MSFT": 180}); err != nil {
		t.Fatal(err)
	}
	m := p.Metrics()
	if m.TotalValue != 3400 || m.CashBalance != 1000 || m.InvestedValue != 2400 {
		t.Errorf("metrics = %+v", m)
	}
	if m.TotalProfitLoss != 400 {
		t.Errorf("total P&L = %v, want 400", m.TotalProfitLoss)
	}
	// Cost basis is 10*100 + 5*200 = 2000, so 20%.
	if !m.TotalProfitLossPct.Equal(20) {
		t.Errorf("total P&L%% = %v, want 20%%", m.TotalProfitLossPct)
	}
}

func TestDiversityScore(t *testing.T) {
	p := NewPortfolio()
	p.Positions = []*Position{
		{Symbol: "A", CurrentValue: 100},
		{Symbol: "B", CurrentValue: 100},
	}
	if got := p.diversityScore(); math.Abs(got-1) > 1e-9 {
		t.Errorf("equal weights score = %v, want 1", got)
	}

	p.Positions[1].CurrentValue = 0
	if got := p.diversityScore(); math.Abs(got) > 1e-9 {
		t.Errorf("fully concentrated score = %v, want 0", got)
	}

	if got := NewPortfolio().diversityScore(); got != 0 {
		t.Errorf("empty portfolio score = %v, want 0", got)
	}
}

func TestSymbols(t *testing.T) {
	p := NewPortfolio()
	p.Positions = []*Position{{Symbol: "MSFT"}, {Symbol: "AAPL"}}
	got := p.Symbols()
	if len(got) != 2 || got[0] != "AAPL" || got[1] != "MSFT" {
		t.Errorf("symbols = %v, want sorted [AAPL MSFT]", got)
	}
}
