package autofin

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The portfolio file is JSONL: one record per line, identified by a
// "kind" field. Position lines carry a holding, the single settings line
// carries cash and preferences. Unknown kinds are an error so that a
// mangled file never silently loses data.

type recordKind string

const (
	kindPosition recordKind = "position"
	kindSettings recordKind = "settings"
)

type positionRecord struct {
	Kind        recordKind `json:"kind"`
	Symbol      string     `json:"symbol"`
	Shares      float64    `json:"shares"`
	AverageCost float64    `json:"averageCost"`
}

type settingsRecord struct {
	Kind          recordKind `json:"kind"`
	Cash          float64    `json:"cash"`
	Currency      string     `json:"currency,omitempty"`
	RiskTolerance string     `json:"riskTolerance,omitempty"`
	Horizon       string     `json:"horizon,omitempty"`
}

// DecodePortfolio decodes a portfolio from a stream of JSONL records.
func DecodePortfolio(r io.Reader) (*Portfolio, error) {
	p := NewPortfolio()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var identifier struct {
			Kind recordKind `json:"kind"`
		}
		if err := json.Unmarshal(line, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record in line %q: %w", string(line), err)
		}

		switch identifier.Kind {
		case kindPosition:
			var rec positionRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			if rec.Symbol == "" {
				return nil, fmt.Errorf("position record without symbol: %q", string(line))
			}
			p.Positions = append(p.Positions, &Position{
				Symbol:      rec.Symbol,
				Shares:      rec.Shares,
				AverageCost: rec.AverageCost,
			})
		case kindSettings:
			var rec settingsRecord
			if err := json.Unmarshal(line, &rec); err != nil {
				return nil, err
			}
			p.Cash = rec.Cash
			if rec.Currency != "" {
				p.Currency = rec.Currency
			}
			if rec.RiskTolerance != "" {
				p.RiskTolerance = rec.RiskTolerance
			}
			if rec.Horizon != "" {
				p.Horizon = rec.Horizon
			}
		default:
			return nil, fmt.Errorf("unknown record kind %q in line %q", identifier.Kind, string(line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return p, nil
}

// EncodePortfolio writes the portfolio in canonical JSONL form: the
// settings line first, then positions sorted by symbol.
func EncodePortfolio(w io.Writer, p *Portfolio) error {
	enc := json.NewEncoder(w)

	if err := enc.Encode(settingsRecord{
		Kind:          kindSettings,
		Cash:          p.Cash,
		Currency:      p.Currency,
		RiskTolerance: p.RiskTolerance,
		Horizon:       p.Horizon,
	}); err != nil {
		return err
	}

	positions := make([]*Position, len(p.Positions))
	copy(positions, p.Positions)
	sort.Slice(positions, func(i, j int) bool { return positions[i].Symbol < positions[j].Symbol })

	for _, pos := range positions {
		if err := enc.Encode(positionRecord{
			Kind:        kindPosition,
			Symbol:      pos.Symbol,
			Shares:      pos.Shares,
			AverageCost: pos.AverageCost,
		}); err != nil {
			return err
		}
	}
	return nil
}

// LoadPortfolio reads the portfolio file, returning an empty portfolio
// if the file does not exist yet.
func LoadPortfolio(filename string) (*Portfolio, error) {
	f, err := os.Open(filename)
	if os.IsNotExist(err) {
		return NewPortfolio(), nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePortfolio(f)
}

// SavePortfolio writes the portfolio file in canonical form.
func SavePortfolio(filename string, p *Portfolio) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	if err := EncodePortfolio(f, p); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
