package agent

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/autofin/autofin/collect"
	"github.com/autofin/autofin/indicator"
	"github.com/autofin/autofin/market"
	"github.com/autofin/autofin/news"
	"google.golang.org/genai"
)

// Tools holds the state the analyst's function tools need.
type Tools struct {
	EodhdAPIKey string
	CodebaseDir string // root directory for read_codebase, default "."
}

// All returns the analyst's toolbox functions.
func (t *Tools) All() []Function {
	return []Function{
		t.stockData(),
		t.stockNews(),
		t.technicalIndicators(),
		t.readCodebase(),
	}
}

// ok and fail wrap a tool result in a FunctionResponse. Data is sent to
// the model as JSON text.
func ok(id, name string, data any) *genai.FunctionResponse {
	out, err := json.Marshal(data)
	if err != nil {
		return fail(id, name, err)
	}
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"output": string(out)}}
}

func fail(id, name string, err error) *genai.FunctionResponse {
	return &genai.FunctionResponse{ID: id, Name: name, Response: map[string]any{"error": err.Error()}}
}

func symbolParam() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"symbol": {
				Type:        genai.TypeString,
				Description: "The stock ticker symbol, e.g. AAPL or NVD.F.",
			},
		},
		Required: []string{"symbol"},
	}
}

func (t *Tools) stockData() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_stock_data",
			Description: "Get stock market data including price, trend metrics and fundamentals.",
			Parameters:  symbolParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "JSON with current price, 6-month change, volatility, moving averages, RSI and fundamentals.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, _ := args["symbol"].(string)
			data, _, err := market.Snapshot(t.EodhdAPIKey, symbol)
			if err != nil {
				return fail(id, "get_stock_data", err)
			}
			return ok(id, "get_stock_data", data)
		},
	}
}

func (t *Tools) stockNews() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_stock_news",
			Description: "Get recent news headlines about a stock with their aggregated sentiment.",
			Parameters:  symbolParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "JSON with the latest headlines and sentiment statistics.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, _ := args["symbol"].(string)
			headlines, err := market.FetchHeadlines(t.EodhdAPIKey, symbol, 20)
			if err != nil {
				return fail(id, "get_stock_news", err)
			}
			titles := make([]string, len(headlines))
			for i, h := range headlines {
				titles[i] = h.Title
			}
			return ok(id, "get_stock_news", map[string]any{
				"headlines": headlines,
				"sentiment": news.Aggregated(titles),
			})
		},
	}
}

func (t *Tools) technicalIndicators() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "get_technical_indicators",
			Description: "Compute MACD, Bollinger bands, stochastic oscillator, OBV, ATR and Fibonacci levels over six months of prices.",
			Parameters:  symbolParam(),
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "JSON with the latest value of each indicator.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			symbol, _ := args["symbol"].(string)
			_, candles, err := market.Snapshot(t.EodhdAPIKey, symbol)
			if err != nil {
				return fail(id, "get_technical_indicators", err)
			}
			high, low, close, volume := market.Series(candles)
			return ok(id, "get_technical_indicators", indicator.NewReport(high, low, close, volume))
		},
	}
}

func (t *Tools) readCodebase() Function {
	return &Func{
		Decl: &genai.FunctionDeclaration{
			Name:        "read_codebase",
			Description: "Concatenate the project's source files into one document for context.",
			Parameters: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"extension": {
						Type:        genai.TypeString,
						Description: "File suffix to collect, default .py.",
					},
				},
			},
			Response: &genai.Schema{
				Type:        genai.TypeString,
				Description: "The concatenated source files, each preceded by its path.",
			},
		},
		Run: func(ctx context.Context, id string, args map[string]any) *genai.FunctionResponse {
			dir := t.CodebaseDir
			if dir == "" {
				dir = "."
			}
			out := filepath.Join(os.TempDir(), "autofin-codebase.txt")
			opts := collect.Options{Dir: dir, Out: out}
			if ext, okArg := args["extension"].(string); okArg && ext != "" {
				opts.Ext = ext
				opts.Label = ext + " files"
			}
			if _, err := collect.Run(opts); err != nil {
				return fail(id, "read_codebase", err)
			}
			content, err := os.ReadFile(out)
			if err != nil {
				return fail(id, "read_codebase", err)
			}
			return &genai.FunctionResponse{ID: id, Name: "read_codebase", Response: map[string]any{"output": string(content)}}
		},
	}
}
