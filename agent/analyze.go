package agent

import (
	"context"
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/autofin/autofin"
	"github.com/autofin/autofin/indicator"
	"github.com/autofin/autofin/market"
	"github.com/autofin/autofin/news"
	"google.golang.org/genai"
)

//go:embed analysis_prompt.md
var analysisPrompt string

const analystSystemPrompt = `You are a financial analyst assistant specializing in stock analysis.
Your analysis should be data-driven, comprehensive, and formatted according to the specified JSON schema.
Always provide analysis with supporting evidence and maintain a balanced perspective.`

// Request holds the parameters of one stock analysis.
type Request struct {
	Symbol            string
	IncludeTechnicals bool
	IncludeNews       bool
	Timeframe         string // short, medium or long
	RiskTolerance     string // conservative, moderate or aggressive
}

// NewRequest returns a Request with the usual moderate defaults.
func NewRequest(symbol string) Request {
	return Request{
		Symbol:            symbol,
		IncludeTechnicals: true,
		IncludeNews:       true,
		Timeframe:         "medium",
		RiskTolerance:     "moderate",
	}
}

// promptData is the payload handed to the analysis prompt template.
type promptData struct {
	Symbol        string
	Timeframe     string
	RiskTolerance string
	Data          *market.StockData
	Report        *indicator.Report
	NewsSentiment string
	Headlines     []string
}

var promptTemplate = template.Must(template.New("analysis").Funcs(template.FuncMap{
	"optional": func(v *float64) string {
		if v == nil {
			return "N/A"
		}
		return fmt.Sprintf("%.2f", *v)
	},
	"marketCap": func(v *float64) string {
		switch {
		case v == nil:
			return "N/A"
		case *v >= 1e9:
			return fmt.Sprintf("$%.1fB", *v/1e9)
		default:
			return fmt.Sprintf("$%.1fM", *v/1e6)
		}
	},
}).Parse(analysisPrompt))

// Analyze performs a one-shot structured analysis of a stock: it
// gathers market data, indicators and news, asks the model for a JSON
// report and validates it against the analysis schema.
func Analyze(ctx context.Context, client *genai.Client, cfg *autofin.Config, req Request) (*autofin.StockAnalysis, error) {
	data, candles, err := market.Snapshot(cfg.EodhdAPIKey, req.Symbol)
	if err != nil {
		return nil, err
	}

	pd := promptData{
		Symbol:        req.Symbol,
		Timeframe:     req.Timeframe,
		RiskTolerance: req.RiskTolerance,
		Data:          data,
		NewsSentiment: "N/A",
	}

	if req.IncludeTechnicals {
		high, low, close, volume := market.Series(candles)
		pd.Report = indicator.NewReport(high, low, close, volume)
	}

	if req.IncludeNews {
		headlines, err := market.FetchHeadlines(cfg.EodhdAPIKey, req.Symbol, 20)
		if err != nil {
			return nil, fmt.Errorf("fetching news for %s: %w", req.Symbol, err)
		}
		titles := make([]string, len(headlines))
		for i, h := range headlines {
			titles[i] = h.Title
		}
		pd.NewsSentiment = news.Aggregated(titles).Overall()
		if len(titles) > 5 {
			titles = titles[:5]
		}
		pd.Headlines = titles
	}

	var b strings.Builder
	if err := promptTemplate.Execute(&b, pd); err != nil {
		return nil, fmt.Errorf("building analysis prompt: %w", err)
	}

	analyst := &Expert{
		Name:      "Analyst",
		ModelName: cfg.ModelName,
		Config: &genai.GenerateContentConfig{
			Temperature:       genai.Ptr(float32(cfg.Temperature)),
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: analystSystemPrompt}}},
		},
	}
	if err := analyst.Start(ctx, client); err != nil {
		return nil, err
	}

	content, err := analyst.Ask(ctx, &genai.Part{Text: b.String()})
	if err != nil {
		return nil, err
	}

	analysis, err := autofin.ParseAnalysis(content.Parts[0].Text)
	if err != nil {
		return nil, err
	}
	analysis.Symbol = req.Symbol
	return analysis, nil
}
