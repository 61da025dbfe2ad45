// Package renderer turns analysis and portfolio reports into markdown.
package renderer

import (
	"embed"
	"fmt"
	"io/fs"
	"strings"
	"text/template"

	"github.com/autofin/autofin"
)

//go:embed *.md
var templates embed.FS

// funcs are the helpers available to every template.
var funcs = template.FuncMap{
	"money": func(v float64, currency string) string {
		return autofin.M(v, currency).String()
	},
	"signedMoney": func(v float64, currency string) string {
		return autofin.M(v, currency).SignedString()
	},
	"percent": func(p autofin.Percent) string { return p.String() },
	"signedPercent": func(p autofin.Percent) string {
		return p.SignedString()
	},
	"join": strings.Join,
}

// RenderAnalysis renders a stock analysis report to markdown.
func RenderAnalysis(a *autofin.StockAnalysis) string {
	return renderTemplate("analysis", "analysis.md", nil, a)
}

// PortfolioReport pairs the refreshed portfolio with its metrics for
// rendering.
type PortfolioReport struct {
	Portfolio *autofin.Portfolio
	Metrics   autofin.Metrics
}

// RenderPortfolio renders the portfolio summary to markdown.
func RenderPortfolio(p *autofin.Portfolio) string {
	report := PortfolioReport{Portfolio: p, Metrics: p.Metrics()}
	return renderTemplate("portfolio", "portfolio.md", nil, report)
}

// RebalanceReport pairs the recommendations with the portfolio they
// apply to.
type RebalanceReport struct {
	Portfolio       *autofin.Portfolio
	Recommendations []autofin.RebalanceRecommendation
}

// RenderRebalance renders the rebalance recommendations to markdown.
func RenderRebalance(p *autofin.Portfolio, recs []autofin.RebalanceRecommendation) string {
	report := RebalanceReport{Portfolio: p, Recommendations: recs}
	return renderTemplate("rebalance", "rebalance.md", nil, report)
}

// renderTemplate is a generic utility to render a main template that may
// depend on several partials.
func renderTemplate(templateName, mainFile string, partials map[string]string, data any) string {
	mainContent, err := fs.ReadFile(templates, mainFile)
	if err != nil {
		return fmt.Sprintf("error reading main template %q: %v", mainFile, err)
	}

	tmpl, err := template.New(templateName).Funcs(funcs).Parse(string(mainContent))
	if err != nil {
		return fmt.Sprintf("error parsing main template %q: %v", mainFile, err)
	}

	for name, file := range partials {
		content, err := fs.ReadFile(templates, file)
		if err != nil {
			return fmt.Sprintf("error reading partial template %q: %v", file, err)
		}
		if _, err := tmpl.New(name).Parse(string(content)); err != nil {
			return fmt.Sprintf("error parsing partial template %q for %q: %v", file, name, err)
		}
	}

	var b strings.Builder
	if err := tmpl.ExecuteTemplate(&b, templateName, data); err != nil {
		return fmt.Sprintf("error executing template %q: %v", templateName, err)
	}
	return b.String()
}
