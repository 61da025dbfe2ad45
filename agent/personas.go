package agent

import (
	"google.golang.org/genai"
)

// newFacilitator builds the expert in charge of the conversation,
// delegating to the other experts as tools.
func newFacilitator(model string, experts ...*Expert) *Expert {
	return &Expert{
		Name:      "Facilitator",
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(experts)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			As a facilitator you are in charge of the conversation and solving the user's request.

			Learn about the expert's skills from the Tools and ask them questions.
			They are at your service and 100% dedicated to you, they keep context of your previous questions.

			The user is here primarily to get analysis, news or information about stocks
			and about his portfolio. Devise a plan of questions to ask each expert and come
			up with the best response to the user's request.
		`}}},
		},
		Toolbox: NewToolbox(experts),
	}
}

// NewResearcher returns an expert grounded in Google Search, for recent
// news and facts about companies and markets.
func NewResearcher(model string) *Expert {
	return &Expert{
		Name: "Researcher",
		Description: `This is an expert market researcher,
		very well aware of financial products and institutions and of
		the latest news about companies and funds.
		Ask the Researcher whenever you need recent or grounding information.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{GoogleSearch: &genai.GoogleSearch{}},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
			You are an expert in financial markets. You can search and find anything related
			to financial institutions, companies, markets and funds. You leverage Google
			Search to ground your assertions in solid truth, and you know how to relate
			the latest news to the user's request.
				`}}},
		},
	}
}

// NewAnalyst returns the quantitative expert. It carries the function
// tools for market data, indicators, news sentiment and the codebase.
func NewAnalyst(model string, tools *Tools) *Expert {
	lib := tools.All()

	return &Expert{
		Name: "Analyst",
		Description: `This is the quantitative Analyst. It can fetch market data,
		compute technical indicators, and score news sentiment for any stock.
		Ask the Analyst whenever a figure or a recommendation is needed.`,
		ModelName: model,
		Config: &genai.GenerateContentConfig{
			Tools: []*genai.Tool{
				{FunctionDeclarations: NewDeclarations(lib)},
			},
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: `
				You are a quantitative stock analyst. Use the available tools to gather
				market data, technical indicators and news sentiment about stocks, and
				answer with data-driven, balanced assessments. Always name the figures
				supporting your conclusions.
			`}}},
		},
		Toolbox: NewToolbox(lib),
	}
}
