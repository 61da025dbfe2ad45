// Package autofin provides the core types and logic for a genAI-driven
// stock analysis and portfolio management tool.
//
// The core functionalities include:
//   - Portfolio Management: Tracking positions, cash, and performance
//     metrics, persisted in a human-readable JSONL file.
//   - Stock Analysis: A structured analysis schema (recommendation,
//     confidence, price targets) produced by a Gemini-backed agent and
//     validated before use.
//   - Rebalancing: A rule-based engine producing prioritized
//     recommendations to keep positions within configured bounds.
//
// This package serves as the foundational logic for the `autofin`
// command-line tool. Market data, technical indicators, news and the
// agent itself live in their own packages.
package autofin
