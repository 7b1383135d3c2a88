// Package ai analyzes natural-language test steps against a scanned page
// and selects the element and locators to act on.
package ai

import (
	"fmt"

	"github.com/t3mko/webscribe/internal/browser"
)

// Provider defines the interface for step analysis.
type Provider interface {
	AnalyzeStep(pageMap *browser.PageMap, step string) (*StepPlan, error)
}

// NewProvider creates an AI provider by name.
func NewProvider(name, model string) (Provider, error) {
	switch name {
	case "claude", "anthropic":
		return NewClaudeProvider(model)
	case "openai", "gpt":
		return NewOpenAIProvider(model)
	default:
		return nil, fmt.Errorf("unknown provider: %s (supported: claude, openai)", name)
	}
}
