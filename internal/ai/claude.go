package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/t3mko/webscribe/internal/browser"
)

// ClaudeProvider implements the Provider interface using Anthropic's Claude.
type ClaudeProvider struct {
	client *anthropic.Client
	model  string
}

// NewClaudeProvider creates a new Claude provider.
func NewClaudeProvider(model string) (*ClaudeProvider, error) {
	apiKey := os.Getenv("WEBSCRIBE_ANTHROPIC_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("ANTHROPIC_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("WEBSCRIBE_ANTHROPIC_KEY or ANTHROPIC_API_KEY environment variable required")
	}

	client := anthropic.NewClient(option.WithAPIKey(apiKey))

	if model == "" {
		model = string(anthropic.ModelClaudeSonnet4_20250514)
	}

	return &ClaudeProvider{
		client: &client,
		model:  model,
	}, nil
}

// AnalyzeStep asks the model to pick the element and locators for a step.
func (p *ClaudeProvider) AnalyzeStep(pageMap *browser.PageMap, step string) (*StepPlan, error) {
	pageMapJSON, err := json.MarshalIndent(pageMap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal page map: %w", err)
	}

	resp, err := p.client.Messages.New(context.Background(), anthropic.MessageNewParams{
		Model:     anthropic.Model(p.model),
		MaxTokens: 512,
		System: []anthropic.TextBlockParam{
			{Text: systemPrompt},
		},
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(buildStepPrompt(string(pageMapJSON), step))),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("Claude API error: %w", err)
	}

	var responseText string
	for _, block := range resp.Content {
		if block.Type == "text" {
			responseText = block.Text
			break
		}
	}
	if responseText == "" {
		return nil, fmt.Errorf("empty response from Claude")
	}

	plan, err := parsePlanJSON(responseText)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Claude response as JSON: %w\nResponse: %s", err, responseText)
	}
	return plan, nil
}
