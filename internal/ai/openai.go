package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	openai "github.com/sashabaranov/go-openai"

	"github.com/t3mko/webscribe/internal/browser"
)

// OpenAIProvider implements the Provider interface using OpenAI.
type OpenAIProvider struct {
	client *openai.Client
	model  string
}

// NewOpenAIProvider creates a new OpenAI provider.
func NewOpenAIProvider(model string) (*OpenAIProvider, error) {
	apiKey := os.Getenv("WEBSCRIBE_OPENAI_KEY")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	if apiKey == "" {
		return nil, fmt.Errorf("WEBSCRIBE_OPENAI_KEY or OPENAI_API_KEY environment variable required")
	}

	client := openai.NewClient(apiKey)

	if model == "" {
		model = "gpt-4o"
	}

	return &OpenAIProvider{
		client: client,
		model:  model,
	}, nil
}

// AnalyzeStep asks the model to pick the element and locators for a step.
func (p *OpenAIProvider) AnalyzeStep(pageMap *browser.PageMap, step string) (*StepPlan, error) {
	pageMapJSON, err := json.MarshalIndent(pageMap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal page map: %w", err)
	}

	resp, err := p.client.CreateChatCompletion(
		context.Background(),
		openai.ChatCompletionRequest{
			Model: p.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role:    openai.ChatMessageRoleSystem,
					Content: systemPrompt,
				},
				{
					Role:    openai.ChatMessageRoleUser,
					Content: buildStepPrompt(string(pageMapJSON), step),
				},
			},
			MaxTokens: 512,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("OpenAI API error: %w", err)
	}

	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("empty response from OpenAI")
	}

	plan, err := parsePlanJSON(resp.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse OpenAI response as JSON: %w\nResponse: %s", err, resp.Choices[0].Message.Content)
	}
	return plan, nil
}
