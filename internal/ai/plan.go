package ai

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"
)

// SelectedElement carries the locators the model chose for a step.
type SelectedElement struct {
	XPath  string `json:"xpath"`
	CSS    string `json:"css"`
	Reason string `json:"reason,omitempty"`
}

// StepPlan is the analyzed form of one natural-language test step.
type StepPlan struct {
	ActionType string          `json:"action_type"` // navigate, input, click
	URL        string          `json:"url,omitempty"`
	Element    SelectedElement `json:"selected_element"`
	InputValue string          `json:"input_value,omitempty"`
	WaitTime   int             `json:"wait_time,omitempty"`
}

// Locators returns the plan's element locators as a strategy map.
func (p *StepPlan) Locators() map[string]string {
	locators := make(map[string]string)
	if p.Element.XPath != "" {
		locators["xpath"] = p.Element.XPath
	}
	if p.Element.CSS != "" {
		locators["css"] = p.Element.CSS
	}
	return locators
}

// parsePlanJSON extracts and parses a JSON object from a model reply that
// may contain surrounding prose or markdown fences.
func parsePlanJSON(response string) (*StepPlan, error) {
	response = strings.TrimSpace(response)
	response = strings.TrimPrefix(response, "```json")
	response = strings.TrimPrefix(response, "```")
	response = strings.TrimSuffix(response, "```")

	var plan StepPlan
	if err := json.Unmarshal([]byte(response), &plan); err == nil {
		return &plan, nil
	}

	start := strings.Index(response, "{")
	if start == -1 {
		return nil, fmt.Errorf("no JSON object found in response")
	}

	depth := 0
	end := -1
	for i := start; i < len(response); i++ {
		switch response[i] {
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				end = i + 1
			}
		}
		if end != -1 {
			break
		}
	}
	if end == -1 {
		return nil, fmt.Errorf("no matching closing brace found")
	}

	if err := json.Unmarshal([]byte(response[start:end]), &plan); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON: %w", err)
	}
	return &plan, nil
}

var quotedValueRe = regexp.MustCompile(`'([^']*)'`)

// FallbackPlan derives a best-effort plan from step keywords when the
// model reply cannot be used. Click and input plans carry no locators;
// the caller surfaces element-not-found if the page cannot resolve them.
func FallbackPlan(step string) *StepPlan {
	lower := strings.ToLower(strings.TrimSpace(step))

	if strings.HasPrefix(lower, "navigate to") {
		url := strings.TrimSpace(step[len("navigate to"):])
		url = strings.Trim(url, `'"`)
		return &StepPlan{ActionType: "navigate", URL: url}
	}

	if strings.HasPrefix(lower, "click") {
		return &StepPlan{ActionType: "click", WaitTime: 2}
	}

	if strings.Contains(lower, "enter") || strings.Contains(lower, "type") || strings.Contains(lower, "input") {
		value := ""
		if m := quotedValueRe.FindStringSubmatch(step); m != nil {
			value = m[1]
		}
		return &StepPlan{ActionType: "input", InputValue: value, WaitTime: 2}
	}

	return &StepPlan{ActionType: "click", WaitTime: 2}
}
