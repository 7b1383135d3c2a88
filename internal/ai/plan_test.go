package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePlanJSON(t *testing.T) {
	clean := `{
		"action_type": "input",
		"selected_element": {"xpath": "//*[@id='q']", "css": "#q", "reason": "search box"},
		"input_value": "laptops",
		"wait_time": 2
	}`

	plan, err := parsePlanJSON(clean)
	require.NoError(t, err)
	assert.Equal(t, "input", plan.ActionType)
	assert.Equal(t, "laptops", plan.InputValue)
	assert.Equal(t, "//*[@id='q']", plan.Element.XPath)
	assert.Equal(t, "#q", plan.Element.CSS)
}

func TestParsePlanJSONFenced(t *testing.T) {
	fenced := "```json\n{\"action_type\": \"click\", \"selected_element\": {\"xpath\": \"//a[1]\", \"css\": \".link\"}}\n```"

	plan, err := parsePlanJSON(fenced)
	require.NoError(t, err)
	assert.Equal(t, "click", plan.ActionType)
	assert.Equal(t, ".link", plan.Element.CSS)
}

func TestParsePlanJSONWithSurroundingProse(t *testing.T) {
	noisy := `Here is the plan you asked for:
{"action_type": "navigate", "url": "https://example.com", "selected_element": {"xpath": "", "css": ""}}
Let me know if you need anything else.`

	plan, err := parsePlanJSON(noisy)
	require.NoError(t, err)
	assert.Equal(t, "navigate", plan.ActionType)
	assert.Equal(t, "https://example.com", plan.URL)
}

func TestParsePlanJSONNoObject(t *testing.T) {
	_, err := parsePlanJSON("sorry, I cannot help with that")
	require.Error(t, err)

	_, err = parsePlanJSON("{unterminated")
	require.Error(t, err)
}

func TestStepPlanLocators(t *testing.T) {
	plan := &StepPlan{Element: SelectedElement{XPath: "//a", CSS: ".x"}}
	assert.Equal(t, map[string]string{"xpath": "//a", "css": ".x"}, plan.Locators())

	empty := &StepPlan{}
	assert.Empty(t, empty.Locators())
}

func TestFallbackPlanNavigate(t *testing.T) {
	plan := FallbackPlan("navigate to 'https://example.com'")
	assert.Equal(t, "navigate", plan.ActionType)
	assert.Equal(t, "https://example.com", plan.URL)

	plan = FallbackPlan("Navigate to https://example.com")
	assert.Equal(t, "https://example.com", plan.URL)
}

func TestFallbackPlanClick(t *testing.T) {
	plan := FallbackPlan("Click on the login button")
	assert.Equal(t, "click", plan.ActionType)
}

func TestFallbackPlanInput(t *testing.T) {
	plan := FallbackPlan("Enter 'hello world' in the search field")
	assert.Equal(t, "input", plan.ActionType)
	assert.Equal(t, "hello world", plan.InputValue)

	plan = FallbackPlan("type something without quotes")
	assert.Equal(t, "input", plan.ActionType)
	assert.Empty(t, plan.InputValue)
}

func TestFallbackPlanDefaultsToClick(t *testing.T) {
	plan := FallbackPlan("verify the page loaded")
	assert.Equal(t, "click", plan.ActionType)
}
