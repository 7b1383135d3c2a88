package script

// ActionType tags a recorded browser interaction.
type ActionType string

const (
	ActionNavigate ActionType = "navigate"
	ActionInput    ActionType = "input"
	ActionClick    ActionType = "click"
)

// ElementInfo carries the per-action payload. Which fields are set depends
// on the action type: URL for navigate, Locators for input and click, and
// Value for input. The descriptive fields (Tag, Text) come from the
// recorder and are not read by the renderer.
type ElementInfo struct {
	URL      string            `json:"url,omitempty"`
	Value    string            `json:"value,omitempty"`
	Locators map[string]string `json:"locators,omitempty"`
	Tag      string            `json:"tag,omitempty"`
	Text     string            `json:"text,omitempty"`
}

// Action is one recorded browser interaction. Actions are immutable
// inputs to the renderer and are read in list order.
type Action struct {
	Type        ActionType  `json:"type"`
	ElementInfo ElementInfo `json:"element_info"`
}

// Locator returns the locator value for the given strategy, or "" if the
// strategy is absent.
func (a Action) Locator(strategy string) string {
	return a.ElementInfo.Locators[strategy]
}
