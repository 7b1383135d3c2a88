package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFramework(t *testing.T) {
	for _, token := range []string{"selenium", "Selenium", "SELENIUM"} {
		fw, err := ParseFramework(token)
		require.NoError(t, err, token)
		assert.Equal(t, FrameworkSelenium, fw)
	}

	for _, token := range []string{"playwright", "PlayWright", "PLAYWRIGHT"} {
		fw, err := ParseFramework(token)
		require.NoError(t, err, token)
		assert.Equal(t, FrameworkPlaywright, fw)
	}

	_, err := ParseFramework("cypress")
	require.Error(t, err)
	var ufe *UnsupportedFrameworkError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "cypress", ufe.Kind)
	assert.Contains(t, err.Error(), "cypress")
}

func TestRenderUnsupportedFramework(t *testing.T) {
	g := NewGenerator()

	out, err := g.Render([]Action{{Type: ActionClick}}, "bogus")
	require.Error(t, err)
	assert.Empty(t, out)

	var ufe *UnsupportedFrameworkError
	require.True(t, errors.As(err, &ufe))
	assert.Equal(t, "bogus", ufe.Kind)
}

func TestRenderEmptyActionList(t *testing.T) {
	g := NewGenerator()

	for _, token := range []string{"selenium", "SELENIUM", "playwright", "Playwright"} {
		out, err := g.Render(nil, token)
		require.NoError(t, err, token)

		// The outer template survives intact with an empty step region.
		assert.NotContains(t, out, stepsSlot)
		assert.Contains(t, out, "def run_test():")
		assert.NotContains(t, out, "# Navigate to URL")
		assert.NotContains(t, out, "# Click element")
	}

	out, err := g.Render([]Action{}, "selenium")
	require.NoError(t, err)
	assert.Equal(t, strings.Replace(seleniumTemplate, stepsSlot, "", 1), out)
}

func TestRenderSeleniumNavigate(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate, ElementInfo: ElementInfo{URL: "https://example.com"}},
	}
	out, err := g.Render(actions, "selenium")
	require.NoError(t, err)

	assert.Contains(t, out, `driver.get("https://example.com")`)
	assert.Contains(t, out, "time.sleep(2)  # Wait for page load")
	assert.Contains(t, out, "from selenium import webdriver")
}

func TestRenderPlaywrightNavigate(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate, ElementInfo: ElementInfo{URL: "https://example.com"}},
	}
	out, err := g.Render(actions, "playwright")
	require.NoError(t, err)

	assert.Contains(t, out, `page.goto("https://example.com")`)
	assert.Contains(t, out, `page.wait_for_load_state("networkidle")`)
	assert.Contains(t, out, "from playwright.sync_api import sync_playwright")
}

func TestRenderInputAction(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{
			Type: ActionInput,
			ElementInfo: ElementInfo{
				Value: "hello",
				Locators: map[string]string{
					"xpath": `//*[@id='q']`,
					"css":   "#q",
				},
			},
		},
	}

	selenium, err := g.Render(actions, "selenium")
	require.NoError(t, err)
	assert.Contains(t, selenium, `EC.presence_of_element_located((By.XPATH, "//*[@id='q']"))`)
	assert.Contains(t, selenium, `element.send_keys("hello")`)
	assert.Contains(t, selenium, "element.send_keys(Keys.RETURN)")

	playwright, err := g.Render(actions, "playwright")
	require.NoError(t, err)
	assert.Contains(t, playwright, `page.fill("#q", "hello")`)
	assert.Contains(t, playwright, `page.keyboard.press("Enter")`)
}

func TestRenderClickAction(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{
			Type: ActionClick,
			ElementInfo: ElementInfo{
				Locators: map[string]string{"xpath": `//button[@id='go']`, "css": ".btn"},
			},
		},
	}

	selenium, err := g.Render(actions, "selenium")
	require.NoError(t, err)
	assert.Contains(t, selenium, `EC.element_to_be_clickable((By.XPATH, "//button[@id='go']"))`)
	assert.Contains(t, selenium, "element.click()")

	playwright, err := g.Render(actions, "playwright")
	require.NoError(t, err)
	assert.Contains(t, playwright, `page.click(".btn")`)
}

func TestRenderFragmentCountAndOrder(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate, ElementInfo: ElementInfo{URL: "https://a.test"}},
		{Type: ActionInput, ElementInfo: ElementInfo{Value: "first", Locators: map[string]string{"xpath": "//input[1]", "css": "#one"}}},
		{Type: ActionClick, ElementInfo: ElementInfo{Locators: map[string]string{"xpath": "//a[1]", "css": ".one"}}},
		{Type: ActionInput, ElementInfo: ElementInfo{Value: "second", Locators: map[string]string{"xpath": "//input[2]", "css": "#two"}}},
	}

	out, err := g.Render(actions, "selenium")
	require.NoError(t, err)

	assert.Equal(t, 1, strings.Count(out, "# Navigate to URL"))
	assert.Equal(t, 2, strings.Count(out, "# Wait for input element and enter text"))
	assert.Equal(t, 1, strings.Count(out, "# Wait for element to be clickable and click"))

	// Fragments appear in list order.
	nav := strings.Index(out, `driver.get("https://a.test")`)
	first := strings.Index(out, `element.send_keys("first")`)
	click := strings.Index(out, `By.XPATH, "//a[1]"`)
	second := strings.Index(out, `element.send_keys("second")`)
	require.True(t, nav >= 0 && first >= 0 && click >= 0 && second >= 0)
	assert.True(t, nav < first && first < click && click < second)
}

func TestRenderSkipsUnknownActionTypes(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate, ElementInfo: ElementInfo{URL: "https://a.test"}},
		{Type: ActionType("hover"), ElementInfo: ElementInfo{Locators: map[string]string{"css": ".menu"}}},
		{Type: ActionClick, ElementInfo: ElementInfo{Locators: map[string]string{"css": ".btn", "xpath": "//b"}}},
	}

	out, err := g.Render(actions, "playwright")
	require.NoError(t, err)

	assert.NotContains(t, out, ".menu")
	assert.Equal(t, 1, strings.Count(out, "# Navigate to URL"))
	assert.Equal(t, 1, strings.Count(out, "# Click element"))
}

func TestRenderMissingFieldsDefaultEmpty(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate},
		{Type: ActionInput},
		{Type: ActionClick},
	}

	selenium, err := g.Render(actions, "selenium")
	require.NoError(t, err)
	assert.Contains(t, selenium, `driver.get("")`)
	assert.Contains(t, selenium, `element.send_keys("")`)
	assert.Contains(t, selenium, `By.XPATH, ""`)

	playwright, err := g.Render(actions, "playwright")
	require.NoError(t, err)
	assert.Contains(t, playwright, `page.goto("")`)
	assert.Contains(t, playwright, `page.fill("", "")`)
	assert.Contains(t, playwright, `page.click("")`)
}

func TestRenderIdempotent(t *testing.T) {
	g := NewGenerator()

	actions := []Action{
		{Type: ActionNavigate, ElementInfo: ElementInfo{URL: "https://example.com"}},
		{Type: ActionInput, ElementInfo: ElementInfo{Value: "hello", Locators: map[string]string{"xpath": "//*[@id='q']", "css": "#q"}}},
	}

	for _, token := range []string{"selenium", "playwright"} {
		first, err := g.Render(actions, token)
		require.NoError(t, err)
		second, err := g.Render(actions, token)
		require.NoError(t, err)
		assert.Equal(t, first, second, token)
	}
}
