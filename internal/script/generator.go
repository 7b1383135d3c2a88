// Package script renders recorded browser interactions into runnable
// UI-test scripts. The renderer is a pure function from an ordered action
// list and a framework dialect to source text; the outer templates are
// fixed at construction and never mutated.
package script

import (
	"fmt"
	"strings"
)

// stepsSlot is the single insertion point in each outer template.
const stepsSlot = "{test_steps}"

const seleniumTemplate = `
from selenium import webdriver
from selenium.webdriver.common.by import By
from selenium.webdriver.common.keys import Keys
from selenium.webdriver.support.ui import WebDriverWait
from selenium.webdriver.support import expected_conditions as EC
import time

def run_test():
    # Initialize the driver
    driver = webdriver.Chrome()
    driver.maximize_window()
    wait = WebDriverWait(driver, 10)

    try:
        {test_steps}

    except Exception as e:
        print(f"Test failed: {str(e)}")
    finally:
        time.sleep(2)  # Small delay before closing
        driver.quit()


if __name__ == "__main__":
    run_test()
`

const playwrightTemplate = `
from playwright.sync_api import sync_playwright
import time

def run_test():
    with sync_playwright() as p:
        browser = p.chromium.launch(headless=False)
        context = browser.new_context()
        page = context.new_page()

        try:
            {test_steps}

        except Exception as e:
            print(f"Test failed: {str(e)}")
        finally:
            time.sleep(2)  # Small delay before closing
            browser.close()

if __name__ == "__main__":
    run_test()
`

// Generator renders action lists into automation scripts. It holds only
// the two template constants, so a single Generator is safe for
// concurrent use.
type Generator struct {
	seleniumTemplate   string
	playwrightTemplate string
}

// NewGenerator returns a Generator with the built-in dialect templates.
func NewGenerator() *Generator {
	return &Generator{
		seleniumTemplate:   seleniumTemplate,
		playwrightTemplate: playwrightTemplate,
	}
}

// Render produces a complete script for the given framework token. The
// token is matched case-insensitively; an unknown token yields an
// UnsupportedFrameworkError and no output. All other inputs degrade to
// best-effort text: unknown action types are skipped and absent fields
// render as empty strings.
func (g *Generator) Render(actions []Action, framework string) (string, error) {
	fw, err := ParseFramework(framework)
	if err != nil {
		return "", err
	}
	return g.RenderFramework(actions, fw), nil
}

// RenderFramework renders for an already-resolved dialect.
func (g *Generator) RenderFramework(actions []Action, fw Framework) string {
	switch fw {
	case FrameworkPlaywright:
		return strings.Replace(g.playwrightTemplate, stepsSlot, joinSteps(actions, playwrightStep), 1)
	default:
		return strings.Replace(g.seleniumTemplate, stepsSlot, joinSteps(actions, seleniumStep), 1)
	}
}

// joinSteps emits one fragment per recognized action, preserving list
// order. Actions with unrecognized types emit nothing.
func joinSteps(actions []Action, step func(Action) (string, bool)) string {
	var fragments []string
	for _, action := range actions {
		if frag, ok := step(action); ok {
			fragments = append(fragments, frag)
		}
	}
	return strings.Join(fragments, "\n")
}

// seleniumStep emits the Selenium fragment for one action. Selenium
// locates elements by the xpath strategy.
func seleniumStep(action Action) (string, bool) {
	switch action.Type {
	case ActionNavigate:
		return fmt.Sprintf(`
        # Navigate to URL
        driver.get("%s")
        time.sleep(2)  # Wait for page load`, action.ElementInfo.URL), true
	case ActionInput:
		return fmt.Sprintf(`
        # Wait for input element and enter text
        element = wait.until(EC.presence_of_element_located((By.XPATH, "%s")))
        element.clear()
        element.send_keys("%s")
        element.send_keys(Keys.RETURN)
        time.sleep(2)  # Wait for search results`, action.Locator("xpath"), action.ElementInfo.Value), true
	case ActionClick:
		return fmt.Sprintf(`
        # Wait for element to be clickable and click
        element = wait.until(EC.element_to_be_clickable((By.XPATH, "%s")))
        element.click()
        time.sleep(2)  # Wait for action to complete`, action.Locator("xpath")), true
	default:
		return "", false
	}
}

// playwrightStep emits the Playwright fragment for one action. Playwright
// locates elements by the css strategy.
func playwrightStep(action Action) (string, bool) {
	switch action.Type {
	case ActionNavigate:
		return fmt.Sprintf(`
            # Navigate to URL
            page.goto("%s")
            page.wait_for_load_state("networkidle")`, action.ElementInfo.URL), true
	case ActionInput:
		return fmt.Sprintf(`
            # Fill input field and submit
            page.fill("%s", "%s")
            page.keyboard.press("Enter")
            page.wait_for_load_state("networkidle")`, action.Locator("css"), action.ElementInfo.Value), true
	case ActionClick:
		return fmt.Sprintf(`
            # Click element
            page.click("%s")
            page.wait_for_load_state("networkidle")`, action.Locator("css")), true
	default:
		return "", false
	}
}
