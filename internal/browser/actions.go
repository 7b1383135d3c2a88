package browser

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/proto"
)

// locatorOrder is the strategy precedence when resolving an element from
// a locator map. First match wins.
var locatorOrder = []string{"id", "xpath", "css", "name"}

// ElementDetail is the descriptive metadata of an element an action was
// performed on, captured for the recording.
type ElementDetail struct {
	Tag  string
	Text string
}

// findElement tries each locator strategy in order until one resolves.
func (b *Browser) findElement(locators map[string]string) (*rod.Element, error) {
	for _, strategy := range locatorOrder {
		value := locators[strategy]
		if value == "" {
			continue
		}

		page := b.page.Timeout(b.timeout)
		var el *rod.Element
		var err error

		switch strategy {
		case "id":
			el, err = page.Element("#" + value)
		case "xpath":
			el, err = page.ElementX(value)
		case "css":
			el, err = page.Element(value)
		case "name":
			el, err = page.Element(fmt.Sprintf(`[name=%q]`, value))
		}

		if err != nil {
			b.log.Debug("locator %s=%q failed: %v", strategy, value, err)
			continue
		}
		if el != nil {
			return el, nil
		}
	}
	return nil, ErrElementNotFound
}

// Click resolves the element and clicks it, falling back to a JS click
// when the native click fails (overlays, off-screen targets).
func (b *Browser) Click(locators map[string]string) (*ElementDetail, error) {
	el, err := b.findElement(locators)
	if err != nil {
		return nil, err
	}

	if err := el.ScrollIntoView(); err != nil {
		b.log.Debug("scroll into view: %v", err)
	}

	detail := b.describe(el)

	if err := el.Timeout(b.timeout).Click(proto.InputMouseButtonLeft, 1); err != nil {
		b.log.Debug("native click failed (%v), trying JS click", err)
		if _, jsErr := el.Eval(`() => {
			this.click();
			this.dispatchEvent(new MouseEvent('click', {bubbles: true}));
		}`); jsErr != nil {
			return nil, fmt.Errorf("click failed: %w", jsErr)
		}
	}

	b.waitSettle()
	return detail, nil
}

// Type resolves the element, replaces its content with value, and
// optionally submits by pressing Enter.
func (b *Browser) Type(locators map[string]string, value string, submit bool) (*ElementDetail, error) {
	el, err := b.findElement(locators)
	if err != nil {
		return nil, err
	}

	if err := el.ScrollIntoView(); err != nil {
		b.log.Debug("scroll into view: %v", err)
	}

	detail := b.describe(el)

	if err := el.SelectAllText(); err != nil {
		b.log.Debug("select all text: %v", err)
	}
	if err := el.Input(value); err != nil {
		return nil, fmt.Errorf("failed to type into element: %w", err)
	}

	if submit {
		if err := b.page.Keyboard.Press(input.Enter); err != nil {
			return nil, fmt.Errorf("failed to press enter: %w", err)
		}
		time.Sleep(500 * time.Millisecond)
	}

	b.waitSettle()
	return detail, nil
}

// describe captures tag and visible text for the recording. Failures are
// non-fatal; the action still proceeds.
func (b *Browser) describe(el *rod.Element) *ElementDetail {
	res, err := el.Eval(`() => JSON.stringify({
		tag: this.tagName.toLowerCase(),
		text: (this.innerText || this.value || '').trim().slice(0, 80)
	})`)
	if err != nil {
		b.log.Debug("describe element: %v", err)
		return &ElementDetail{}
	}

	var detail struct {
		Tag  string `json:"tag"`
		Text string `json:"text"`
	}
	if err := json.Unmarshal([]byte(res.Value.String()), &detail); err != nil {
		return &ElementDetail{}
	}
	return &ElementDetail{Tag: detail.Tag, Text: detail.Text}
}
