package browser

import (
	"encoding/json"
	"fmt"
	"time"
)

// Element describes one interactive element found on the page, with the
// locator strategies generated for it.
type Element struct {
	Tag           string `json:"tag"`
	Type          string `json:"type,omitempty"`
	ID            string `json:"id,omitempty"`
	Name          string `json:"name,omitempty"`
	Placeholder   string `json:"placeholder,omitempty"`
	AriaLabel     string `json:"aria_label,omitempty"`
	Class         string `json:"class,omitempty"`
	Text          string `json:"text,omitempty"`
	Label         string `json:"label,omitempty"`
	XPath         string `json:"xpath"`
	CSS           string `json:"css,omitempty"`
	PrecedingText string `json:"preceding_text,omitempty"`
}

// PageMap is the scanned structure of the current page, grouped the way
// the analysis prompt consumes it.
type PageMap struct {
	URL     string    `json:"url"`
	Title   string    `json:"title"`
	Inputs  []Element `json:"inputs"`
	Buttons []Element `json:"buttons"`
	Links   []Element `json:"links"`
}

// Scan collects the interactive elements of the current page.
func (b *Browser) Scan() (*PageMap, error) {
	res, err := b.page.Timeout(10 * time.Second).Eval(scanScript)
	if err != nil {
		return nil, fmt.Errorf("failed to scan page: %w", err)
	}

	var pm PageMap
	if err := json.Unmarshal([]byte(res.Value.String()), &pm); err != nil {
		return nil, fmt.Errorf("failed to parse scan result: %w", err)
	}

	info, err := b.page.Info()
	if err == nil {
		pm.URL = info.URL
		pm.Title = info.Title
	}

	b.log.Debug("scanned page: %d inputs, %d buttons, %d links",
		len(pm.Inputs), len(pm.Buttons), len(pm.Links))

	return &pm, nil
}

// scanScript extracts inputs, buttons, and links together with generated
// xpath and css locators. XPath generation prefers stable attributes (id,
// aria-label, placeholder, text) before falling back to an absolute path.
const scanScript = `() => {
	function getPrecedingText(element) {
		let previousNode = element.previousSibling;
		while (previousNode && previousNode.nodeType === 3 && previousNode.textContent.trim() === '') {
			previousNode = previousNode.previousSibling;
		}
		return previousNode && previousNode.nodeType === 3 ? previousNode.textContent.trim() : '';
	}

	function getFullXPath(element) {
		if (element.tagName === 'HTML')
			return '/HTML[1]';
		if (element === document.body)
			return '/HTML[1]/BODY[1]';

		let ix = 0;
		let siblings = element.parentNode.childNodes;
		for (let i = 0; i < siblings.length; i++) {
			let sibling = siblings[i];
			if (sibling === element)
				return getFullXPath(element.parentNode) + '/' + element.tagName + '[' + (ix + 1) + ']';
			if (sibling.nodeType === 1 && sibling.tagName === element.tagName)
				ix++;
		}
	}

	function generateXPath(element) {
		if (element.id)
			return '//*[@id="' + element.id + '"]';
		if (element.getAttribute('aria-label'))
			return '//*[@aria-label="' + element.getAttribute('aria-label') + '"]';
		if (element.placeholder)
			return '//*[@placeholder="' + element.placeholder + '"]';
		if (element.innerText && element.innerText.trim())
			return '//*[text()="' + element.innerText.trim() + '"]';

		let path = [];
		if (element.type) path.push('@type="' + element.type + '"');
		if (element.name) path.push('@name="' + element.name + '"');
		if (element.className && typeof element.className === 'string')
			path.push('contains(@class, "' + element.className + '")');
		if (path.length > 0)
			return '//*[' + path.join(' and ') + ']';

		return getFullXPath(element);
	}

	function generateCSS(element) {
		if (element.id) return '#' + CSS.escape(element.id);
		if (element.name) return element.tagName.toLowerCase() + '[name="' + element.name + '"]';
		if (element.className && typeof element.className === 'string') {
			const classes = element.className.trim().split(/\s+/).slice(0, 2);
			if (classes.length > 0)
				return element.tagName.toLowerCase() + '.' + classes.map(c => CSS.escape(c)).join('.');
		}
		return element.tagName.toLowerCase();
	}

	function describe(el) {
		return {
			tag: el.tagName.toLowerCase(),
			type: el.type || '',
			id: el.id || '',
			name: el.name || '',
			placeholder: el.placeholder || '',
			aria_label: el.getAttribute('aria-label') || '',
			class: (typeof el.className === 'string' ? el.className : ''),
			text: (el.innerText || el.value || '').trim().slice(0, 80),
			label: el.labels && el.labels[0] ? el.labels[0].textContent.trim() : '',
			xpath: generateXPath(el),
			css: generateCSS(el),
			preceding_text: getPrecedingText(el)
		};
	}

	const visible = el => !!el.offsetParent;

	return JSON.stringify({
		inputs: Array.from(document.querySelectorAll('input:not([type="hidden"]):not([type="submit"]):not([type="button"]), textarea'))
			.filter(visible).map(describe),
		buttons: Array.from(document.querySelectorAll('button, input[type="submit"], input[type="button"], [role="button"]'))
			.filter(visible).map(describe),
		links: Array.from(document.querySelectorAll('a[href], [role="link"]'))
			.filter(visible).map(describe)
	});
}`
