// Package browser drives a Chromium instance through rod and exposes the
// primitives webscribe records: navigation, element lookup, click, type.
package browser

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"

	"github.com/t3mko/webscribe/internal/log"
)

// ErrElementNotFound is returned when no locator strategy resolves to an
// element within the timeout.
var ErrElementNotFound = errors.New("element not found")

// Options configures the browser session.
type Options struct {
	Width    int
	Height   int
	Headless bool
	Timeout  time.Duration // per element lookup
}

// Browser wraps a rod browser with a single active page.
type Browser struct {
	browser *rod.Browser
	page    *rod.Page
	timeout time.Duration
	log     *log.Logger
}

// Launch starts Chromium and opens a blank page.
func Launch(opts Options, logger *log.Logger) (*Browser, error) {
	if opts.Timeout == 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.Width == 0 {
		opts.Width = 1280
	}
	if opts.Height == 0 {
		opts.Height = 720
	}

	path, _ := launcher.LookPath()
	l := launcher.New().Bin(path).Headless(opts.Headless).Leakless(true)

	controlURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	b := rod.New().ControlURL(controlURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	page, err := b.Page(proto.TargetCreateTarget{})
	if err != nil {
		b.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}

	scale := 1.0
	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:  opts.Width,
		Height: opts.Height,
		Scale:  &scale,
		Mobile: false,
	}); err != nil {
		logger.Warn("failed to set viewport: %v", err)
	}

	logger.Debug("browser launched (headless=%v)", opts.Headless)

	return &Browser{
		browser: b,
		page:    page,
		timeout: opts.Timeout,
		log:     logger,
	}, nil
}

// Close tears down the page and browser.
func (b *Browser) Close() {
	if b.page != nil {
		b.page.Close()
	}
	if b.browser != nil {
		b.browser.Close()
	}
}

// Page returns the underlying rod page.
func (b *Browser) Page() *rod.Page {
	return b.page
}

// Navigate loads the given URL and waits for the page to settle.
func (b *Browser) Navigate(url string) error {
	if err := b.page.Navigate(url); err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := b.page.WaitLoad(); err != nil {
		b.log.Debug("wait load after navigate: %v", err)
	}
	b.waitSettle()
	b.log.Debug("navigated to %s", url)
	return nil
}

// waitSettle waits for the network to go idle, bounded so persistent
// connections cannot hang the recording.
func (b *Browser) waitSettle() {
	b.page.Timeout(5*time.Second).WaitRequestIdle(500*time.Millisecond, nil, nil, nil)()
}
