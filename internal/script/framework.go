package script

import (
	"fmt"
	"strings"
)

// Framework identifies the output dialect of a generated script.
type Framework int

const (
	FrameworkSelenium Framework = iota
	FrameworkPlaywright
)

func (f Framework) String() string {
	switch f {
	case FrameworkPlaywright:
		return "playwright"
	default:
		return "selenium"
	}
}

// UnsupportedFrameworkError reports a framework token that does not name a
// known dialect.
type UnsupportedFrameworkError struct {
	Kind string
}

func (e *UnsupportedFrameworkError) Error() string {
	return fmt.Sprintf("unsupported framework: %q", e.Kind)
}

// ParseFramework resolves a framework token, case-insensitively, to a
// Framework. This is the only boundary that rejects unknown tokens; past
// it the dialect set is closed.
func ParseFramework(token string) (Framework, error) {
	switch strings.ToLower(token) {
	case "selenium":
		return FrameworkSelenium, nil
	case "playwright":
		return FrameworkPlaywright, nil
	default:
		return 0, &UnsupportedFrameworkError{Kind: token}
	}
}
