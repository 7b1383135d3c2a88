package script

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// filenameRe matches runs of characters outside the safe filename set.
var filenameRe = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// Timestamp returns a filename-safe timestamp, e.g. 20260829_153012.
func Timestamp() string {
	return time.Now().Format("20060102_150405")
}

// SanitizeFilename strips characters that are unsafe in filenames and
// trims leading/trailing separators. An empty result falls back to a
// generic name.
func SanitizeFilename(name string) string {
	name = filenameRe.ReplaceAllString(strings.TrimSpace(name), "_")
	name = strings.Trim(name, "._-")
	if name == "" {
		return "test_script.py"
	}
	return name
}

// DefaultFilename builds the default output name for a generated script.
func DefaultFilename(fw Framework) string {
	return fmt.Sprintf("test_script_%s_%s.py", Timestamp(), fw)
}
