// Package session accumulates recorded browser actions and persists them,
// so a recording can be replayed through the script renderer later.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/t3mko/webscribe/internal/script"
)

// RecordedAction is one script action plus the time it was captured.
type RecordedAction struct {
	script.Action
	Timestamp string `json:"timestamp"`
}

// Session is an ordered recording of browser interactions.
type Session struct {
	StartURL string           `json:"start_url,omitempty"`
	Recorded []RecordedAction `json:"actions"`
}

// New returns an empty session.
func New() *Session {
	return &Session{}
}

// Record appends an action to the recording.
func (s *Session) Record(actionType script.ActionType, info script.ElementInfo) {
	s.Recorded = append(s.Recorded, RecordedAction{
		Action:    script.Action{Type: actionType, ElementInfo: info},
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

// Actions returns the recording as plain renderer input, in capture order.
func (s *Session) Actions() []script.Action {
	actions := make([]script.Action, len(s.Recorded))
	for i, rec := range s.Recorded {
		actions[i] = rec.Action
	}
	return actions
}

// Len returns the number of recorded actions.
func (s *Session) Len() int {
	return len(s.Recorded)
}

// Save writes the session as indented JSON.
func (s *Session) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create session dir: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Load reads a session previously written by Save.
func Load(path string) (*Session, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse session %s: %w", path, err)
	}
	return &s, nil
}

// WriteScript saves generated script text under dir with a sanitized
// filename and returns the full path.
func WriteScript(dir, filename, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output dir: %w", err)
	}
	path := filepath.Join(dir, script.SanitizeFilename(filename))
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write script: %w", err)
	}
	return path, nil
}
