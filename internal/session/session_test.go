package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/t3mko/webscribe/internal/script"
)

func TestRecordPreservesOrder(t *testing.T) {
	s := New()
	s.Record(script.ActionNavigate, script.ElementInfo{URL: "https://example.com"})
	s.Record(script.ActionInput, script.ElementInfo{
		Value:    "hello",
		Locators: map[string]string{"xpath": "//*[@id='q']", "css": "#q"},
	})
	s.Record(script.ActionClick, script.ElementInfo{
		Locators: map[string]string{"css": ".btn"},
	})

	require.Equal(t, 3, s.Len())

	actions := s.Actions()
	require.Len(t, actions, 3)
	assert.Equal(t, script.ActionNavigate, actions[0].Type)
	assert.Equal(t, script.ActionInput, actions[1].Type)
	assert.Equal(t, script.ActionClick, actions[2].Type)
	assert.Equal(t, "https://example.com", actions[0].ElementInfo.URL)
	assert.Equal(t, "hello", actions[1].ElementInfo.Value)

	for _, rec := range s.Recorded {
		assert.NotEmpty(t, rec.Timestamp)
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := New()
	s.StartURL = "https://example.com"
	s.Record(script.ActionNavigate, script.ElementInfo{URL: "https://example.com"})
	s.Record(script.ActionClick, script.ElementInfo{
		Tag:      "button",
		Text:     "Go",
		Locators: map[string]string{"xpath": "//button", "css": ".go"},
	})

	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, s.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, s.StartURL, loaded.StartURL)
	require.Equal(t, s.Len(), loaded.Len())
	assert.Equal(t, s.Actions(), loaded.Actions())
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("not json"), 0o644))
	_, err = Load(bad)
	require.Error(t, err)
}

func TestWriteScript(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "generated_scripts")

	path, err := WriteScript(dir, "my test!.py", "print('ok')\n")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "my_test.py"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "print('ok')\n", string(data))
}
