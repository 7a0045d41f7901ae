package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("info", "json", &buf)
	t.Cleanup(func() { Initialize("info", "text") })

	WithUser("u1").Info("hello", "action", "submit")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "hello", entry["msg"])
	assert.Equal(t, "u1", entry["user_id"])
	assert.Equal(t, "submit", entry["action"])
}

func TestInitializeWithWriter_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("warn", "text", &buf)
	t.Cleanup(func() { Initialize("info", "text") })

	Info("quiet")
	DatabaseCall("SELECT", "applications")
	Warn("loud")

	out := buf.String()
	assert.NotContains(t, out, "quiet")
	assert.NotContains(t, out, "Database call")
	assert.Contains(t, out, "loud")
}

func TestDatabaseResult_ErrorIsLogged(t *testing.T) {
	var buf bytes.Buffer
	InitializeWithWriter("error", "text", &buf)
	t.Cleanup(func() { Initialize("info", "text") })

	DatabaseResult("UPDATE", 0, nil)
	assert.Empty(t, buf.String())

	DatabaseResult("UPDATE", 0, errors.New("deadlock detected"))
	assert.True(t, strings.Contains(buf.String(), "deadlock detected"))
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, "DEBUG", parseLevel("debug").String())
	assert.Equal(t, "WARN", parseLevel("WARNING").String())
	assert.Equal(t, "ERROR", parseLevel("error").String())
	assert.Equal(t, "INFO", parseLevel("bogus").String())
}
