package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrefixWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	n, err := pw.Write([]byte("first li"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.Empty(t, out.String())

	_, err = pw.Write([]byte("ne\nsecond line\nthi"))
	require.NoError(t, err)
	assert.Equal(t, "> first line\n> second line\n", out.String())

	_, err = pw.Write([]byte("rd\n"))
	require.NoError(t, err)
	assert.Equal(t, "> first line\n> second line\n> third\n", out.String())
}

func TestResolveLogLevel(t *testing.T) {
	t.Setenv(EnvLogLevel, "")
	assert.Equal(t, DefaultLogLevel, ResolveLogLevel(""))

	t.Setenv(EnvLogLevel, "debug")
	assert.Equal(t, "debug", ResolveLogLevel(""))
	assert.Equal(t, "trace", ResolveLogLevel(" trace "))
}

func TestNewLoggerTextOutput(t *testing.T) {
	t.Setenv(EnvJSONLog, "")
	var out bytes.Buffer

	logger := NewLogger("pdginfo", "info", &out)
	logger.Debug("hidden")
	logger.Info("resolved particle", "name", "D0")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), linePrefix)
	assert.Contains(t, out.String(), "resolved particle")
	assert.Contains(t, out.String(), "name=D0")
}

func TestNewLoggerJSONOutput(t *testing.T) {
	t.Setenv(EnvJSONLog, "1")
	var out bytes.Buffer

	logger := NewLogger("pdginfo", "debug", &out)
	logger.Debug("lookup", "code", 421)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &entry))
	assert.Equal(t, "lookup", entry["@message"])
	assert.Equal(t, "pdginfo", entry["@module"])
	assert.Equal(t, float64(421), entry["code"])
}
