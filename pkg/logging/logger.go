package logging

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
)

const (
	// EnvLogLevel selects the log level when no flag overrides it
	EnvLogLevel = "PDG_LOG_LEVEL"
	// EnvJSONLog switches to JSON output when set to "1"
	EnvJSONLog = "PDG_JSON_LOG"

	DefaultLogLevel = "warn"
	linePrefix      = "⚛️  "
)

// NewLogger creates a new hclog logger with standard settings
func NewLogger(name string, level string, output io.Writer) hclog.Logger {
	if output == nil {
		output = os.Stderr
	}

	jsonFormat := os.Getenv(EnvJSONLog) == "1"
	if !jsonFormat {
		output = NewPrefixWriter(linePrefix, output)
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:       name,
		Level:      hclog.LevelFromString(level),
		JSONFormat: jsonFormat,
		Output:     output,
		TimeFormat: "2006-01-02T15:04:05Z",
		TimeFn: func() time.Time {
			return time.Now().UTC()
		},
	})
}

// ResolveLogLevel picks the flag value first, then the environment, then
// the default.
func ResolveLogLevel(flagValue string) string {
	if level := strings.TrimSpace(flagValue); level != "" {
		return level
	}
	if level := os.Getenv(EnvLogLevel); level != "" {
		return level
	}
	return DefaultLogLevel
}
