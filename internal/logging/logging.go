// Package logging builds the service logger and cleans user input before it is logged
package logging

import (
	"io"
	"log/slog"
	"os"
	"regexp"
	"strings"
	"unicode"
)

// MaxValueLength is the longest user-provided string kept in a log record
const MaxValueLength = 200

var unprintable = regexp.MustCompile(`[^\p{L}\p{N}\p{P}\p{S}\p{Z}]`)

// New returns a JSON logger writing to stdout, tagged with the service name
func New(service, level string) *slog.Logger {
	return NewWithWriter(os.Stdout, service, level)
}

// NewWithWriter is New with an explicit destination
func NewWithWriter(w io.Writer, service, level string) *slog.Logger {
	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: ParseLevel(level),
	})
	return slog.New(h).With("service", service)
}

// ParseLevel maps debug/info/warn/error to a slog level. Anything else is info.
func ParseLevel(level string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Sanitize makes a user-controlled string safe to log: control characters
// become spaces, unprintable runes are dropped and long values are truncated.
func Sanitize(input string) string {
	if input == "" {
		return ""
	}

	if runes := []rune(input); len(runes) > MaxValueLength {
		input = string(runes[:MaxValueLength]) + "... (truncated)"
	}

	input = strings.ReplaceAll(input, "\r\n", "\n")

	sanitized := strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, input)

	return unprintable.ReplaceAllString(sanitized, "")
}
