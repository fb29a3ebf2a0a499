package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

// captureLogOutput captures log output for testing by temporarily
// redirecting the logger to write to a buffer
func captureLogOutput(f func()) string {
	// Create a buffer to capture output
	var buf bytes.Buffer

	// Save original logger
	oldLogger := defaultLogger

	// Create a new logger that writes to the buffer
	handler := slog.NewJSONHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	defaultLogger = slog.New(handler)

	// Execute function
	f()

	// Restore original logger
	defaultLogger = oldLogger

	return buf.String()
}

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  Level
		format Format
	}{
		{
			name:   "Debug level JSON format",
			level:  LevelDebug,
			format: FormatJSON,
		},
		{
			name:   "Info level JSON format",
			level:  LevelInfo,
			format: FormatJSON,
		},
		{
			name:   "Warn level text format",
			level:  LevelWarn,
			format: FormatText,
		},
		{
			name:   "Error level text format",
			level:  LevelError,
			format: FormatText,
		},
		{
			name:   "Default level (invalid value)",
			level:  Level(999),
			format: FormatJSON,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			InitLogger(tt.level, tt.format)
			if GetLogger() == nil {
				t.Error("Expected logger to be initialized, got nil")
			}
		})
	}

	InitLogger(LevelInfo, FormatText)
}

func TestWithRunID(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-123")

	if got := GetRunID(ctx); got != "run-123" {
		t.Errorf("GetRunID = %q, want %q", got, "run-123")
	}
}

func TestGetRunID(t *testing.T) {
	tests := []struct {
		name     string
		ctx      context.Context
		expected string
	}{
		{
			name:     "Context with run ID",
			ctx:      context.WithValue(context.Background(), RunIDKey, "abc"),
			expected: "abc",
		},
		{
			name:     "Context without run ID",
			ctx:      context.Background(),
			expected: "",
		},
		{
			name:     "Context with wrong type value",
			ctx:      context.WithValue(context.Background(), RunIDKey, 12345),
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetRunID(tt.ctx); got != tt.expected {
				t.Errorf("GetRunID = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestLogLevels(t *testing.T) {
	output := captureLogOutput(func() {
		Debug("debug message", "k", 1)
		Info("info message", "k", 2)
		Warn("warn message", "k", 3)
		Error("error message", "k", 4)
	})

	for _, want := range []string{"debug message", "info message", "warn message", "error message"} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}

func TestContextLogging(t *testing.T) {
	ctx := WithRunID(context.Background(), "run-xyz")

	output := captureLogOutput(func() {
		InfoContext(ctx, "with run id")
		DebugContext(ctx, "debug with run id")
		WarnContext(ctx, "warn with run id")
		ErrorContext(ctx, "error with run id")
	})

	if !strings.Contains(output, "run-xyz") {
		t.Errorf("output does not carry the run ID:\n%s", output)
	}
	if !strings.Contains(output, "with run id") {
		t.Errorf("output does not contain the message:\n%s", output)
	}
}

func TestIngestEvent(t *testing.T) {
	output := captureLogOutput(func() {
		IngestEvent("results.xml", "blastxml", 42, 150*time.Millisecond, "query", "q1")
	})

	for _, want := range []string{"ingest", "results.xml", "blastxml", "42", "query"} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}

func TestParseSkip(t *testing.T) {
	output := captureLogOutput(func() {
		ParseSkip("blastxml", "Hsp", errors.New("missing Hsp_hit-from"), "hit", "gi|1234")
	})

	for _, want := range []string{"parse_skip", "blastxml", "Hsp", "missing Hsp_hit-from"} {
		if !strings.Contains(output, want) {
			t.Errorf("output does not contain %q:\n%s", want, output)
		}
	}
}
