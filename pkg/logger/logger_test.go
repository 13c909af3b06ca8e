package logger

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLevelFiltering(t *testing.T) {
	tests := []struct {
		name     string
		logLevel string
		logFunc  func(string, ...any)
		logMsg   string
		expected bool
	}{
		{"debug at debug level", "debug", Debug, "curve sampled", true},
		{"debug at info level", "info", Debug, "curve sampled", false},
		{"info at info level", "info", Info, "sweep started", true},
		{"warn at info level", "info", Warn, "configuration unscoreable", true},
		{"error at info level", "info", Error, "report write failed", true},
		{"info at error level", "error", Info, "sweep started", false},
		{"unknown level defaults to info", "bogus", Debug, "curve sampled", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			SetDefault(New(tt.logLevel, &buf))

			tt.logFunc(tt.logMsg)
			output := buf.String()

			if tt.expected && !strings.Contains(output, tt.logMsg) {
				t.Errorf("expected log output to contain %q, got: %s", tt.logMsg, output)
			}
			if !tt.expected && strings.Contains(output, tt.logMsg) {
				t.Errorf("expected log output NOT to contain %q, but it did: %s", tt.logMsg, output)
			}
		})
	}
}

func TestJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New("info", &buf))

	Info("configuration scored", "peak", 5.0, "total", 87.5)

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("failed to parse JSON log output: %v", err)
	}
	if entry["msg"] != "configuration scored" {
		t.Errorf("expected msg 'configuration scored', got %v", entry["msg"])
	}
	if entry["peak"] != float64(5.0) {
		t.Errorf("expected peak 5, got %v", entry["peak"])
	}
}

func TestNewText(t *testing.T) {
	var buf bytes.Buffer
	logger := NewText("info", &buf)
	logger.Info("ranking written", "path", "out/optimization_results.csv")

	if !strings.Contains(buf.String(), "ranking written") {
		t.Errorf("expected text output to contain message, got: %s", buf.String())
	}
}

func TestWith(t *testing.T) {
	var buf bytes.Buffer
	SetDefault(New("info", &buf))

	With("curve", "smooth").Info("heatmap rendered")

	output := buf.String()
	if !strings.Contains(output, "curve") || !strings.Contains(output, "smooth") {
		t.Errorf("expected contextual attributes in output, got: %s", output)
	}
}
