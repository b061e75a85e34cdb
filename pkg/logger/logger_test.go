package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestInit(t *testing.T) {
	for _, level := range []string{"debug", "info", "warn", "error"} {
		t.Run(level, func(t *testing.T) {
			if err := Init(level); err != nil {
				t.Errorf("Init(%q) failed: %v", level, err)
			}
			if Get() == nil {
				t.Error("Get returned nil after Init")
			}
		})
	}

	t.Run("invalid level", func(t *testing.T) {
		if err := Init("verbose"); err == nil {
			t.Error("expected error for invalid level")
		}
	})
}

func TestInitWithOutput(t *testing.T) {
	var buf bytes.Buffer
	if err := InitWithOutput("info", &buf); err != nil {
		t.Fatalf("InitWithOutput failed: %v", err)
	}

	Get().Info("hello", "key", "value")
	out := buf.String()
	if !strings.Contains(out, "hello") || !strings.Contains(out, "key=value") {
		t.Errorf("unexpected log output: %q", out)
	}

	buf.Reset()
	Get().Debug("quiet")
	if buf.Len() != 0 {
		t.Errorf("debug message logged at info level: %q", buf.String())
	}
}

func TestGetWithoutInit(t *testing.T) {
	globalLogger = nil
	if Get() == nil {
		t.Error("Get should fall back to the default logger")
	}
}
