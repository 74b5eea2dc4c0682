package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestLoggerBasicLevelsAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "debug", Output: &buf})

	log.Debug("dbg", String("k", "v"))
	log.Info("info", Int("n", 42))
	log.Warn("warn", Bool("ok", true))
	log.Error("err", Error(nil))

	out := buf.String()
	for _, s := range []string{"dbg", "k=v", "info", "n=42", "warn", "ok=true", "err", "error=nil"} {
		if !strings.Contains(out, s) {
			t.Fatalf("expected output to contain %q, got: %s", s, out)
		}
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Config{Level: "warn", Output: &buf})

	log.Info("should be suppressed")
	log.Warn("should appear")

	out := buf.String()
	if strings.Contains(out, "suppressed") {
		t.Fatalf("info message leaked through warn-level filter: %s", out)
	}
	if !strings.Contains(out, "should appear") {
		t.Fatalf("expected warn message in output, got: %s", out)
	}
}

func TestLoggerWithComponent(t *testing.T) {
	var buf bytes.Buffer
	base := New(Config{Level: "info", Output: &buf})
	comp := base.WithComponent("network.server")

	comp.Info("started")

	out := buf.String()
	if !strings.Contains(out, "component=network.server") {
		t.Fatalf("expected component attribute in output, got: %s", out)
	}
	if !strings.Contains(out, "started") {
		t.Fatalf("expected info message in output, got: %s", out)
	}
}
