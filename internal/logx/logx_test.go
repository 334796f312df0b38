package logx

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestVerbosityToLevel(t *testing.T) {
	cases := map[int]zapcore.Level{
		-1: zapcore.WarnLevel,
		0:  zapcore.WarnLevel,
		1:  zapcore.InfoLevel,
		2:  zapcore.DebugLevel,
		5:  zapcore.DebugLevel,
	}
	for v, want := range cases {
		if got := VerbosityToLevel(v); got != want {
			t.Fatalf("VerbosityToLevel(%d) = %v, want %v", v, got, want)
		}
	}
}

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Verbosity: VerbosityInfo, JSON: true, Output: &buf})
	log.Debugw("hidden")
	log.Infow("checked", "file", "a.ml", "cached", true)
	_ = log.Sync()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %q", buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatalf("invalid JSON %q: %v", lines[0], err)
	}
	if entry["msg"] != "checked" || entry["file"] != "a.ml" || entry["logger"] != "docstyle" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestNewConsoleDefaultsToWarn(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf})
	log.Info("quiet")
	log.Warn("loud")
	_ = log.Sync()
	if out := buf.String(); strings.Contains(out, "quiet") || !strings.Contains(out, "loud") {
		t.Fatalf("unexpected output %q", out)
	}
}
