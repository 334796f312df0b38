package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"docstyle/internal/diag"
)

func TestJSONBasic(t *testing.T) {
	var buf bytes.Buffer
	opts := JSONOpts{
		IncludePositions: true,
		PathMode:         PathModeBasename,
		IncludeNotes:     true,
	}
	if err := JSON(&buf, sampleBag("dir/m.ml"), opts); err != nil {
		t.Fatalf("JSON() error: %v", err)
	}

	var output DiagnosticsOutput
	if err := json.Unmarshal(buf.Bytes(), &output); err != nil {
		t.Fatalf("invalid JSON output: %v\n%s", err, buf.String())
	}
	if output.Count != 1 || len(output.Diagnostics) != 1 {
		t.Fatalf("expected one diagnostic, got %+v", output)
	}

	d := output.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "STY5004" {
		t.Errorf("unexpected severity/code %s %s", d.Severity, d.Code)
	}
	if d.Title != diag.StyMissingTypeAnnotation.Title() {
		t.Errorf("unexpected title %q", d.Title)
	}
	want := LocationJSON{File: "m.ml", StartByte: 18, EndByte: 21, StartLine: 2, StartCol: 9, EndLine: 2, EndCol: 12}
	if d.Location != want {
		t.Errorf("location = %+v, want %+v", d.Location, want)
	}
	if len(d.Notes) != 1 || d.Notes[0].Message != "argument to ignore" {
		t.Errorf("unexpected notes %+v", d.Notes)
	}
	if d.Hint == "" {
		t.Errorf("expected hint")
	}
}

func TestJSONWithoutPositionsAndNotes(t *testing.T) {
	out := BuildDiagnosticsOutput(sampleBag("m.ml"), JSONOpts{PathMode: PathModeBasename})
	d := out.Diagnostics[0]
	if d.Location.StartLine != 0 || d.Location.StartCol != 0 {
		t.Errorf("positions must be omitted: %+v", d.Location)
	}
	if len(d.Notes) != 0 {
		t.Errorf("notes must be omitted: %+v", d.Notes)
	}
}

func TestJSONMax(t *testing.T) {
	bag := sampleBag("a.ml")
	bag.Merge(sampleBag("b.ml"))
	out := BuildDiagnosticsOutput(bag, JSONOpts{Max: 1})
	if out.Count != 1 {
		t.Fatalf("expected output truncated to 1, got %d", out.Count)
	}
}

func TestJSONEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := JSON(&buf, diag.NewBag(0), JSONOpts{}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if got := buf.String(); got != "{\n  \"diagnostics\": [],\n  \"count\": 0\n}\n" {
		t.Fatalf("unexpected output %q", got)
	}
}
