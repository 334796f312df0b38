package main

import (
	"testing"

	"github.com/spf13/pflag"

	"docstyle/internal/project"
)

func checkFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	flags := pflag.NewFlagSet("check", pflag.ContinueOnError)
	flags.Bool("annotated-ignores", false, "")
	flags.Bool("check-comments", false, "")
	flags.Bool("cache", true, "")
	flags.String("discard", "", "")
	flags.String("warnings", "", "")
	flags.String("format", "", "")
	flags.Int("jobs", 0, "")
	if err := flags.Parse(args); err != nil {
		t.Fatalf("parse: %v", err)
	}
	return flags
}

func TestApplyCheckFlagsKeepsConfigForUnsetFlags(t *testing.T) {
	cfg := project.Default()
	cfg.Checks.AnnotatedIgnores = true
	cfg.Checks.Discard = "drop"
	cfg.Driver.Jobs = 3

	if err := applyCheckFlags(checkFlags(t), &cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	if !cfg.Checks.AnnotatedIgnores || cfg.Checks.Discard != "drop" || cfg.Driver.Jobs != 3 {
		t.Fatalf("config overwritten by defaults: %+v", cfg)
	}
	if !cfg.Driver.Cache || cfg.Driver.Format != "pretty" {
		t.Fatalf("unexpected driver config: %+v", cfg.Driver)
	}
}

func TestApplyCheckFlagsOverrides(t *testing.T) {
	cfg := project.Default()
	cfg.Checks.AnnotatedIgnores = true
	flags := checkFlags(t,
		"--annotated-ignores=false", "--check-comments", "--cache=false",
		"--discard", "drop", "--warnings", "+50", "--format", "json", "--jobs", "4")

	if err := applyCheckFlags(flags, &cfg); err != nil {
		t.Fatalf("apply: %v", err)
	}
	want := project.Default()
	want.Checks.CheckComments = true
	want.Checks.Discard = "drop"
	want.Checks.Warnings = "+50"
	want.Driver.Cache = false
	want.Driver.Format = "json"
	want.Driver.Jobs = 4
	if cfg.Checks != want.Checks || cfg.Driver != want.Driver {
		t.Fatalf("got %+v, want %+v", cfg, want)
	}
}

func TestApplyCheckFlagsValidates(t *testing.T) {
	for _, args := range [][]string{
		{"--format", "xml"},
		{"--discard", "a.b"},
		{"--warnings", "+x"},
		{"--jobs", "-1"},
	} {
		cfg := project.Default()
		if err := applyCheckFlags(checkFlags(t, args...), &cfg); err == nil {
			t.Fatalf("%v: expected validation error", args)
		}
	}
}

func TestReadModes(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, " on ": uiModeOn, "off": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("always"); err == nil {
		t.Fatalf("expected error for unknown ui mode")
	}
	if _, err := readColorMode("sometimes"); err == nil {
		t.Fatalf("expected error for unknown color mode")
	}
	if !shouldUseTUI(uiModeOn, 1) || shouldUseTUI(uiModeOff, 10) || shouldUseTUI(uiModeAuto, 1) {
		t.Fatalf("unexpected shouldUseTUI decisions")
	}
}
