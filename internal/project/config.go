// Package project loads the docstyle configuration: docstyle.toml, or
// .docstyle.yaml as an alternative, found by walking up from the working
// directory.
package project

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"

	"docstyle/internal/check"
	"docstyle/internal/diag"
)

// Config mirrors the configuration file.
type Config struct {
	Checks ChecksConfig `toml:"checks" yaml:"checks"`
	Driver DriverConfig `toml:"driver" yaml:"driver"`
	Paths  PathsConfig  `toml:"paths" yaml:"paths"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-" yaml:"-"`
}

type ChecksConfig struct {
	AnnotatedIgnores bool   `toml:"annotated_ignores" yaml:"annotated_ignores"`
	CheckComments    bool   `toml:"check_comments" yaml:"check_comments"`
	Discard          string `toml:"discard" yaml:"discard"`
	// Warnings is a host warning specification such as "+50-3".
	Warnings string `toml:"warnings" yaml:"warnings"`
}

type DriverConfig struct {
	Jobs   int    `toml:"jobs" yaml:"jobs"`
	Cache  bool   `toml:"cache" yaml:"cache"`
	Format string `toml:"format" yaml:"format"`
}

type PathsConfig struct {
	Exclude []string `toml:"exclude" yaml:"exclude"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	return Config{
		Checks: ChecksConfig{Discard: check.DefaultDiscardOperation},
		Driver: DriverConfig{Cache: true, Format: "pretty"},
		Paths:  PathsConfig{Exclude: []string{"_build/**", "_opam/**"}},
	}
}

// CheckConfig converts the [checks] section into the checker toggles.
func (c Config) CheckConfig() check.Config {
	return check.Config{
		AnnotatedIgnores: c.Checks.AnnotatedIgnores,
		CheckComments:    c.Checks.CheckComments,
		DiscardOperation: c.Checks.Discard,
	}
}

// Load reads a configuration file. Keys missing from the file keep their
// default values; unknown keys are an error.
func Load(path string) (Config, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		meta, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return Config{}, errors.Wrapf(err, "%s: failed to parse TOML", path)
		}
		if undecoded := meta.Undecoded(); len(undecoded) > 0 {
			return Config{}, errors.WithHint(
				errors.Newf("%s: unknown key %q", path, undecoded[0].String()),
				"known sections are [checks], [driver] and [paths]")
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, errors.Wrapf(err, "%s: failed to parse YAML", path)
		}
	default:
		return Config{}, errors.Newf("%s: unsupported config format", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return Config{}, errors.Wrapf(err, "%s", path)
	}
	return cfg, nil
}

// Discover finds the configuration starting at dir. Without a file it
// returns Default().
func Discover(dir string) (Config, error) {
	path, ok, err := FindConfig(dir)
	if err != nil {
		return Config{}, err
	}
	if !ok {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks value ranges that the decoders cannot express.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Checks.Discard) == "" {
		return errors.New("[checks].discard must not be empty")
	}
	if strings.ContainsAny(c.Checks.Discard, " \t.") {
		return errors.Newf("[checks].discard must be a bare identifier, got %q", c.Checks.Discard)
	}
	if _, err := diag.ParseWarnings(c.Checks.Warnings); err != nil {
		return errors.Wrap(err, "[checks].warnings")
	}
	if c.Driver.Jobs < 0 {
		return errors.Newf("[driver].jobs must be >= 0, got %d", c.Driver.Jobs)
	}
	switch c.Driver.Format {
	case "pretty", "short", "json":
	default:
		return errors.WithHint(
			errors.Newf("[driver].format: unknown format %q", c.Driver.Format),
			"use pretty, short or json")
	}
	for _, pattern := range c.Paths.Exclude {
		if _, err := filepath.Match(strings.ReplaceAll(pattern, "**", "*"), ""); err != nil {
			return errors.Wrapf(err, "[paths].exclude: bad pattern %q", pattern)
		}
	}
	return nil
}
