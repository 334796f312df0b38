package project

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/require"

	"docstyle/internal/check"
)

func write(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestFindConfigWalksUp(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, "docstyle.toml"), "")
	nested := filepath.Join(root, "src", "lib")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	path, ok, err := FindConfig(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, filepath.Join(root, "docstyle.toml"), path)

	dir, ok, err := FindProjectRoot(nested)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, root, dir)
}

func TestFindConfigPrefersTomlOverYaml(t *testing.T) {
	root := t.TempDir()
	write(t, filepath.Join(root, ".docstyle.yaml"), "")
	write(t, filepath.Join(root, "docstyle.toml"), "")

	path, ok, err := FindConfig(root)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "docstyle.toml", filepath.Base(path))
}

func TestLoadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docstyle.toml")
	write(t, path, `
[checks]
annotated_ignores = true
discard = "drop"
warnings = "+50"

[driver]
jobs = 4
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, path, cfg.Path)
	require.Equal(t, check.Config{AnnotatedIgnores: true, DiscardOperation: "drop"}, cfg.CheckConfig())
	require.Equal(t, 4, cfg.Driver.Jobs)
	require.Equal(t, "pretty", cfg.Driver.Format, "unset keys keep defaults")
	require.True(t, cfg.Driver.Cache)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".docstyle.yaml")
	write(t, path, "checks:\n  check_comments: true\ndriver:\n  format: json\npaths:\n  exclude: [\"gen/**\"]\n")
	cfg, err := Load(path)
	require.NoError(t, err)
	require.True(t, cfg.Checks.CheckComments)
	require.Equal(t, check.DefaultDiscardOperation, cfg.Checks.Discard)
	require.Equal(t, "json", cfg.Driver.Format)
	require.Equal(t, []string{"gen/**"}, cfg.Paths.Exclude)
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"docstyle.toml":  "[checks]\nannotated = true\n",
		"bad.toml":       "[checks\n",
		"format.toml":    "[driver]\nformat = \"xml\"\n",
		"jobs.toml":      "[driver]\njobs = -1\n",
		"discard.toml":   "[checks]\ndiscard = \"\"\n",
		"path.toml":      "[checks]\ndiscard = \"Fun.ignore\"\n",
		"warnings.toml":  "[checks]\nwarnings = \"+99\"\n",
		".docstyle.yaml": "checks:\n  unknown: 1\n",
		"config.ini":     "",
	}
	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			write(t, path, content)
			_, err := Load(path)
			require.Error(t, err)
		})
	}
}

func TestDiscoverDefaults(t *testing.T) {
	cfg, err := Discover(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())
}

func TestWriteDefault(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "new")
	path, err := WriteDefault(dir)
	require.NoError(t, err)

	var decoded Config
	_, err = toml.DecodeFile(path, &decoded)
	require.NoError(t, err)

	cfg, err := Load(path)
	require.NoError(t, err)
	want := Default()
	want.Path = path
	require.Equal(t, want, cfg)

	_, err = WriteDefault(dir)
	require.Error(t, err)
}

func TestExcluded(t *testing.T) {
	p := PathsConfig{Exclude: []string{"_build/**", "*.gen.ml.json", "vendor"}}
	for rel, want := range map[string]bool{
		"_build/default/a.ml.json": true,
		"src/a.ml.json":            false,
		"src/parser.gen.ml.json":   true,
		"vendor/x/y.ml.json":       true,
		"src/vendor.ml.json":       false,
		"./_build/a.json":          true,
	} {
		require.Equal(t, want, p.Excluded(rel), rel)
	}
}

func TestExcludedNormalizesUnicode(t *testing.T) {
	composed := PathsConfig{Exclude: []string{"caf\u00e9/**"}}
	require.True(t, composed.Excluded("cafe\u0301/a.ml.json"))
	decomposed := PathsConfig{Exclude: []string{"cafe\u0301"}}
	require.True(t, decomposed.Excluded("caf\u00e9/a.ml.json"))
}

func TestDigests(t *testing.T) {
	a, b := Sum([]byte("dump a")), Sum([]byte("dump b"))
	require.NotEqual(t, a, b)
	require.Len(t, a.String(), 64)
	require.Equal(t, a, Sum([]byte("dump a")))

	settings, src := Sum([]byte("settings")), Sum([]byte("source"))
	require.Equal(t, Combine(a, settings, src), Combine(a, settings, src))
	require.NotEqual(t, Combine(a, settings, src), Combine(a, src, settings))
	require.NotEqual(t, Combine(a, settings), Combine(a, settings, src))
}
