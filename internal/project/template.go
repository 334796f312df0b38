package project

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// ConfigFileName is the file written by WriteDefault.
const ConfigFileName = "docstyle.toml"

const defaultTemplate = `# docstyle configuration

[checks]
# Require a type annotation on ignored values: let _ = e and ignore e.
annotated_ignores = false
# Check documentation syntax and forbid plain comments in interfaces.
check_comments = false
# The function whose argument counts as ignored.
discard = "ignore"
# Host warnings to pass through, e.g. "+50".
warnings = ""

[driver]
# 0 means one worker per CPU.
jobs = 0
cache = true
format = "pretty"

[paths]
exclude = ["_build/**", "_opam/**"]
`

// WriteDefault creates docstyle.toml in dir and refuses to overwrite one.
func WriteDefault(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "failed to create directory %q", dir)
	}
	path := filepath.Join(dir, ConfigFileName)
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return "", errors.WithHint(
				errors.Newf("already initialized: %s exists", path),
				"edit the existing file instead")
		}
		return "", errors.Wrapf(err, "create %s", path)
	}
	if _, err := f.WriteString(defaultTemplate); err != nil {
		_ = f.Close()
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, f.Close()
}
