package astdump

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"docstyle/internal/diag"
)

// Format is a dump serialization.
type Format uint8

const (
	FormatJSON Format = iota
	FormatMsgpack
	FormatYAML
)

func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatMsgpack:
		return "msgpack"
	case FormatYAML:
		return "yaml"
	default:
		return "unknown"
	}
}

// Ext returns the canonical file extension of f.
func (f Format) Ext() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return "." + f.String()
}

// ParseFormat accepts the names printed by Format.String.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "json":
		return FormatJSON, nil
	case "msgpack", "mp":
		return FormatMsgpack, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, &Error{Code: diag.DumpUnsupportedFormat, Msg: "unknown dump format " + name}
}

// FormatFor picks the format from the file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return FormatJSON, nil
	case ".msgpack", ".mp":
		return FormatMsgpack, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	err := &Error{Code: diag.DumpUnsupportedFormat, Msg: "unsupported dump extension " + filepath.Ext(path)}
	return 0, errors.WithHint(err, "module dumps end in .json, .msgpack, .mp, .yaml or .yml")
}

// IsDump reports whether path has a dump extension.
func IsDump(path string) bool {
	_, err := FormatFor(path)
	return err == nil
}

// Unmarshal decodes a dump. Decoding errors are *Error values with
// diag.DumpMalformed.
func Unmarshal(data []byte, f Format) (*Dump, error) {
	d := &Dump{}
	var err error
	switch f {
	case FormatJSON:
		err = json.Unmarshal(data, d)
	case FormatMsgpack:
		dec := msgpack.NewDecoder(bytes.NewReader(data))
		dec.SetCustomStructTag("json")
		err = dec.Decode(d)
	case FormatYAML:
		err = yaml.Unmarshal(data, d)
	default:
		return nil, &Error{Code: diag.DumpUnsupportedFormat, Msg: "unknown dump format " + f.String()}
	}
	if err != nil {
		return nil, decodeError(err)
	}
	if d.Version > SchemaVersion {
		return nil, &Error{
			Code: diag.DumpUnsupportedFormat,
			Path: "$.version",
			Msg:  "dump schema version is newer than supported",
		}
	}
	return d, nil
}

func decodeError(err error) *Error {
	var syntax *json.SyntaxError
	if errors.As(err, &syntax) {
		return malformed("$", "offset %d: %v", syntax.Offset, syntax)
	}
	var typ *json.UnmarshalTypeError
	if errors.As(err, &typ) && typ.Field != "" {
		return malformed("$."+typ.Field, "cannot decode %s into %s", typ.Value, typ.Type)
	}
	return malformed("$", "%v", err)
}

// Marshal encodes d; JSON output is indented.
func Marshal(w io.Writer, d *Dump, f Format) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(d)
	case FormatMsgpack:
		enc := msgpack.NewEncoder(w)
		enc.SetCustomStructTag("json")
		return enc.Encode(d)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(d); err != nil {
			return err
		}
		return enc.Close()
	}
	return &Error{Code: diag.DumpUnsupportedFormat, Msg: "unknown dump format " + f.String()}
}

// Load reads the dump at path. A dump without a file name is named after the
// dump itself with the dump extension removed: foo.ml.json → foo.ml.
func Load(path string) (*Dump, error) {
	// #nosec G304 -- path is provided by the caller
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read dump %s", path)
	}
	return Read(path, data)
}

// Read decodes data that was read from path.
func Read(path string, data []byte) (*Dump, error) {
	f, err := FormatFor(path)
	if err != nil {
		return nil, errors.Wrapf(err, "dump %s", path)
	}
	d, err := Unmarshal(data, f)
	if err != nil {
		return nil, errors.Wrapf(err, "dump %s", path)
	}
	if d.File == "" {
		d.File = strings.TrimSuffix(path, filepath.Ext(path))
	}
	return d, nil
}

// Save writes d to path in the format its extension selects.
func Save(path string, d *Dump) error {
	f, err := FormatFor(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := Marshal(&buf, d, f); err != nil {
		return errors.Wrapf(err, "encode dump %s", path)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o600); err != nil {
		return errors.Wrapf(err, "write dump %s", path)
	}
	return nil
}
