package astdump

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/require"

	"docstyle/internal/ast"
	"docstyle/internal/diag"
	"docstyle/internal/source"
)

func l(line uint32) source.Loc {
	off := line * 40
	return source.Loc{
		File:  "m.ml",
		Start: source.Pos{Line: line, BOL: off, Offset: off + 2},
		End:   source.Pos{Line: line, BOL: off, Offset: off + 9},
	}
}

// sample builds a module touching every node family.
func sample() (*ast.Builder, ast.FileID) {
	b := ast.NewBuilder(ast.Hints{})
	e := b.Exprs
	file := b.NewFile("m.ml", ast.FileStructure, l(1))

	// let _ = f ~x:(1 : int) ?y:`A "s"
	arg := e.NewConstraint(l(2), e.NewConstant(l(2), ast.ConstInt, "1"), "int")
	call := e.NewApply(l(2), e.NewIdent(l(2), "f"), []ast.Arg{
		{Label: ast.ArgLabelled, Name: "x", Expr: arg},
		{Label: ast.ArgOptional, Name: "y", Expr: e.NewVariant(l(2), "A", e.NewQuotedString(l(2), "id", "s"))},
		{Expr: e.NewConstruct(l(2), "()", ast.NoExprID)},
	})
	b.PushItem(file, b.Items.NewValue(l(2), false, b.NewBinding(l(2), b.Pats.NewAny(l(2)), call)))

	// let rec g ?(z = 0) = function Some v when v -> v | None -> lazy (assert false)
	param := ast.Param{Label: ast.ArgOptional, Name: "z", Default: e.NewConstant(l(3), ast.ConstInt, "0"), Pat: b.Pats.NewVar(l(3), "z")}
	some := b.Pats.NewConstruct(l(3), "Some", b.Pats.NewVar(l(3), "v"))
	fn := e.NewCases(ast.ExprFunction, l(3), ast.NoExprID, []ast.Case{
		{Pat: some, Guard: e.NewIdent(l(3), "v"), Body: e.NewIdent(l(3), "v")},
		{Pat: b.Pats.NewConstruct(l(3), "None", ast.NoPatID), Body: e.NewWrap(ast.ExprLazy, l(3),
			e.NewWrap(ast.ExprAssert, l(3), e.NewConstruct(l(3), "false", ast.NoExprID)))},
	})
	g := b.NewBinding(l(3), b.Pats.NewVar(l(3), "g"), e.NewFun(l(3), []ast.Param{param}, fn))
	b.AttachBinding(g, b.NewAttr(l(3), "inline"))
	b.PushItem(file, b.Items.NewValue(l(3), true, g))

	// let () = for i = 0 downto 9 do r.x <- (if c then { r with x = 1 } else (r :> t)) done
	rec := e.NewRecord(l(4), []ast.RecordField{{Name: "x", Value: e.NewConstant(l(4), ast.ConstInt, "1")}}, e.NewIdent(l(4), "r"))
	cond := e.NewIf(l(4), e.NewIdent(l(4), "c"), rec, e.NewCoerce(l(4), e.NewIdent(l(4), "r"), "", "t"))
	set := e.NewSetField(l(4), e.NewIdent(l(4), "r"), "x", cond)
	loop := e.NewFor(l(4), b.Pats.NewVar(l(4), "i"), e.NewConstant(l(4), ast.ConstInt, "0"),
		e.NewConstant(l(4), ast.ConstInt, "9"), true, e.NewList(ast.ExprSequence, l(4), []ast.ExprID{set, e.NewField(l(4), e.NewIdent(l(4), "r"), "x")}))
	unit := b.Pats.NewConstruct(l(4), "()", ast.NoPatID)
	b.PushItem(file, b.Items.NewValue(l(4), false, b.NewBinding(l(4), unit, loop)))

	// module M = struct type t = A [@deprecated "[since 2020-01]"] | B val x : t end
	members := []ast.TypeMember{
		{Name: "A", Loc: l(5), Attrs: []ast.AttrID{b.NewStringAttr(l(5), "deprecated", "[since 2020-01]")}},
		{Name: "B", Loc: l(5)},
	}
	b.PushItem(file, b.Items.NewModule(l(5), "M",
		b.Items.NewType(l(5), "t", members...),
		b.Items.NewVal(l(5), "x", "t", "caml_x"),
		b.Items.NewOpen(l(5), "List"),
	))

	// [%%test let _ = match x with (a, _) -> [%e] ] [@@@warning "-32"]
	tuple := b.Pats.NewTuple(l(6), b.Pats.NewVar(l(6), "a"), b.Pats.NewAny(l(6)))
	match := e.NewCases(ast.ExprMatch, l(6), e.NewIdent(l(6), "x"), []ast.Case{
		{Pat: tuple, Body: e.NewExtension(l(6), b.NewExtension(l(6), "e"))},
	})
	inner := b.Items.NewValue(l(6), false, b.NewBinding(l(6), b.Pats.NewAny(l(6)), match))
	b.PushItem(file, b.Items.NewExtension(l(6), b.NewExtension(l(6), "test", inner)))
	b.PushItem(file, b.Items.NewAttribute(l(7), b.NewStringAttr(l(7), "warning", "-32")))

	// [@@@pat? Some x when x]
	pp := b.Attrs.NewPayload(ast.Payload{Kind: ast.PayloadPattern, Pat: some, Guard: e.NewIdent(l(8), "x")})
	b.PushItem(file, b.Items.NewAttribute(l(8), b.Attrs.New(l(8), "pat", pp)))

	b.PushComment(file, ast.Comment{Text: "* Doc. ", Loc: l(9)})
	f := b.Files.Get(file)
	f.Warnings = append(f.Warnings, ast.HostWarning{Number: 50, Message: "unexpected docstring", Loc: l(9)})
	return b, file
}

func TestRoundTrip(t *testing.T) {
	b, file := sample()
	want := FromAST(b, file)
	require.NotNil(t, want)

	for _, f := range []Format{FormatJSON, FormatMsgpack, FormatYAML} {
		t.Run(f.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Marshal(&buf, want, f))

			got, err := Unmarshal(buf.Bytes(), f)
			require.NoError(t, err)
			require.Equal(t, want, got)

			b2 := ast.NewBuilder(ast.Hints{})
			id, err := got.Build(b2)
			require.NoError(t, err)
			require.Equal(t, want, FromAST(b2, id))
		})
	}
}

func TestBuildFromJSON(t *testing.T) {
	src := `{
	  "file": "x.mli",
	  "items": [
	    {"kind": "val", "name": "f", "type": "int -> int",
	     "attrs": [{"name": "deprecated", "payload": {"items": [
	       {"kind": "eval", "expr": {"kind": "constant", "const": "string", "text": "[since 2021-13]"}}]}}]}
	  ],
	  "comments": [{"text": "plain", "loc": {"start": {"line": 1}, "end": {"line": 1}}}]
	}`
	d, err := Unmarshal([]byte(src), FormatJSON)
	require.NoError(t, err)

	b := ast.NewBuilder(ast.Hints{})
	file, err := d.Build(b)
	require.NoError(t, err)

	f := b.Files.Get(file)
	require.Equal(t, ast.FileSignature, f.Kind, "kind is inferred from .mli")
	require.Len(t, f.Items, 1)
	require.Len(t, f.Comments, 1)
	require.Equal(t, "x.mli", f.Comments[0].Loc.File, "locations default to the dumped file")

	item := b.Items.Get(f.Items[0])
	require.Equal(t, ast.ItemVal, item.Kind)
	require.Len(t, item.Attrs, 1)
	text, ok := b.StringPayload(b.Attrs.Get(item.Attrs[0]).Payload)
	require.True(t, ok)
	require.Equal(t, "[since 2021-13]", text)
}

func TestBuildErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		code diag.Code
		path string
	}{
		{
			name: "unknown item",
			src:  `{"file": "a.ml", "items": [{"kind": "class"}]}`,
			code: diag.DumpUnknownNode,
			path: "$.items[0].kind",
		},
		{
			name: "unknown nested expression",
			src: `{"file": "a.ml", "items": [{"kind": "value", "bindings": [
				{"pat": {"kind": "any"}, "expr": {"kind": "apply", "fn": {"kind": "ident", "name": "f"},
				 "args": [{"expr": {"kind": "object"}}]}}]}]}`,
			code: diag.DumpUnknownNode,
			path: "$.items[0].bindings[0].expr.args[0].expr.kind",
		},
		{
			name: "missing binding expression",
			src:  `{"file": "a.ml", "items": [{"kind": "value", "bindings": [{"pat": {"kind": "any"}}]}]}`,
			code: diag.DumpMalformed,
			path: "$.items[0].bindings[0]",
		},
		{
			name: "bad label",
			src: `{"file": "a.ml", "items": [{"kind": "eval", "expr": {"kind": "apply",
				"fn": {"kind": "ident", "name": "f"}, "args": [{"label": "named", "expr": {"kind": "ident", "name": "x"}}]}}]}`,
			code: diag.DumpUnknownNode,
			path: "$.items[0].expr.args[0].label",
		},
		{
			name: "bad file kind",
			src:  `{"file": "a.ml", "kind": "library", "items": []}`,
			code: diag.DumpUnknownNode,
			path: "$.kind",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Unmarshal([]byte(tc.src), FormatJSON)
			require.NoError(t, err)
			_, err = d.Build(ast.NewBuilder(ast.Hints{}))
			var derr *Error
			require.True(t, errors.As(err, &derr), "got %v", err)
			require.Equal(t, tc.code, derr.Code)
			require.Equal(t, tc.path, derr.Path)
		})
	}
}

func TestUnmarshalErrors(t *testing.T) {
	_, err := Unmarshal([]byte(`{"file": `), FormatJSON)
	var derr *Error
	require.True(t, errors.As(err, &derr))
	require.Equal(t, diag.DumpMalformed, derr.Code)

	_, err = Unmarshal([]byte(`{"version": 99, "file": "a.ml", "items": []}`), FormatJSON)
	require.True(t, errors.As(err, &derr))
	require.Equal(t, diag.DumpUnsupportedFormat, derr.Code)

	_, err = Unmarshal([]byte("file: [unclosed"), FormatYAML)
	require.Error(t, err)
}

func TestFormatFor(t *testing.T) {
	for path, want := range map[string]Format{
		"a.ml.json": FormatJSON,
		"a.MP":      FormatMsgpack,
		"a.msgpack": FormatMsgpack,
		"a.yml":     FormatYAML,
		"a.yaml":    FormatYAML,
	} {
		got, err := FormatFor(path)
		require.NoError(t, err, path)
		require.Equal(t, want, got, path)
	}

	_, err := FormatFor("a.ml")
	require.Error(t, err)
	require.False(t, IsDump("a.ml"))
	require.Contains(t, strings.Join(errors.GetAllHints(err), " "), ".json")
}

func TestLoadSaveNamesFileAfterDump(t *testing.T) {
	b, file := sample()
	d := FromAST(b, file)
	d.File = ""

	path := filepath.Join(t.TempDir(), "lib.ml.yaml")
	require.NoError(t, Save(path, d))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, strings.TrimSuffix(path, ".yaml"), got.File)

	_, err = Load(filepath.Join(t.TempDir(), "none.json"))
	require.ErrorIs(t, err, os.ErrNotExist)
}
