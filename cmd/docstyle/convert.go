package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"docstyle/internal/ast"
	"docstyle/internal/astdump"
)

var convertCmd = &cobra.Command{
	Use:   "convert [flags] <in> <out>",
	Short: "Convert a module dump between JSON, MessagePack and YAML",
	Long: `Convert a module dump; the formats follow the file extensions
(.json, .msgpack/.mp, .yaml/.yml). The dump is rebuilt as a module tree
first, so malformed dumps are rejected and the output is normalized.`,
	Args: cobra.ExactArgs(2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().Bool("raw", false, "copy the dump without rebuilding it")
}

func runConvert(cmd *cobra.Command, args []string) error {
	in, out := args[0], args[1]
	raw, err := cmd.Flags().GetBool("raw")
	if err != nil {
		return fmt.Errorf("failed to get raw flag: %w", err)
	}
	isQuiet, err := quiet(cmd)
	if err != nil {
		return err
	}
	format, err := astdump.FormatFor(out)
	if err != nil {
		return err
	}

	d, err := astdump.Load(in)
	if err != nil {
		return err
	}
	if !raw {
		b := ast.NewBuilder(ast.Hints{})
		file, err := d.Build(b)
		if err != nil {
			return errors.Wrapf(err, "dump %s", in)
		}
		d = astdump.FromAST(b, file)
	}
	if err := astdump.Save(out, d); err != nil {
		return err
	}
	if !isQuiet {
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, format)
	}
	return nil
}
