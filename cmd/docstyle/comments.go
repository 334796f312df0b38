package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"docstyle/internal/ast"
	"docstyle/internal/check"
	"docstyle/internal/diag"
	"docstyle/internal/lexer"
	"docstyle/internal/source"
)

// stdinName names the source read for the "-" argument.
const stdinName = "<stdin>"

var commentsCmd = &cobra.Command{
	Use:   "comments [flags] <file.ml|file.mli>...",
	Short: "Check the comments of source files without a module dump",
	Long: `Scan source files for comments and run the documentation syntax check
and, for interfaces, the comment policy. .mli files and foo_intf.ml files
are interfaces; --intf treats every file as one. "-" reads from stdin.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runComments,
}

func init() {
	commentsCmd.Flags().Bool("intf", false, "treat every file as an interface")
	commentsCmd.Flags().String("format", "", "output format (pretty|short|json)")
}

func runComments(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	intf, err := cmd.Flags().GetBool("intf")
	if err != nil {
		return fmt.Errorf("failed to get intf flag: %w", err)
	}
	if cmd.Flags().Changed("format") {
		if cfg.Driver.Format, err = cmd.Flags().GetString("format"); err != nil {
			return fmt.Errorf("failed to get format flag: %w", err)
		}
	}
	if err = cfg.Validate(); err != nil {
		return err
	}
	colored, err := useColor(cmd, os.Stdout)
	if err != nil {
		return err
	}
	log, err := newLogger(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	checks := cfg.CheckConfig()
	checks.CheckComments = true
	engine := check.New(checks, nil, nil)

	fs := source.NewFileSet()
	bag := diag.NewBag(0)
	failed := 0
	for _, path := range args {
		before := bag.Len()
		opts := lexer.Options{Reporter: diag.BagReporter{Bag: bag}}
		var comments []ast.Comment
		if path == "-" {
			path = stdinName
			comments, err = lexer.ScanReader(fs, path, os.Stdin, opts)
		} else {
			comments, err = lexer.ScanFile(fs, path, opts)
		}
		if err != nil {
			return errors.Wrapf(err, "read %s", path)
		}
		if bag.Len() > before {
			failed++
			continue
		}
		isIntf := intf || filepath.Ext(path) == ".mli" || check.IsInterfaceFile(path)
		log.Debugw("comments", "file", path, "count", len(comments), "intf", isIntf)
		if err := engine.CheckComments(comments, isIntf); err != nil {
			var ce *check.Error
			if !errors.As(err, &ce) {
				return err
			}
			bag.Add(ce.Violation.Diagnostic())
			failed++
		}
	}

	bag.Dedup()
	bag.Sort()
	err = render(os.Stdout, bag, fs, renderOptions{format: cfg.Driver.Format, color: colored, baseDir: fs.BaseDir()})
	if err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if failed > 0 {
		return errViolations
	}
	return nil
}
