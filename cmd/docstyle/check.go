package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"docstyle/internal/driver"
	"docstyle/internal/project"
	"docstyle/internal/ui"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] [dump|directory]...",
	Short: "Check module dumps",
	Long: `Check module dumps (foo.ml.json, foo.mli.mp, ...) given directly or found
under directories. Each failing module reports its first violation.
Without arguments the current directory is checked.`,
	RunE: runCheck,
}

func init() {
	checkCmd.Flags().Bool("annotated-ignores", false, "require a type annotation on ignored values")
	checkCmd.Flags().Bool("check-comments", false, "check documentation syntax and the interface comment policy")
	checkCmd.Flags().Bool("intf", false, "apply the interface comment policy to implementation files")
	checkCmd.Flags().String("discard", "", `name of the discard function (default "ignore")`)
	checkCmd.Flags().String("warnings", "", `host warnings to pass through, e.g. "+50-3"`)
	checkCmd.Flags().String("format", "", "output format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers (0=auto)")
	checkCmd.Flags().Bool("cache", true, "remember clean modules between runs")
	checkCmd.Flags().Bool("clear-cache", false, "drop the disk cache before checking")
	checkCmd.Flags().String("ui", "auto", "progress view (auto|on|off)")
	checkCmd.Flags().Bool("fail-fast", false, "stop at the first failing module")
	checkCmd.Flags().Int("max-diagnostics", 0, "maximum diagnostics per module (0=unlimited)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
}

// applyCheckFlags overrides configuration values with flags set explicitly.
func applyCheckFlags(flags *pflag.FlagSet, cfg *project.Config) error {
	bools := []struct {
		name string
		dst  *bool
	}{
		{"annotated-ignores", &cfg.Checks.AnnotatedIgnores},
		{"check-comments", &cfg.Checks.CheckComments},
		{"cache", &cfg.Driver.Cache},
	}
	for _, f := range bools {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetBool(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	strs := []struct {
		name string
		dst  *string
	}{
		{"discard", &cfg.Checks.Discard},
		{"warnings", &cfg.Checks.Warnings},
		{"format", &cfg.Driver.Format},
	}
	for _, f := range strs {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetString(f.name)
		if err != nil {
			return fmt.Errorf("failed to get %s flag: %w", f.name, err)
		}
		*f.dst = v
	}
	if flags.Changed("jobs") {
		jobs, err := flags.GetInt("jobs")
		if err != nil {
			return fmt.Errorf("failed to get jobs flag: %w", err)
		}
		cfg.Driver.Jobs = jobs
	}
	return cfg.Validate()
}

// projectRoot is the directory of the configuration file, or the working
// directory without one.
func projectRoot(cfg project.Config) string {
	if cfg.Path != "" {
		return filepath.Dir(cfg.Path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func openCache(cfg project.Config, clear bool, log *zap.SugaredLogger) *driver.Cache {
	if !cfg.Driver.Cache {
		return nil
	}
	disk, err := driver.OpenDiskCache("docstyle")
	if err != nil {
		log.Warnw("disk cache unavailable, using memory only", "error", err)
		return driver.NewCache(nil)
	}
	if clear {
		if err := disk.DropAll(); err != nil {
			log.Warnw("failed to clear cache", "dir", disk.Dir(), "error", err)
		}
	}
	log.Debugw("disk cache", "dir", disk.Dir())
	return driver.NewCache(disk)
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if err = applyCheckFlags(flags, &cfg); err != nil {
		return err
	}

	intf, err := flags.GetBool("intf")
	if err != nil {
		return fmt.Errorf("failed to get intf flag: %w", err)
	}
	failFast, err := flags.GetBool("fail-fast")
	if err != nil {
		return fmt.Errorf("failed to get fail-fast flag: %w", err)
	}
	maxDiagnostics, err := flags.GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}
	clearCache, err := flags.GetBool("clear-cache")
	if err != nil {
		return fmt.Errorf("failed to get clear-cache flag: %w", err)
	}
	uiRaw, err := flags.GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiRaw)
	if err != nil {
		return err
	}
	withNotes, err := flags.GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := flags.GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	isQuiet, err := quiet(cmd)
	if err != nil {
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
	if cfg.Path != "" {
		log.Infow("configuration", "path", cfg.Path)
	}

	root := projectRoot(cfg)
	drv, err := driver.New(driver.Options{
		Check:          cfg.CheckConfig(),
		Warnings:       cfg.Checks.Warnings,
		Intf:           intf,
		Jobs:           cfg.Driver.Jobs,
		FailFast:       failFast,
		MaxDiagnostics: maxDiagnostics,
		Root:           root,
		Exclude:        cfg.Paths,
		Cache:          openCache(cfg, clearCache, log),
		Logger:         log,
		Timings:        showTimings,
	})
	if err != nil {
		return err
	}

	paths := args
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := drv.CollectDumps(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		if !isQuiet {
			fmt.Fprintln(os.Stderr, "no module dumps found")
		}
		return nil
	}

	ctx := cmd.Context()
	var summary *driver.Summary
	if cfg.Driver.Format == "pretty" && !isQuiet && shouldUseTUI(mode, len(files)) {
		summary, err = ui.Run(ctx, os.Stdout, "checking", files, func(ctx context.Context, sink driver.ProgressSink) (*driver.Summary, error) {
			return drv.WithProgress(sink).CheckDumps(ctx, files)
		})
	} else {
		summary, err = drv.CheckDumps(ctx, files)
	}
	if err != nil {
		return err
	}

	err = render(os.Stdout, summary.Bag(), drv.Files(), renderOptions{
		format:   cfg.Driver.Format,
		color:    colored,
		fullPath: fullPath,
		notes:    withNotes,
		baseDir:  root,
	})
	if err != nil {
		return fmt.Errorf("failed to format diagnostics: %w", err)
	}
	if showTimings {
		fmt.Fprint(os.Stderr, summary.Timings.Summary(fmt.Sprintf("timings (%d modules)", len(summary.Results))))
	}
	if !isQuiet && summary.Skipped > 0 {
		fmt.Fprintf(os.Stderr, "%d module(s) not checked after the first failure\n", summary.Skipped)
	}
	if summary.Failed > 0 {
		return errViolations
	}
	return nil
}
