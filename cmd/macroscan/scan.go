package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/nao1215/macroscan/internal/config"
	"github.com/nao1215/macroscan/internal/log"
	"github.com/nao1215/macroscan/internal/model"
	"github.com/nao1215/macroscan/internal/pipeline"
	"github.com/nao1215/macroscan/internal/report"
	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command.
func NewScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [root]",
		Short: "Count macros in a Markdown tree and list the unimplemented ones",
		Long: `Scan walks the root directory, reads every file whose name ends in .md and
counts the template macros it invokes, e.g. {{cssxref("color")}} or
{{ Compat }}. Arguments are ignored and names are compared case-insensitively.

The report lists every macro that is not implemented, most used first:

  2. htmlsidebar – 4021
  5. glossarysidebar – 188

The root defaults to the value in the configuration file, or
external/original-content when there is none.

Examples:
  # Scan the default content checkout
  macroscan scan

  # Scan another directory and treat two more macros as implemented
  macroscan scan -a htmlsidebar -a glossarysidebar ./content

  # Print every document and raw match before the report
  macroscan scan --trace ./content

  # Write a Markdown report for a pull request
  macroscan scan --markdown -o reports/macros.md ./content

Configuration file (.macroscan) example:
  root: external/original-content
  extraAllowlist:
    - htmlsidebar
  ignoreFolders:
    - .git
    - external`,
		Args: cobra.MaximumNArgs(1),
		RunE: runScanCmd,
	}

	// Configuration file
	cmd.Flags().StringP("config", "c", "",
		"Configuration file path (default: .macroscan in current or home directory)")

	// Scan behavior flags
	cmd.Flags().StringSliceP("allow", "a", nil,
		"Additional implemented macro names (repeatable, lower-case)")
	cmd.Flags().Bool("no-ignore", false,
		"Walk every folder, including .git and external")
	cmd.Flags().IntP("limit", "l", config.DefaultLimit,
		"Number of ranked macros considered before implemented ones are removed")
	cmd.Flags().BoolP("trace", "t", false,
		"Print each document and every raw match before the report")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (creates directories if needed)")
	cmd.Flags().Bool("no-color", false,
		"Disable colored output")
	cmd.Flags().Bool("log-json", false,
		"Emit logs as JSON instead of text")

	return cmd
}

// runScanCmd executes the scan command.
func runScanCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	logJSON, err := cmd.Flags().GetBool("log-json")
	if err != nil {
		return err
	}
	logger := setupLogger(cmd.ErrOrStderr(), cfg.Verbose, logJSON)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			logger.Info("received shutdown signal, cancelling...")
			cancel()
		case <-ctx.Done():
		}
	}()

	return runScan(ctx, cfg, logger, cmd.OutOrStdout())
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from the configuration file and cobra
// command flags. Flags that were set explicitly win over the file.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error
	cfg.ConfigFilePath, err = cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	// If user explicitly specified a config file path, error if not found.
	// If no path specified, silently keep the defaults if no file found.
	configPath := config.FindConfigFile(cfg.ConfigFilePath)
	if configPath != "" {
		file, err := config.LoadConfigFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", configPath, err)
		}
		cfg.Apply(file)
	} else if cfg.ConfigFilePath != "" {
		return nil, fmt.Errorf("%w: %s", config.ErrConfigNotFound, cfg.ConfigFilePath)
	}

	if len(args) > 0 {
		cfg.Root = args[0]
	}

	allow, err := cmd.Flags().GetStringSlice("allow")
	if err != nil {
		return nil, err
	}
	cfg.Allowlist = append(cfg.Allowlist, allow...)

	noIgnore, err := cmd.Flags().GetBool("no-ignore")
	if err != nil {
		return nil, err
	}
	if noIgnore {
		cfg.SkipIgnored = false
	}

	if cmd.Flags().Changed("limit") {
		cfg.Limit, err = cmd.Flags().GetInt("limit")
		if err != nil {
			return nil, err
		}
	}

	cfg.Trace, err = cmd.Flags().GetBool("trace")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noColor, err := cmd.Flags().GetBool("no-color")
	if err != nil {
		return nil, err
	}
	if noColor {
		cfg.Color = false
	}

	cfg.Verbose = getVerboseFlag(cmd)

	return cfg, nil
}

// setupLogger creates a structured logger based on verbosity setting.
func setupLogger(w io.Writer, verbose, jsonFormat bool) *slog.Logger {
	if jsonFormat {
		return log.NewJSONLogger(w, verbose)
	}
	return log.NewLogger(w, verbose)
}

// runScan executes the scan and writes the report.
func runScan(ctx context.Context, cfg *config.Config, logger *slog.Logger, stdout io.Writer) error {
	root, err := filepath.Abs(cfg.Root)
	if err != nil {
		return fmt.Errorf("failed to resolve root %s: %w", cfg.Root, err)
	}
	logger = log.WithRoot(logger, root)

	logger.Info("starting scan",
		"root", root,
		"allowlist", len(cfg.Allowlist),
		"ignore", cfg.WalkIgnores(),
		"limit", cfg.Limit,
	)

	allow := cfg.AllowlistSet()
	scan := model.NewScan(root, allow, cfg.Limit)

	configOpts := []pipeline.DefaultPipelineOption{
		pipeline.WithPipelineIgnoredFolders(cfg.WalkIgnores()),
	}
	if cfg.Trace {
		configOpts = append(configOpts, pipeline.WithPipelineTracer(report.NewTraceWriter(stdout)))
	}

	p := pipeline.DefaultPipeline([]pipeline.Option{pipeline.WithLogger(logger)}, configOpts...)

	startTime := time.Now()
	if err := p.Execute(ctx, scan); err != nil {
		return err
	}
	logger.Info("scan completed",
		"documents", len(scan.Documents),
		"macros", scan.Table.Len(),
		"elapsed", time.Since(startTime).Round(time.Millisecond),
	)

	return outputReport(cfg, scan.Report, allow, stdout)
}

// outputReport outputs the report in the requested format.
func outputReport(cfg *config.Config, r *model.Report, allow *model.Allowlist, stdout io.Writer) (err error) {
	output := stdout
	toFile := cfg.ReportFile != ""
	if toFile {
		dir := filepath.Dir(cfg.ReportFile)
		if dir != "" && dir != "." {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return fmt.Errorf("failed to create output directory: %w", mkErr)
			}
		}

		f, openErr := os.OpenFile(cfg.ReportFile, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
		if openErr != nil {
			return fmt.Errorf("failed to create output file: %w", openErr)
		}
		defer func() {
			err = errors.Join(err, f.Close())
		}()
		output = f
	}

	var writer report.Writer
	switch {
	case cfg.JSONReport:
		writer = report.NewFullJSONWriter(output, getVersion(), allow, report.WithPrettyPrint())
	case cfg.MarkdownReport:
		writer = report.NewMarkdownWriter(output)
	default:
		writer = report.NewSimpleWriter(output,
			report.WithColor(cfg.Color && !toFile && isTerminal(output)),
			report.WithVerbose(cfg.Verbose),
			report.WithSummary(cfg.Verbose),
		)
	}

	if _, err = writer.Write(r); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
