package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/macroscan/internal/discover"
	"github.com/nao1215/macroscan/internal/macro"
	"github.com/nao1215/macroscan/internal/model"
)

// Tracer receives the diagnostic trace of a scan: every document as it is
// opened and every raw match found in it.
type Tracer interface {
	TraceDocument(path string) error
	TraceOccurrence(occ model.Occurrence) error
}

// DiscoverStep walks the scan root and records every file path.
type DiscoverStep struct {
	// ignore holds folder names skipped during the walk.
	ignore []string

	// logger for structured logging.
	logger *slog.Logger
}

// NewDiscoverStep creates a discovery step skipping the given folder names.
func NewDiscoverStep(ignore []string, logger *slog.Logger) *DiscoverStep {
	if logger == nil {
		logger = slog.Default()
	}
	return &DiscoverStep{ignore: ignore, logger: logger}
}

// Name returns the step name.
func (s *DiscoverStep) Name() string {
	return "discover"
}

// Do executes the discovery step.
func (s *DiscoverStep) Do(_ context.Context, scan *model.Scan) error {
	var opts []discover.WalkOption
	if len(s.ignore) > 0 {
		opts = append(opts, discover.WithIgnoredFolders(s.ignore...))
	}

	paths, err := discover.Walk(scan.Root, opts...)
	if err != nil {
		return err
	}
	scan.Paths = paths

	s.logger.Info("files discovered",
		"root", scan.Root,
		"count", len(paths),
		"ignored", s.ignore,
	)
	return nil
}

// FilterStep keeps the markdown documents in ascending path order.
type FilterStep struct{}

// NewFilterStep creates a markdown filter step.
func NewFilterStep() *FilterStep {
	return &FilterStep{}
}

// Name returns the step name.
func (s *FilterStep) Name() string {
	return "filter"
}

// Do executes the filter step.
func (s *FilterStep) Do(_ context.Context, scan *model.Scan) error {
	scan.Documents = discover.FilterMarkdown(scan.Paths)
	return nil
}

// ExtractStep reads every document and counts its macro invocations.
type ExtractStep struct {
	// tracer receives the diagnostic trace; nil disables it.
	tracer Tracer

	// logger for structured logging.
	logger *slog.Logger
}

// ExtractStepOption configures an ExtractStep.
type ExtractStepOption func(*ExtractStep)

// WithTracer sets the tracer that receives documents and raw matches.
func WithTracer(tracer Tracer) ExtractStepOption {
	return func(s *ExtractStep) {
		s.tracer = tracer
	}
}

// WithExtractLogger sets a custom logger for the extract step.
func WithExtractLogger(logger *slog.Logger) ExtractStepOption {
	return func(s *ExtractStep) {
		s.logger = logger
	}
}

// NewExtractStep creates a new extraction step.
func NewExtractStep(opts ...ExtractStepOption) *ExtractStep {
	s := &ExtractStep{
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Name returns the step name.
func (s *ExtractStep) Name() string {
	return "extract"
}

// Do executes the extraction step. Documents are processed in the order of
// scan.Documents and the first unreadable document aborts the step.
func (s *ExtractStep) Do(ctx context.Context, scan *model.Scan) error {
	for _, path := range scan.Documents {
		if err := ctx.Err(); err != nil {
			return err
		}

		if s.tracer != nil {
			if err := s.tracer.TraceDocument(path); err != nil {
				return err
			}
		}

		occs, err := macro.ExtractFile(path)
		if err != nil {
			return err
		}

		if s.tracer != nil {
			for _, occ := range occs {
				if err := s.tracer.TraceOccurrence(occ); err != nil {
					return err
				}
			}
		}

		scan.Table.AddAll(path, occs)

		s.logger.Debug("document scanned",
			"path", path,
			"macros", len(occs),
		)
	}

	s.logger.Info("documents scanned",
		"documents", len(scan.Documents),
		"distinct", scan.Table.Len(),
		"total", scan.Table.Total(),
	)
	return nil
}

// ReportStep ranks the frequency table and builds the final report.
type ReportStep struct{}

// NewReportStep creates a report step.
func NewReportStep() *ReportStep {
	return &ReportStep{}
}

// Name returns the step name.
func (s *ReportStep) Name() string {
	return "report"
}

// Do executes the report step.
func (s *ReportStep) Do(_ context.Context, scan *model.Scan) error {
	report := model.NewReport(scan.Table, scan.Allowlist, scan.Limit)
	report.Root = scan.Root
	report.FilesScanned = len(scan.Documents)
	scan.Report = report
	return nil
}

// DefaultPipelineOption configures DefaultPipeline.
type DefaultPipelineOption func(*defaultPipelineConfig)

type defaultPipelineConfig struct {
	ignore []string
	tracer Tracer
}

// WithPipelineIgnoredFolders sets the folder names skipped during discovery.
func WithPipelineIgnoredFolders(names []string) DefaultPipelineOption {
	return func(c *defaultPipelineConfig) {
		c.ignore = names
	}
}

// WithPipelineTracer enables the diagnostic trace.
func WithPipelineTracer(tracer Tracer) DefaultPipelineOption {
	return func(c *defaultPipelineConfig) {
		c.tracer = tracer
	}
}

// DefaultPipeline creates the standard scan pipeline:
// discover, filter, extract, report.
func DefaultPipeline(opts []Option, configOpts ...DefaultPipelineOption) *Pipeline {
	cfg := &defaultPipelineConfig{}
	for _, opt := range configOpts {
		opt(cfg)
	}

	p := New(opts...)

	extractOpts := []ExtractStepOption{WithExtractLogger(p.logger)}
	if cfg.tracer != nil {
		extractOpts = append(extractOpts, WithTracer(cfg.tracer))
	}

	p.AddSteps(
		NewDiscoverStep(cfg.ignore, p.logger),
		NewFilterStep(),
		NewExtractStep(extractOpts...),
		NewReportStep(),
	)

	return p
}
