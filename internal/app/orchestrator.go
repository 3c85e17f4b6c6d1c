package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/quantmind-br/mediadata-go/internal/config"
	"github.com/quantmind-br/mediadata-go/internal/domain"
	"github.com/quantmind-br/mediadata-go/internal/manifest"
	"github.com/quantmind-br/mediadata-go/internal/output"
	"github.com/quantmind-br/mediadata-go/internal/utils"
	"github.com/schollz/progressbar/v3"
)

// Orchestrator coordinates a manifest run: build, render, write, report
type Orchestrator struct {
	config   *config.Config
	logger   *utils.Logger
	scanner  domain.Scanner
	writer   domain.ManifestWriter
	dryRun   bool
	progress io.Writer
	bar      *progressbar.ProgressBar
}

// OrchestratorOptions contains options for creating an orchestrator
type OrchestratorOptions struct {
	Config *config.Config
	Logger *utils.Logger
	// Scanner and Writer default to the filesystem implementations built from Config
	Scanner domain.Scanner
	Writer  domain.ManifestWriter
	DryRun  bool
	Verbose bool
	// Progress receives a scan spinner when set. Ignored when Scanner is injected.
	Progress io.Writer
}

// Result summarizes one run
type Result struct {
	Root     string
	Path     string
	Entries  int
	Counts   map[domain.MediaType]int
	Skipped  bool
	DryRun   bool
	Duration time.Duration
}

// NewOrchestrator creates a new orchestrator with the given configuration
func NewOrchestrator(opts OrchestratorOptions) (*Orchestrator, error) {
	cfg := opts.Config

	// Validate config
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewLogger(utils.LoggerOptions{
			Level:  utils.EffectiveLevel(cfg.Logging.Level, opts.Verbose),
			Format: cfg.Logging.Format,
		})
	}

	o := &Orchestrator{
		config:  cfg,
		logger:  logger.WithComponent("app"),
		scanner: opts.Scanner,
		writer:  opts.Writer,
		dryRun:  opts.DryRun,
	}

	// Only the default builder reports entries, so an injected scanner gets no spinner
	if o.scanner == nil {
		o.progress = opts.Progress
		o.scanner = manifest.NewBuilder(manifest.BuilderOptions{
			Extensions: cfg.Scan.Extensions,
			Logger:     logger,
			OnEntry:    o.tick,
		})
	}
	if o.writer == nil {
		o.writer = output.NewWriter(output.WriterOptions{
			Path:     cfg.Output.File,
			Variable: cfg.Output.Variable,
			Indent:   cfg.Output.Indent,
			DryRun:   opts.DryRun,
			Logger:   logger,
		})
	}

	return o, nil
}

// Run regenerates the output file from the scan root.
// A missing root is reported and skipped without error.
func (o *Orchestrator) Run(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	result := o.newResult()

	m, err := o.build(ctx)
	if err != nil {
		if domain.IsRootNotFound(err) {
			o.reportMissingRoot()
			result.Skipped = true
			return result, nil
		}
		if ctx.Err() != nil {
			o.logger.Warn().Msg("Scan cancelled")
			return nil, ctx.Err()
		}
		return nil, err
	}

	n, err := o.writer.Write(ctx, m)
	if err != nil {
		return nil, err
	}

	result.Entries = n
	result.Counts = m.Counts()
	result.Duration = time.Since(startTime)

	event := o.logger.Info()
	for _, t := range m.Types() {
		event = event.Int(string(t), result.Counts[t])
	}
	event = event.Dur("duration", result.Duration)
	if o.dryRun {
		event.Msgf("Dry run: would update %s with %d images.", result.Path, n)
	} else {
		event.Msgf("Successfully updated %s with %d images.", result.Path, n)
	}

	return result, nil
}

// Check reports whether the output file matches a fresh scan.
// It returns an error wrapping domain.ErrStale when the file is out of date.
func (o *Orchestrator) Check(ctx context.Context) (*Result, error) {
	startTime := time.Now()
	result := o.newResult()

	m, err := o.build(ctx)
	if err != nil {
		if domain.IsRootNotFound(err) {
			o.reportMissingRoot()
			result.Skipped = true
			return result, nil
		}
		return nil, err
	}

	result.Entries = len(m)
	result.Counts = m.Counts()
	result.Duration = time.Since(startTime)

	if err := o.writer.Compare(m); err != nil {
		if errors.Is(err, domain.ErrStale) {
			o.logger.Warn().
				Int("entries", result.Entries).
				Msgf("%s is out of date.", result.Path)
		}
		return result, err
	}

	o.logger.Info().
		Int("entries", result.Entries).
		Msgf("%s is up to date.", result.Path)
	return result, nil
}

func (o *Orchestrator) newResult() *Result {
	return &Result{
		Root:   o.config.Scan.Root,
		Path:   o.writer.Path(),
		DryRun: o.dryRun,
	}
}

func (o *Orchestrator) reportMissingRoot() {
	o.logger.Warn().Msgf("Directory '%s' not found.", o.config.Scan.Root)
}

// build runs the scanner, showing a spinner on the progress writer if set
func (o *Orchestrator) build(ctx context.Context) (domain.Manifest, error) {
	if o.progress != nil {
		o.bar = utils.NewProgressBarTo(o.progress, -1, utils.DescScanning)
		defer func() {
			_ = o.bar.Finish()
			o.bar = nil
		}()
	}

	return o.scanner.Build(ctx, o.config.Scan.Root)
}

// tick advances the scan spinner
func (o *Orchestrator) tick(domain.Entry) {
	if o.bar != nil {
		_ = o.bar.Add(1)
	}
}
