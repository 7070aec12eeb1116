package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/divsmith/zmk-keymap-tools/internal/keymap"
	"github.com/divsmith/zmk-keymap-tools/internal/report"
)

// ValidateOptions selects how a validation report is rendered.
type ValidateOptions struct {
	Verbose   bool
	Format    string // "text" or "json"
	UseColour bool
}

// Manager defines the operations behind the keymap CLIs.
type Manager interface {
	// FormatFiles grid-formats each file in place, printing a per-file
	// confirmation or error line. A failure on one file never aborts the
	// rest; the results let a caller aggregate an exit code if desired.
	FormatFiles(ctx context.Context, paths []string) []keymap.FileResult
	// ValidateFile validates one keymap file and writes the report.
	ValidateFile(ctx context.Context, path string, opts ValidateOptions) error
	// WatchValidation validates the file, then re-validates on every
	// change until the context is cancelled. readyChan, if non-nil, is
	// closed once the watcher is active.
	WatchValidation(ctx context.Context, path string, opts ValidateOptions, readyChan chan<- struct{}) error
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation,
// allowing for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set.
// Used by PersistentPreRunE to skip initialization if already configured
// (e.g., in tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) FormatFiles(ctx context.Context, paths []string) []keymap.FileResult {
	return l.check().FormatFiles(ctx, paths)
}

func (l *LazyManager) ValidateFile(ctx context.Context, path string, opts ValidateOptions) error {
	return l.check().ValidateFile(ctx, path, opts)
}

func (l *LazyManager) WatchValidation(ctx context.Context, path string,
	opts ValidateOptions, readyChan chan<- struct{},
) error {
	return l.check().WatchValidation(ctx, path, opts, readyChan)
}

// CLIManager is the production Manager backed by the real formatter,
// validator and external-formatter filter.
type CLIManager struct {
	logger    *slog.Logger
	stdout    io.Writer
	formatter *keymap.GridFormatter
	validator *keymap.Validator
	filter    keymap.TextFilter // nil disables post-filtering
}

func NewCLIManager(logger *slog.Logger, stdout io.Writer, formatter *keymap.GridFormatter,
	validator *keymap.Validator, filter keymap.TextFilter,
) *CLIManager {
	return &CLIManager{
		logger:    logger,
		stdout:    stdout,
		formatter: formatter,
		validator: validator,
		filter:    filter,
	}
}

func (m *CLIManager) FormatFiles(ctx context.Context, paths []string) []keymap.FileResult {
	results := make([]keymap.FileResult, 0, len(paths))
	for _, path := range paths {
		res := m.formatFile(ctx, path)
		if res.Err != nil {
			fmt.Fprintf(m.stdout, "Error formatting %s: %v\n", path, res.Err)
		} else {
			fmt.Fprintf(m.stdout, "Formatted %s\n", path)
		}
		results = append(results, res)
	}
	return results
}

// formatFile runs the full pipeline for one file: read, grid rewrite,
// optional external filter, write back in place.
func (m *CLIManager) formatFile(ctx context.Context, path string) keymap.FileResult {
	res := keymap.FileResult{Path: path}

	info, err := os.Stat(path)
	if err != nil {
		res.Err = err
		return res
	}

	data, err := os.ReadFile(path)
	if err != nil {
		res.Err = err
		return res
	}

	text := m.formatter.FormatText(string(data))

	if m.filter != nil {
		out, status, ferr := m.filter.Apply(ctx, text)
		res.FilterStatus = status
		switch status {
		case keymap.FilterApplied:
			text = out
		case keymap.FilterUnavailable:
			m.logger.Info(fmt.Sprintf("%s not found, using custom formatting only", m.filter.Name()))
		case keymap.FilterFailed:
			m.logger.Debug("external formatter failed, keeping grid output", "error", ferr)
		case keymap.FilterSkipped:
		}
	}

	if err := os.WriteFile(path, []byte(text), info.Mode().Perm()); err != nil {
		res.Err = err
	}
	return res
}

func (m *CLIManager) ValidateFile(_ context.Context, path string, opts ValidateOptions) error {
	r := m.validator.ValidateFile(path)
	return m.reporter(opts).Write(m.stdout, r)
}

func (m *CLIManager) reporter(opts ValidateOptions) report.Reporter {
	if opts.Format == "json" {
		return &report.JSONReporter{}
	}
	return &report.TextReporter{Verbose: opts.Verbose, UseColour: opts.UseColour}
}

func (m *CLIManager) WatchValidation(ctx context.Context, path string,
	opts ValidateOptions, readyChan chan<- struct{},
) error {
	if err := m.ValidateFile(ctx, path, opts); err != nil {
		return err
	}

	watcher := keymap.NewWatcher(path, m.logger)
	changes := make(chan struct{}, 1)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Watch(ctx, func() {
			select {
			case changes <- struct{}{}:
			default:
			}
		})
	})
	g.Go(func() error {
		if readyChan != nil {
			<-watcher.Ready
			close(readyChan)
		}
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-changes:
				if err := m.ValidateFile(ctx, path, opts); err != nil {
					m.logger.Error("validation failed", "error", err)
				}
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
