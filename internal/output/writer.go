package output

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/quantmind-br/mediadata-go/internal/domain"
	"github.com/quantmind-br/mediadata-go/internal/utils"
)

// Ensure Writer implements domain.ManifestWriter
var _ domain.ManifestWriter = (*Writer)(nil)

const (
	defaultPath     = "media-data.js"
	defaultVariable = "MEDIA_DATA"
	defaultIndent   = 4
)

// Writer renders a manifest as a script assignment and writes it to disk
type Writer struct {
	path     string
	variable string
	indent   string
	dryRun   bool
	logger   *utils.Logger
}

// WriterOptions contains options for the writer
type WriterOptions struct {
	Path     string
	Variable string
	Indent   int
	DryRun   bool
	Logger   *utils.Logger
}

// NewWriter creates a new output writer
func NewWriter(opts WriterOptions) *Writer {
	if opts.Path == "" {
		opts.Path = defaultPath
	}
	if opts.Variable == "" {
		opts.Variable = defaultVariable
	}
	if opts.Indent <= 0 {
		opts.Indent = defaultIndent
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Writer{
		path:     opts.Path,
		variable: opts.Variable,
		indent:   strings.Repeat(" ", opts.Indent),
		dryRun:   opts.DryRun,
		logger:   logger.WithComponent("output").WithPath(opts.Path),
	}
}

// Path returns the output file path
func (w *Writer) Path() string {
	return w.path
}

// Render returns the file contents for m: `const <VAR> = <json>;`
func (w *Writer) Render(m domain.Manifest) ([]byte, error) {
	if m == nil {
		m = domain.Manifest{}
	}

	data, err := EncodeManifest(m, w.indent)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.Grow(len(data) + len(w.variable) + 10)
	buf.WriteString("const ")
	buf.WriteString(w.variable)
	buf.WriteString(" = ")
	buf.Write(data)
	buf.WriteByte(';')
	return buf.Bytes(), nil
}

// Write overwrites the output file with the rendered manifest
func (w *Writer) Write(ctx context.Context, m domain.Manifest) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	content, err := w.Render(m)
	if err != nil {
		return 0, domain.NewWriteError(w.path, err)
	}

	// Dry run - just return
	if w.dryRun {
		w.logger.Debug().Int("bytes", len(content)).Msg("Dry run, not writing")
		return len(m), nil
	}

	if err := utils.EnsureDir(w.path); err != nil {
		return 0, domain.NewWriteError(w.path, err)
	}

	if err := os.WriteFile(w.path, content, 0644); err != nil {
		return 0, domain.NewWriteError(w.path, err)
	}

	w.logger.Debug().Int("bytes", len(content)).Msg("Wrote manifest")
	return len(m), nil
}

// Compare checks the file on disk against a fresh render of m.
// A missing file counts as stale.
func (w *Writer) Compare(m domain.Manifest) error {
	want, err := w.Render(m)
	if err != nil {
		return err
	}

	got, err := os.ReadFile(w.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("%w: %s does not exist", domain.ErrStale, w.path)
		}
		return err
	}

	if !bytes.Equal(got, want) {
		return fmt.Errorf("%w: %s", domain.ErrStale, w.path)
	}
	return nil
}
