package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/quantmind-br/mediadata-go/internal/domain"
	"github.com/quantmind-br/mediadata-go/internal/utils"
)

// Ensure Builder implements domain.Scanner
var _ domain.Scanner = (*Builder)(nil)

// Builder walks a directory tree and classifies the image files it finds
type Builder struct {
	extensions []string
	logger     *utils.Logger
	onEntry    func(domain.Entry)
}

// BuilderOptions contains options for the builder
type BuilderOptions struct {
	// Extensions overrides the default allow-list (domain.ImageExtensions)
	Extensions []string
	Logger     *utils.Logger
	// OnEntry is called for every accepted entry, in traversal order
	OnEntry func(domain.Entry)
}

// NewBuilder creates a new manifest builder
func NewBuilder(opts BuilderOptions) *Builder {
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = domain.ImageExtensions
	}

	logger := opts.Logger
	if logger == nil {
		logger = utils.NewNopLogger()
	}

	return &Builder{
		extensions: exts,
		logger:     logger.WithComponent("manifest"),
		onEntry:    opts.OnEntry,
	}
}

// Build walks root and returns the classified image entries in traversal order
func (b *Builder) Build(ctx context.Context, root string) (domain.Manifest, error) {
	exists, err := utils.DirExists(root)
	if err != nil {
		return nil, domain.NewScanError(root, err)
	}
	if !exists {
		return nil, fmt.Errorf("%w: %s", domain.ErrRootNotFound, root)
	}

	b.logger.Debug().Str("root", root).Strs("extensions", b.extensions).Msg("Scanning directory")

	m := domain.Manifest{}
	skipped := 0

	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return domain.NewScanError(path, err)
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		if d.IsDir() || isDirSymlink(path, d) {
			return nil
		}

		if !domain.HasExtension(d.Name(), b.extensions) {
			skipped++
			b.logger.Debug().Str("path", path).Msg("Skipping unsupported file")
			return nil
		}

		entry := domain.NewEntry(path, d.Name())
		m = append(m, entry)
		if b.onEntry != nil {
			b.onEntry(entry)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	b.logger.Debug().
		Int("entries", len(m)).
		Int("skipped", skipped).
		Msg("Scan complete")

	return m, nil
}

// isDirSymlink reports whether d is a symlink pointing at a directory.
// Such links are listed as directories and never followed.
func isDirSymlink(path string, d fs.DirEntry) bool {
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
