package domain

import "context"

//go:generate mockgen -destination=../mocks/domain_mock.go -package=mocks github.com/quantmind-br/mediadata-go/internal/domain Scanner,ManifestWriter

// Scanner defines the interface for building a manifest from a directory tree
type Scanner interface {
	// Build walks root and returns the classified image entries in traversal order
	Build(ctx context.Context, root string) (Manifest, error)
}

// ManifestWriter defines the interface for emitting the generated script file
type ManifestWriter interface {
	// Render returns the exact bytes that Write would put on disk
	Render(m Manifest) ([]byte, error)
	// Write overwrites the output file and returns the number of entries written
	Write(ctx context.Context, m Manifest) (int, error)
	// Compare returns ErrStale when the file on disk differs from Render(m)
	Compare(m Manifest) error
	// Path returns the output file path
	Path() string
}
