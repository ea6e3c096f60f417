// Package adapter contains infrastructure adapters for the minipack CLI.
package adapter

import (
	"context"
	"os"
	"path/filepath"

	m "minipack.dev/pkg/minipack/internal/model"
)

// SourceFSAdapter abstracts filesystem-specific operations that the domain layer
// relies on when loading modules. It intentionally hides direct `os`
// access so the graph logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// ReadFile loads a file from disk and returns its contents.
	ReadFile(ctx context.Context, path m.Path) ([]byte, error)

	// Dir returns the directory containing path.
	Dir(path m.Path) m.Path

	// AbsPath returns a cleaned absolute form of path.
	AbsPath(path m.Path) (m.Path, error)

	// ResolvePath joins a relative module reference onto dir and returns the
	// absolute result. No extension or index file is inferred.
	ResolvePath(dir m.Path, reference string) (m.Path, error)

	// WriteFile writes content to a file with the given permissions, creating
	// parent directories as needed.
	WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error
}

// LocalSourceFSAdapter is the os-backed SourceFSAdapter.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter instance ready to
// be wired into the graph builder.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(ctx context.Context, path m.Path) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - reading user modules is the purpose of this adapter
	return os.ReadFile(string(path))
}

// Dir returns the parent directory of path.
func (a *LocalSourceFSAdapter) Dir(path m.Path) m.Path {
	return m.Path(filepath.Dir(string(path)))
}

// AbsPath returns the absolute, cleaned form of path.
func (a *LocalSourceFSAdapter) AbsPath(path m.Path) (m.Path, error) {
	abs, err := filepath.Abs(string(path))
	if err != nil {
		return "", err
	}

	return m.Path(abs), nil
}

// ResolvePath joins reference onto dir and makes the result absolute.
func (a *LocalSourceFSAdapter) ResolvePath(dir m.Path, reference string) (m.Path, error) {
	return a.AbsPath(m.Path(filepath.Join(string(dir), filepath.FromSlash(reference))))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(ctx context.Context, path m.Path, content []byte, perm os.FileMode) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return err
	}

	return os.WriteFile(string(path), content, perm)
}
