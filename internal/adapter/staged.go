package adapter

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	m "cloak.dev/pkg/cloak/internal/model"
)

// ErrSettled is returned when a staged file is committed after it was
// already committed or discarded.
var ErrSettled = errors.New("staged file already settled")

// Staged is content written out in full but not yet visible at its
// destination. Exactly one of Commit or Discard takes effect.
type Staged interface {
	// Commit moves the content into place.
	Commit() error
	// Discard drops the content. It is a no-op after Commit.
	Discard()
}

// StagedFile is a Staged backed by a temp file next to its destination.
type StagedFile struct {
	tmp     string
	dest    string
	settled bool
}

// Path returns the destination of the staged file.
func (s *StagedFile) Path() m.Path {
	return m.Path(s.dest)
}

// Commit implements Staged.
func (s *StagedFile) Commit() error {
	if s.settled {
		return fmt.Errorf("%w: %s", ErrSettled, s.dest)
	}

	if err := os.Rename(s.tmp, s.dest); err != nil {
		return fmt.Errorf("failed to move %s into place: %w", s.dest, err)
	}

	s.settled = true

	return nil
}

// Discard implements Staged.
func (s *StagedFile) Discard() {
	if s.settled {
		return
	}

	s.settled = true

	if err := os.Remove(s.tmp); err != nil && !os.IsNotExist(err) {
		slog.Error("failed to remove temp file", "path", s.tmp, "error", err)
	}
}

// stageFile writes through a temp file in the destination directory. The
// destination is untouched until the returned file is committed.
func stageFile(path m.Path, write func(w io.Writer) error) (*StagedFile, error) {
	dir := filepath.Dir(string(path))

	tmp, err := os.CreateTemp(dir, ".cloak-*.tmp")
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}

	staged := &StagedFile{tmp: tmp.Name(), dest: string(path)}

	if err := writeAndClose(tmp, write); err != nil {
		staged.Discard()
		return nil, err
	}

	return staged, nil
}

func writeAndClose(tmp *os.File, write func(w io.Writer) error) error {
	if err := write(tmp); err != nil {
		_ = tmp.Close()
		return err
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to sync %s: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}

	return nil
}
