// Package adapter contains the infrastructure the obfuscation pipeline runs
// on: container I/O, the unit codec and class path resolution.
package adapter

import (
	"archive/zip"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"time"

	m "cloak.dev/pkg/cloak/internal/model"
)

// Entry is one file of a container.
type Entry struct {
	Name     string
	Data     []byte
	Method   uint16
	Modified time.Time
}

// Archive is the content of a container split into code units and opaque
// resources. Resources keep their original order.
type Archive struct {
	Units     []Entry
	Resources []Entry
}

// ArchiveAdapter reads and writes containers bundling code units and resources.
type ArchiveAdapter interface {
	// Read loads every non-directory entry of the container at path; entries
	// for which isUnit returns true are code units, the rest are resources.
	Read(ctx context.Context, path m.Path, isUnit func(name string) bool) (Archive, error)

	// Stage writes the archive out in full without touching path. The
	// destination only changes once the returned Staged is committed.
	Stage(ctx context.Context, path m.Path, archive Archive) (Staged, error)
}

// LocalArchiveAdapter implements ArchiveAdapter with zip files on disk.
type LocalArchiveAdapter struct{}

// NewLocalArchiveAdapter constructs a LocalArchiveAdapter.
func NewLocalArchiveAdapter() *LocalArchiveAdapter {
	return &LocalArchiveAdapter{}
}

// Read implements ArchiveAdapter.
func (a *LocalArchiveAdapter) Read(ctx context.Context, path m.Path, isUnit func(name string) bool) (Archive, error) {
	reader, err := zip.OpenReader(string(path))
	if err != nil {
		return Archive{}, fmt.Errorf("failed to open archive %s: %w", path, err)
	}

	defer func() {
		if err := reader.Close(); err != nil {
			slog.Error("failed to close archive", "path", path, "error", err)
		}
	}()

	var archive Archive

	for _, file := range reader.File {
		if err := ctx.Err(); err != nil {
			return Archive{}, err
		}

		if file.FileInfo().IsDir() || strings.HasSuffix(file.Name, "/") {
			continue
		}

		data, err := readZipFile(file)
		if err != nil {
			return Archive{}, fmt.Errorf("failed to read %s from %s: %w", file.Name, path, err)
		}

		entry := Entry{
			Name:     file.Name,
			Data:     data,
			Method:   file.Method,
			Modified: file.Modified,
		}

		if isUnit(file.Name) {
			archive.Units = append(archive.Units, entry)
		} else {
			archive.Resources = append(archive.Resources, entry)
		}
	}

	slog.Debug("read archive", "path", path, "units", len(archive.Units), "resources", len(archive.Resources))

	return archive, nil
}

func readZipFile(file *zip.File) ([]byte, error) {
	rc, err := file.Open()
	if err != nil {
		return nil, err
	}

	defer func() { _ = rc.Close() }()

	return io.ReadAll(rc)
}

// Stage implements ArchiveAdapter. Units are written sorted by name, followed
// by the resources in their original order.
func (a *LocalArchiveAdapter) Stage(ctx context.Context, path m.Path, archive Archive) (Staged, error) {
	staged, err := stageFile(path, func(w io.Writer) error {
		return writeZip(ctx, w, archive)
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("staged archive", "path", path, "units", len(archive.Units), "resources", len(archive.Resources))

	return staged, nil
}

// Write stages the archive and commits it. On any error the destination is
// left as it was.
func (a *LocalArchiveAdapter) Write(ctx context.Context, path m.Path, archive Archive) error {
	staged, err := a.Stage(ctx, path, archive)
	if err != nil {
		return err
	}

	if err := staged.Commit(); err != nil {
		staged.Discard()
		return err
	}

	return nil
}

func writeZip(ctx context.Context, w io.Writer, archive Archive) error {
	zw := zip.NewWriter(w)

	units := make([]Entry, len(archive.Units))
	copy(units, archive.Units)
	sort.Slice(units, func(i, j int) bool { return units[i].Name < units[j].Name })

	for _, entry := range append(units, archive.Resources...) {
		if err := ctx.Err(); err != nil {
			_ = zw.Close()
			return err
		}

		if err := writeZipEntry(zw, entry); err != nil {
			_ = zw.Close()
			return fmt.Errorf("failed to write entry %s: %w", entry.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return fmt.Errorf("failed to finish archive: %w", err)
	}

	return nil
}

func writeZipEntry(zw *zip.Writer, entry Entry) error {
	header := &zip.FileHeader{
		Name:     entry.Name,
		Method:   entry.Method,
		Modified: entry.Modified,
	}

	if header.Method != zip.Store {
		header.Method = zip.Deflate
	}

	if header.Modified.IsZero() {
		header.Modified = time.Now()
	}

	fw, err := zw.CreateHeader(header)
	if err != nil {
		return err
	}

	_, err = fw.Write(entry.Data)

	return err
}
