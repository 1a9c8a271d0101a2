package adapter

import (
	"archive/zip"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	m "cloak.dev/pkg/cloak/internal/model"
)

// ClassPath indexes the unit names provided by library containers. Library
// units are only consulted for supertype resolution and are never rewritten.
type ClassPath struct {
	libraries []m.Path
	units     map[string]m.Path
}

// NewClassPath builds a class path from already known unit names.
func NewClassPath(units map[string]m.Path) *ClassPath {
	cp := &ClassPath{units: make(map[string]m.Path, len(units))}

	seen := make(map[m.Path]struct{})

	for name, lib := range units {
		cp.units[name] = lib

		if _, ok := seen[lib]; !ok {
			seen[lib] = struct{}{}
			cp.libraries = append(cp.libraries, lib)
		}
	}

	sort.Slice(cp.libraries, func(i, j int) bool { return cp.libraries[i] < cp.libraries[j] })

	return cp
}

// Contains reports whether a library provides the named unit. A nil class
// path contains nothing.
func (cp *ClassPath) Contains(name string) bool {
	if cp == nil {
		return false
	}

	_, ok := cp.units[name]

	return ok
}

// Provider returns the library that provides the named unit.
func (cp *ClassPath) Provider(name string) (m.Path, bool) {
	if cp == nil {
		return "", false
	}

	lib, ok := cp.units[name]

	return lib, ok
}

// Libraries returns the containers that were indexed.
func (cp *ClassPath) Libraries() []m.Path {
	if cp == nil {
		return nil
	}

	return cp.libraries
}

// Len returns the number of indexed unit names.
func (cp *ClassPath) Len() int {
	if cp == nil {
		return 0
	}

	return len(cp.units)
}

// ClassPathAdapter resolves library paths into a ClassPath.
type ClassPathAdapter interface {
	// Resolve indexes every library container. A path may name a container
	// or a directory whose *.jar files are all indexed. Missing paths are
	// logged and skipped.
	Resolve(ctx context.Context, paths []m.Path, isUnit func(name string) bool) (*ClassPath, error)
}

// LocalClassPathAdapter implements ClassPathAdapter on the local file system.
type LocalClassPathAdapter struct{}

// NewLocalClassPathAdapter constructs a LocalClassPathAdapter.
func NewLocalClassPathAdapter() *LocalClassPathAdapter {
	return &LocalClassPathAdapter{}
}

// Resolve implements ClassPathAdapter.
func (a *LocalClassPathAdapter) Resolve(ctx context.Context, paths []m.Path, isUnit func(name string) bool) (*ClassPath, error) {
	cp := &ClassPath{units: make(map[string]m.Path)}

	containers, err := expandLibraries(paths)
	if err != nil {
		return nil, err
	}

	for _, container := range containers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if err := indexContainer(cp, container, isUnit); err != nil {
			return nil, err
		}

		cp.libraries = append(cp.libraries, container)
	}

	slog.Debug("resolved class path", "libraries", len(cp.libraries), "units", len(cp.units))

	return cp, nil
}

func expandLibraries(paths []m.Path) ([]m.Path, error) {
	var containers []m.Path

	for _, path := range paths {
		info, err := os.Stat(string(path))
		if err != nil {
			if os.IsNotExist(err) {
				slog.Warn("library path does not exist, skipping", "path", path)
				continue
			}

			return nil, fmt.Errorf("failed to stat library %s: %w", path, err)
		}

		if !info.IsDir() {
			containers = append(containers, path)
			continue
		}

		matches, err := filepath.Glob(filepath.Join(string(path), "*.jar"))
		if err != nil {
			return nil, fmt.Errorf("failed to scan library directory %s: %w", path, err)
		}

		sort.Strings(matches)

		for _, match := range matches {
			containers = append(containers, m.Path(match))
		}
	}

	return containers, nil
}

func indexContainer(cp *ClassPath, container m.Path, isUnit func(name string) bool) error {
	reader, err := zip.OpenReader(string(container))
	if err != nil {
		return fmt.Errorf("failed to open library %s: %w", container, err)
	}

	defer func() { _ = reader.Close() }()

	for _, file := range reader.File {
		if file.FileInfo().IsDir() || !isUnit(file.Name) {
			continue
		}

		name := unitNameOf(file.Name)
		if _, exists := cp.units[name]; !exists {
			cp.units[name] = container
		}
	}

	return nil
}

// unitNameOf strips the codec suffix from an entry name: everything from the
// first '.' in the last path segment.
func unitNameOf(entry string) string {
	dir, base := "", entry
	if idx := strings.LastIndexByte(entry, '/'); idx >= 0 {
		dir, base = entry[:idx+1], entry[idx+1:]
	}

	if idx := strings.IndexByte(base, '.'); idx >= 0 {
		base = base[:idx]
	}

	return dir + base
}
