package adapter

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	m "cloak.dev/pkg/cloak/internal/model"
)

// MappingStore persists the rename mapping of a run so obfuscated names can
// be traced back to the originals.
type MappingStore interface {
	// StageMapping renders the records in full without touching path. The
	// destination only changes once the returned Staged is committed.
	StageMapping(path m.Path, records []m.MappingRecord) (Staged, error)
}

// LocalMappingStore implements MappingStore with YAML files.
type LocalMappingStore struct{}

// NewLocalMappingStore constructs a LocalMappingStore.
func NewLocalMappingStore() *LocalMappingStore {
	return &LocalMappingStore{}
}

type mappingDocument struct {
	Version int               `yaml:"version"`
	Entries []m.MappingRecord `yaml:"entries"`
}

const mappingVersion = 1

// StageMapping implements MappingStore.
func (s *LocalMappingStore) StageMapping(path m.Path, records []m.MappingRecord) (Staged, error) {
	doc := mappingDocument{Version: mappingVersion, Entries: records}

	staged, err := stageFile(path, func(w io.Writer) error {
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(doc); err != nil {
			return fmt.Errorf("failed to encode mapping: %w", err)
		}

		return encoder.Close()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save mapping to %s: %w", path, err)
	}

	return staged, nil
}

// SaveMapping stages the mapping and commits it.
func (s *LocalMappingStore) SaveMapping(path m.Path, records []m.MappingRecord) error {
	staged, err := s.StageMapping(path, records)
	if err != nil {
		return err
	}

	if err := staged.Commit(); err != nil {
		staged.Discard()
		return fmt.Errorf("failed to save mapping to %s: %w", path, err)
	}

	return nil
}
