package domain

import (
	"sort"
	"sync"
)

// MemberKey identifies an original member declaration: the unit declaring it
// and the name and descriptor it had before renaming.
type MemberKey struct {
	Owner      string
	Name       string
	Descriptor string
}

// Key builds the MemberKey of a signature declared by owner.
func Key(owner string, sig Signature) MemberKey {
	return MemberKey{Owner: owner, Name: sig.Name, Descriptor: sig.Descriptor}
}

// Signature returns the name and descriptor part of the key.
func (k MemberKey) Signature() Signature {
	return Signature{Name: k.Name, Descriptor: k.Descriptor}
}

// MappingEntry is one recorded rename.
type MappingEntry struct {
	Key     MemberKey
	NewName string
}

// RenameMapping records the new name chosen for each original member. It is
// append-only: the first name assigned to a key is final.
type RenameMapping struct {
	mu      sync.RWMutex
	entries map[MemberKey]string
}

// NewRenameMapping returns an empty mapping.
func NewRenameMapping() *RenameMapping {
	return &RenameMapping{entries: make(map[MemberKey]string)}
}

// Assign records name for key unless the key is already mapped. It returns
// the canonical name for the key and whether this call recorded it.
func (rm *RenameMapping) Assign(key MemberKey, name string) (string, bool) {
	rm.mu.Lock()
	defer rm.mu.Unlock()

	if existing, ok := rm.entries[key]; ok {
		return existing, false
	}

	rm.entries[key] = name

	return name, true
}

// Lookup returns the new name recorded for key.
func (rm *RenameMapping) Lookup(key MemberKey) (string, bool) {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	name, ok := rm.entries[key]

	return name, ok
}

// Len returns the number of recorded renames.
func (rm *RenameMapping) Len() int {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	return len(rm.entries)
}

// Entries returns every recorded rename ordered by owner, name and descriptor.
func (rm *RenameMapping) Entries() []MappingEntry {
	rm.mu.RLock()
	defer rm.mu.RUnlock()

	entries := make([]MappingEntry, 0, len(rm.entries))
	for key, name := range rm.entries {
		entries = append(entries, MappingEntry{Key: key, NewName: name})
	}

	sort.Slice(entries, func(i, j int) bool {
		a, b := entries[i].Key, entries[j].Key
		if a.Owner != b.Owner {
			return a.Owner < b.Owner
		}

		if a.Name != b.Name {
			return a.Name < b.Name
		}

		return a.Descriptor < b.Descriptor
	})

	return entries
}
