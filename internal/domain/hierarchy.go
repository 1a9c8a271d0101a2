package domain

import (
	"iter"
	"sort"

	lru "github.com/hashicorp/golang-lru/v2"

	m "cloak.dev/pkg/cloak/internal/model"
)

// resolveCacheSize bounds the number of memoized member resolutions.
const resolveCacheSize = 4096

// Signature identifies a member within its declaring unit.
type Signature struct {
	Name       string
	Descriptor string
}

func (s Signature) String() string {
	return s.Name + s.Descriptor
}

type nameSet map[string]struct{}

type memberRef struct {
	owner string
	sig   Signature
}

type resolution struct {
	declaring string
	found     bool
}

// Hierarchy is the inheritance graph and member index of a program image.
// It is built once per run with AddUnit and Finalize and is read-only
// afterwards. Member indexes hold the names as they were when the unit was
// added.
//
// Queries about unit names that are not part of the image return empty
// results: supertypes outside the image are routinely looked up.
type Hierarchy struct {
	units      map[string]*m.Unit
	superclass map[string]string
	subclasses map[string]nameSet
	members    map[string]map[Signature]struct{}
	declaring  map[Signature]nameSet

	resolved *lru.Cache[memberRef, resolution]
}

// NewHierarchy returns an empty hierarchy.
func NewHierarchy() *Hierarchy {
	// lru.New only fails for a non-positive size.
	resolved, _ := lru.New[memberRef, resolution](resolveCacheSize)

	return &Hierarchy{
		units:      make(map[string]*m.Unit),
		superclass: make(map[string]string),
		subclasses: make(map[string]nameSet),
		members:    make(map[string]map[Signature]struct{}),
		declaring:  make(map[Signature]nameSet),
		resolved:   resolved,
	}
}

// BuildHierarchy adds every unit of the image and finalizes the graph.
func BuildHierarchy(image m.Image) *Hierarchy {
	h := NewHierarchy()
	for _, u := range image.Sorted() {
		h.AddUnit(u)
	}

	h.Finalize()

	return h
}

// AddUnit records the unit, its declared supertype and the members it declares.
func (h *Hierarchy) AddUnit(u *m.Unit) {
	h.resolved.Purge()
	h.units[u.Name] = u

	if u.HasSuper() {
		h.superclass[u.Name] = u.Super
	}

	declared := make(map[Signature]struct{}, len(u.Fields)+len(u.Methods))

	for _, f := range u.Fields {
		declared[Signature{Name: f.Name, Descriptor: f.Descriptor}] = struct{}{}
	}

	for _, method := range u.Methods {
		declared[Signature{Name: method.Name, Descriptor: method.Descriptor}] = struct{}{}
	}

	h.members[u.Name] = declared

	for sig := range declared {
		owners, ok := h.declaring[sig]
		if !ok {
			owners = make(nameSet)
			h.declaring[sig] = owners
		}

		owners[u.Name] = struct{}{}
	}
}

// Finalize rebuilds the subclass index from the recorded superclass edges.
// It must run after every unit is added since subclasses may be added before
// their superclass. Edges to supertypes outside the image are dropped.
func (h *Hierarchy) Finalize() {
	h.subclasses = make(map[string]nameSet, len(h.superclass))

	for sub, super := range h.superclass {
		if _, known := h.units[super]; !known {
			continue
		}

		children, ok := h.subclasses[super]
		if !ok {
			children = make(nameSet)
			h.subclasses[super] = children
		}

		children[sub] = struct{}{}
	}
}

// Known reports whether the unit is part of the image.
func (h *Hierarchy) Known(name string) bool {
	_, ok := h.units[name]
	return ok
}

// Unit returns the unit with the given name, or nil.
func (h *Hierarchy) Unit(name string) *m.Unit {
	return h.units[name]
}

// Len returns the number of units in the graph.
func (h *Hierarchy) Len() int {
	return len(h.units)
}

// Superclass returns the supertype of a unit when both are part of the image.
func (h *Hierarchy) Superclass(name string) (string, bool) {
	if !h.Known(name) {
		return "", false
	}

	super, ok := h.superclass[name]
	if !ok || !h.Known(super) {
		return "", false
	}

	return super, true
}

// DeclaredSuper returns the supertype name a unit declares, whether or not
// that supertype is part of the image.
func (h *Hierarchy) DeclaredSuper(name string) (string, bool) {
	super, ok := h.superclass[name]
	return super, ok
}

// Subclasses returns the direct subtypes of a unit, sorted.
func (h *Hierarchy) Subclasses(name string) []string {
	return sortedNames(h.subclasses[name])
}

// MembersDeclaredBy returns the signatures a unit declares, sorted.
func (h *Hierarchy) MembersDeclaredBy(name string) []Signature {
	declared := h.members[name]

	sigs := make([]Signature, 0, len(declared))
	for sig := range declared {
		sigs = append(sigs, sig)
	}

	sort.Slice(sigs, func(i, j int) bool {
		return sigs[i].String() < sigs[j].String()
	})

	return sigs
}

// Declares reports whether the unit declares a member with this exact signature.
func (h *Hierarchy) Declares(name string, sig Signature) bool {
	_, ok := h.members[name][sig]
	return ok
}

// DeclaringUnitsOf returns every unit declaring a member with this exact signature.
func (h *Hierarchy) DeclaringUnitsOf(sig Signature) []string {
	return sortedNames(h.declaring[sig])
}

// AncestryChain yields the unit followed by its successive supertypes,
// stopping at the first supertype that is absent or not part of the image.
// Nothing is yielded for units outside the image. The sequence is recomputed
// on every iteration.
func (h *Hierarchy) AncestryChain(name string) iter.Seq[string] {
	return func(yield func(string) bool) {
		current := name
		seen := make(nameSet)

		for h.Known(current) {
			if _, loop := seen[current]; loop {
				return
			}

			seen[current] = struct{}{}

			if !yield(current) {
				return
			}

			super, ok := h.superclass[current]
			if !ok {
				return
			}

			current = super
		}
	}
}

// IsAncestorOf reports whether a is b or one of b's supertypes within the image.
func (h *Hierarchy) IsAncestorOf(a, b string) bool {
	if a == b {
		return true
	}

	for name := range h.AncestryChain(b) {
		if name == a {
			return true
		}
	}

	return false
}

// Depth returns the number of in-image supertypes above a unit.
func (h *Hierarchy) Depth(name string) int {
	depth := -1
	for range h.AncestryChain(name) {
		depth++
	}

	if depth < 0 {
		return 0
	}

	return depth
}

// NearestDeclaringAncestor walks the proper supertypes of a unit and returns
// the first one declaring sig.
func (h *Hierarchy) NearestDeclaringAncestor(name string, sig Signature) (string, bool) {
	for ancestor := range h.AncestryChain(name) {
		if ancestor == name {
			continue
		}

		if h.Declares(ancestor, sig) {
			return ancestor, true
		}
	}

	return "", false
}

// ResolveMember returns the first unit in the ancestry chain of owner that
// declares sig, mirroring how member references are resolved at run time.
// Results are memoized until the next AddUnit.
func (h *Hierarchy) ResolveMember(owner string, sig Signature) (string, bool) {
	ref := memberRef{owner: owner, sig: sig}
	if cached, ok := h.resolved.Get(ref); ok {
		return cached.declaring, cached.found
	}

	result := resolution{}

	for name := range h.AncestryChain(owner) {
		if h.Declares(name, sig) {
			result = resolution{declaring: name, found: true}
			break
		}
	}

	h.resolved.Add(ref, result)

	return result.declaring, result.found
}

func sortedNames(set nameSet) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
