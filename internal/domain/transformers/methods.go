package transformers

import (
	"context"
	"fmt"
	"sort"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// MethodExclusionsKey is the custom setting listing method names, comma
// separated, that are never renamed.
const MethodExclusionsKey = "method-exclusions"

// Methods renames method declarations and call sites while keeping every
// override relationship intact: an override always ends up with the same
// name as the method it overrides.
type Methods struct{}

// NewMethods creates the method renaming transformer.
func NewMethods() *Methods {
	return &Methods{}
}

// Name implements domain.Transformer.
func (t *Methods) Name() string {
	return MethodsName
}

type methodDecl struct {
	unit   *m.Unit
	method *m.Method
	sig    domain.Signature
	depth  int
}

func (d methodDecl) key() domain.MemberKey {
	return domain.Key(d.unit.Name, d.sig)
}

// Transform implements domain.Transformer.
func (t *Methods) Transform(ctx context.Context, image m.Image, policy m.Policy, tc *domain.Context) error {
	excluded := make(map[string]struct{})

	if setting, ok := policy.Setting(t.Name(), MethodExclusionsKey); ok {
		for _, name := range splitList(setting) {
			excluded[name] = struct{}{}
		}
	}

	decls := t.collect(image, tc.Hierarchy())

	declared, err := t.assignDeclarations(ctx, decls, excluded, policy, tc)
	if err != nil {
		return err
	}

	synced := t.synchronizeOverrides(decls, tc)
	t.applyDeclarations(decls, tc)
	rewritten := t.rewriteCallSites(image, tc)

	tc.Logger().Info("renamed methods", "declarations", declared, "overrides", synced, "call_sites", rewritten)

	return nil
}

// collect snapshots every method declaration with its original signature.
func (t *Methods) collect(image m.Image, hierarchy *domain.Hierarchy) []methodDecl {
	var decls []methodDecl

	for _, unit := range image.Sorted() {
		depth := hierarchy.Depth(unit.Name)

		for _, method := range unit.Methods {
			decls = append(decls, methodDecl{
				unit:   unit,
				method: method,
				sig:    domain.Signature{Name: method.Name, Descriptor: method.Descriptor},
				depth:  depth,
			})
		}
	}

	return decls
}

func (t *Methods) renamable(d methodDecl, excluded map[string]struct{}, tc *domain.Context) bool {
	if d.method.IsInitializer() || d.method.IsNative() {
		return false
	}

	if _, skip := excluded[d.sig.Name]; skip {
		return false
	}

	return !tc.IsMethodProtected(d.unit.Name, d.sig.Name)
}

// assignDeclarations gives a fresh name to every eligible method that does
// not override a method declared higher up in the image. Overrides receive
// their name in synchronizeOverrides.
func (t *Methods) assignDeclarations(
	ctx context.Context,
	decls []methodDecl,
	excluded map[string]struct{},
	policy m.Policy,
	tc *domain.Context,
) (int, error) {
	hierarchy := tc.Hierarchy()
	mapping := tc.MethodMapping()
	assigned := 0

	for _, d := range decls {
		if err := ctx.Err(); err != nil {
			return assigned, err
		}

		if !t.renamable(d, excluded, tc) || !domain.Eligible(d.unit.Name, t.Name(), policy) {
			continue
		}

		if _, overrides := hierarchy.NearestDeclaringAncestor(d.unit.Name, d.sig); overrides {
			continue
		}

		if _, exists := mapping.Lookup(d.key()); exists {
			continue
		}

		candidate, err := tc.Namer().Next(d.sig.Name)
		if err != nil {
			return assigned, fmt.Errorf("rename method %s.%s: %w", d.unit.Name, d.sig, err)
		}

		if _, recorded := mapping.Assign(d.key(), candidate); recorded {
			assigned++
		}
	}

	return assigned, nil
}

// synchronizeOverrides gives every override the name chosen for the nearest
// supertype declaring the same signature. Units are visited from the top of
// the hierarchy down so the supertype's name is final before any subtype
// copies it, which carries one name through hierarchies of any depth.
func (t *Methods) synchronizeOverrides(decls []methodDecl, tc *domain.Context) int {
	hierarchy := tc.Hierarchy()
	mapping := tc.MethodMapping()

	ordered := make([]methodDecl, len(decls))
	copy(ordered, decls)

	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].depth < ordered[j].depth
	})

	synced := 0

	for _, d := range ordered {
		if d.method.IsInitializer() {
			continue
		}

		ancestor, ok := hierarchy.NearestDeclaringAncestor(d.unit.Name, d.sig)
		if !ok {
			continue
		}

		name, ok := mapping.Lookup(domain.Key(ancestor, d.sig))
		if !ok {
			continue
		}

		if tc.IsMethodProtected(d.unit.Name, d.sig.Name) {
			tc.Logger().Warn("protected override keeps its name", "unit", d.unit.Name, "method", d.sig.String(), "overrides", ancestor, "ancestor_name", name)
			continue
		}

		if d.method.IsNative() {
			tc.Logger().Warn("native override keeps its name", "unit", d.unit.Name, "method", d.sig.String(), "overrides", ancestor)
			continue
		}

		if _, recorded := mapping.Assign(d.key(), name); recorded {
			synced++
		}
	}

	return synced
}

func (t *Methods) applyDeclarations(decls []methodDecl, tc *domain.Context) {
	mapping := tc.MethodMapping()

	for _, d := range decls {
		if name, ok := mapping.Lookup(d.key()); ok {
			tc.Logger().Debug("renamed method", "unit", d.unit.Name, "method", d.sig.String(), "new", name)
			d.method.Name = name
		}
	}
}

// rewriteCallSites renames invoke instructions. The new name is the first
// mapping found walking the ancestry chain from the instruction's owner;
// targets outside the image have no chain and are left alone.
func (t *Methods) rewriteCallSites(image m.Image, tc *domain.Context) int {
	hierarchy := tc.Hierarchy()
	mapping := tc.MethodMapping()
	rewritten := 0

	for _, unit := range image.Sorted() {
		for _, method := range unit.Methods {
			for _, insn := range method.Instructions {
				if !insn.IsInvoke() {
					continue
				}

				sig := domain.Signature{Name: insn.Name, Descriptor: insn.Descriptor}

				for owner := range hierarchy.AncestryChain(insn.Owner) {
					if name, ok := mapping.Lookup(domain.Key(owner, sig)); ok {
						insn.Name = name
						rewritten++

						break
					}
				}
			}
		}
	}

	return rewritten
}
