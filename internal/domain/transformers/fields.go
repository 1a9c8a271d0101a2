package transformers

import (
	"context"
	"fmt"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// Fields renames field declarations and every access to them.
//
// Fields take no part in dynamic dispatch, so each declaration is renamed on
// its own. Synthetic and enum-constant fields keep their names, as do
// protected ones.
type Fields struct{}

// NewFields creates the field renaming transformer.
func NewFields() *Fields {
	return &Fields{}
}

// Name implements domain.Transformer.
func (t *Fields) Name() string {
	return FieldsName
}

// Transform implements domain.Transformer.
func (t *Fields) Transform(ctx context.Context, image m.Image, policy m.Policy, tc *domain.Context) error {
	renamed, err := t.renameDeclarations(ctx, image, policy, tc)
	if err != nil {
		return err
	}

	rewritten := t.rewriteAccesses(image, tc)

	tc.Logger().Info("renamed fields", "declarations", renamed, "accesses", rewritten)

	return nil
}

func (t *Fields) renameDeclarations(ctx context.Context, image m.Image, policy m.Policy, tc *domain.Context) (int, error) {
	mapping := tc.FieldMapping()
	renamed := 0

	for _, unit := range eligibleUnits(image, t.Name(), policy) {
		if err := ctx.Err(); err != nil {
			return renamed, err
		}

		for _, field := range unit.Fields {
			if !t.renamable(unit, field, tc) {
				continue
			}

			key := domain.MemberKey{Owner: unit.Name, Name: field.Name, Descriptor: field.Descriptor}
			if _, exists := mapping.Lookup(key); exists {
				continue
			}

			candidate, err := tc.Namer().NextSalted(field.Name)
			if err != nil {
				return renamed, fmt.Errorf("rename field %s.%s: %w", unit.Name, field.Name, err)
			}

			newName, _ := mapping.Assign(key, candidate)
			tc.Logger().Debug("renamed field", "unit", unit.Name, "field", field.Name, "new", newName)

			field.Name = newName
			renamed++
		}
	}

	return renamed, nil
}

func (t *Fields) renamable(unit *m.Unit, field *m.Field, tc *domain.Context) bool {
	if field.IsSynthetic() || field.IsEnumConstant() {
		return false
	}

	return !tc.IsFieldProtected(unit.Name, field.Name)
}

// rewriteAccesses renames every field instruction whose target was renamed.
// The target is the first unit, starting at the instruction's owner, that
// declares the field.
func (t *Fields) rewriteAccesses(image m.Image, tc *domain.Context) int {
	mapping := tc.FieldMapping()
	hierarchy := tc.Hierarchy()
	rewritten := 0

	for _, unit := range image.Sorted() {
		for _, method := range unit.Methods {
			for _, insn := range method.Instructions {
				if !insn.IsFieldAccess() {
					continue
				}

				sig := domain.Signature{Name: insn.Name, Descriptor: insn.Descriptor}

				declaring, ok := hierarchy.ResolveMember(insn.Owner, sig)
				if !ok {
					continue
				}

				if newName, ok := mapping.Lookup(domain.Key(declaring, sig)); ok {
					insn.Name = newName
					rewritten++
				}
			}
		}
	}

	return rewritten
}
