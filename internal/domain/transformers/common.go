// Package transformers contains the rewriting steps of the obfuscation pipeline.
package transformers

import (
	"strings"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// Transformer names as used in configuration.
const (
	MarkerName  = "marker"
	FieldsName  = "fields"
	MethodsName = "methods"
	StringsName = "strings"
)

// Default returns every transformer in default run order.
func Default() []domain.Transformer {
	return []domain.Transformer{
		NewMarker(),
		NewFields(),
		NewMethods(),
		NewStrings(),
	}
}

// eligibleUnits returns the units of the image the transformer may rewrite,
// ordered by name.
func eligibleUnits(image m.Image, transformer string, policy m.Policy) []*m.Unit {
	units := make([]*m.Unit, 0, len(image))

	for _, unit := range image.Sorted() {
		if domain.Eligible(unit.Name, transformer, policy) {
			units = append(units, unit)
		}
	}

	return units
}

// splitList parses a comma separated setting, dropping blanks.
func splitList(value string) []string {
	parts := strings.Split(value, ",")

	items := make([]string, 0, len(parts))
	for _, part := range parts {
		if item := strings.TrimSpace(part); item != "" {
			items = append(items, item)
		}
	}

	return items
}
