package transformers

import (
	"context"
	"math/rand/v2"
	"strings"

	"cloak.dev/pkg/cloak/internal/domain"
	m "cloak.dev/pkg/cloak/internal/model"
)

// MarkerTextKey is the custom setting holding the marker text; lines are
// separated by '|'.
const MarkerTextKey = "text"

const (
	markerNameLength = 3
	markerAlphabet   = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"
	stringDescriptor = "Ljava/lang/String;"
)

var defaultMarkerText = []string{
	"+--------------------------------+",
	"|  this unit has been obfuscated |",
	"+--------------------------------+",
}

// Marker appends constant string fields carrying a banner to every eligible
// unit. The fields are registered as protected so later renaming keeps them.
type Marker struct {
	rng *rand.Rand
}

// NewMarker creates the marker transformer.
func NewMarker() *Marker {
	return &Marker{rng: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// Name implements domain.Transformer.
func (t *Marker) Name() string {
	return MarkerName
}

// Transform implements domain.Transformer.
func (t *Marker) Transform(ctx context.Context, image m.Image, policy m.Policy, tc *domain.Context) error {
	lines := defaultMarkerText
	if text, ok := policy.Setting(t.Name(), MarkerTextKey); ok && strings.TrimSpace(text) != "" {
		lines = strings.Split(text, "|")
	}

	marked := 0

	for _, unit := range eligibleUnits(image, t.Name(), policy) {
		if err := ctx.Err(); err != nil {
			return err
		}

		for _, line := range lines {
			name := t.freeFieldName(unit)

			unit.Fields = append(unit.Fields, &m.Field{
				Name:       name,
				Descriptor: stringDescriptor,
				Access:     m.AccPublic | m.AccStatic | m.AccFinal,
				Value:      m.StringConst(line),
			})
			tc.ProtectField(unit.Name, name)
		}

		marked++
	}

	tc.Logger().Info("marked units", "units", marked, "lines", len(lines))

	return nil
}

// freeFieldName draws random names until one is not used by the unit.
func (t *Marker) freeFieldName(unit *m.Unit) string {
	length := markerNameLength

	for attempt := 0; ; attempt++ {
		// widen the name if short ones keep colliding
		if attempt > 0 && attempt%16 == 0 {
			length++
		}

		name := t.randomName(length)
		if !hasFieldNamed(unit, name) {
			return name
		}
	}
}

func (t *Marker) randomName(length int) string {
	var b strings.Builder

	for range length {
		b.WriteByte(markerAlphabet[t.rng.IntN(len(markerAlphabet))])
	}

	return b.String()
}

func hasFieldNamed(unit *m.Unit, name string) bool {
	for _, f := range unit.Fields {
		if f.Name == name {
			return true
		}
	}

	return false
}
