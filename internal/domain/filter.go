package domain

import (
	"log/slog"
	"strings"

	m "cloak.dev/pkg/cloak/internal/model"
)

const (
	matchAllPattern       = "*"
	packageWildcard       = "/**"
	dottedPackageWildcard = ".**"
	exactMarker           = "^"
)

// Eligible decides whether the named unit may be rewritten by the named
// transformer under policy.
//
// Precedence:
//   - globally excluded: eligible only when a transformer inclusion matches;
//   - globally included: eligible unless a transformer exclusion matches;
//   - otherwise: eligible only when a transformer inclusion matches and no
//     transformer exclusion does.
func Eligible(unitName, transformer string, policy m.Policy) bool {
	tp := policy.Transformer(transformer)

	included := matchesAny(unitName, tp.Inclusions)
	excluded := matchesAny(unitName, tp.Exclusions)

	if matchesAny(unitName, policy.GlobalExclusions) {
		if included {
			slog.Debug("including globally excluded unit", "unit", unitName, "transformer", transformer)
			return true
		}

		return false
	}

	if matchesAny(unitName, policy.GlobalInclusions) {
		if excluded {
			slog.Debug("skipping unit excluded by transformer", "unit", unitName, "transformer", transformer)
			return false
		}

		return true
	}

	return included && !excluded
}

func matchesAny(unitName string, patterns []string) bool {
	for _, pattern := range patterns {
		if MatchPattern(unitName, pattern) {
			return true
		}
	}

	return false
}

// MatchPattern reports whether a unit name matches one filter pattern.
// Both '/' and '.' are accepted as package separators.
//
//	"*"            every unit
//	com/example/** every unit under com/example, recursively
//	^com/Foo       exactly com/Foo
//	com/Foo        exactly com/Foo
func MatchPattern(unitName, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return false
	}

	if pattern == matchAllPattern {
		return true
	}

	name := normalizeName(unitName)

	switch {
	case strings.HasSuffix(pattern, packageWildcard), strings.HasSuffix(pattern, dottedPackageWildcard):
		base := normalizeName(pattern[:len(pattern)-len(packageWildcard)])
		if base == "" {
			return true
		}

		return strings.HasPrefix(name, base+"/")
	case strings.HasPrefix(pattern, exactMarker):
		return name == normalizeName(strings.TrimPrefix(pattern, exactMarker))
	default:
		return name == normalizeName(pattern)
	}
}

func normalizeName(name string) string {
	return strings.ReplaceAll(name, ".", "/")
}
