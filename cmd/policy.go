package cmd

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cast"
	"github.com/spf13/viper"

	m "cloak.dev/pkg/cloak/internal/model"
)

const (
	transformerEnabledKey    = "enabled"
	transformerOrderKey      = "order"
	transformerInclusionsKey = "inclusions"
	transformerExclusionsKey = "exclusions"
	transformerCustomKey     = "custom"
)

// loadPolicy builds the run policy from configuration. Malformed transformer
// entries are logged and skipped; a transformer with no entry stays disabled.
func loadPolicy(v *viper.Viper) m.Policy {
	policy := m.Policy{
		GlobalInclusions: trimAll(v.GetStringSlice(globalInclusionsKey)),
		GlobalExclusions: trimAll(v.GetStringSlice(globalExclusionsKey)),
		Transformers:     make(map[string]m.TransformerPolicy),
	}

	for _, library := range v.GetStringSlice(librariesConfigKey) {
		if library = strings.TrimSpace(library); library != "" {
			policy.Libraries = append(policy.Libraries, m.Path(library))
		}
	}

	raw := v.GetStringMap(transformersKey)

	names := make([]string, 0, len(raw))
	for name := range raw {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		settings, ok := raw[name].(map[string]any)
		if !ok {
			slog.Warn("Invalid transformer configuration", "transformer", name, "value", raw[name])
			continue
		}

		tp, err := parseTransformerPolicy(name, settings)
		if err != nil {
			slog.Warn("Invalid transformer configuration", "transformer", name, "error", err)
			continue
		}

		policy.Transformers[name] = tp
	}

	return policy
}

func parseTransformerPolicy(name string, settings map[string]any) (m.TransformerPolicy, error) {
	var tp m.TransformerPolicy

	for key, value := range settings {
		var err error

		switch strings.ToLower(key) {
		case transformerEnabledKey:
			tp.Enabled, err = cast.ToBoolE(value)
		case transformerOrderKey:
			tp.Order, err = cast.ToIntE(value)
		case transformerInclusionsKey:
			tp.Inclusions, err = cast.ToStringSliceE(value)
			tp.Inclusions = trimAll(tp.Inclusions)
		case transformerExclusionsKey:
			tp.Exclusions, err = cast.ToStringSliceE(value)
			tp.Exclusions = trimAll(tp.Exclusions)
		case transformerCustomKey:
			tp.Custom, err = parseCustomSettings(name, value)
		default:
			slog.Warn("Invalid transformer configuration key", "transformer", name, "key", key)
		}

		if err != nil {
			return m.TransformerPolicy{}, fmt.Errorf("key %s: %w", key, err)
		}
	}

	return tp, nil
}

func parseCustomSettings(name string, value any) (map[string]string, error) {
	raw, err := cast.ToStringMapE(value)
	if err != nil {
		return nil, err
	}

	custom := make(map[string]string, len(raw))

	for key, setting := range raw {
		if list, ok := setting.([]any); ok {
			setting = strings.Join(cast.ToStringSlice(list), ",")
		}

		s, err := cast.ToStringE(setting)
		if err != nil {
			slog.Warn("Invalid transformer setting", "transformer", name, "setting", key, "error", err)
			continue
		}

		custom[key] = s
	}

	return custom, nil
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))

	for _, value := range values {
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}

	return out
}
