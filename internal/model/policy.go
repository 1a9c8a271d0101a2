package model

// Path represents a file system path.
type Path string

// TransformerPolicy is the configuration of one transformer.
type TransformerPolicy struct {
	Enabled    bool
	Order      int
	Inclusions []string
	Exclusions []string
	Custom     map[string]string
}

// Policy is the filter and settings configuration for one run. It is built
// once and treated as immutable afterwards.
type Policy struct {
	GlobalInclusions []string
	GlobalExclusions []string
	Transformers     map[string]TransformerPolicy
	Libraries        []Path
}

// Transformer returns the settings for the named transformer; the zero value
// when it is not configured.
func (p Policy) Transformer(name string) TransformerPolicy {
	if p.Transformers == nil {
		return TransformerPolicy{}
	}

	return p.Transformers[name]
}

// Enabled reports whether the named transformer is switched on.
func (p Policy) Enabled(name string) bool {
	return p.Transformer(name).Enabled
}

// Setting returns a free-form custom setting of a transformer.
func (p Policy) Setting(transformer, key string) (string, bool) {
	custom := p.Transformer(transformer).Custom
	if custom == nil {
		return "", false
	}

	value, ok := custom[key]

	return value, ok
}
