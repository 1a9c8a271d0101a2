package model

import "time"

// RunSummary describes the outcome of one obfuscation run.
type RunSummary struct {
	RunID            string
	Input            Path
	Output           Path
	Mapping          Path
	Units            int
	Resources        int
	Libraries        int
	Applied          []string
	RenamedFields    int
	RenamedMethods   int
	EncryptedStrings int
	DecoderUnit      string
	Duration         time.Duration
}

// UnitReport describes one unit of an input container as seen by the
// configured policy.
type UnitReport struct {
	Name           string
	Super          string
	Fields         int
	Methods        int
	StringLiterals int
	Transformers   []string
}

// Mapping record kinds.
const (
	MappingField  = "field"
	MappingMethod = "method"
)

// MappingRecord is one renamed member.
type MappingRecord struct {
	Kind       string `yaml:"kind"`
	Owner      string `yaml:"owner"`
	Name       string `yaml:"name"`
	Descriptor string `yaml:"desc"`
	NewName    string `yaml:"new_name"`
}
