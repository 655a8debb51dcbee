package generator

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultExcludedOperations returns the operations that are never
// generated: control-plane operations with no call signature worth
// wrapping, and cache operations handled internally by the binding.
func DefaultExcludedOperations() map[string]bool {
	return map[string]bool{
		// Internal operations
		"cache":   true,
		"system":  true,
		"version": true,

		// Handled via loader options
		"sequential": true,
		"tilecache":  true,
		"linecache":  true,
	}
}

// exclusionFile is the on-disk shape of an exclusion config.
type exclusionFile struct {
	// Exclude lists operation nicknames to drop from generation.
	Exclude []string `yaml:"exclude"`

	// ReplaceDefaults starts from an empty set instead of extending
	// the built-in exclusions.
	ReplaceDefaults bool `yaml:"replace_defaults"`
}

// LoadExclusions reads a YAML exclusion file and merges it with the
// default set unless the file opts out.
func LoadExclusions(path string) (map[string]bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading exclusion config: %w", err)
	}

	var file exclusionFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing exclusion config %s: %w", path, err)
	}

	excluded := map[string]bool{}
	if !file.ReplaceDefaults {
		excluded = DefaultExcludedOperations()
	}
	for _, nickname := range file.Exclude {
		excluded[nickname] = true
	}
	return excluded, nil
}
