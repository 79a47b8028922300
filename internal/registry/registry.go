package registry

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed data.yaml
var defaultCatalogue []byte

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the built-in catalogue, parsed once per process.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = parse(defaultCatalogue)
	})
	return defaultReg, defaultErr
}

// LoadFile reads a catalogue from a YAML file. Used when a deployment ships
// its own trigger or pattern tables; the result is still immutable for the
// process lifetime.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read registry file: %w", err)
	}
	return parse(data)
}

func parse(data []byte) (*Registry, error) {
	var reg Registry
	if err := yaml.Unmarshal(data, &reg); err != nil {
		return nil, fmt.Errorf("parse registry: %w", err)
	}
	if err := reg.Validate(); err != nil {
		return nil, err
	}
	return &reg, nil
}

// Validate checks catalogue integrity: a default archetype must exist, every
// trigger must be fully specified, and every lock pattern must carry 3-4
// conditions.
func (r *Registry) Validate() error {
	if r.DefaultArchetype.ID == "" {
		return fmt.Errorf("registry: default archetype missing")
	}
	seen := map[string]bool{}
	for i, t := range r.Triggers {
		if t.Winner == "" || t.Assessment == "" || t.Subdomain == "" {
			return fmt.Errorf("registry: trigger %d incomplete", i)
		}
		if t.Archetype.ID == "" {
			return fmt.Errorf("registry: trigger %d has no archetype", i)
		}
		if seen[string(t.Winner)] {
			return fmt.Errorf("registry: duplicate trigger winner %q", t.Winner)
		}
		seen[string(t.Winner)] = true
	}
	for _, p := range r.LockPatterns {
		if p.Name == "" {
			return fmt.Errorf("registry: lock pattern with empty name")
		}
		if len(p.Conditions) < 3 || len(p.Conditions) > 4 {
			return fmt.Errorf("registry: lock pattern %q has %d conditions, want 3-4", p.Name, len(p.Conditions))
		}
		for i, c := range p.Conditions {
			if c.Assessment == "" || c.Subdomain == "" {
				return fmt.Errorf("registry: lock pattern %q condition %d incomplete", p.Name, i)
			}
		}
	}
	return nil
}
