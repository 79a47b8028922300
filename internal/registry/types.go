package registry

import "github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"

// Archetype is one classification label in the catalogue.
type Archetype struct {
	ID          string `yaml:"id" json:"id"`
	DisplayName string `yaml:"display_name" json:"display_name"`
}

// Trigger maps a bipolar winner plus one corroborating subdomain quotient to
// an archetype. Triggers are scanned in declaration order; the first trigger
// whose winner matches is selected.
type Trigger struct {
	Winner     assessment.Strategy `yaml:"winner"`
	Assessment assessment.ID       `yaml:"assessment"`
	Subdomain  string              `yaml:"subdomain"`
	Threshold  float64             `yaml:"threshold"`
	Archetype  Archetype           `yaml:"archetype"`
}

// LockCondition is one clause of a belief-lock pattern. The named subdomain
// quotient must be present and at or above the threshold.
type LockCondition struct {
	Assessment assessment.ID `yaml:"assessment"`
	Subdomain  string        `yaml:"subdomain"`
	Threshold  float64       `yaml:"threshold"`
}

// LockPattern is a catalogued conjunction of 3-4 subdomain conditions that,
// when all met, indicates a mutually-reinforcing belief cluster.
type LockPattern struct {
	Name       string          `yaml:"name"`
	Impact     string          `yaml:"impact"`
	Conditions []LockCondition `yaml:"conditions"`
}

// Registry is the immutable catalogue every engine reads: label dictionaries,
// archetype triggers, and lock patterns. It is loaded once at startup and is
// safe to share across concurrent evaluations.
type Registry struct {
	DefaultArchetype Archetype                                  `yaml:"default_archetype"`
	Triggers         []Trigger                                  `yaml:"triggers"`
	LockPatterns     []LockPattern                              `yaml:"lock_patterns"`
	StrategyLabels   map[assessment.Strategy]string             `yaml:"strategy_labels"`
	AssessmentLabels map[assessment.ID]string                   `yaml:"assessment_labels"`
	SubdomainLabels  map[assessment.ID]map[string]string        `yaml:"subdomain_labels"`
}

// SubdomainLabel returns the display label for a subdomain, falling back to
// the raw identifier.
func (r *Registry) SubdomainLabel(id assessment.ID, subdomain string) string {
	if m, ok := r.SubdomainLabels[id]; ok {
		if label, ok := m[subdomain]; ok {
			return label
		}
	}
	return subdomain
}

// AssessmentLabel returns the display label for an assessment, falling back
// to the raw identifier.
func (r *Registry) AssessmentLabel(id assessment.ID) string {
	if label, ok := r.AssessmentLabels[id]; ok {
		return label
	}
	return string(id)
}
