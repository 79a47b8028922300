// Package warning evaluates a fixed catalogue of independent risk predicates
// over one snapshot and emits a priority-ranked warning list.
package warning

import "github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"

// Priority tier of a warning.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
)

// Order returns the sort rank for a priority tier. Lower sorts first.
func (p Priority) Order() int {
	switch p {
	case PriorityCritical:
		return 0
	case PriorityHigh:
		return 1
	default:
		return 2
	}
}

// Warning is one emitted risk finding. Sources always holds at least one
// concrete score.
type Warning struct {
	Type     string                 `json:"type"`
	Priority Priority               `json:"priority"`
	Message  string                 `json:"message"`
	Sources  []assessment.SourceRef `json:"sources"`
}

// RefKind selects how a condition resolves its score from the snapshot.
type RefKind string

const (
	// RefSubdomain reads one grounding subdomain quotient.
	RefSubdomain RefKind = "subdomain"
	// RefOverall reads one grounding assessment's overall quotient.
	RefOverall RefKind = "overall"
	// RefBipolar reads one signed strategy score.
	RefBipolar RefKind = "bipolar"
	// RefClarity reads one financial benchmark's clarity percentage.
	RefClarity RefKind = "clarity"
	// RefMaxGroundingOverall reads the maximum overall quotient across
	// completed grounding assessments.
	RefMaxGroundingOverall RefKind = "max-grounding-overall"
	// RefAvgClarityStress reads the mean signed stress across the
	// financial benchmarks.
	RefAvgClarityStress RefKind = "avg-clarity-stress"
)

// Op is a threshold comparison. Most predicates use the inclusive GTE; the
// strict operators exist for rules whose boundary is deliberately exclusive.
type Op string

const (
	OpGTE Op = ">="
	OpGT  Op = ">"
	OpLT  Op = "<"
	OpLTE Op = "<="
)

// Condition is one predicate clause: a score reference, a comparison
// operator, and a threshold. A condition that cannot resolve its score makes
// the whole rule skip.
type Condition struct {
	Kind       RefKind
	Assessment assessment.ID
	Subdomain  string
	Benchmark  string
	Strategy   assessment.Strategy
	Op         Op
	Threshold  float64
}

// Rule couples a conjunction of conditions with the warning it emits.
type Rule struct {
	Type       string
	Priority   Priority
	Message    string
	Conditions []Condition
}
