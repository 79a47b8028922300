package assessment

import "time"

// ID identifies one self-assessment instrument.
type ID string

const (
	// MoneyStrategy is the bipolar strategy assessment.
	MoneyStrategy ID = "money-strategy"

	// Grounding assessments. Each scores an overall quotient, two domain
	// quotients, and six subdomain quotients on a 0-100 scale where higher
	// means the pattern is more actively present.
	IdentityGrounding   ID = "identity-grounding"
	SecurityGrounding   ID = "security-grounding"
	ConnectionGrounding ID = "connection-grounding"

	// FinancialClarity carries the five domain benchmarks.
	FinancialClarity ID = "financial-clarity"
)

// GroundingIDs returns the grounding assessments in canonical order.
// Engines iterate this order so results are deterministic.
func GroundingIDs() []ID {
	return []ID{IdentityGrounding, SecurityGrounding, ConnectionGrounding}
}

// Status tracks how far a person has taken one assessment.
type Status string

const (
	StatusNotStarted Status = "not-started"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Strategy identifies one bipolar money strategy.
type Strategy string

const (
	StrategyControl    Strategy = "Control"
	StrategySecurity   Strategy = "Security"
	StrategyStatus     Strategy = "Status"
	StrategyFreedom    Strategy = "Freedom"
	StrategyConnection Strategy = "Connection"
)

// Aspect is one of the four facets scored per subdomain.
type Aspect string

const (
	AspectBelief      Aspect = "belief"
	AspectBehavior    Aspect = "behavior"
	AspectFeeling     Aspect = "feeling"
	AspectConsequence Aspect = "consequence"
)

// BipolarResult holds signed strategy scores in [-25,+25] with one winner.
type BipolarResult struct {
	Scores map[Strategy]float64 `json:"scores"`
	Winner Strategy             `json:"winner,omitempty"`
}

// Score returns the score for one strategy, with presence.
func (b *BipolarResult) Score(s Strategy) (float64, bool) {
	v, ok := b.Scores[s]
	return v, ok
}

// AspectScores holds the four facet scores for one subdomain, each roughly
// in [-3,+3]. A nil field means the facet was not scored — not zero.
type AspectScores struct {
	Belief      *float64 `json:"belief,omitempty"`
	Behavior    *float64 `json:"behavior,omitempty"`
	Feeling     *float64 `json:"feeling,omitempty"`
	Consequence *float64 `json:"consequence,omitempty"`
}

// ItemResponse is one raw item-level answer tagged by subdomain and aspect.
// It is the fallback source for aspect scores when the aggregated block is
// absent from a grounding payload.
type ItemResponse struct {
	Subdomain string  `json:"subdomain"`
	Aspect    Aspect  `json:"aspect"`
	Value     float64 `json:"value"`
}

// GroundingResult is the scored payload of one grounding assessment.
type GroundingResult struct {
	Overall    *float64                `json:"overall,omitempty"`
	Domains    map[string]float64      `json:"domains,omitempty"`
	Subdomains map[string]float64      `json:"subdomains,omitempty"`
	Aspects    map[string]AspectScores `json:"aspects,omitempty"`
	Items      []ItemResponse          `json:"items,omitempty"`
}

// Subdomain returns one subdomain quotient, with presence.
func (g *GroundingResult) Subdomain(name string) (float64, bool) {
	v, ok := g.Subdomains[name]
	return v, ok
}

// ClarityBenchmark is one financial domain's clarity percentage and signed
// stress value.
type ClarityBenchmark struct {
	Clarity *float64 `json:"clarity,omitempty"`
	Stress  *float64 `json:"stress,omitempty"`
}

// ClarityBenchmarkNames lists the five financial domains in canonical order.
func ClarityBenchmarkNames() []string {
	return []string{"income", "spending", "savings", "debt", "protection"}
}

// ClarityResult is the scored payload of the financial-clarity assessment.
type ClarityResult struct {
	Benchmarks map[string]ClarityBenchmark `json:"benchmarks"`
}

// AvgStress averages the signed stress values across the domain benchmarks.
// Returns false when no stress values are present.
func (c *ClarityResult) AvgStress() (float64, bool) {
	sum, n := 0.0, 0
	for _, name := range ClarityBenchmarkNames() {
		b, ok := c.Benchmarks[name]
		if !ok || b.Stress == nil {
			continue
		}
		sum += *b.Stress
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// Result is one assessment's entry in a snapshot.
type Result struct {
	Status      Status     `json:"status"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	// Exactly one payload is set on a completed entry, matching the
	// assessment's shape.
	Bipolar   *BipolarResult   `json:"bipolar,omitempty"`
	Grounding *GroundingResult `json:"grounding,omitempty"`
	Clarity   *ClarityResult   `json:"clarity,omitempty"`
}

// SourceRef cites one concrete score that justified a finding. Every emitted
// warning and archetype match carries at least one.
type SourceRef struct {
	Assessment ID      `json:"assessment"`
	Field      string  `json:"field"`
	Value      float64 `json:"value"`
}
