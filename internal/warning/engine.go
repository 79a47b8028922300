package warning

import (
	"sort"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
)

// Evaluate runs every catalogue rule against the snapshot. A rule fires only
// when all of its conditions resolve and hold; a rule with any unresolvable
// condition is skipped, never treated as a false warning. Fired warnings are
// independent — none are merged or deduplicated — and the result is stably
// sorted by priority, preserving declaration order within a tier.
func Evaluate(snap *assessment.Snapshot) []Warning {
	return evaluate(Catalogue(), snap)
}

func evaluate(rules []Rule, snap *assessment.Snapshot) []Warning {
	var out []Warning
	for _, rule := range rules {
		sources, ok := match(rule, snap)
		if !ok {
			continue
		}
		out = append(out, Warning{
			Type:     rule.Type,
			Priority: rule.Priority,
			Message:  rule.Message,
			Sources:  sources,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Priority.Order() < out[j].Priority.Order()
	})
	return out
}

func match(rule Rule, snap *assessment.Snapshot) ([]assessment.SourceRef, bool) {
	sources := make([]assessment.SourceRef, 0, len(rule.Conditions))
	for _, cond := range rule.Conditions {
		ref, ok := resolve(cond, snap)
		if !ok || !compare(cond.Op, ref.Value, cond.Threshold) {
			return nil, false
		}
		sources = append(sources, ref)
	}
	return sources, true
}

// resolve looks up the concrete score a condition refers to. The returned
// SourceRef doubles as the warning's citation for that clause.
func resolve(cond Condition, snap *assessment.Snapshot) (assessment.SourceRef, bool) {
	switch cond.Kind {
	case RefSubdomain:
		v, ok := snap.SubdomainQuotient(cond.Assessment, cond.Subdomain)
		if !ok {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: cond.Assessment,
			Field:      "subdomain/" + cond.Subdomain,
			Value:      v,
		}, true

	case RefOverall:
		g := snap.Grounding(cond.Assessment)
		if g == nil || g.Overall == nil {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: cond.Assessment,
			Field:      "overall",
			Value:      *g.Overall,
		}, true

	case RefBipolar:
		b := snap.Bipolar()
		if b == nil {
			return assessment.SourceRef{}, false
		}
		v, ok := b.Score(cond.Strategy)
		if !ok {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: assessment.MoneyStrategy,
			Field:      "strategy/" + string(cond.Strategy),
			Value:      v,
		}, true

	case RefClarity:
		c := snap.Clarity()
		if c == nil {
			return assessment.SourceRef{}, false
		}
		b, ok := c.Benchmarks[cond.Benchmark]
		if !ok || b.Clarity == nil {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: assessment.FinancialClarity,
			Field:      "clarity/" + cond.Benchmark,
			Value:      *b.Clarity,
		}, true

	case RefMaxGroundingOverall:
		id, v, ok := snap.MaxGroundingOverall()
		if !ok {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: id,
			Field:      "overall",
			Value:      v,
		}, true

	case RefAvgClarityStress:
		c := snap.Clarity()
		if c == nil {
			return assessment.SourceRef{}, false
		}
		v, ok := c.AvgStress()
		if !ok {
			return assessment.SourceRef{}, false
		}
		return assessment.SourceRef{
			Assessment: assessment.FinancialClarity,
			Field:      "stress/avg",
			Value:      v,
		}, true
	}
	return assessment.SourceRef{}, false
}

func compare(op Op, value, threshold float64) bool {
	switch op {
	case OpGTE:
		return value >= threshold
	case OpGT:
		return value > threshold
	case OpLT:
		return value < threshold
	case OpLTE:
		return value <= threshold
	}
	return false
}
