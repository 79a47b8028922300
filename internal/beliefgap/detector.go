// Package beliefgap measures the divergence between what a person believes
// about a subdomain and how they behave in it, using the four aspect scores.
package beliefgap

import (
	"math"
	"sort"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
)

// Direction of a gap. Belief-exceeds-action means stated conviction is not
// reflected in behavior; action-exceeds-belief means behavior outruns
// conscious belief, read as an unconscious or automatic pattern.
type Direction string

const (
	DirectionBeliefExceedsAction Direction = "belief-exceeds-action"
	DirectionActionExceedsBelief Direction = "action-exceeds-belief"
)

// EmitThreshold is the minimum absolute divergence, exclusive, on the ±3
// aspect scale. A gap of exactly 2.0 is not emitted.
const EmitThreshold = 2.0

// Gap is one flagged divergence. Scores are rounded to one decimal place.
type Gap struct {
	Assessment assessment.ID `json:"assessment"`
	Subdomain  string        `json:"subdomain"`
	Belief     float64       `json:"belief"`
	Behavior   float64       `json:"behavior"`
	Gap        float64       `json:"gap"`
	Direction  Direction     `json:"direction"`
}

// Detect scans every completed grounding assessment's subdomains. Aspect
// scores come from the aggregated block when present, otherwise they are
// reconstructed from raw item responses. A subdomain without a belief value
// and at least one of the other three aspects is skipped.
func Detect(snap *assessment.Snapshot) []Gap {
	type candidate struct {
		gap    Gap
		absRaw float64
	}
	var found []candidate

	for _, e := range snap.CompletedGroundings() {
		for _, sub := range subdomainNames(e.Result) {
			scores, ok := aspectsFor(e.Result, sub)
			if !ok || scores.Belief == nil {
				continue
			}

			behavior, n := 0.0, 0
			for _, v := range []*float64{scores.Behavior, scores.Feeling, scores.Consequence} {
				if v != nil {
					behavior += *v
					n++
				}
			}
			if n == 0 {
				continue
			}
			behavior /= float64(n)

			raw := *scores.Belief - behavior
			abs := math.Abs(raw)
			if abs <= EmitThreshold {
				continue
			}

			dir := DirectionBeliefExceedsAction
			if raw < 0 {
				dir = DirectionActionExceedsBelief
			}
			found = append(found, candidate{
				gap: Gap{
					Assessment: e.ID,
					Subdomain:  sub,
					Belief:     round1(*scores.Belief),
					Behavior:   round1(behavior),
					Gap:        round1(abs),
					Direction:  dir,
				},
				absRaw: abs,
			})
		}
	}

	sort.SliceStable(found, func(i, j int) bool {
		return found[i].absRaw > found[j].absRaw
	})

	out := make([]Gap, len(found))
	for i, c := range found {
		out[i] = c.gap
	}
	return out
}

// subdomainNames returns every subdomain with aspect data, from either
// source, in sorted order for determinism.
func subdomainNames(g *assessment.GroundingResult) []string {
	set := map[string]bool{}
	for sub := range g.Aspects {
		set[sub] = true
	}
	if len(g.Aspects) == 0 {
		for _, item := range g.Items {
			set[item.Subdomain] = true
		}
	}

	names := make([]string, 0, len(set))
	for sub := range set {
		names = append(names, sub)
	}
	sort.Strings(names)
	return names
}

// aspectsFor returns the aspect scores for one subdomain. The aggregated
// block wins when present; otherwise scores are rebuilt from raw item
// responses, averaging items that share an aspect.
func aspectsFor(g *assessment.GroundingResult, sub string) (assessment.AspectScores, bool) {
	if scores, ok := g.Aspects[sub]; ok {
		return scores, true
	}
	if len(g.Items) == 0 {
		return assessment.AspectScores{}, false
	}

	sums := map[assessment.Aspect]float64{}
	counts := map[assessment.Aspect]int{}
	for _, item := range g.Items {
		if item.Subdomain != sub {
			continue
		}
		sums[item.Aspect] += item.Value
		counts[item.Aspect]++
	}
	if len(counts) == 0 {
		return assessment.AspectScores{}, false
	}

	mean := func(a assessment.Aspect) *float64 {
		if counts[a] == 0 {
			return nil
		}
		v := sums[a] / float64(counts[a])
		return &v
	}
	return assessment.AspectScores{
		Belief:      mean(assessment.AspectBelief),
		Behavior:    mean(assessment.AspectBehavior),
		Feeling:     mean(assessment.AspectFeeling),
		Consequence: mean(assessment.AspectConsequence),
	}, true
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
