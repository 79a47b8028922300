// Package locks detects catalogued conjunctions of subdomain scores that
// indicate mutually-reinforcing belief clusters.
package locks

import (
	"sort"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/registry"
)

// Strength tier of a matched lock, derived from the average of its member
// scores: strictly above 70 is strong, strictly below 55 is emerging.
type Strength string

const (
	StrengthStrong   Strength = "strong"
	StrengthModerate Strength = "moderate"
	StrengthEmerging Strength = "emerging"
)

func (s Strength) rank() int {
	switch s {
	case StrengthStrong:
		return 0
	case StrengthModerate:
		return 1
	default:
		return 2
	}
}

// MemberBelief is one matched condition's concrete score.
type MemberBelief struct {
	Assessment assessment.ID `json:"assessment"`
	Subdomain  string        `json:"subdomain"`
	Score      float64       `json:"score"`
}

// Lock is one matched pattern.
type Lock struct {
	Name     string         `json:"name"`
	Strength Strength       `json:"strength"`
	AvgScore float64        `json:"avg_score"`
	Impact   string         `json:"impact"`
	Members  []MemberBelief `json:"members"`
}

// Detect checks every catalogued pattern against the snapshot. A pattern
// matches only when every condition's subdomain quotient is present and at
// or above its threshold; there is no partial credit. Matches are not
// mutually exclusive. The result is sorted strongest-first, then by average
// score descending within a tier.
func Detect(reg *registry.Registry, snap *assessment.Snapshot) []Lock {
	var out []Lock
	for _, p := range reg.LockPatterns {
		lock, ok := matchPattern(p, snap)
		if ok {
			out = append(out, lock)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Strength.rank(), out[j].Strength.rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].AvgScore > out[j].AvgScore
	})
	return out
}

func matchPattern(p registry.LockPattern, snap *assessment.Snapshot) (Lock, bool) {
	members := make([]MemberBelief, 0, len(p.Conditions))
	sum := 0.0
	for _, c := range p.Conditions {
		v, ok := snap.SubdomainQuotient(c.Assessment, c.Subdomain)
		if !ok || v < c.Threshold {
			return Lock{}, false
		}
		members = append(members, MemberBelief{
			Assessment: c.Assessment,
			Subdomain:  c.Subdomain,
			Score:      v,
		})
		sum += v
	}

	avg := sum / float64(len(members))
	return Lock{
		Name:     p.Name,
		Strength: classify(avg),
		AvgScore: avg,
		Impact:   p.Impact,
		Members:  members,
	}, true
}

// classify maps an average member score to a strength tier. The boundaries
// are exclusive: exactly 70 and exactly 55 are both moderate.
func classify(avg float64) Strength {
	switch {
	case avg > 70:
		return StrengthStrong
	case avg < 55:
		return StrengthEmerging
	default:
		return StrengthModerate
	}
}
