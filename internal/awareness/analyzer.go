// Package awareness quantifies the disparity between measured psychological
// pattern intensity and self-reported financial stress.
package awareness

import (
	"math"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
)

// Severity of an awareness gap.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityElevated Severity = "elevated"
	SeverityNormal   Severity = "normal"
)

// Gap is the computed disparity. PsychScore, StressScore, and GapScore are
// rounded to the nearest integer; RawStress keeps the unrounded benchmark
// average for diagnostic display.
type Gap struct {
	PsychScore   int      `json:"psych_score"`
	StressScore  int      `json:"stress_score"`
	GapScore     int      `json:"gap_score"`
	RawStress    float64  `json:"raw_stress"`
	Severity     Severity `json:"severity"`
	Contributing int      `json:"contributing"`
}

// Analyze computes the awareness gap, or nil when financial-clarity is not
// completed, no grounding assessment is completed, or no stress values are
// present. A nil result means "unknown", never a zero-valued gap.
func Analyze(snap *assessment.Snapshot) *Gap {
	clarity := snap.Clarity()
	if clarity == nil {
		return nil
	}
	rawStress, ok := clarity.AvgStress()
	if !ok {
		return nil
	}

	sum, n := 0.0, 0
	for _, e := range snap.CompletedGroundings() {
		if e.Result.Overall == nil {
			continue
		}
		sum += *e.Result.Overall
		n++
	}
	if n == 0 {
		return nil
	}
	psych := sum / float64(n)

	// The native stress scale is centered near 0 with range roughly
	// [-10,+10]; the linear remap aligns it with the 0-100 quotient scale
	// while preserving ordering.
	stress := clamp((rawStress+10)*5, 0, 100)
	gap := psych - stress

	severity := SeverityNormal
	switch {
	case gap > 30:
		severity = SeverityCritical
	case gap > 15:
		severity = SeverityElevated
	}

	return &Gap{
		PsychScore:   int(math.Round(psych)),
		StressScore:  int(math.Round(stress)),
		GapScore:     int(math.Round(gap)),
		RawStress:    rawStress,
		Severity:     severity,
		Contributing: n,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
