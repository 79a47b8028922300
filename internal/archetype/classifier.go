// Package archetype selects the single best-fit classification for a person
// from their dominant money strategy, corroborated by one grounding
// subdomain quotient when available.
package archetype

import (
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/registry"
)

// Confidence tiers. High requires a corroborating subdomain quotient at or
// above the trigger threshold; partial means the winner matched but the
// grounding evidence is absent or below threshold; default means no trigger
// winner matched at all.
type Confidence string

const (
	ConfidenceHigh    Confidence = "high"
	ConfidencePartial Confidence = "partial"
	ConfidenceDefault Confidence = "default"
)

// Match is the selected archetype with the scores that justified it.
type Match struct {
	ID          string                 `json:"id"`
	DisplayName string                 `json:"display_name"`
	Confidence  Confidence             `json:"confidence"`
	Sources     []assessment.SourceRef `json:"sources"`
}

// Classify scans the ordered trigger catalogue and returns exactly one
// archetype for a snapshot with a completed bipolar result. Without one it
// returns nil: an absent strategy assessment means the finding is unknown,
// not that the person is the default archetype.
func Classify(reg *registry.Registry, snap *assessment.Snapshot) *Match {
	bipolar := snap.Bipolar()
	if bipolar == nil || bipolar.Winner == "" {
		return nil
	}

	winnerScore, ok := bipolar.Score(bipolar.Winner)
	if !ok {
		return nil
	}
	winnerRef := assessment.SourceRef{
		Assessment: assessment.MoneyStrategy,
		Field:      "winner/" + string(bipolar.Winner),
		Value:      winnerScore,
	}

	for _, t := range reg.Triggers {
		if t.Winner != bipolar.Winner {
			continue
		}

		quotient, ok := snap.SubdomainQuotient(t.Assessment, t.Subdomain)
		if !ok {
			// Winner matched but the corroborating assessment is not
			// completed: partial confidence, winner citation only.
			return &Match{
				ID:          t.Archetype.ID,
				DisplayName: t.Archetype.DisplayName,
				Confidence:  ConfidencePartial,
				Sources:     []assessment.SourceRef{winnerRef},
			}
		}

		if quotient >= t.Threshold {
			return &Match{
				ID:          t.Archetype.ID,
				DisplayName: t.Archetype.DisplayName,
				Confidence:  ConfidenceHigh,
				Sources: []assessment.SourceRef{
					winnerRef,
					{
						Assessment: t.Assessment,
						Field:      "subdomain/" + t.Subdomain,
						Value:      quotient,
					},
				},
			}
		}
		return &Match{
			ID:          t.Archetype.ID,
			DisplayName: t.Archetype.DisplayName,
			Confidence:  ConfidencePartial,
			Sources:     []assessment.SourceRef{winnerRef},
		}
	}

	return &Match{
		ID:          reg.DefaultArchetype.ID,
		DisplayName: reg.DefaultArchetype.DisplayName,
		Confidence:  ConfidenceDefault,
		Sources:     []assessment.SourceRef{winnerRef},
	}
}
