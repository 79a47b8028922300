package assessment

import "time"

// Snapshot is one person's immutable set of already-scored assessment
// results. Engines never mutate it; absent entries mean the assessment was
// not taken, which is a normal state rather than an error.
type Snapshot struct {
	PersonID string         `json:"person_id"`
	TakenAt  time.Time      `json:"taken_at"`
	Results  map[ID]*Result `json:"results"`
}

// Completed returns the entry for id only when it is completed and carries
// the payload shape expected for that assessment.
func (s *Snapshot) Completed(id ID) *Result {
	r, ok := s.Results[id]
	if !ok || r == nil || r.Status != StatusCompleted {
		return nil
	}
	return r
}

// Bipolar returns the completed money-strategy payload, or nil.
func (s *Snapshot) Bipolar() *BipolarResult {
	r := s.Completed(MoneyStrategy)
	if r == nil || r.Bipolar == nil || len(r.Bipolar.Scores) == 0 {
		return nil
	}
	return r.Bipolar
}

// Grounding returns the completed payload for one grounding assessment,
// or nil.
func (s *Snapshot) Grounding(id ID) *GroundingResult {
	r := s.Completed(id)
	if r == nil || r.Grounding == nil {
		return nil
	}
	return r.Grounding
}

// Clarity returns the completed financial-clarity payload, or nil.
func (s *Snapshot) Clarity() *ClarityResult {
	r := s.Completed(FinancialClarity)
	if r == nil || r.Clarity == nil || len(r.Clarity.Benchmarks) == 0 {
		return nil
	}
	return r.Clarity
}

// GroundingEntry pairs a grounding assessment with its completed payload.
type GroundingEntry struct {
	ID     ID
	Result *GroundingResult
}

// CompletedGroundings returns the completed grounding payloads in canonical
// order.
func (s *Snapshot) CompletedGroundings() []GroundingEntry {
	var out []GroundingEntry
	for _, id := range GroundingIDs() {
		if g := s.Grounding(id); g != nil {
			out = append(out, GroundingEntry{ID: id, Result: g})
		}
	}
	return out
}

// SubdomainQuotient resolves one subdomain quotient from a completed
// grounding assessment.
func (s *Snapshot) SubdomainQuotient(id ID, subdomain string) (float64, bool) {
	g := s.Grounding(id)
	if g == nil {
		return 0, false
	}
	return g.Subdomain(subdomain)
}

// MaxGroundingOverall returns the maximum overall quotient across completed
// grounding assessments, and which assessment it came from.
func (s *Snapshot) MaxGroundingOverall() (ID, float64, bool) {
	var (
		bestID ID
		best   float64
		found  bool
	)
	for _, e := range s.CompletedGroundings() {
		if e.Result.Overall == nil {
			continue
		}
		if !found || *e.Result.Overall > best {
			bestID, best, found = e.ID, *e.Result.Overall, true
		}
	}
	return bestID, best, found
}
