package assessment

import (
	"encoding/json"
	"fmt"
	"sort"
)

// Problem describes one snapshot entry that failed shape checks and was
// degraded to missing. The caller logs these; they are never faults.
type Problem struct {
	Assessment ID
	Reason     string
}

// Parse validates a raw snapshot document, decodes it, and degrades any
// malformed completed entry to missing. A document-level failure (invalid
// JSON, schema violation) returns an error; per-entry shape failures are
// reported as problems instead.
func Parse(raw []byte) (*Snapshot, []Problem, error) {
	if err := ValidateDocument(raw); err != nil {
		return nil, nil, err
	}

	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, nil, fmt.Errorf("decode snapshot: %w", err)
	}
	if snap.Results == nil {
		snap.Results = map[ID]*Result{}
	}

	return &snap, normalize(&snap), nil
}

// normalize checks every completed entry against the payload shape its
// assessment requires. Entries that fail are set in-progress with the
// payload cleared, so engines see them as missing.
func normalize(snap *Snapshot) []Problem {
	ids := make([]ID, 0, len(snap.Results))
	for id := range snap.Results {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var problems []Problem
	for _, id := range ids {
		r := snap.Results[id]
		if r == nil || r.Status != StatusCompleted {
			continue
		}
		if reason := checkShape(id, r); reason != "" {
			problems = append(problems, Problem{Assessment: id, Reason: reason})
			degrade(r)
		}
	}
	return problems
}

func checkShape(id ID, r *Result) string {
	switch id {
	case MoneyStrategy:
		if r.Bipolar == nil || len(r.Bipolar.Scores) == 0 {
			return "completed without bipolar scores"
		}
		return normalizeWinner(r.Bipolar)
	case IdentityGrounding, SecurityGrounding, ConnectionGrounding:
		if r.Grounding == nil {
			return "completed without grounding scores"
		}
	case FinancialClarity:
		if r.Clarity == nil || len(r.Clarity.Benchmarks) == 0 {
			return "completed without clarity benchmarks"
		}
	}
	return ""
}

// normalizeWinner derives the winner from the score map when the scorer left
// it blank. The winner is the maximum score; equal scores break ties by
// strategy name so the result is deterministic.
func normalizeWinner(b *BipolarResult) string {
	if b.Winner != "" {
		if _, ok := b.Scores[b.Winner]; !ok {
			return fmt.Sprintf("winner %q has no score", b.Winner)
		}
		return ""
	}

	names := make([]Strategy, 0, len(b.Scores))
	for s := range b.Scores {
		names = append(names, s)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })

	winner := names[0]
	for _, s := range names[1:] {
		if b.Scores[s] > b.Scores[winner] {
			winner = s
		}
	}
	b.Winner = winner
	return ""
}

func degrade(r *Result) {
	r.Status = StatusInProgress
	r.Bipolar = nil
	r.Grounding = nil
	r.Clarity = nil
}
