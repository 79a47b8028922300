// Package insight orchestrates the five inference engines over one snapshot
// and returns the composite, audience-agnostic result set.
package insight

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/archetype"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/awareness"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/beliefgap"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/locks"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/registry"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/warning"
)

// Result is the composite finding set for one snapshot. Every field is
// serializable so report generators, narrative services, and dashboards can
// consume it without re-deriving logic. Absent findings mean "not enough
// data", which the presentation layer renders; empty lists mean "nothing
// detected".
type Result struct {
	PersonID   string            `json:"person_id,omitempty"`
	Archetype  *archetype.Match  `json:"archetype,omitempty"`
	Warnings   []warning.Warning `json:"warnings"`
	Awareness  *awareness.Gap    `json:"awareness_gap,omitempty"`
	Locks      []locks.Lock      `json:"locks"`
	BeliefGaps []beliefgap.Gap   `json:"belief_behavior_gaps"`
}

// Service evaluates every engine over one snapshot. The registry is
// read-only and a single Service is safe for concurrent use.
type Service struct {
	reg *registry.Registry
	log *zap.Logger
}

// NewService creates an insight service. A nil logger disables logging.
func NewService(reg *registry.Registry, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{reg: reg, log: log}
}

// Evaluate runs the five engines against one snapshot. The engines are
// mutually independent; a defect in one yields an absent or empty result for
// that finding only and never blocks the others.
func (s *Service) Evaluate(snap *assessment.Snapshot) *Result {
	res := &Result{PersonID: snap.PersonID}

	s.guard("archetype", func() {
		res.Archetype = archetype.Classify(s.reg, snap)
	})
	s.guard("warnings", func() {
		res.Warnings = warning.Evaluate(snap)
	})
	s.guard("awareness", func() {
		res.Awareness = awareness.Analyze(snap)
	})
	s.guard("locks", func() {
		res.Locks = locks.Detect(s.reg, snap)
	})
	s.guard("belief-gaps", func() {
		res.BeliefGaps = beliefgap.Detect(snap)
	})

	if res.Warnings == nil {
		res.Warnings = []warning.Warning{}
	}
	if res.Locks == nil {
		res.Locks = []locks.Lock{}
	}
	if res.BeliefGaps == nil {
		res.BeliefGaps = []beliefgap.Gap{}
	}
	return res
}

// guard isolates one engine. A recovered panic is logged and leaves that
// engine's finding absent.
func (s *Service) guard(engine string, fn func()) {
	defer func() {
		if r := recover(); r != nil {
			s.log.Error("insight engine failed",
				zap.String("engine", engine),
				zap.String("panic", fmt.Sprint(r)),
			)
		}
	}()
	fn()
}
