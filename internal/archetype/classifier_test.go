package archetype

import (
	"testing"

	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"
	"github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/registry"
)

func testRegistry(t *testing.T) *registry.Registry {
	t.Helper()
	reg, err := registry.Default()
	if err != nil {
		t.Fatalf("load default registry: %v", err)
	}
	return reg
}

func fp(v float64) *float64 { return &v }

func bipolarSnapshot(winner assessment.Strategy, score float64) *assessment.Snapshot {
	return &assessment.Snapshot{
		PersonID: "p1",
		Results: map[assessment.ID]*assessment.Result{
			assessment.MoneyStrategy: {
				Status: assessment.StatusCompleted,
				Bipolar: &assessment.BipolarResult{
					Scores: map[assessment.Strategy]float64{winner: score},
					Winner: winner,
				},
			},
		},
	}
}

func TestClassify_NoBipolarResult(t *testing.T) {
	snap := &assessment.Snapshot{Results: map[assessment.ID]*assessment.Result{}}
	if m := Classify(testRegistry(t), snap); m != nil {
		t.Errorf("got match %+v for empty snapshot, want nil", m)
	}
}

func TestClassify_InProgressBipolar(t *testing.T) {
	snap := &assessment.Snapshot{
		Results: map[assessment.ID]*assessment.Result{
			assessment.MoneyStrategy: {Status: assessment.StatusInProgress},
		},
	}
	if m := Classify(testRegistry(t), snap); m != nil {
		t.Errorf("got match %+v for in-progress bipolar, want nil", m)
	}
}

func TestClassify_PartialWithoutGrounding(t *testing.T) {
	snap := bipolarSnapshot(assessment.StrategyControl, 14)
	m := Classify(testRegistry(t), snap)
	if m == nil {
		t.Fatal("got nil match, want one")
	}
	if m.ID != "fortress-builder" {
		t.Errorf("got archetype %q, want fortress-builder", m.ID)
	}
	if m.Confidence != ConfidencePartial {
		t.Errorf("got confidence %q, want partial", m.Confidence)
	}
	if len(m.Sources) != 1 {
		t.Fatalf("got %d sources, want exactly 1", len(m.Sources))
	}
	if m.Sources[0].Value != 14 {
		t.Errorf("got winner citation value %v, want 14", m.Sources[0].Value)
	}
}

func TestClassify_HighAtExactThreshold(t *testing.T) {
	// The trigger comparison is inclusive: a quotient equal to the
	// threshold corroborates.
	snap := bipolarSnapshot(assessment.StrategyControl, 14)
	snap.Results[assessment.SecurityGrounding] = &assessment.Result{
		Status: assessment.StatusCompleted,
		Grounding: &assessment.GroundingResult{
			Overall:    fp(62),
			Subdomains: map[string]float64{"control-seeking": 60},
		},
	}

	m := Classify(testRegistry(t), snap)
	if m == nil {
		t.Fatal("got nil match, want one")
	}
	if m.Confidence != ConfidenceHigh {
		t.Errorf("got confidence %q at exact threshold, want high", m.Confidence)
	}
	if len(m.Sources) != 2 {
		t.Fatalf("got %d sources, want 2", len(m.Sources))
	}
	if m.Sources[1].Field != "subdomain/control-seeking" || m.Sources[1].Value != 60 {
		t.Errorf("got subdomain citation %+v, want control-seeking=60", m.Sources[1])
	}
}

func TestClassify_PartialBelowThreshold(t *testing.T) {
	snap := bipolarSnapshot(assessment.StrategyControl, 14)
	snap.Results[assessment.SecurityGrounding] = &assessment.Result{
		Status: assessment.StatusCompleted,
		Grounding: &assessment.GroundingResult{
			Subdomains: map[string]float64{"control-seeking": 59.9},
		},
	}

	m := Classify(testRegistry(t), snap)
	if m == nil {
		t.Fatal("got nil match, want one")
	}
	if m.Confidence != ConfidencePartial {
		t.Errorf("got confidence %q below threshold, want partial", m.Confidence)
	}
	if len(m.Sources) != 1 {
		t.Errorf("got %d sources, want 1", len(m.Sources))
	}
}

func TestClassify_DefaultForUnmatchedWinner(t *testing.T) {
	snap := bipolarSnapshot(assessment.Strategy("Hustle"), 9)
	m := Classify(testRegistry(t), snap)
	if m == nil {
		t.Fatal("got nil match, want default archetype")
	}
	if m.ID != "uncharted" {
		t.Errorf("got archetype %q, want uncharted", m.ID)
	}
	if m.Confidence != ConfidenceDefault {
		t.Errorf("got confidence %q, want default", m.Confidence)
	}
}

func TestClassify_WinnerWithoutScore(t *testing.T) {
	snap := &assessment.Snapshot{
		Results: map[assessment.ID]*assessment.Result{
			assessment.MoneyStrategy: {
				Status: assessment.StatusCompleted,
				Bipolar: &assessment.BipolarResult{
					Scores: map[assessment.Strategy]float64{assessment.StrategySecurity: 5},
					Winner: assessment.StrategyControl,
				},
			},
		},
	}
	if m := Classify(testRegistry(t), snap); m != nil {
		t.Errorf("got match %+v for winner without a score, want nil", m)
	}
}

func TestClassify_ExactlyOneArchetype(t *testing.T) {
	// Every completed bipolar result yields exactly one archetype,
	// whatever the grounding state.
	for _, winner := range []assessment.Strategy{
		assessment.StrategyControl,
		assessment.StrategySecurity,
		assessment.StrategyStatus,
		assessment.StrategyFreedom,
		assessment.StrategyConnection,
		assessment.Strategy("Unknown"),
	} {
		m := Classify(testRegistry(t), bipolarSnapshot(winner, 3))
		if m == nil {
			t.Errorf("winner %q: got nil match, want exactly one", winner)
		}
	}
}
