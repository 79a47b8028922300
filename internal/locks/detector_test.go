package locks

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

func snapshotWith(identity, security, connection map[string]float64) *assessment.Snapshot {
	snap := &assessment.Snapshot{PersonID: "p1", Results: map[assessment.ID]*assessment.Result{}}
	add := func(id assessment.ID, subs map[string]float64) {
		if subs == nil {
			return
		}
		snap.Results[id] = &assessment.Result{
			Status:    assessment.StatusCompleted,
			Grounding: &assessment.GroundingResult{Subdomains: subs},
		}
	}
	add(assessment.IdentityGrounding, identity)
	add(assessment.SecurityGrounding, security)
	add(assessment.ConnectionGrounding, connection)
	return snap
}

func findLock(ls []Lock, name string) *Lock {
	for i := range ls {
		if ls[i].Name == name {
			return &ls[i]
		}
	}
	return nil
}

func TestDetect_EmptySnapshot(t *testing.T) {
	snap := &assessment.Snapshot{Results: map[assessment.ID]*assessment.Result{}}
	if ls := Detect(testRegistry(t), snap); len(ls) != 0 {
		t.Errorf("got %d locks for empty snapshot, want 0", len(ls))
	}
}

func TestDetect_AllConditionsRequired(t *testing.T) {
	// scarcity-worthiness needs deserving, hoarding, and vigilance. Two of
	// three is no match; there is no partial credit.
	snap := snapshotWith(
		map[string]float64{"deserving": 80},
		map[string]float64{"hoarding": 80},
		nil,
	)
	if l := findLock(Detect(testRegistry(t), snap), "scarcity-worthiness"); l != nil {
		t.Errorf("lock matched with a missing condition score: %+v", l)
	}
}

func TestDetect_ConditionBelowThresholdBlocks(t *testing.T) {
	snap := snapshotWith(
		map[string]float64{"deserving": 54.9}, // threshold 55
		map[string]float64{"hoarding": 80, "vigilance": 80},
		nil,
	)
	if l := findLock(Detect(testRegistry(t), snap), "scarcity-worthiness"); l != nil {
		t.Errorf("lock matched with a condition below threshold: %+v", l)
	}
}

func TestDetect_AvgExactly70IsModerate(t *testing.T) {
	// The strong boundary is exclusive: exactly 70 stays moderate.
	snap := snapshotWith(
		map[string]float64{"deserving": 70},
		map[string]float64{"hoarding": 70, "vigilance": 70},
		nil,
	)
	l := findLock(Detect(testRegistry(t), snap), "scarcity-worthiness")
	if l == nil {
		t.Fatal("lock did not match")
	}
	if l.AvgScore != 70 {
		t.Fatalf("got avg %v, want 70", l.AvgScore)
	}
	if l.Strength != StrengthModerate {
		t.Errorf("got strength %q at avg 70, want moderate", l.Strength)
	}
}

func TestDetect_AvgExactly55IsModerate(t *testing.T) {
	// The emerging boundary is exclusive too: exactly 55 stays moderate.
	snap := snapshotWith(
		map[string]float64{"deserving": 55},
		map[string]float64{"hoarding": 60, "vigilance": 50},
		nil,
	)
	l := findLock(Detect(testRegistry(t), snap), "scarcity-worthiness")
	if l == nil {
		t.Fatal("lock did not match")
	}
	if l.AvgScore != 55 {
		t.Fatalf("got avg %v, want 55", l.AvgScore)
	}
	if l.Strength != StrengthModerate {
		t.Errorf("got strength %q at avg 55, want moderate", l.Strength)
	}
}

func TestDetect_StrengthTiers(t *testing.T) {
	strong := snapshotWith(
		map[string]float64{"deserving": 75},
		map[string]float64{"hoarding": 72, "vigilance": 68},
		nil,
	)
	l := findLock(Detect(testRegistry(t), strong), "scarcity-worthiness")
	if l == nil || l.Strength != StrengthStrong {
		t.Errorf("got %+v, want strong at avg ~71.7", l)
	}

	emerging := snapshotWith(
		map[string]float64{"deserving": 56},
		map[string]float64{"hoarding": 55, "vigilance": 50},
		nil,
	)
	l = findLock(Detect(testRegistry(t), emerging), "scarcity-worthiness")
	if l == nil || l.Strength != StrengthEmerging {
		t.Errorf("got %+v, want emerging at avg ~53.7", l)
	}
}

func TestDetect_MembersCiteScores(t *testing.T) {
	snap := snapshotWith(
		map[string]float64{"deserving": 60},
		map[string]float64{"hoarding": 62, "vigilance": 58},
		nil,
	)
	l := findLock(Detect(testRegistry(t), snap), "scarcity-worthiness")
	if l == nil {
		t.Fatal("lock did not match")
	}
	if len(l.Members) != 3 {
		t.Fatalf("got %d members, want 3", len(l.Members))
	}
	if l.Members[0].Subdomain != "deserving" || l.Members[0].Score != 60 {
		t.Errorf("got first member %+v, want deserving=60", l.Members[0])
	}
}

func TestDetect_SortedStrongestFirst(t *testing.T) {
	// frozen-watchman matches at a strong average, scarcity-worthiness at
	// an emerging one.
	snap := snapshotWith(
		map[string]float64{"deserving": 55},
		map[string]float64{
			"hoarding": 55, "vigilance": 55, // scarcity-worthiness avg 55 with deserving? -> 55 moderate
			"avoidance": 85, "catastrophizing": 85,
		},
		nil,
	)
	// vigilance 55 participates in both patterns: frozen-watchman averages
	// (55+85+85)/3 = 75 strong; scarcity-worthiness (55+55+55)/3 = 55 moderate.
	ls := Detect(testRegistry(t), snap)
	if len(ls) != 2 {
		t.Fatalf("got %d locks, want 2", len(ls))
	}
	if ls[0].Name != "frozen-watchman" || ls[0].Strength != StrengthStrong {
		t.Errorf("got first lock %s/%s, want frozen-watchman/strong", ls[0].Name, ls[0].Strength)
	}
	if ls[1].Name != "scarcity-worthiness" {
		t.Errorf("got second lock %s, want scarcity-worthiness", ls[1].Name)
	}
}

func TestDetect_SameTierSortedByAvgDescending(t *testing.T) {
	snap := snapshotWith(
		map[string]float64{"deserving": 58, "visibility": 60},
		map[string]float64{"hoarding": 58, "vigilance": 58},
		map[string]float64{"over-giving": 66, "approval": 66},
	)
	// invisible-giver avg (66+66+60)/3 = 64, scarcity-worthiness avg 58;
	// both moderate, higher average first.
	ls := Detect(testRegistry(t), snap)
	if len(ls) != 2 {
		t.Fatalf("got %d locks, want 2", len(ls))
	}
	if ls[0].Name != "invisible-giver" {
		t.Errorf("got first lock %s, want invisible-giver (higher avg)", ls[0].Name)
	}
	if ls[0].AvgScore <= ls[1].AvgScore {
		t.Errorf("same-tier locks not sorted by avg: %v then %v", ls[0].AvgScore, ls[1].AvgScore)
	}
}
