package warning

import "github.com/Larry-Yatch/FTP-v3-unified-sub001/internal/assessment"

// Catalogue returns the fixed warning rules in declaration order. Declaration
// order is the tie-break among warnings of equal priority, so rules here are
// grouped critical-first for readability but reordering within a tier only
// changes tie-break order, never which rules fire.
func Catalogue() []Rule {
	return []Rule{
		{
			Type:     "awareness-denial",
			Priority: PriorityCritical,
			Message: "Measured pattern intensity is high while self-reported financial stress is low. " +
				"The discomfort the patterns usually produce is not being felt, which removes the " +
				"natural prompt to address them.",
			Conditions: []Condition{
				{Kind: RefMaxGroundingOverall, Op: OpGTE, Threshold: 50},
				{Kind: RefAvgClarityStress, Op: OpLT, Threshold: 0},
			},
		},
		{
			Type:     "scarcity-spiral",
			Priority: PriorityCritical,
			Message: "Catastrophizing and vigilance are both strongly active. Financial decisions are " +
				"likely being made inside a threat response rather than from the numbers.",
			Conditions: []Condition{
				{Kind: RefSubdomain, Assessment: assessment.SecurityGrounding, Subdomain: "catastrophizing", Op: OpGTE, Threshold: 60},
				{Kind: RefSubdomain, Assessment: assessment.SecurityGrounding, Subdomain: "vigilance", Op: OpGTE, Threshold: 60},
			},
		},
		{
			Type:     "control-grip",
			Priority: PriorityHigh,
			Message: "A dominant Control strategy combined with strong control-seeking suggests delegation " +
				"and shared financial decisions will be persistent friction points.",
			Conditions: []Condition{
				{Kind: RefBipolar, Strategy: assessment.StrategyControl, Op: OpGTE, Threshold: 10},
				{Kind: RefSubdomain, Assessment: assessment.SecurityGrounding, Subdomain: "control-seeking", Op: OpGTE, Threshold: 60},
			},
		},
		{
			Type:     "identity-load",
			Priority: PriorityHigh,
			Message: "Identity grounding patterns are strongly active overall. Money decisions are likely " +
				"carrying self-worth weight they were never meant to hold.",
			Conditions: []Condition{
				{Kind: RefOverall, Assessment: assessment.IdentityGrounding, Op: OpGTE, Threshold: 60},
			},
		},
		{
			Type:     "avoidance-drift",
			Priority: PriorityHigh,
			Message: "Strong avoidance paired with low spending clarity: the area being avoided is the " +
				"same area where visibility is already weakest.",
			Conditions: []Condition{
				{Kind: RefSubdomain, Assessment: assessment.SecurityGrounding, Subdomain: "avoidance", Op: OpGTE, Threshold: 60},
				{Kind: RefClarity, Benchmark: "spending", Op: OpLT, Threshold: 50},
			},
		},
		{
			Type:     "worthiness-ceiling",
			Priority: PriorityMedium,
			Message: "Deserving doubts are active. Watch for under-charging, under-asking, and reflexive " +
				"deferral of benefits to others.",
			Conditions: []Condition{
				{Kind: RefSubdomain, Assessment: assessment.IdentityGrounding, Subdomain: "deserving", Op: OpGTE, Threshold: 50},
			},
		},
		{
			Type:     "approval-spend",
			Priority: PriorityMedium,
			Message: "Approval-seeking is active alongside a Connection strategy. Spending on others may be " +
				"functioning as relationship maintenance.",
			Conditions: []Condition{
				{Kind: RefSubdomain, Assessment: assessment.ConnectionGrounding, Subdomain: "approval", Op: OpGTE, Threshold: 50},
				{Kind: RefBipolar, Strategy: assessment.StrategyConnection, Op: OpGTE, Threshold: 10},
			},
		},
		{
			Type:     "resentment-buildup",
			Priority: PriorityMedium,
			Message: "Over-giving and resentment are both active: generosity is outrunning consent, and the " +
				"cost is accruing silently.",
			Conditions: []Condition{
				{Kind: RefSubdomain, Assessment: assessment.ConnectionGrounding, Subdomain: "over-giving", Op: OpGTE, Threshold: 50},
				{Kind: RefSubdomain, Assessment: assessment.ConnectionGrounding, Subdomain: "resentment", Op: OpGTE, Threshold: 50},
			},
		},
	}
}
