// Package reward evaluates faction-point rewards for player scenarios.
//
// A Scenario is a (deposit amount, holding time, label) triple describing a
// player archetype. Evaluate runs one scenario through a curve family and
// produces the multiplier breakdown, the final FP award, and the FP-per-
// dollar efficiency used to compare archetypes of different size.
package reward

// Scenario is an immutable player archetype under test.
type Scenario struct {
	AmountUSD float64
	TimeDays  float64
	Label     string
}

// Labels for the tuning catalog. The scoring pipeline looks scenarios up by
// label, so these are the single source of truth for its lookups.
const (
	LabelWeek1Entry     = "Week 1 Entry Player"
	LabelWeek2Growing   = "Week 2 Growing Player"
	LabelWeek3Committed = "Week 3 Committed Player"
	LabelTarget         = "TARGET: Sweet Spot (5 weeks)"
	LabelWeek10Loyal    = "10 Week Loyal Player"
	LabelWeek10Above    = "10 Week Above-Target"
	LabelWeek20Small    = "20 Week Long-Term Small"
	LabelWeek20Target   = "20 Week Long-Term Target"
	LabelWhale5k        = "Early $5k Whale"
	LabelWhale10kTarget = "$10k Whale @ Target Time"
	LabelWhale10k10w    = "$10k Whale @ 10 Weeks"
	LabelWhale10k35w    = "$10k Whale @ 35 Weeks (Max Tight)"
	LabelWhale50k       = "$50k Mega Whale @ 20w"
	LabelWhale100k      = "$100k Max Whale @ 35w"
	LabelMicroFlash     = "Micro Flash"
	LabelFlashWhale     = "Flash Whale Attack"
	LabelLongMicro      = "Long-Term Micro (35w)"
)

// Labels for the comparison catalog.
const (
	LabelCompareEntry      = "Entry Player (1 week)"
	LabelCompareSweetSpot  = "TARGET SWEET SPOT"
	LabelCompareWhale3mo   = "Whale (3+ months)"
	LabelCompareMaxWhale   = "MAXIMUM (50 weeks, $100k)"
	LabelCompareFlashWhale = "Flash Deposit Whale"
)

// TuningScenarios returns the archetype battery the grid-search scoring
// pipeline runs: early adopters, retention cases, whales, and edge cases.
// Scenarios above a configuration's ceilings are filtered out per
// configuration, so whale entries past $10k are optional for scoring.
func TuningScenarios() []Scenario {
	return []Scenario{
		// Early adopters (key for launch).
		{100, 7, LabelWeek1Entry},
		{500, 14, LabelWeek2Growing},
		{1000, 21, LabelWeek3Committed},
		{1000, 35, LabelTarget},

		// Retention.
		{1000, 70, LabelWeek10Loyal},
		{1500, 70, LabelWeek10Above},
		{500, 140, LabelWeek20Small},
		{1000, 140, LabelWeek20Target},

		// Whales.
		{5000, 35, LabelWhale5k},
		{10000, 35, LabelWhale10kTarget},
		{10000, 70, LabelWhale10k10w},
		{10000, 245, LabelWhale10k35w},
		{50000, 140, LabelWhale50k},
		{100000, 245, LabelWhale100k},

		// Edge cases.
		{10, 1, LabelMicroFlash},
		{10000, 1, LabelFlashWhale},
		{100, 245, LabelLongMicro},
	}
}

// ComparisonScenarios returns the archetype battery used when comparing all
// curve families side by side. It deliberately differs from the tuning
// battery: it spans the full domain up to the default ceilings instead of
// concentrating on the labels the scoring formulas depend on.
func ComparisonScenarios() []Scenario {
	return []Scenario{
		{10, 1, "New Micro Player"},
		{50, 3, "Casual New Player"},
		{100, 7, LabelCompareEntry},
		{250, 14, "Growing Player (2 weeks)"},
		{500, 21, "Mid-tier (3 weeks)"},
		{1000, 35, LabelCompareSweetSpot},
		{1500, 35, "Above Target Amount"},
		{1000, 60, "Target Amount, Long Hold"},
		{2000, 35, "2x Target Amount"},
		{5000, 70, "Large Player (10 weeks)"},
		{10000, 100, LabelCompareWhale3mo},
		{25000, 150, "Big Whale"},
		{50000, 250, "Mega Whale"},
		{100000, 350, LabelCompareMaxWhale},
		{100, 350, "Long-term Micro"},
		{10000, 1, LabelCompareFlashWhale},
	}
}
