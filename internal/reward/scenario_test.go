package reward

import "testing"

func uniqueLabels(t *testing.T, scenarios []Scenario) map[string]Scenario {
	t.Helper()
	index := make(map[string]Scenario, len(scenarios))
	for _, s := range scenarios {
		if s.Label == "" {
			t.Fatalf("scenario %+v has no label", s)
		}
		if _, dup := index[s.Label]; dup {
			t.Fatalf("duplicate scenario label %q", s.Label)
		}
		index[s.Label] = s
	}
	return index
}

func TestTuningScenarios(t *testing.T) {
	scenarios := TuningScenarios()
	if len(scenarios) != 17 {
		t.Fatalf("expected 17 tuning scenarios, got %d", len(scenarios))
	}
	index := uniqueLabels(t, scenarios)

	// Labels the scoring pipeline requires must always be present.
	required := []string{
		LabelWeek1Entry, LabelWeek2Growing, LabelWeek3Committed, LabelTarget,
		LabelWeek10Loyal, LabelWeek20Target,
		LabelFlashWhale, LabelWhale5k, LabelWhale10kTarget, LabelWhale10k10w,
	}
	for _, label := range required {
		if _, ok := index[label]; !ok {
			t.Fatalf("missing required tuning scenario %q", label)
		}
	}

	target := index[LabelTarget]
	if target.AmountUSD != 1000 || target.TimeDays != 35 {
		t.Fatalf("target scenario must sit on the sweet spot, got %+v", target)
	}
}

func TestComparisonScenarios(t *testing.T) {
	scenarios := ComparisonScenarios()
	if len(scenarios) != 16 {
		t.Fatalf("expected 16 comparison scenarios, got %d", len(scenarios))
	}
	index := uniqueLabels(t, scenarios)

	// The analyses over the comparison battery look these up by label.
	required := []string{
		LabelCompareEntry, LabelCompareSweetSpot, LabelCompareWhale3mo,
		LabelCompareMaxWhale, LabelCompareFlashWhale,
	}
	for _, label := range required {
		if _, ok := index[label]; !ok {
			t.Fatalf("missing required comparison scenario %q", label)
		}
	}

	max := index[LabelCompareMaxWhale]
	if max.AmountUSD != 100_000 || max.TimeDays != 350 {
		t.Fatalf("max whale scenario must sit on the default ceilings, got %+v", max)
	}
}
