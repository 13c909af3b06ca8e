package tuning

import (
	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/pkg/utils"
)

// FamilyResult is one curve family's evaluation of a scenario.
type FamilyResult struct {
	Family curve.Family
	Result reward.Result
}

// ScenarioComparison holds every family's result for one scenario, in
// curve.Families() order.
type ScenarioComparison struct {
	Scenario reward.Scenario
	ByFamily []FamilyResult
}

// ResultFor returns the comparison result for a family.
func (sc ScenarioComparison) ResultFor(family curve.Family) reward.Result {
	for _, fr := range sc.ByFamily {
		if fr.Family == family {
			return fr.Result
		}
	}
	return reward.Result{}
}

// CompareFamilies evaluates every scenario under every curve family at the
// given peak, producing the side-by-side battery the comparison reports and
// analyses consume.
func CompareFamilies(peak float64, scenarios []reward.Scenario, amountBounds, timeBounds curve.Bounds) []ScenarioComparison {
	comparisons := make([]ScenarioComparison, 0, len(scenarios))
	for _, s := range scenarios {
		sc := ScenarioComparison{Scenario: s}
		for _, family := range curve.Families() {
			sc.ByFamily = append(sc.ByFamily, FamilyResult{
				Family: family,
				Result: reward.Evaluate(s, family, peak, amountBounds, timeBounds),
			})
		}
		comparisons = append(comparisons, sc)
	}
	return comparisons
}

func findComparison(comparisons []ScenarioComparison, label string) (ScenarioComparison, error) {
	for _, sc := range comparisons {
		if sc.Scenario.Label == label {
			return sc, nil
		}
	}
	return ScenarioComparison{}, &MissingScenarioError{Label: label}
}

// SweetSpotEntry summarizes one family's behavior at the target scenario.
type SweetSpotEntry struct {
	Family       curve.Family
	FinalFP      float64
	CombinedMult float64
	FPPerDollar  float64
}

// SweetSpotAnalysis reports how each family rewards the sweet-spot scenario.
func SweetSpotAnalysis(comparisons []ScenarioComparison) ([]SweetSpotEntry, error) {
	target, err := findComparison(comparisons, reward.LabelCompareSweetSpot)
	if err != nil {
		return nil, err
	}

	entries := make([]SweetSpotEntry, 0, len(target.ByFamily))
	for _, fr := range target.ByFamily {
		entries = append(entries, SweetSpotEntry{
			Family:       fr.Family,
			FinalFP:      fr.Result.FinalFP,
			CombinedMult: fr.Result.CombinedMult,
			FPPerDollar:  fr.Result.FPPerDollar,
		})
	}
	return entries, nil
}

// WhaleVerdict grades a family's whale discouragement.
type WhaleVerdict string

const (
	// WhaleVerdictGood: mega whales earn under half the target efficiency.
	WhaleVerdictGood WhaleVerdict = "good"
	// WhaleVerdictReduced: whales earn less than target, but over half.
	WhaleVerdictReduced WhaleVerdict = "reduced"
	// WhaleVerdictUnchecked: whales earn target efficiency or better.
	WhaleVerdictUnchecked WhaleVerdict = "unchecked"
)

// WhaleDiscouragementEntry compares one family's whale efficiency against
// its sweet-spot efficiency.
type WhaleDiscouragementEntry struct {
	Family            curve.Family
	TargetFPPerDollar float64
	WhaleFPPerDollar  float64
	FlashFPPerDollar  float64
	WhaleRatio        float64
	FlashRatio        float64
	Verdict           WhaleVerdict
}

// WhaleDiscouragementAnalysis compares each family's treatment of the
// maximum whale and the flash whale against the sweet spot.
func WhaleDiscouragementAnalysis(comparisons []ScenarioComparison) ([]WhaleDiscouragementEntry, error) {
	target, err := findComparison(comparisons, reward.LabelCompareSweetSpot)
	if err != nil {
		return nil, err
	}
	maxWhale, err := findComparison(comparisons, reward.LabelCompareMaxWhale)
	if err != nil {
		return nil, err
	}
	flashWhale, err := findComparison(comparisons, reward.LabelCompareFlashWhale)
	if err != nil {
		return nil, err
	}

	entries := make([]WhaleDiscouragementEntry, 0, len(target.ByFamily))
	for _, fr := range target.ByFamily {
		targetEff := fr.Result.FPPerDollar
		whaleEff := maxWhale.ResultFor(fr.Family).FPPerDollar
		flashEff := flashWhale.ResultFor(fr.Family).FPPerDollar
		whaleRatio := utils.Ratio(whaleEff, targetEff)

		verdict := WhaleVerdictUnchecked
		switch {
		case whaleRatio < 0.5:
			verdict = WhaleVerdictGood
		case whaleRatio < 1.0:
			verdict = WhaleVerdictReduced
		}

		entries = append(entries, WhaleDiscouragementEntry{
			Family:            fr.Family,
			TargetFPPerDollar: targetEff,
			WhaleFPPerDollar:  whaleEff,
			FlashFPPerDollar:  flashEff,
			WhaleRatio:        whaleRatio,
			FlashRatio:        utils.Ratio(flashEff, targetEff),
			Verdict:           verdict,
		})
	}
	return entries, nil
}

// FairnessEntry compares small, target, and large players under one family.
// Spread is max/min efficiency across the three; lower is more fair.
type FairnessEntry struct {
	Family            curve.Family
	SmallFPPerDollar  float64
	TargetFPPerDollar float64
	LargeFPPerDollar  float64
	Spread            float64
}

// FairnessAnalysis measures the efficiency spread between small, target,
// and large players for each family.
func FairnessAnalysis(comparisons []ScenarioComparison) ([]FairnessEntry, error) {
	small, err := findComparison(comparisons, reward.LabelCompareEntry)
	if err != nil {
		return nil, err
	}
	target, err := findComparison(comparisons, reward.LabelCompareSweetSpot)
	if err != nil {
		return nil, err
	}
	large, err := findComparison(comparisons, reward.LabelCompareWhale3mo)
	if err != nil {
		return nil, err
	}

	entries := make([]FairnessEntry, 0, len(target.ByFamily))
	for _, fr := range target.ByFamily {
		smallEff := small.ResultFor(fr.Family).FPPerDollar
		targetEff := fr.Result.FPPerDollar
		largeEff := large.ResultFor(fr.Family).FPPerDollar

		min, max := smallEff, smallEff
		for _, v := range []float64{targetEff, largeEff} {
			if v < min {
				min = v
			}
			if v > max {
				max = v
			}
		}

		entries = append(entries, FairnessEntry{
			Family:            fr.Family,
			SmallFPPerDollar:  smallEff,
			TargetFPPerDollar: targetEff,
			LargeFPPerDollar:  largeEff,
			Spread:            utils.Ratio(max, min),
		})
	}
	return entries, nil
}

// PeakSensitivityEntry shows how the sweet spot and the maximum whale trade
// off as the requested peak changes, for one peak value.
type PeakSensitivityEntry struct {
	Peak              float64
	TargetFP          float64
	TargetFPPerDollar float64
	WhaleFP           float64
	WhaleFPPerDollar  float64
	WhaleVsTarget     float64
}

// PeakSensitivity evaluates the target scenario and the maximum whale under
// a single family across a range of peak values.
func PeakSensitivity(family curve.Family, peaks []float64, amountBounds, timeBounds curve.Bounds) []PeakSensitivityEntry {
	targetScenario := reward.Scenario{AmountUSD: amountBounds.Target, TimeDays: timeBounds.Target, Label: "target"}
	whaleScenario := reward.Scenario{AmountUSD: amountBounds.Max, TimeDays: timeBounds.Max, Label: "max whale"}

	entries := make([]PeakSensitivityEntry, 0, len(peaks))
	for _, peak := range peaks {
		target := reward.Evaluate(targetScenario, family, peak, amountBounds, timeBounds)
		whale := reward.Evaluate(whaleScenario, family, peak, amountBounds, timeBounds)
		entries = append(entries, PeakSensitivityEntry{
			Peak:              peak,
			TargetFP:          target.FinalFP,
			TargetFPPerDollar: target.FPPerDollar,
			WhaleFP:           whale.FinalFP,
			WhaleFPPerDollar:  whale.FPPerDollar,
			WhaleVsTarget:     utils.Ratio(whale.FPPerDollar, target.FPPerDollar),
		})
	}
	return entries
}
