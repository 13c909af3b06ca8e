// Package tuning searches for the best multiplier configuration: it sweeps
// peak values against ceiling configurations, runs the scenario battery
// through the reference curve, derives the analysis groups, and ranks
// configurations by a weighted score. It also hosts the side-by-side curve
// family comparison used to pick the reference shape in the first place.
package tuning

import (
	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/pkg/utils"
)

// EvaluatedScenario pairs a scenario with its evaluation result under the
// configuration being analyzed.
type EvaluatedScenario struct {
	Scenario reward.Scenario
	Result   reward.Result
}

// EarlyAdoption captures how strongly the configuration rewards the first
// three weeks of participation relative to the sweet spot.
type EarlyAdoption struct {
	Week1FPPerDollar  float64
	Week2FPPerDollar  float64
	Week3FPPerDollar  float64
	TargetFPPerDollar float64
	Week1VsTarget     float64
	Week3VsTarget     float64
	// GrowthRate is the relative efficiency growth from week 1 to week 3.
	GrowthRate float64
}

// Retention captures how the configuration treats players holding well past
// the sweet spot.
type Retention struct {
	TargetFPPerDollar float64
	Week10FPPerDollar float64
	Week20FPPerDollar float64
	Week10VsTarget    float64
	Week20VsTarget    float64
	// Penalty is 1 - Week20VsTarget: how much efficiency a 20-week holder
	// gives up against the sweet spot.
	Penalty float64

	// Long-term micro players are only covered by wide ceilings.
	LongMicroFPPerDollar float64
	LongMicroVsTarget    float64
	HasLongMicro         bool
}

// WhaleObservation is one whale scenario's efficiency relative to target.
type WhaleObservation struct {
	Label       string
	FPPerDollar float64
	VsTarget    float64
}

// WhaleControl captures whale discouragement. MaxVsTarget, the best
// efficiency any whale achieves, is the binding constraint the whale score
// penalizes.
type WhaleControl struct {
	TargetFPPerDollar float64
	Whales            []WhaleObservation
	FlashVsTarget     float64
	MaxVsTarget       float64
}

// Analysis is the full set of analysis groups for one configuration.
type Analysis struct {
	Early     EarlyAdoption
	Retention Retention
	Whale     WhaleControl
}

// Analyze derives the analysis groups from an evaluated scenario set.
// Returns a *MissingScenarioError when a required scenario was excluded by
// the ceiling; the optional large-whale and long-micro scenarios are folded
// in only when present.
func Analyze(evaluated []EvaluatedScenario) (*Analysis, error) {
	index := make(map[string]reward.Result, len(evaluated))
	for _, es := range evaluated {
		index[es.Scenario.Label] = es.Result
	}

	require := func(label string) (reward.Result, error) {
		r, ok := index[label]
		if !ok {
			return reward.Result{}, &MissingScenarioError{Label: label}
		}
		return r, nil
	}

	week1, err := require(reward.LabelWeek1Entry)
	if err != nil {
		return nil, err
	}
	week2, err := require(reward.LabelWeek2Growing)
	if err != nil {
		return nil, err
	}
	week3, err := require(reward.LabelWeek3Committed)
	if err != nil {
		return nil, err
	}
	target, err := require(reward.LabelTarget)
	if err != nil {
		return nil, err
	}
	week10, err := require(reward.LabelWeek10Loyal)
	if err != nil {
		return nil, err
	}
	week20, err := require(reward.LabelWeek20Target)
	if err != nil {
		return nil, err
	}

	analysis := &Analysis{
		Early: EarlyAdoption{
			Week1FPPerDollar:  week1.FPPerDollar,
			Week2FPPerDollar:  week2.FPPerDollar,
			Week3FPPerDollar:  week3.FPPerDollar,
			TargetFPPerDollar: target.FPPerDollar,
			Week1VsTarget:     utils.Ratio(week1.FPPerDollar, target.FPPerDollar),
			Week3VsTarget:     utils.Ratio(week3.FPPerDollar, target.FPPerDollar),
			GrowthRate:        utils.Ratio(week3.FPPerDollar-week1.FPPerDollar, week1.FPPerDollar),
		},
		Retention: Retention{
			TargetFPPerDollar: target.FPPerDollar,
			Week10FPPerDollar: week10.FPPerDollar,
			Week20FPPerDollar: week20.FPPerDollar,
			Week10VsTarget:    utils.Ratio(week10.FPPerDollar, target.FPPerDollar),
			Week20VsTarget:    utils.Ratio(week20.FPPerDollar, target.FPPerDollar),
			Penalty:           1.0 - utils.Ratio(week20.FPPerDollar, target.FPPerDollar),
		},
	}

	if longMicro, ok := index[reward.LabelLongMicro]; ok {
		analysis.Retention.HasLongMicro = true
		analysis.Retention.LongMicroFPPerDollar = longMicro.FPPerDollar
		analysis.Retention.LongMicroVsTarget = utils.Ratio(longMicro.FPPerDollar, target.FPPerDollar)
	}

	whale, err := analyzeWhales(index, target)
	if err != nil {
		return nil, err
	}
	analysis.Whale = *whale

	return analysis, nil
}

// requiredWhaleLabels are the whale scenarios every scoreable configuration
// must cover; optionalWhaleLabels only fit under wider ceilings.
var (
	requiredWhaleLabels = []string{
		reward.LabelFlashWhale,
		reward.LabelWhale5k,
		reward.LabelWhale10kTarget,
		reward.LabelWhale10k10w,
	}
	optionalWhaleLabels = []string{
		reward.LabelWhale50k,
		reward.LabelWhale100k,
	}
)

func analyzeWhales(index map[string]reward.Result, target reward.Result) (*WhaleControl, error) {
	control := &WhaleControl{TargetFPPerDollar: target.FPPerDollar}

	observe := func(label string, r reward.Result) {
		vsTarget := utils.Ratio(r.FPPerDollar, target.FPPerDollar)
		control.Whales = append(control.Whales, WhaleObservation{
			Label:       label,
			FPPerDollar: r.FPPerDollar,
			VsTarget:    vsTarget,
		})
		if vsTarget > control.MaxVsTarget {
			control.MaxVsTarget = vsTarget
		}
	}

	for _, label := range requiredWhaleLabels {
		r, ok := index[label]
		if !ok {
			return nil, &MissingScenarioError{Label: label}
		}
		observe(label, r)
	}
	for _, label := range optionalWhaleLabels {
		if r, ok := index[label]; ok {
			observe(label, r)
		}
	}

	flash := index[reward.LabelFlashWhale]
	control.FlashVsTarget = utils.Ratio(flash.FPPerDollar, target.FPPerDollar)

	return control, nil
}
