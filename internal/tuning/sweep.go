package tuning

import (
	"sort"

	"github.com/kalepail/blendizzard/internal/curve"
	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/pkg/logger"
)

// Options configures the scoring pipeline. The zero value selects the
// defaults: the $1k/35d sweet spot, the smooth-piecewise reference curve,
// and the standard tuning scenario battery.
type Options struct {
	TargetAmountUSD float64
	TargetTimeDays  float64
	Curve           curve.Family
	Scenarios       []reward.Scenario
}

func (o Options) withDefaults() Options {
	if o.TargetAmountUSD == 0 {
		o.TargetAmountUSD = curve.DefaultAmountBounds.Target
	}
	if o.TargetTimeDays == 0 {
		o.TargetTimeDays = curve.DefaultTimeBounds.Target
	}
	if o.Curve == curve.Asymptotic {
		// The baseline ignores peaks entirely, so it cannot be the scoring
		// reference shape.
		o.Curve = curve.Smooth
	}
	if o.Scenarios == nil {
		o.Scenarios = reward.TuningScenarios()
	}
	return o
}

// ConfigFailure records a configuration that could not be scored and why.
type ConfigFailure struct {
	Peak    float64
	Ceiling Ceiling
	Err     error
}

// SweepResult is the outcome of a full grid sweep: scoreable configurations
// ranked by total score descending (ties keep grid order), and the
// configurations that failed their preconditions.
type SweepResult struct {
	Ranked   []*Score
	Failures []ConfigFailure
}

// ScoreConfiguration evaluates and scores a single (peak, ceiling)
// configuration. Scenarios beyond the ceiling are skipped; if a skipped
// scenario is one the analysis requires, the configuration is unscoreable
// and a *MissingScenarioError is returned.
func ScoreConfiguration(peak float64, ceiling Ceiling, opts Options) (*Score, error) {
	opts = opts.withDefaults()

	amountBounds, err := curve.NewBounds(opts.TargetAmountUSD, ceiling.MaxAmountUSD)
	if err != nil {
		return nil, &InvalidCeilingError{Ceiling: ceiling, Reason: err}
	}
	timeBounds, err := curve.NewBounds(opts.TargetTimeDays, ceiling.MaxTimeDays)
	if err != nil {
		return nil, &InvalidCeilingError{Ceiling: ceiling, Reason: err}
	}

	evaluated := make([]EvaluatedScenario, 0, len(opts.Scenarios))
	for _, s := range opts.Scenarios {
		if s.AmountUSD > ceiling.MaxAmountUSD || s.TimeDays > ceiling.MaxTimeDays {
			continue
		}
		evaluated = append(evaluated, EvaluatedScenario{
			Scenario: s,
			Result:   reward.Evaluate(s, opts.Curve, peak, amountBounds, timeBounds),
		})
	}

	analysis, err := Analyze(evaluated)
	if err != nil {
		return nil, err
	}

	return scoreFromAnalysis(peak, ceiling, analysis), nil
}

// Sweep runs the exhaustive grid search over every (peak, ceiling) pair.
// Unscoreable configurations are collected as failures without aborting the
// rest of the grid. Deterministic: the same grid always yields the same
// ranking.
func Sweep(peaks []float64, ceilings []Ceiling, opts Options) *SweepResult {
	result := &SweepResult{}

	for _, peak := range peaks {
		for _, ceiling := range ceilings {
			score, err := ScoreConfiguration(peak, ceiling, opts)
			if err != nil {
				logger.Warn("configuration unscoreable",
					"peak", peak, "ceiling", ceiling.Label, "error", err)
				result.Failures = append(result.Failures, ConfigFailure{
					Peak:    peak,
					Ceiling: ceiling,
					Err:     err,
				})
				continue
			}
			result.Ranked = append(result.Ranked, score)
		}
	}

	sort.SliceStable(result.Ranked, func(i, j int) bool {
		return result.Ranked[i].TotalScore > result.Ranked[j].TotalScore
	})

	return result
}
