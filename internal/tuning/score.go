package tuning

import (
	"math"

	"github.com/kalepail/blendizzard/internal/reward"
	"github.com/kalepail/blendizzard/pkg/utils"
)

// Scoring thresholds. Retention should land a 20-week holder at 70-90% of
// target efficiency, whales below 40%, flash whales below 30%; deviations
// are penalized linearly.
const (
	retentionRatioLow  = 0.70
	retentionRatioHigh = 0.90

	whaleEfficiencyCeiling = 0.40
	flashEfficiencyCeiling = 0.30

	// ratioPenaltySlope converts a ratio deviation into score points:
	// each 0.01 of deviation costs 2 points.
	ratioPenaltySlope = 200.0

	// targetMissPenaltySlope converts a missed multiplier at the sweet spot
	// into score points.
	targetMissPenaltySlope = 20.0
)

// Sub-score weights; they sum to 1.0 so TotalScore stays on the 0-100 scale.
const (
	weightEarly     = 0.25
	weightRetention = 0.20
	weightWhale     = 0.25
	weightTarget    = 0.15
	weightFlash     = 0.15
)

// Ceiling is one ceiling configuration under test.
type Ceiling struct {
	MaxAmountUSD float64
	MaxTimeDays  float64
	Label        string
}

// Score is the ranked record for one (peak, ceiling) configuration: five
// sub-scores clamped to [0, 100], their weighted total, and the raw metrics
// that produced them.
type Score struct {
	Peak    float64
	Ceiling Ceiling

	TotalScore     float64
	EarlyScore     float64
	RetentionScore float64
	WhaleScore     float64
	TargetScore    float64
	FlashScore     float64

	GrowthRate           float64
	Week20Retention      float64
	MaxWhaleEfficiency   float64
	FlashWhaleEfficiency float64
	TargetFPPerDollar    float64

	Analysis *Analysis
}

func scoreFromAnalysis(peak float64, ceiling Ceiling, a *Analysis) *Score {
	early := earlyScore(a.Early.GrowthRate)
	retention := retentionScore(a.Retention.Week20VsTarget)
	whale := whaleScore(a.Whale.MaxVsTarget)
	target := targetScore(a.Early.TargetFPPerDollar, peak)
	flash := flashScore(a.Whale.FlashVsTarget)

	total := early*weightEarly +
		retention*weightRetention +
		whale*weightWhale +
		target*weightTarget +
		flash*weightFlash

	return &Score{
		Peak:                 peak,
		Ceiling:              ceiling,
		TotalScore:           total,
		EarlyScore:           early,
		RetentionScore:       retention,
		WhaleScore:           whale,
		TargetScore:          target,
		FlashScore:           flash,
		GrowthRate:           a.Early.GrowthRate,
		Week20Retention:      a.Retention.Week20VsTarget,
		MaxWhaleEfficiency:   a.Whale.MaxVsTarget,
		FlashWhaleEfficiency: a.Whale.FlashVsTarget,
		TargetFPPerDollar:    a.Early.TargetFPPerDollar,
		Analysis:             a,
	}
}

// earlyScore rewards efficiency growth over the first three weeks; 100%
// growth earns the full score.
func earlyScore(growthRate float64) float64 {
	return utils.ClampFloat64(growthRate*100, 0, 100)
}

// retentionScore is maximal inside the ideal band and falls off linearly
// with the distance to the nearest bound: above the band the configuration
// is too generous to long-term holders, below it too harsh.
func retentionScore(week20Ratio float64) float64 {
	score := 100.0
	switch {
	case week20Ratio > retentionRatioHigh:
		score = 100 - (week20Ratio-retentionRatioHigh)*ratioPenaltySlope
	case week20Ratio < retentionRatioLow:
		score = 100 - (retentionRatioLow-week20Ratio)*ratioPenaltySlope
	}
	return utils.ClampFloat64(score, 0, 100)
}

// whaleScore penalizes the best whale efficiency ratio above the ceiling;
// below it whales are considered controlled.
func whaleScore(maxWhaleRatio float64) float64 {
	if maxWhaleRatio < whaleEfficiencyCeiling {
		return 100
	}
	return utils.ClampFloat64(100-(maxWhaleRatio-whaleEfficiencyCeiling)*ratioPenaltySlope, 0, 100)
}

// targetScore penalizes the realized sweet-spot multiplier deviating from
// the requested peak.
func targetScore(targetFPPerDollar, peak float64) float64 {
	realizedMult := targetFPPerDollar / reward.BaseFPPerDollar
	return utils.ClampFloat64(100-math.Abs(realizedMult-peak)*targetMissPenaltySlope, 0, 100)
}

// flashScore penalizes flash-whale efficiency above its ceiling.
func flashScore(flashRatio float64) float64 {
	if flashRatio < flashEfficiencyCeiling {
		return 100
	}
	return utils.ClampFloat64(100-(flashRatio-flashEfficiencyCeiling)*ratioPenaltySlope, 0, 100)
}
