package reward

import (
	"math"

	"github.com/kalepail/blendizzard/internal/curve"
)

// BaseFPPerDollar is the base faction-point award per deposited dollar
// before multipliers.
const BaseFPPerDollar = 100.0

// Result is the full multiplier and reward breakdown for one scenario. It is
// derived, never stored: evaluating the same inputs twice yields identical
// results.
type Result struct {
	AmountMult   float64
	TimeMult     float64
	CombinedMult float64
	BaseFP       float64
	FinalFP      float64
	FPPerDollar  float64
}

// Evaluate computes the reward for one scenario under the given curve
// family, peak, and axis bounds. Pure: no I/O and no mutation. A zero-amount
// scenario has zero efficiency by definition rather than being an error.
//
// The reported component multipliers are evaluated at sqrt(peak), matching
// the combiner, so AmountMult * TimeMult equals CombinedMult for every
// family (the asymptotic baseline ignores the peak entirely).
func Evaluate(s Scenario, family curve.Family, peak float64, amountBounds, timeBounds curve.Bounds) Result {
	componentPeak := math.Sqrt(peak)

	amountMult := family.Multiplier(s.AmountUSD, curve.AxisAmount, amountBounds, componentPeak)
	timeMult := family.Multiplier(s.TimeDays, curve.AxisTime, timeBounds, componentPeak)
	combined := family.Combined(s.AmountUSD, s.TimeDays, amountBounds, timeBounds, peak)

	baseFP := s.AmountUSD * BaseFPPerDollar
	finalFP := baseFP * combined

	efficiency := 0.0
	if s.AmountUSD > 0 {
		efficiency = finalFP / s.AmountUSD
	}

	return Result{
		AmountMult:   amountMult,
		TimeMult:     timeMult,
		CombinedMult: combined,
		BaseFP:       baseFP,
		FinalFP:      finalFP,
		FPPerDollar:  efficiency,
	}
}
