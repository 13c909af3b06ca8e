package curve

import "math"

const (
	// asymptoticTimeSaturationDays is the half-saturation constant of the
	// baseline time curve: the multiplier reaches 1.5 after 30 days held.
	asymptoticTimeSaturationDays = 30.0

	// Post-target exponential decay rates for the asymmetric family. The
	// amount axis decays far slower than the time axis so oversized deposits
	// lose their bonus gradually rather than falling off a cliff.
	asymmetricAmountDecayRate = 0.00001
	asymmetricTimeDecayRate   = 0.003

	// asymmetricRiseExponent shapes the sub-target rise; >1 makes the
	// approach to the target steep.
	asymmetricRiseExponent = 1.5
)

// floored reports whether the value should evaluate to the 1.0 floor.
// Negative, zero, and NaN values all fail the comparison.
func floored(value float64) bool {
	return !(value > 0)
}

func asymptoticMult(value float64, axis Axis, b Bounds) float64 {
	if floored(value) {
		value = 0
	}
	// The baseline never decays. The amount axis saturates against the
	// target; the time axis against a fixed 30-day constant, both
	// approaching 2.0 asymptotically.
	if axis == AxisTime {
		return 1.0 + value/(value+asymptoticTimeSaturationDays)
	}
	return 1.0 + value/(value+b.Target)
}

func gaussianMult(value float64, b Bounds, peak float64) float64 {
	if floored(value) {
		return 1.0
	}
	sigma := 0.8 * b.Target
	exponent := -((value - b.Target) * (value - b.Target)) / (2 * sigma * sigma)
	return 1.0 + (peak-1.0)*math.Exp(exponent)
}

func parabolaMult(value float64, axis Axis, b Bounds, peak float64) float64 {
	if floored(value) {
		return 1.0
	}
	// The amount axis normalizes over [0, 2*max] so the falling arm stays
	// above 1.0 deep into whale territory; the time axis uses [0, max].
	scale := b.Max
	if axis == AxisAmount {
		scale = 2 * b.Max
	}
	x := math.Min(value/scale, 1.0)
	targetX := b.Target / scale

	// Vertex form with the vertex at (targetX, peak) and a chosen so the
	// curve crosses 1.0 at x = 0.
	a := (peak - 1.0) / (targetX * targetX)
	mult := 1.0 + (peak - 1.0) - a*(x-targetX)*(x-targetX)
	return math.Max(1.0, mult)
}

func piecewiseMult(value float64, b Bounds, peak float64) float64 {
	if floored(value) {
		return 1.0
	}
	if value <= b.Target {
		slope := (peak - 1.0) / b.Target
		return 1.0 + slope*value
	}
	// Clamp into the falling segment so values past the ceiling hold at the
	// 1.0 floor instead of extrapolating below it.
	v := math.Min(value, b.Max)
	slope := (1.0 - peak) / (b.Max - b.Target)
	return peak + slope*(v-b.Target)
}

// hermite01 is the cubic Hermite basis h(t) = 3t^2 - 2t^3, which blends 0->1
// with zero derivative at both ends.
func hermite01(t float64) float64 {
	return 3*t*t - 2*t*t*t
}

func smoothMult(value float64, b Bounds, peak float64) float64 {
	if floored(value) {
		return 1.0
	}
	if value <= b.Target {
		h := hermite01(value / b.Target)
		return 1.0 + h*(peak-1.0)
	}
	t := math.Min((value-b.Target)/(b.Max-b.Target), 1.0)
	return peak - hermite01(t)*(peak-1.0)
}

func asymmetricMult(value float64, axis Axis, b Bounds, peak float64) float64 {
	if floored(value) {
		return 1.0
	}
	if value <= b.Target {
		t := value / b.Target
		return 1.0 + (peak-1.0)*math.Pow(t, asymmetricRiseExponent)
	}
	decayRate := asymmetricTimeDecayRate
	if axis == AxisAmount {
		decayRate = asymmetricAmountDecayRate
	}
	excess := value - b.Target
	return math.Max(1.0, peak*math.Exp(-decayRate*excess))
}
