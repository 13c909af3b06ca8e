// Package curve implements the multiplier curve families used to tune the
// faction-points reward formula.
//
// Every family maps a domain value (a deposit amount in USD or a holding
// duration in days) plus a peak parameter to a multiplier >= 1.0. The
// multiplier peaks at the axis target and, for every family except the
// asymptotic baseline, decays back toward 1.0 as the value approaches the
// axis maximum.
//
// Main Types:
//   - Bounds: the target/maximum pair for one axis, passed explicitly to
//     every evaluation so multiple ceiling configurations never share state
//   - Family: closed enum of curve families with exhaustive dispatch
//   - Funcs: the amount/time/combined function triple consumed by report
//     and plot adapters
package curve

import (
	"fmt"
	"math"
)

// Default axis bounds: $1,000 target / $100,000 ceiling for deposit amounts,
// 35 days (5 weeks) target / 350 days (50 weeks) ceiling for holding time.
var (
	DefaultAmountBounds = Bounds{Target: 1_000, Max: 100_000}
	DefaultTimeBounds   = Bounds{Target: 35, Max: 350}
)

// Bounds describes one axis of the multiplier domain. Target is the value at
// which a curve attains its peak; Max is the ceiling beyond which the
// multiplier has returned to its floor of 1.0.
type Bounds struct {
	Target float64
	Max    float64
}

// NewBounds validates and constructs axis bounds. The segment slopes of the
// piecewise families divide by Max-Target, so Max must strictly exceed
// Target and Target must be positive.
func NewBounds(target, max float64) (Bounds, error) {
	if target <= 0 || math.IsNaN(target) || math.IsInf(target, 0) {
		return Bounds{}, fmt.Errorf("bounds target must be a positive finite value, got %v", target)
	}
	if max <= target || math.IsNaN(max) || math.IsInf(max, 0) {
		return Bounds{}, fmt.Errorf("bounds max (%v) must exceed target (%v)", max, target)
	}
	return Bounds{Target: target, Max: max}, nil
}

// Axis identifies which domain axis a multiplier is evaluated on. The
// asymptotic and asymmetric families carry per-axis constants, so evaluation
// needs to know the axis in addition to the bounds.
type Axis int

const (
	// AxisAmount is the deposit amount axis (USD).
	AxisAmount Axis = iota
	// AxisTime is the holding duration axis (days).
	AxisTime
)

// Family enumerates the multiplier curve families. The set is closed:
// consumers dispatch over it with an exhaustive switch rather than a
// string-keyed lookup, so adding a family is a compile-visible change.
type Family int

const (
	// Asymptotic is the production baseline: a monotonically saturating
	// curve that never decays. Higher is always better under it, which is
	// exactly the behavior the other families exist to replace. It ignores
	// the peak parameter.
	Asymptotic Family = iota
	// Gaussian is a symmetric bell curve centered on the target.
	Gaussian
	// Parabola is an inverted quadratic with its vertex at the target.
	Parabola
	// Piecewise is two linear segments: rise to the target, fall to the max.
	Piecewise
	// Smooth is the piecewise shape blended with a cubic Hermite basis,
	// giving zero derivative at the target and at the max.
	Smooth
	// Asymmetric rises steeply (power 1.5) and decays gently (exponential)
	// past the target.
	Asymmetric
)

// Families returns all curve families in presentation order.
func Families() []Family {
	return []Family{Asymptotic, Gaussian, Parabola, Piecewise, Smooth, Asymmetric}
}

// UnknownFamilyError indicates a curve key that does not name a family.
type UnknownFamilyError struct {
	Key string
}

func (e *UnknownFamilyError) Error() string {
	return "unknown curve family: " + e.Key
}

// ParseFamily resolves a configuration key to a curve family.
func ParseFamily(key string) (Family, error) {
	switch key {
	case "current":
		return Asymptotic, nil
	case "gaussian":
		return Gaussian, nil
	case "parabola":
		return Parabola, nil
	case "piecewise":
		return Piecewise, nil
	case "smooth":
		return Smooth, nil
	case "asymmetric":
		return Asymmetric, nil
	default:
		return 0, &UnknownFamilyError{Key: key}
	}
}

// Key returns the stable configuration key for the family.
func (f Family) Key() string {
	switch f {
	case Asymptotic:
		return "current"
	case Gaussian:
		return "gaussian"
	case Parabola:
		return "parabola"
	case Piecewise:
		return "piecewise"
	case Smooth:
		return "smooth"
	case Asymmetric:
		return "asymmetric"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// String implements fmt.Stringer using the configuration key.
func (f Family) String() string { return f.Key() }

// DisplayName returns the human-readable name used in reports and plots.
func (f Family) DisplayName() string {
	switch f {
	case Asymptotic:
		return "Current (Asymptotic)"
	case Gaussian:
		return "Gaussian (Bell Curve)"
	case Parabola:
		return "Parabolic (Inverted)"
	case Piecewise:
		return "Piecewise Linear"
	case Smooth:
		return "Smooth Piecewise"
	case Asymmetric:
		return "Asymmetric (Steep/Gentle)"
	}
	return f.Key()
}

// Multiplier evaluates the family on one axis. The result is always >= 1.0;
// non-positive and non-finite values evaluate to the floor, and values past
// the axis max are clamped into the terminal segment rather than
// extrapolated.
func (f Family) Multiplier(value float64, axis Axis, b Bounds, peak float64) float64 {
	switch f {
	case Asymptotic:
		return asymptoticMult(value, axis, b)
	case Gaussian:
		return gaussianMult(value, b, peak)
	case Parabola:
		return parabolaMult(value, axis, b, peak)
	case Piecewise:
		return piecewiseMult(value, b, peak)
	case Smooth:
		return smoothMult(value, b, peak)
	case Asymmetric:
		return asymmetricMult(value, axis, b, peak)
	}
	return 1.0
}

// Combined evaluates the two-axis multiplier. Each component is evaluated at
// sqrt(peak) so the product at the joint sweet spot equals peak for every
// family that attains its component peak exactly at the target. The
// asymptotic baseline ignores peak and is the plain product of its
// components.
func (f Family) Combined(amountUSD, timeDays float64, amountBounds, timeBounds Bounds, peak float64) float64 {
	componentPeak := math.Sqrt(peak)
	return f.Multiplier(amountUSD, AxisAmount, amountBounds, componentPeak) *
		f.Multiplier(timeDays, AxisTime, timeBounds, componentPeak)
}

// Funcs is the function-triple view of a family: the stable contract the
// report and plot adapters consume. Each closure binds the axis bounds so
// callers only supply a value and a peak.
type Funcs struct {
	Name     string
	Amount   func(amountUSD, peak float64) float64
	Time     func(timeDays, peak float64) float64
	Combined func(amountUSD, timeDays, peak float64) float64
}

// Funcs returns the registry entry for the family with the given bounds
// bound in.
func (f Family) Funcs(amountBounds, timeBounds Bounds) Funcs {
	return Funcs{
		Name: f.DisplayName(),
		Amount: func(amountUSD, peak float64) float64 {
			return f.Multiplier(amountUSD, AxisAmount, amountBounds, peak)
		},
		Time: func(timeDays, peak float64) float64 {
			return f.Multiplier(timeDays, AxisTime, timeBounds, peak)
		},
		Combined: func(amountUSD, timeDays, peak float64) float64 {
			return f.Combined(amountUSD, timeDays, amountBounds, timeBounds, peak)
		},
	}
}
