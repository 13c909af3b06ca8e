package tuning

import "fmt"

// MissingScenarioError indicates that a scenario the analysis depends on
// non-optionally was filtered out by a ceiling configuration. A
// configuration that cannot cover its required scenarios is invalid input
// and must be surfaced as unscoreable rather than silently mis-scored.
type MissingScenarioError struct {
	Label string
}

func (e *MissingScenarioError) Error() string {
	return fmt.Sprintf("required scenario %q is not covered by the configuration", e.Label)
}

// InvalidCeilingError indicates a ceiling configuration whose maxima do not
// exceed the axis targets, which would invert the curve segment slopes.
type InvalidCeilingError struct {
	Ceiling Ceiling
	Reason  error
}

func (e *InvalidCeilingError) Error() string {
	return fmt.Sprintf("invalid ceiling configuration %q: %v", e.Ceiling.Label, e.Reason)
}

func (e *InvalidCeilingError) Unwrap() error { return e.Reason }
