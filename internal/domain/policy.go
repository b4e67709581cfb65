package domain

import "fmt"

// PolicyUnit is the unit of the cancellation lead-time value.
type PolicyUnit string

const (
	UnitHours PolicyUnit = "hours"
	UnitDays  PolicyUnit = "days"
)

// CancellationPolicy is the single studio-wide cancellation rule:
// the minimum lead time before class start within which a client may
// still self-cancel with refund. Value 0 means always cancellable.
//
// The policy is read from the settings store on every evaluation and
// passed by value into the engine; it is never held as ambient state.
type CancellationPolicy struct {
	Unit  PolicyUnit
	Value int
}

// LeadTimeHours returns the required lead time in hours.
func (p CancellationPolicy) LeadTimeHours() float64 {
	if p.Unit == UnitDays {
		return float64(p.Value) * 24
	}
	return float64(p.Value)
}

// Validate enforces the fixed policy schema.
func (p CancellationPolicy) Validate() error {
	if p.Unit != UnitHours && p.Unit != UnitDays {
		return fmt.Errorf("invalid policy unit: %q", p.Unit)
	}
	if p.Value < 0 {
		return fmt.Errorf("policy value must be non-negative, got %d", p.Value)
	}
	return nil
}

// DefaultCancellationPolicy applies when no policy row exists yet:
// no lead time required.
func DefaultCancellationPolicy() CancellationPolicy {
	return CancellationPolicy{Unit: UnitHours, Value: 0}
}
