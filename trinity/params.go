// Package trinity implements the Impossible Trinity simulation engine.
//
// Two models share the same flow formulas:
//   - SnapshotModel maps a parameter set to one bundle of steady-state
//     indicators with safety clamps.
//   - TimeSeriesModel steps the same parameters through a fixed horizon of
//     daily steps, carrying the exchange rate and reserves forward and
//     amplifying capital flight under crisis conditions.
//
// Both models are pure: identical Parameters always yield identical results.
package trinity

import "fmt"

// Baseline values for Vietnam (2025). Used as defaults by callers; the engine
// never substitutes them on its own.
const (
	BaselineVietnamRate     = 4.50
	BaselineUSRate          = 4.25
	BaselineCapitalOpenness = -0.166
	BaselineForeignReserves = 83.08
	BaselineCentralRate     = 25186.0
)

// Parameters is the immutable input to a simulation run.
type Parameters struct {
	VietnamRate     float64 `json:"vietnamRate" yaml:"vietnam_rate"`         // domestic policy rate (%)
	USRate          float64 `json:"usRate" yaml:"us_rate"`                   // foreign policy rate (%)
	CapitalOpenness float64 `json:"capitalOpenness" yaml:"capital_openness"` // KAOPEN index, typically [-2, 2]
	ForeignReserves float64 `json:"foreignReserves" yaml:"foreign_reserves"` // billions
	CentralRate     float64 `json:"centralRate" yaml:"central_rate"`         // domestic units per foreign unit
}

// Baseline returns the Vietnam 2025 parameter set.
func Baseline() Parameters {
	return Parameters{
		VietnamRate:     BaselineVietnamRate,
		USRate:          BaselineUSRate,
		CapitalOpenness: BaselineCapitalOpenness,
		ForeignReserves: BaselineForeignReserves,
		CentralRate:     BaselineCentralRate,
	}
}

// Validate reports whether p satisfies the preconditions the percentage
// computations rely on. The models do not call it.
func (p Parameters) Validate() error {
	if p.ForeignReserves <= 0 {
		return fmt.Errorf("foreign reserves must be positive, got %v", p.ForeignReserves)
	}
	if p.CentralRate <= 0 {
		return fmt.Errorf("central rate must be positive, got %v", p.CentralRate)
	}
	return nil
}

// RateDifferential is the domestic minus the foreign policy rate.
func (p Parameters) RateDifferential() float64 {
	return p.VietnamRate - p.USRate
}

// Openness maps the KAOPEN index onto a flow multiplier: -2 -> 0, 0 -> 1, 2 -> 2.
func (p Parameters) Openness() float64 {
	return (p.CapitalOpenness + 2) / 2
}

// CapitalFlow is the signed flow pressure before any panic amplification.
// Positive is inflow.
func (p Parameters) CapitalFlow() float64 {
	return p.RateDifferential() * p.Openness() * flowScale
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
