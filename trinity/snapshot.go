package trinity

import "math"

// ExchangeRate is the snapshot exchange-rate move.
type ExchangeRate struct {
	NewRate       float64 `json:"newRate"` // clamped to [MinExchangeRate, MaxExchangeRate]
	Change        float64 `json:"change"`  // unclamped impact
	PercentChange float64 `json:"percentChange"`
}

// Reserves is the snapshot reserve move. Depletion is positive for a loss
// and negative for an accumulation.
type Reserves struct {
	NewReserves      float64 `json:"newReserves"`
	Depletion        float64 `json:"depletion"`
	PercentDepletion float64 `json:"percentDepletion"`
}

// SnapshotResult is the output of one SnapshotModel run.
type SnapshotResult struct {
	Inputs           Parameters   `json:"inputs"`
	RateDifferential float64      `json:"rateDifferential"`
	CapitalFlow      float64      `json:"capitalFlow"`
	ExchangeRate     ExchangeRate `json:"exchangeRate"`
	Volatility       float64      `json:"volatility"`
	Reserves         Reserves     `json:"reserves"`
	Constraint       Constraint   `json:"constraint"`
}

// SnapshotModel computes instantaneous indicators for a parameter set.
type SnapshotModel struct {
	Constraints Constraints
}

// NewSnapshotModel returns a model using DefaultConstraints.
func NewSnapshotModel() SnapshotModel {
	return SnapshotModel{Constraints: DefaultConstraints}
}

// RunSnapshot runs the snapshot model with the fixed default constraints.
func RunSnapshot(p Parameters) SnapshotResult {
	return NewSnapshotModel().Run(p)
}

// Run computes the snapshot for p.
func (m SnapshotModel) Run(p Parameters) SnapshotResult {
	rd := p.RateDifferential()
	flow := p.CapitalFlow()
	vol := SnapshotVolatility(p)
	res := SnapshotReserves(p.ForeignReserves, flow)

	return SnapshotResult{
		Inputs:           p,
		RateDifferential: rd,
		CapitalFlow:      flow,
		ExchangeRate:     SnapshotExchangeRate(p.CentralRate, flow),
		Volatility:       vol,
		Reserves:         res,
		Constraint:       m.Constraints.Classify(rd, vol, res.NewReserves),
	}
}

// SnapshotExchangeRate applies the flow impact to the central rate. Inflows
// appreciate the currency, i.e. lower the domestic-per-foreign rate.
func SnapshotExchangeRate(centralRate, flow float64) ExchangeRate {
	impact := -flow * rateImpact
	return ExchangeRate{
		NewRate:       clamp(centralRate+impact, MinExchangeRate, MaxExchangeRate),
		Change:        impact,
		PercentChange: impact / centralRate * 100,
	}
}

// SnapshotVolatility is the band floor plus a term growing with the rate gap
// and openness, capped at 20.
func SnapshotVolatility(p Parameters) float64 {
	extra := abs(p.RateDifferential()) * p.Openness() * 2
	return math.Min(snapshotVolCap, volatilityBand+extra)
}

// SnapshotReserves spends reserves defending against outflow and
// accumulates them on inflow.
func SnapshotReserves(reserves, flow float64) Reserves {
	if flow < 0 {
		depletion := abs(flow) * outflowDrain
		return Reserves{
			NewReserves:      math.Max(0, reserves-depletion),
			Depletion:        depletion,
			PercentDepletion: depletion / reserves * 100,
		}
	}

	acc := flow * inflowGain
	return Reserves{
		NewReserves:      reserves + acc,
		Depletion:        -acc,
		PercentDepletion: -(acc / reserves) * 100,
	}
}
