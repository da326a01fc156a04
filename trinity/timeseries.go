package trinity

import "math"

// Horizon is the number of daily steps; a run emits Horizon+1 points.
const Horizon = 30

// Thresholds for the daily crisis flags and severity.
const (
	reservesCritical   = 30.0
	reservesLow        = 50.0
	heavyOutflow       = -10.0
	moderateOutflow    = -5.0
	highVolatility     = 20.0
	moderateVolatility = 15.0

	// panic trigger
	panicRateGap      = -1.5
	panicOpenness     = 0.5
	panicReserveFloor = 40.0

	interveneRate = 30  // rate move per unit of flow while reserves hold
	collapseRate  = 100 // rate move per unit of flow once reserves run out
	exhaustedBurn = 0.3 // fraction of remaining reserves burned when exhausted
)

// TimelinePoint is the state of the economy at the end of one day.
type TimelinePoint struct {
	Day               int      `json:"day"`
	ExchangeRate      float64  `json:"exchangeRate"`
	Reserves          float64  `json:"reserves"`
	CapitalFlow       float64  `json:"capitalFlow"`
	Volatility        float64  `json:"volatility"`
	ReserveChange     float64  `json:"reserveChange"`
	RateChange        float64  `json:"rateChange"`
	CumulativeOutflow float64  `json:"cumulativeOutflow"`
	IsCrisis          bool     `json:"isCrisis"`
	Severity          Severity `json:"severity"`
	VietnamRate       float64  `json:"vietnamRate"`
	USRate            float64  `json:"usRate"`
	RateDeviation     float64  `json:"rateDeviation"`
}

// State is carried from one day to the next.
type State struct {
	Rate              float64
	Reserves          float64
	CumulativeOutflow float64
}

// TimeSeriesModel steps a parameter set through Horizon days.
type TimeSeriesModel struct {
	Params Parameters
}

// NewTimeSeriesModel returns a model for p.
func NewTimeSeriesModel(p Parameters) TimeSeriesModel {
	return TimeSeriesModel{Params: p}
}

// RunTimeSeries returns the Horizon+1 point trajectory for p, ordered by day.
func RunTimeSeries(p Parameters) []TimelinePoint {
	return NewTimeSeriesModel(p).Run()
}

// InitialState is the state before day 0.
func (m TimeSeriesModel) InitialState() State {
	return State{
		Rate:     m.Params.CentralRate,
		Reserves: m.Params.ForeignReserves,
	}
}

// Run emits every day from 0 through Horizon. There is no early exit when
// reserves hit zero or the rate diverges.
func (m TimeSeriesModel) Run() []TimelinePoint {
	out := make([]TimelinePoint, 0, Horizon+1)
	s := m.InitialState()
	for day := 0; day <= Horizon; day++ {
		var pt TimelinePoint
		pt, s = m.Step(day, s)
		out = append(out, pt)
	}
	return out
}

// IsCrisisScenario gates the panic amplifier. It is a heuristic, not a
// consequence of the flow model: a deeply negative rate gap with an open
// capital account, or thin reserves with an open account and any negative gap.
func IsCrisisScenario(rateDiff, openness, reserves float64) bool {
	return (rateDiff < panicRateGap && openness > panicOpenness) ||
		(reserves < panicReserveFloor && openness > panicOpenness && rateDiff < 0)
}

// PanicMultiplier scales flow pressure. In a crisis scenario it grows
// linearly from 1 on day 0 to 3 on the final day.
func PanicMultiplier(crisis bool, day int) float64 {
	if !crisis {
		return 1
	}
	return 1 + (float64(day)/Horizon)*2
}

// DaySeverity classifies one day from its end-of-day reserves, flow and
// volatility.
func DaySeverity(reserves, flow, volatility float64) Severity {
	if reserves < reservesCritical || (flow < heavyOutflow && volatility > highVolatility) {
		return SeverityCrisis
	}
	if reserves < reservesLow || (flow < moderateOutflow && volatility > moderateVolatility) {
		return SeverityWarning
	}
	return SeverityStable
}

// Step simulates one day from state s and returns the emitted point along with
// the state for the next day.
func (m TimeSeriesModel) Step(day int, s State) (TimelinePoint, State) {
	p := m.Params
	rd := p.RateDifferential()
	openness := p.Openness()

	crisis := IsCrisisScenario(rd, openness, s.Reserves)
	flow := p.CapitalFlow() * PanicMultiplier(crisis, day)
	reserveChange, rateChange := adjust(day, flow, s.Reserves)

	newRate := s.Rate + rateChange
	newReserves := math.Max(0, s.Reserves+reserveChange)

	distance := abs(newRate-p.CentralRate) / p.CentralRate
	vol := volatilityBand + distance*100 + abs(flow)*2

	isCrisis := newReserves < reservesCritical ||
		(flow < heavyOutflow && vol > highVolatility)

	next := State{
		Rate:              newRate,
		Reserves:          newReserves,
		CumulativeOutflow: s.CumulativeOutflow + flow,
	}

	return TimelinePoint{
		Day:               day,
		ExchangeRate:      newRate,
		Reserves:          newReserves,
		CapitalFlow:       flow,
		Volatility:        vol,
		ReserveChange:     reserveChange,
		RateChange:        rateChange,
		CumulativeOutflow: next.CumulativeOutflow,
		IsCrisis:          isCrisis,
		Severity:          DaySeverity(newReserves, flow, vol),
		VietnamRate:       p.VietnamRate,
		USRate:            p.USRate,
		RateDeviation:     rd,
	}, next
}

// adjust returns the reserve and rate changes for one day's flow.
func adjust(day int, flow, reserves float64) (reserveChange, rateChange float64) {
	if flow >= 0 {
		return flow * inflowGain, flow * -interveneRate
	}

	need := InterventionNeed(flow)
	if reserves > need {
		return -need, flow * interveneRate
	}
	// exhausted: the rate is no longer defended
	return -reserves * exhaustedBurn, flow * collapseRate * (1 + float64(day)/Horizon)
}

// InterventionNeed is the reserves the central bank must spend to absorb an
// outflow of the given size.
func InterventionNeed(flow float64) float64 {
	return abs(flow) * outflowDrain
}
