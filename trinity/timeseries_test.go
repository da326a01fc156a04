package trinity

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunTimeSeries_ShapeOverGrid(t *testing.T) {
	t.Parallel()

	for _, p := range paramGrid() {
		pts := RunTimeSeries(p)
		require.Len(t, pts, Horizon+1)
		for i, pt := range pts {
			require.Equal(t, i, pt.Day)
			require.GreaterOrEqual(t, pt.Reserves, 0.0, "%+v day %d", p, i)
			require.Equal(t, p.RateDifferential(), pt.RateDeviation)
			require.Equal(t, p.VietnamRate, pt.VietnamRate)
			require.Equal(t, p.USRate, pt.USRate)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	t.Parallel()

	for _, p := range []Parameters{Baseline(), crisis1997()} {
		if diff := cmp.Diff(RunSnapshot(p), RunSnapshot(p)); diff != "" {
			t.Fatalf("snapshot differs between runs (-first +second):\n%s", diff)
		}
		if diff := cmp.Diff(RunTimeSeries(p), RunTimeSeries(p)); diff != "" {
			t.Fatalf("timeline differs between runs (-first +second):\n%s", diff)
		}
	}
}

func TestRunTimeSeries_Baseline(t *testing.T) {
	t.Parallel()

	pts := RunTimeSeries(Baseline())

	for _, pt := range pts {
		assert.InDelta(t, 2.2925, pt.CapitalFlow, eps)
		assert.InDelta(t, 0.68775, pt.ReserveChange, eps)
		assert.InDelta(t, -68.775, pt.RateChange, eps)
		assert.False(t, pt.IsCrisis)
		assert.Equal(t, SeverityStable, pt.Severity)
	}

	last := pts[Horizon]
	assert.InDelta(t, 83.08+31*0.68775, last.Reserves, 1e-6)
	assert.InDelta(t, 25186-31*68.775, last.ExchangeRate, 1e-6)
	assert.InDelta(t, 31*2.2925, last.CumulativeOutflow, 1e-6)
}

func TestRunTimeSeries_CrisisEscalation(t *testing.T) {
	t.Parallel()

	p := crisis1997()
	assert.True(t, IsCrisisScenario(p.RateDifferential(), p.Openness(), p.ForeignReserves))

	first := PanicMultiplier(true, 0)
	final := PanicMultiplier(true, Horizon)
	assert.Equal(t, 1.0, first)
	assert.Equal(t, 3*first, final)

	pts := RunTimeSeries(p)

	// day 0: reserves cover the intervention
	d0 := pts[0]
	assert.InDelta(t, -43.75, d0.CapitalFlow, eps)
	assert.InDelta(t, -21.875, d0.ReserveChange, eps)
	assert.InDelta(t, -1312.5, d0.RateChange, eps)
	assert.InDelta(t, 23873.5, d0.ExchangeRate, eps)
	assert.InDelta(t, 3.125, d0.Reserves, eps)

	// day 1: reserves exhausted, panic has started
	d1 := pts[1]
	flow1 := -43.75 * (1 + 2.0/30)
	assert.InDelta(t, flow1, d1.CapitalFlow, eps)
	assert.InDelta(t, -3.125*0.3, d1.ReserveChange, eps)
	assert.InDelta(t, flow1*100*(1+1.0/30), d1.RateChange, 1e-6)

	assert.InDelta(t, -43.75*3, pts[Horizon].CapitalFlow, eps)
	assert.True(t, pts[Horizon].IsCrisis)
	assert.Less(t, pts[Horizon].Reserves, 30.0)
	assert.Equal(t, SeverityCrisis, pts[Horizon].Severity)
}

func TestRunTimeSeries_ReserveExhaustionTransition(t *testing.T) {
	t.Parallel()

	// steady outflow of 5 per day, no panic: openness is exactly 0.5
	p := Parameters{VietnamRate: 3, USRate: 4, CapitalOpenness: -1, ForeignReserves: 10, CentralRate: 25186}
	m := NewTimeSeriesModel(p)
	require.False(t, IsCrisisScenario(p.RateDifferential(), p.Openness(), 0))

	s := m.InitialState()
	firstExhausted := -1
	for day := 0; day <= Horizon; day++ {
		prev := s.Reserves
		var pt TimelinePoint
		pt, s = m.Step(day, s)

		need := InterventionNeed(pt.CapitalFlow)
		if prev > need {
			assert.InDelta(t, pt.CapitalFlow*30, pt.RateChange, eps, "day %d", day)
			assert.InDelta(t, -need, pt.ReserveChange, eps, "day %d", day)
			continue
		}
		if firstExhausted < 0 {
			firstExhausted = day
		}
		assert.InDelta(t, pt.CapitalFlow*100*(1+float64(day)/30), pt.RateChange, 1e-6, "day %d", day)
		assert.InDelta(t, -prev*0.3, pt.ReserveChange, eps, "day %d", day)
	}

	// 10 -> 7.5 -> 5 -> 2.5, and 2.5 is not above the need of 2.5
	assert.Equal(t, 3, firstExhausted)

	pts := m.Run()
	assert.InDelta(t, -150, pts[2].RateChange, eps)
	assert.InDelta(t, -550, pts[3].RateChange, 1e-6)
	assert.InDelta(t, 1.75, pts[3].Reserves, eps)
}

func TestRunTimeSeries_AsymmetricClamp(t *testing.T) {
	t.Parallel()

	p := Parameters{VietnamRate: 0, USRate: 8, CapitalOpenness: 2, ForeignReserves: 83.08, CentralRate: 25186}

	snap := RunSnapshot(p)
	assert.Greater(t, p.CentralRate+snap.ExchangeRate.Change, MaxExchangeRate)
	assert.Equal(t, MaxExchangeRate, snap.ExchangeRate.NewRate)
	assert.Equal(t, 20.0, snap.Volatility)

	outside := false
	maxVol := 0.0
	for _, pt := range RunTimeSeries(p) {
		if pt.ExchangeRate < MinExchangeRate || pt.ExchangeRate > MaxExchangeRate {
			outside = true
		}
		if pt.Volatility > maxVol {
			maxVol = pt.Volatility
		}
	}
	assert.True(t, outside, "timeline rate never left the snapshot band")
	assert.Greater(t, maxVol, 20.0)
}

func TestIsCrisisScenario(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		rd       float64
		openness float64
		reserves float64
		want     bool
	}{
		{"deep_gap_open", -2, 1, 100, true},
		{"deep_gap_closed", -2, 0.5, 100, false},
		{"gap_at_threshold", -1.5, 1, 100, false},
		{"thin_reserves_negative_gap", -0.1, 0.6, 39.9, true},
		{"thin_reserves_positive_gap", 0.1, 0.6, 10, false},
		{"thin_reserves_closed", -1, 0.5, 10, false},
		{"reserves_at_floor", -1, 1, 40, false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, IsCrisisScenario(tt.rd, tt.openness, tt.reserves))
		})
	}
}

func TestPanicMultiplier(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 1.0, PanicMultiplier(false, 0))
	assert.Equal(t, 1.0, PanicMultiplier(false, Horizon))
	assert.InDelta(t, 2.0, PanicMultiplier(true, 15), eps)
	assert.InDelta(t, 3.0, PanicMultiplier(true, Horizon), eps)
}

func TestDaySeverity(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		reserves float64
		flow     float64
		vol      float64
		want     Severity
	}{
		{"critical_reserves", 29, 5, 5, SeverityCrisis},
		{"heavy_outflow_high_vol", 100, -11, 21, SeverityCrisis},
		{"heavy_outflow_low_vol", 100, -11, 14, SeverityStable},
		{"low_reserves", 49, 0, 5, SeverityWarning},
		{"moderate_outflow_vol", 100, -6, 16, SeverityWarning},
		{"heavy_outflow_moderate_vol", 100, -11, 18, SeverityWarning},
		{"stable", 80, -4, 30, SeverityStable},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, DaySeverity(tt.reserves, tt.flow, tt.vol))
		})
	}
}
