package explain

import (
	"testing"

	"github.com/rustyeddy/trilemma/trinity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crisisSnapshot() trinity.SnapshotResult {
	return trinity.RunSnapshot(trinity.Parameters{
		VietnamRate:     3.0,
		USRate:          5.5,
		CapitalOpenness: 1.5,
		ForeignReserves: 25,
		CentralRate:     25186,
	})
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]Language{"vi": Vietnamese, "EN": English, " en ": English} {
		got, err := ParseLanguage(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseLanguage("fr")
	assert.ErrorContains(t, err, "unsupported language")
}

func TestFormatChanges(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changes Changes
		want    string
	}{
		{"nil", nil, "No changes from baseline."},
		{"empty", Changes{}, "No changes from baseline."},
		{"unknown_only", Changes{"inflation": 3}, "No changes from baseline."},
		{
			name:    "ordered",
			changes: Changes{ParamUSRate: 5.5, ParamVietnamRate: 6},
			want:    "- Vietnam Policy Rate changed to 6%\n- US Fed Rate changed to 5.5%",
		},
		{
			name:    "all",
			changes: Changes{ParamCapitalOpenness: 1.5, ParamForeignReserves: 40, ParamCentralRate: 26000},
			want: "- Capital Openness (KAOPEN) changed to 1.5\n" +
				"- Foreign Reserves changed to $40 billion\n" +
				"- Central Exchange Rate changed to 26000 VND/USD",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, FormatChanges(tt.changes))
		})
	}
}

func TestSummary_Crisis(t *testing.T) {
	t.Parallel()

	s := Summary(crisisSnapshot())

	assert.Contains(t, s, "Interest Rate Differential: -2.50%")
	assert.Contains(t, s, "Capital Flow: 43.75 billion (outflow)")
	assert.Contains(t, s, "(depreciation of 8.69%)")
	assert.Contains(t, s, "Volatility: 13.75%")
	assert.Contains(t, s, "(depletion of 87.50%)")
	assert.Contains(t, s, "Constraint Violated: ERS")
	assert.Contains(t, s, "Severity: CRISIS")
}

func TestSummary_Baseline(t *testing.T) {
	t.Parallel()

	s := Summary(trinity.RunSnapshot(trinity.Baseline()))

	assert.Contains(t, s, "(inflow)")
	assert.Contains(t, s, "(appreciation of 0.46%)")
	assert.Contains(t, s, "(accumulation of 0.83%)")
	assert.Contains(t, s, "Constraint Violated: NONE")
	assert.Contains(t, s, "Severity: STABLE")
}

func TestBuildPrompt(t *testing.T) {
	t.Parallel()

	r := crisisSnapshot()
	changes := Changes{ParamForeignReserves: 25}

	vi := BuildPrompt(r, changes, Vietnamese)
	assert.Contains(t, vi, Summary(r))
	assert.Contains(t, vi, "- Foreign Reserves changed to $25 billion")
	assert.Contains(t, vi, "- Central Exchange Rate: 25186 VND/USD")
	assert.Contains(t, vi, "- Capital Openness (KAOPEN): -0.166 (restricted)")
	assert.Contains(t, vi, "Vui lòng trả lời bằng tiếng Việt.")
	assert.NotContains(t, vi, "Please respond in English.")

	en := BuildPrompt(r, nil, English)
	assert.Contains(t, en, "No changes from baseline.")
	assert.Contains(t, en, "Please respond in English.")
}

func TestQuickInsightPrompt(t *testing.T) {
	t.Parallel()

	p := QuickInsightPrompt(crisisSnapshot(), English)
	assert.Contains(t, p, "- Volatility: 13.75%")
	assert.Contains(t, p, "- Constraint Violated: ers")
	assert.Contains(t, p, "- Severity: crisis")
	assert.Contains(t, p, "Respond in English in 2-3 brief sentences.")

	assert.Contains(t, QuickInsightPrompt(crisisSnapshot(), Vietnamese), "2-3 câu")
}
