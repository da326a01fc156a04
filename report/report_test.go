package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rustyeddy/trilemma/trinity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crisisRun() Run {
	p := trinity.Parameters{VietnamRate: 3, USRate: 5.5, CapitalOpenness: 1.5, ForeignReserves: 25, CentralRate: 25186}
	return NewRun("01HZY3TESTRUNID0000000000", time.Date(2025, 9, 1, 10, 0, 0, 0, time.UTC), "crisis-1997", p)
}

func TestRunHelpers(t *testing.T) {
	t.Parallel()

	r := crisisRun()
	assert.Equal(t, 0, r.FirstCrisisDay())
	assert.Equal(t, trinity.Horizon+1, r.CrisisDays())
	assert.Equal(t, trinity.Horizon, r.Final().Day)

	base := NewRun("id", time.Time{}, "", trinity.Baseline())
	assert.Equal(t, -1, base.FirstCrisisDay())
	assert.Equal(t, 0, base.CrisisDays())

	assert.Equal(t, trinity.TimelinePoint{}, Run{}.Final())
}

func TestWriteTimelineCSV(t *testing.T) {
	t.Parallel()

	r := crisisRun()
	var buf bytes.Buffer
	require.NoError(t, WriteTimelineCSV(&buf, r.Timeline))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, trinity.Horizon+2)

	assert.Equal(t, timelineHeader, rows[0])
	assert.Equal(t, "0", rows[1][0])
	assert.Equal(t, "23873.500000", rows[1][1])
	assert.Equal(t, "3.125000", rows[1][2])
	assert.Equal(t, "true", rows[1][8])
	assert.Equal(t, "crisis", rows[1][9])
	assert.Equal(t, "30", rows[len(rows)-1][0])
}

func TestWriteSnapshotTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteSnapshotTable(&buf, crisisRun().Snapshot))

	out := buf.String()
	assert.Contains(t, out, "Rate differential")
	assert.Contains(t, out, "-2.50 pp")
	assert.Contains(t, out, "ERS")
	assert.Contains(t, out, "CRISIS")
	assert.Len(t, strings.Split(strings.TrimSpace(out), "\n"), 8)
}

func TestWriteTimelineTable(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteTimelineTable(&buf, crisisRun().Timeline))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, trinity.Horizon+2)
	assert.Contains(t, lines[0], "severity")
	assert.Contains(t, lines[1], "crisis")
}

func TestWriteJSON(t *testing.T) {
	t.Parallel()

	r := crisisRun()
	var buf bytes.Buffer
	require.NoError(t, WriteJSON(&buf, r))

	var decoded Run
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, r.RunID, decoded.RunID)
	assert.Equal(t, r.Snapshot.Constraint, decoded.Snapshot.Constraint)
	assert.Len(t, decoded.Timeline, trinity.Horizon+1)
	assert.Contains(t, buf.String(), `"mostViolated": "ers"`)
}

func TestWriteOrg(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteOrg(&buf, crisisRun()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "* SIMULATION: crisis-1997 (CRISIS)"))
	assert.Contains(t, out, ":RUN_ID:        01HZY3TESTRUNID0000000000")
	assert.Contains(t, out, ":CREATED:       [2025-09-01 Mon 10:00]")
	assert.Contains(t, out, "- Most violated: *ERS*")
	assert.Contains(t, out, "- First crisis day:    *0* (31 crisis days)")
	assert.Contains(t, out, "| 30 |")
}

func TestWriteOrgNoCrisis(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	require.NoError(t, WriteOrg(&buf, NewRun("", time.Time{}, "", trinity.Baseline())))

	out := buf.String()
	assert.Contains(t, out, "* SIMULATION: custom (STABLE)")
	assert.Contains(t, out, "(run-id?)")
	assert.Contains(t, out, "- No crisis day in the horizon")
}
