// Package report renders simulation runs for the CLI.
package report

import (
	"encoding/json"
	"io"
	"time"

	"github.com/rustyeddy/trilemma/trinity"
)

// Run bundles one invocation of both models for output.
type Run struct {
	RunID    string                  `json:"runId"`
	Created  time.Time               `json:"created"`
	Scenario string                  `json:"scenario,omitempty"`
	Params   trinity.Parameters      `json:"params"`
	Snapshot trinity.SnapshotResult  `json:"snapshot"`
	Timeline []trinity.TimelinePoint `json:"timeline"`
}

// NewRun runs both models for p.
func NewRun(runID string, created time.Time, scenario string, p trinity.Parameters) Run {
	return Run{
		RunID:    runID,
		Created:  created,
		Scenario: scenario,
		Params:   p,
		Snapshot: trinity.RunSnapshot(p),
		Timeline: trinity.RunTimeSeries(p),
	}
}

// FirstCrisisDay is the first day flagged as a crisis, or -1.
func (r Run) FirstCrisisDay() int {
	for _, pt := range r.Timeline {
		if pt.IsCrisis {
			return pt.Day
		}
	}
	return -1
}

// Final is the last timeline point. It is the zero point for an empty timeline.
func (r Run) Final() trinity.TimelinePoint {
	if len(r.Timeline) == 0 {
		return trinity.TimelinePoint{}
	}
	return r.Timeline[len(r.Timeline)-1]
}

// CrisisDays counts days flagged as a crisis.
func (r Run) CrisisDays() int {
	n := 0
	for _, pt := range r.Timeline {
		if pt.IsCrisis {
			n++
		}
	}
	return n
}

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
