package scenario

import (
	"context"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/trinity"
	"golang.org/x/sync/errgroup"
)

// Outcome is one preset run through both models.
type Outcome struct {
	Preset   Preset                  `json:"preset"`
	Snapshot trinity.SnapshotResult  `json:"snapshot"`
	Timeline []trinity.TimelinePoint `json:"timeline"`
}

// Matches reports whether the engine's snapshot severity agrees with the
// severity the preset was catalogued with.
func (o Outcome) Matches() bool {
	return o.Snapshot.Constraint.Severity == o.Preset.Severity
}

// PeakSeverity is the worst daily severity across the timeline.
func (o Outcome) PeakSeverity() trinity.Severity {
	peak := trinity.SeverityStable
	for _, pt := range o.Timeline {
		if pt.Severity.Rank() > peak.Rank() {
			peak = pt.Severity
		}
	}
	return peak
}

// Run evaluates a single preset.
func Run(p Preset) Outcome {
	return Outcome{
		Preset:   p,
		Snapshot: trinity.RunSnapshot(p.Params),
		Timeline: trinity.RunTimeSeries(p.Params),
	}
}

// RunAll evaluates presets concurrently, at most limit at a time (limit <= 0
// means no limit). Outcomes keep the order of presets. Presets not started
// before ctx is done are skipped and ctx.Err() is returned.
func RunAll(ctx context.Context, presets []Preset, limit int) ([]Outcome, error) {
	out := make([]Outcome, len(presets))

	g, ctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, p := range presets {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out[i] = Run(p)
			log.Debug().
				Str("scenario", p.ID).
				Str("severity", string(out[i].Snapshot.Constraint.Severity)).
				Str("peak", string(out[i].PeakSeverity())).
				Msg("scenario evaluated")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}
