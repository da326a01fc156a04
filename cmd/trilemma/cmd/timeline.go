package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/config"
	"github.com/rustyeddy/trilemma/report"
	"github.com/rustyeddy/trilemma/trinity"
	"github.com/spf13/cobra"
)

var timelineCmd = &cobra.Command{
	Use:   "timeline",
	Short: "Simulate the 30-day trajectory for a parameter set",
	Long: `Step the time-series model through days 0..30 carrying the exchange
rate and reserves forward. Under crisis conditions capital flight grows
each day and, once reserves run out, the rate moves much faster.

Examples:
  trilemma timeline --scenario crisis-1997
  trilemma timeline --reserves 20 --format csv --out crisis.csv`,
	RunE: runTimeline,
}

var (
	timelineParams paramFlags
	timelineFormat string
	timelineOut    string
)

func init() {
	rootCmd.AddCommand(timelineCmd)
	timelineParams.register(timelineCmd)
	timelineCmd.Flags().StringVarP(&timelineFormat, "format", "F", "", "output format: table|csv|json")
	timelineCmd.Flags().StringVarP(&timelineOut, "out", "o", "", "write output to file")
}

func runTimeline(cmd *cobra.Command, args []string) error {
	p, _, err := timelineParams.resolve(cmd)
	if err != nil {
		return err
	}

	points := trinity.RunTimeSeries(p)
	last := points[len(points)-1]
	log.Debug().
		Int("days", len(points)).
		Float64("final_rate", last.ExchangeRate).
		Float64("final_reserves", last.Reserves).
		Msg("timeline computed")

	w, closeOut, err := openOutput(cmd, timelineOut)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format := outputFormat(timelineFormat); format {
	case config.FormatCSV:
		return report.WriteTimelineCSV(w, points)
	case config.FormatJSON:
		return report.WriteJSON(w, points)
	case config.FormatTable, config.FormatOrg:
		return report.WriteTimelineTable(w, points)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
