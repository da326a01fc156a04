package cmd

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/config"
	"github.com/rustyeddy/trilemma/internal/id"
	"github.com/rustyeddy/trilemma/report"
	"github.com/spf13/cobra"
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run both models and write a full report",
	Long: `Run the snapshot and the 30-day timeline for one parameter set and
render them together as a single report with a run id.

Formats:
  table - snapshot table followed by the timeline table
  csv   - timeline only
  json  - full run
  org   - Org-mode report

Examples:
  trilemma simulate --scenario violation --format org --out violation.org`,
	RunE: runSimulate,
}

var (
	simulateParams paramFlags
	simulateFormat string
	simulateOut    string
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	simulateParams.register(simulateCmd)
	simulateCmd.Flags().StringVarP(&simulateFormat, "format", "F", "", "output format: table|csv|json|org")
	simulateCmd.Flags().StringVarP(&simulateOut, "out", "o", "", "write output to file")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	p, _, err := simulateParams.resolve(cmd)
	if err != nil {
		return err
	}

	name := simulateParams.scenario
	if name == "" {
		name = "custom"
	}
	run := report.NewRun(id.New(), time.Now().UTC(), name, p)
	log.Info().
		Str("run_id", run.RunID).
		Str("scenario", name).
		Int("first_crisis_day", run.FirstCrisisDay()).
		Msg("simulation complete")

	w, closeOut, err := openOutput(cmd, simulateOut)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format := outputFormat(simulateFormat); format {
	case config.FormatTable:
		fmt.Fprintf(w, "Run %s (%s)\n\n", run.RunID, name)
		if err := report.WriteSnapshotTable(w, run.Snapshot); err != nil {
			return err
		}
		fmt.Fprintln(w)
		return report.WriteTimelineTable(w, run.Timeline)
	case config.FormatCSV:
		return report.WriteTimelineCSV(w, run.Timeline)
	case config.FormatJSON:
		return report.WriteJSON(w, run)
	case config.FormatOrg:
		return report.WriteOrg(w, run)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
