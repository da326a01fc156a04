package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/config"
	"github.com/rustyeddy/trilemma/report"
	"github.com/rustyeddy/trilemma/trinity"
	"github.com/spf13/cobra"
)

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Compute the steady-state indicators for a parameter set",
	Long: `Run the snapshot model once and print the derived indicators:
rate differential, capital flow, exchange rate, volatility, reserves and
the most violated Trinity goal.

Examples:
  trilemma snapshot
  trilemma snapshot --vn-rate 3 --us-rate 5.5 --openness 1.5 --reserves 25
  trilemma snapshot --scenario crisis-1997 --format json`,
	RunE: runSnapshot,
}

var (
	snapshotParams paramFlags
	snapshotFormat string
	snapshotOut    string
)

func init() {
	rootCmd.AddCommand(snapshotCmd)
	snapshotParams.register(snapshotCmd)
	snapshotCmd.Flags().StringVarP(&snapshotFormat, "format", "F", "", "output format: table|json")
	snapshotCmd.Flags().StringVarP(&snapshotOut, "out", "o", "", "write output to file")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	p, _, err := snapshotParams.resolve(cmd)
	if err != nil {
		return err
	}

	res := trinity.RunSnapshot(p)
	log.Debug().
		Float64("flow", res.CapitalFlow).
		Str("violated", string(res.Constraint.MostViolated)).
		Str("severity", string(res.Constraint.Severity)).
		Msg("snapshot computed")

	w, closeOut, err := openOutput(cmd, snapshotOut)
	if err != nil {
		return err
	}
	defer closeOut()

	switch format := outputFormat(snapshotFormat); format {
	case config.FormatJSON:
		return report.WriteJSON(w, res)
	case config.FormatTable, config.FormatCSV, config.FormatOrg:
		return report.WriteSnapshotTable(w, res)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
