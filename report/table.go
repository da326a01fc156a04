package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/rustyeddy/trilemma/trinity"
)

// WriteSnapshotTable prints the snapshot as aligned label/value rows.
func WriteSnapshotTable(w io.Writer, r trinity.SnapshotResult) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	rows := [][2]string{
		{"Rate differential", fmt.Sprintf("%.2f pp", r.RateDifferential)},
		{"Capital flow", fmt.Sprintf("%.2f bn", r.CapitalFlow)},
		{"Exchange rate", fmt.Sprintf("%.0f (%+.2f%%)", r.ExchangeRate.NewRate, r.ExchangeRate.PercentChange)},
		{"Volatility", fmt.Sprintf("%.2f%%", r.Volatility)},
		{"Reserves", fmt.Sprintf("%.2f bn (depletion %.2f)", r.Reserves.NewReserves, r.Reserves.Depletion)},
		{"Violations", violations(r.Constraint.Violations)},
		{"Most violated", strings.ToUpper(string(r.Constraint.MostViolated))},
		{"Severity", strings.ToUpper(string(r.Constraint.Severity))},
	}
	for _, row := range rows {
		if _, err := fmt.Fprintf(tw, "%s\t%s\n", row[0], row[1]); err != nil {
			return err
		}
	}
	return tw.Flush()
}

// WriteTimelineTable prints one row per day.
func WriteTimelineTable(w io.Writer, points []trinity.TimelinePoint) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	if _, err := fmt.Fprintln(tw, "day\trate\treserves\tflow\tvol%\tΔreserves\tΔrate\tcum flow\tcrisis\tseverity\t"); err != nil {
		return err
	}
	for _, pt := range points {
		crisis := ""
		if pt.IsCrisis {
			crisis = "!"
		}
		_, err := fmt.Fprintf(tw, "%d\t%.0f\t%.2f\t%.2f\t%.2f\t%.2f\t%.1f\t%.2f\t%s\t%s\t\n",
			pt.Day, pt.ExchangeRate, pt.Reserves, pt.CapitalFlow, pt.Volatility,
			pt.ReserveChange, pt.RateChange, pt.CumulativeOutflow, crisis, pt.Severity)
		if err != nil {
			return err
		}
	}
	return tw.Flush()
}

func violations(v trinity.Violations) string {
	var out []string
	if v.MI {
		out = append(out, "MI")
	}
	if v.ERS {
		out = append(out, "ERS")
	}
	if v.KAO {
		out = append(out, "KAO")
	}
	if len(out) == 0 {
		return "-"
	}
	return strings.Join(out, ", ")
}
