package report

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/rustyeddy/trilemma/trinity"
)

var timelineHeader = []string{
	"day", "exchange_rate", "reserves", "capital_flow", "volatility",
	"reserve_change", "rate_change", "cumulative_outflow", "is_crisis",
	"severity", "vietnam_rate", "us_rate", "rate_deviation",
}

// WriteTimelineCSV writes one row per point after a header row.
func WriteTimelineCSV(w io.Writer, points []trinity.TimelinePoint) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(timelineHeader); err != nil {
		return err
	}

	for _, pt := range points {
		err := cw.Write([]string{
			strconv.Itoa(pt.Day),
			f(pt.ExchangeRate),
			f(pt.Reserves),
			f(pt.CapitalFlow),
			f(pt.Volatility),
			f(pt.ReserveChange),
			f(pt.RateChange),
			f(pt.CumulativeOutflow),
			strconv.FormatBool(pt.IsCrisis),
			string(pt.Severity),
			f(pt.VietnamRate),
			f(pt.USRate),
			f(pt.RateDeviation),
		})
		if err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
