package report

import (
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/rustyeddy/trilemma/trinity"
)

var orgFuncs = template.FuncMap{
	"upper": func(s any) string {
		switch v := s.(type) {
		case trinity.Goal:
			return strings.ToUpper(string(v))
		case trinity.Severity:
			return strings.ToUpper(string(v))
		case string:
			return strings.ToUpper(v)
		}
		return ""
	},
	"orTime": func(t time.Time) time.Time {
		if t.IsZero() {
			return time.Now()
		}
		return t
	},
	"yesNo": func(b bool) string {
		if b {
			return "yes"
		}
		return "no"
	},
}

var orgTemplate = template.Must(template.New("run").Funcs(orgFuncs).Parse(OrgTemplate))

// WriteOrg renders r as an Org-mode run report.
func WriteOrg(w io.Writer, r Run) error {
	return orgTemplate.Execute(w, r)
}

const OrgTemplate = `* SIMULATION: {{if .Scenario}}{{.Scenario}}{{else}}custom{{end}} ({{upper .Snapshot.Constraint.Severity}})
:PROPERTIES:
:RUN_ID:        {{if .RunID}}{{.RunID}}{{else}}(run-id?){{end}}
:SCENARIO:      {{if .Scenario}}{{.Scenario}}{{else}}custom{{end}}
:VIETNAM_RATE:  {{printf "%.2f" .Params.VietnamRate}}
:US_RATE:       {{printf "%.2f" .Params.USRate}}
:KAOPEN:        {{printf "%.3f" .Params.CapitalOpenness}}
:RESERVES:      {{printf "%.2f" .Params.ForeignReserves}}
:CENTRAL_RATE:  {{printf "%.0f" .Params.CentralRate}}
:CREATED:       [{{(orTime .Created).Format "2006-01-02 Mon 15:04"}}]
:END:

** Snapshot
| Indicator         | Value |
|-------------------+-------|
| Rate differential | {{printf "%.2f" .Snapshot.RateDifferential}} |
| Capital flow      | {{printf "%.2f" .Snapshot.CapitalFlow}} |
| Exchange rate     | {{printf "%.0f" .Snapshot.ExchangeRate.NewRate}} |
| Rate change %     | {{printf "%.2f" .Snapshot.ExchangeRate.PercentChange}} |
| Volatility %      | {{printf "%.2f" .Snapshot.Volatility}} |
| Reserves          | {{printf "%.2f" .Snapshot.Reserves.NewReserves}} |
| Depletion %       | {{printf "%.2f" .Snapshot.Reserves.PercentDepletion}} |

** Constraints
- Most violated: *{{upper .Snapshot.Constraint.MostViolated}}*
- Severity:      *{{upper .Snapshot.Constraint.Severity}}*
- MI violated:   {{yesNo .Snapshot.Constraint.Violations.MI}}
- ERS violated:  {{yesNo .Snapshot.Constraint.Violations.ERS}}
- KAO violated:  {{yesNo .Snapshot.Constraint.Violations.KAO}}

** Timeline ({{len .Timeline}} days)
{{- with .Final }}
- Final exchange rate: *{{printf "%.0f" .ExchangeRate}}*
- Final reserves:      *{{printf "%.2f" .Reserves}}*
- Final volatility:    *{{printf "%.2f" .Volatility}}%*
- Cumulative flow:     *{{printf "%.2f" .CumulativeOutflow}}*
- Final severity:      *{{upper .Severity}}*
{{- end }}
{{- if ge .FirstCrisisDay 0 }}
- First crisis day:    *{{.FirstCrisisDay}}* ({{.CrisisDays}} crisis days)
{{- else }}
- No crisis day in the horizon
{{- end }}

| Day | Rate | Reserves | Flow | Vol % | Severity |
|-----+------+----------+------+-------+----------|
{{- range .Timeline }}
| {{.Day}} | {{printf "%.0f" .ExchangeRate}} | {{printf "%.2f" .Reserves}} | {{printf "%.2f" .CapitalFlow}} | {{printf "%.2f" .Volatility}} | {{.Severity}} |
{{- end }}
`
