package cmd

import (
	"github.com/rustyeddy/trilemma/explain"
	"github.com/rustyeddy/trilemma/scenario"
	"github.com/rustyeddy/trilemma/trinity"
	"github.com/spf13/cobra"
)

// paramFlags are the policy inputs shared by every simulation command.
type paramFlags struct {
	vietnamRate     float64
	usRate          float64
	capitalOpenness float64
	foreignReserves float64
	centralRate     float64
	scenario        string
}

func (pf *paramFlags) register(cmd *cobra.Command) {
	fs := cmd.Flags()
	fs.Float64Var(&pf.vietnamRate, "vn-rate", trinity.BaselineVietnamRate, "Vietnam policy rate (%)")
	fs.Float64Var(&pf.usRate, "us-rate", trinity.BaselineUSRate, "US Fed rate (%)")
	fs.Float64Var(&pf.capitalOpenness, "openness", trinity.BaselineCapitalOpenness, "capital openness index (KAOPEN, -2..2)")
	fs.Float64Var(&pf.foreignReserves, "reserves", trinity.BaselineForeignReserves, "foreign reserves (billion USD)")
	fs.Float64Var(&pf.centralRate, "central-rate", trinity.BaselineCentralRate, "central exchange rate (VND/USD)")
	fs.StringVarP(&pf.scenario, "scenario", "s", "", "start from a scenario preset (see 'scenarios list')")
}

// resolve builds the run parameters: config defaults, then the preset, then
// explicitly set flags. Changes lists every parameter that ends up different
// from the baseline or was set on the command line.
func (pf *paramFlags) resolve(cmd *cobra.Command) (trinity.Parameters, explain.Changes, error) {
	p := cfg.Parameters
	if pf.scenario != "" {
		preset, err := scenario.Get(pf.scenario, presets)
		if err != nil {
			return trinity.Parameters{}, nil, err
		}
		p = preset.Params
	}

	fs := cmd.Flags()
	changes := explain.Changes{}
	set := func(flag, name string, dst *float64, v float64) {
		if fs.Changed(flag) {
			*dst = v
			changes[name] = v
		}
	}
	set("vn-rate", explain.ParamVietnamRate, &p.VietnamRate, pf.vietnamRate)
	set("us-rate", explain.ParamUSRate, &p.USRate, pf.usRate)
	set("openness", explain.ParamCapitalOpenness, &p.CapitalOpenness, pf.capitalOpenness)
	set("reserves", explain.ParamForeignReserves, &p.ForeignReserves, pf.foreignReserves)
	set("central-rate", explain.ParamCentralRate, &p.CentralRate, pf.centralRate)

	base := trinity.Baseline()
	diff := func(name string, v, b float64) {
		if v != b {
			changes[name] = v
		}
	}
	diff(explain.ParamVietnamRate, p.VietnamRate, base.VietnamRate)
	diff(explain.ParamUSRate, p.USRate, base.USRate)
	diff(explain.ParamCapitalOpenness, p.CapitalOpenness, base.CapitalOpenness)
	diff(explain.ParamForeignReserves, p.ForeignReserves, base.ForeignReserves)
	diff(explain.ParamCentralRate, p.CentralRate, base.CentralRate)

	if err := p.Validate(); err != nil {
		return trinity.Parameters{}, nil, err
	}
	return p, changes, nil
}

// outputFormat is the --format flag when set, else the configured format.
func outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	return cfg.Output.Format
}
