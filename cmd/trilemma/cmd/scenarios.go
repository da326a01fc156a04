package cmd

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/config"
	"github.com/rustyeddy/trilemma/report"
	"github.com/rustyeddy/trilemma/scenario"
	"github.com/rustyeddy/trilemma/trinity"
	"github.com/spf13/cobra"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List or run the scenario presets",
	Long: `Scenario presets are named parameter sets, each choosing two of the
three Trinity goals (or, for the violation preset, all three).

Subcommands:
  list - show the presets
  run  - run presets through both models and compare severities

Examples:
  trilemma scenarios list --lang en
  trilemma scenarios run --all
  trilemma scenarios run baseline crisis-1997 --format json`,
}

var scenariosListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the scenario presets",
	RunE:  runScenariosList,
}

var scenariosRunCmd = &cobra.Command{
	Use:   "run [id...]",
	Short: "Run scenario presets through the snapshot and timeline models",
	RunE:  runScenariosRun,
}

var (
	scenariosAll    bool
	scenariosLimit  int
	scenariosFormat string
)

func init() {
	rootCmd.AddCommand(scenariosCmd)
	scenariosCmd.AddCommand(scenariosListCmd)
	scenariosCmd.AddCommand(scenariosRunCmd)

	scenariosRunCmd.Flags().BoolVar(&scenariosAll, "all", false, "run every preset")
	scenariosRunCmd.Flags().IntVar(&scenariosLimit, "parallel", 4, "maximum presets evaluated at once (0 = unlimited)")
	scenariosRunCmd.Flags().StringVarP(&scenariosFormat, "format", "F", "", "output format: table|json")
}

func goalList(goals []trinity.Goal) string {
	s := make([]string, len(goals))
	for i, g := range goals {
		s[i] = strings.ToUpper(string(g))
	}
	return strings.Join(s, "+")
}

func runScenariosList(cmd *cobra.Command, args []string) error {
	lang := cfg.Explain.Language
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tGOALS\tSEVERITY\tDESCRIPTION")
	for _, p := range presets {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
			p.ID, p.Name.In(lang), goalList(p.Goals), p.Severity, p.Description.In(lang))
	}
	return tw.Flush()
}

func runScenariosRun(cmd *cobra.Command, args []string) error {
	selected := presets
	if !scenariosAll {
		if len(args) == 0 {
			return fmt.Errorf("name at least one preset or pass --all")
		}
		selected = make([]scenario.Preset, 0, len(args))
		for _, id := range args {
			p, err := scenario.Get(id, presets)
			if err != nil {
				return err
			}
			selected = append(selected, p)
		}
	}

	outcomes, err := scenario.RunAll(cmd.Context(), selected, scenariosLimit)
	if err != nil {
		return err
	}

	if outputFormat(scenariosFormat) == config.FormatJSON {
		return report.WriteJSON(cmd.OutOrStdout(), outcomes)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tEXPECTED\tSNAPSHOT\tVIOLATED\tPEAK\tMATCH")
	mismatches := 0
	for _, o := range outcomes {
		match := "yes"
		if !o.Matches() {
			match = "no"
			mismatches++
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\t%s\n",
			o.Preset.ID, o.Preset.Severity, o.Snapshot.Constraint.Severity,
			strings.ToUpper(string(o.Snapshot.Constraint.MostViolated)), o.PeakSeverity(), match)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	log.Info().Int("presets", len(outcomes)).Int("mismatches", mismatches).Msg("scenarios evaluated")
	return nil
}
