package cmd

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/config"
	"github.com/rustyeddy/trilemma/internal/logging"
	"github.com/rustyeddy/trilemma/scenario"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "trilemma",
	Short: "Impossible Trinity exchange rate simulator",
	Long: `Trilemma simulates the Impossible Trinity trade-off for the VND/USD rate.

A country can hold at most two of: monetary independence, a stable exchange
rate and an open capital account. Given policy rates, capital openness and
foreign reserves, trilemma computes:
  - an instantaneous snapshot of the derived indicators
  - a 30-day trajectory with reserve depletion and capital-flight panic
  - an optional AI explanation of the result (Gemini)`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadConfig,
}

var (
	cfgFile       string
	logLevel      string
	dbPath        string
	language      string
	scenariosFile string

	cfg     *config.Config
	presets []scenario.Preset
)

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintln(rootCmd.ErrOrStderr(), "error:", err)
	}
	return err
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (YAML or JSON, optional)")
	pf.StringVar(&logLevel, "log-level", "", "log level: debug|info|warn|error")
	pf.StringVar(&dbPath, "db", "", "credential store database")
	pf.StringVar(&language, "lang", "", "explanation language: vi|en")
	pf.StringVar(&scenariosFile, "scenarios", "", "YAML file with extra scenario presets")
}

func loadConfig(cmd *cobra.Command, args []string) error {
	c := config.Default()
	if cfgFile != "" {
		loaded, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return err
		}
		c = loaded
	} else {
		c.ApplyEnv()
	}

	if cmd.Flags().Changed("log-level") {
		c.Log.Level = logLevel
	}
	if cmd.Flags().Changed("db") {
		c.Credential.DBPath = dbPath
	}
	if cmd.Flags().Changed("lang") {
		c.Explain.Language = language
	}
	if err := c.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := logging.Setup(c.Log.Level, c.Log.Pretty, cmd.ErrOrStderr()); err != nil {
		return err
	}

	presets = scenario.All()
	if scenariosFile != "" {
		p, err := scenario.LoadFile(scenariosFile)
		if err != nil {
			return err
		}
		presets = p
	}

	cfg = c
	log.Debug().
		Str("config", cfgFile).
		Str("format", c.Output.Format).
		Int("scenarios", len(presets)).
		Msg("configuration loaded")
	return nil
}
