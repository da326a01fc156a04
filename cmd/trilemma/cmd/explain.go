package cmd

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/credential"
	"github.com/rustyeddy/trilemma/explain"
	"github.com/rustyeddy/trilemma/trinity"
	"github.com/spf13/cobra"
)

var explainCmd = &cobra.Command{
	Use:   "explain",
	Short: "Ask Gemini to explain a snapshot",
	Long: `Run the snapshot model and ask the Gemini API to explain the result
in economic terms, in Vietnamese (default) or English.

The API key is read from the credential store ('trilemma key set'), then
from the config file or the GEMINI_API_KEY / TRILEMMA_API_KEY variables.

Examples:
  trilemma explain --scenario crisis-1997
  trilemma explain --vn-rate 6 --quick --lang en
  trilemma explain --scenario violation --dry-run`,
	RunE: runExplain,
}

var (
	explainParams paramFlags
	explainQuick  bool
	explainDryRun bool
)

func init() {
	rootCmd.AddCommand(explainCmd)
	explainParams.register(explainCmd)
	explainCmd.Flags().BoolVarP(&explainQuick, "quick", "q", false, "ask for a short two-sentence insight")
	explainCmd.Flags().BoolVar(&explainDryRun, "dry-run", false, "print the prompt instead of calling the API")
}

func runExplain(cmd *cobra.Command, args []string) error {
	p, changes, err := explainParams.resolve(cmd)
	if err != nil {
		return err
	}
	lang, err := explain.ParseLanguage(cfg.Explain.Language)
	if err != nil {
		return err
	}

	res := trinity.RunSnapshot(p)
	out := cmd.OutOrStdout()

	if explainDryRun {
		if explainQuick {
			fmt.Fprintln(out, explain.QuickInsightPrompt(res, lang))
		} else {
			fmt.Fprintln(out, explain.BuildPrompt(res, changes, lang))
		}
		return nil
	}

	key, err := apiKey()
	if err != nil {
		return err
	}
	gen, err := explain.NewGemini(cmd.Context(), key, cfg.Explain.Model)
	if err != nil {
		return err
	}
	ex := explain.New(gen, log.Logger)

	var text string
	if explainQuick {
		text, err = ex.QuickInsight(cmd.Context(), res, lang)
	} else {
		text, err = ex.Explain(cmd.Context(), res, changes, lang)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(out, text)
	return nil
}

// apiKey resolves the generator key from the store, then config.
func apiKey() (string, error) {
	var s credential.Store
	store, err := credential.NewSQLite(cfg.Credential.DBPath)
	if err != nil {
		log.Warn().Err(err).Str("db", cfg.Credential.DBPath).Msg("credential store unavailable")
	} else {
		defer store.Close()
		s = store
	}

	key, err := credential.Resolve(s, cfg.Explain.APIKey)
	if errors.Is(err, credential.ErrNotFound) {
		return "", explain.ErrNotConfigured
	}
	return key, err
}
