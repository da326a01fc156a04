package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/rustyeddy/trilemma/credential"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var keyCmd = &cobra.Command{
	Use:   "key",
	Short: "Manage the stored Gemini API key",
	Long: `Store, inspect or remove the Gemini API key kept in the local SQLite
credential store (see --db).

Subcommands:
  set   - store a key (prompts when no value is given)
  show  - print the stored key, masked
  clear - remove the stored key

Examples:
  trilemma key set
  echo "$KEY" | trilemma key set
  trilemma key show`,
}

var keySetCmd = &cobra.Command{
	Use:   "set [value]",
	Short: "Store an API key",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runKeySet,
}

var keyShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored API key (masked)",
	Args:  cobra.NoArgs,
	RunE:  runKeyShow,
}

var keyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the stored API key",
	Args:  cobra.NoArgs,
	RunE:  runKeyClear,
}

func init() {
	rootCmd.AddCommand(keyCmd)
	keyCmd.AddCommand(keySetCmd)
	keyCmd.AddCommand(keyShowCmd)
	keyCmd.AddCommand(keyClearCmd)
}

func openStore() (*credential.SQLiteStore, error) {
	return credential.NewSQLite(cfg.Credential.DBPath)
}

// readKey prompts without echo on a terminal and reads one line otherwise.
func readKey(cmd *cobra.Command) (string, error) {
	fd := int(os.Stdin.Fd())
	if cmd.InOrStdin() == os.Stdin && term.IsTerminal(fd) {
		fmt.Fprint(cmd.ErrOrStderr(), "Gemini API key: ")
		b, err := term.ReadPassword(fd)
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read key: %w", err)
		}
		return strings.TrimSpace(string(b)), nil
	}

	line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read key: %w", err)
	}
	return strings.TrimSpace(line), nil
}

func runKeySet(cmd *cobra.Command, args []string) error {
	var key string
	if len(args) == 1 {
		key = strings.TrimSpace(args[0])
	} else {
		k, err := readKey(cmd)
		if err != nil {
			return err
		}
		key = k
	}
	if key == "" {
		return errors.New("empty key, use 'trilemma key clear' to remove the stored key")
	}

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(key); err != nil {
		return err
	}
	log.Info().Str("db", store.Path()).Msg("api key stored")
	fmt.Fprintf(cmd.OutOrStdout(), "✓ Stored key %s in %s\n", credential.Mask(key), store.Path())
	return nil
}

func runKeyShow(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	key, err := store.Load()
	if errors.Is(err, credential.ErrNotFound) {
		fmt.Fprintln(cmd.OutOrStdout(), "no key stored")
		return nil
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), credential.Mask(key))
	return nil
}

func runKeyClear(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.Save(""); err != nil {
		return err
	}
	log.Info().Str("db", store.Path()).Msg("api key cleared")
	fmt.Fprintln(cmd.OutOrStdout(), "✓ Key cleared")
	return nil
}
