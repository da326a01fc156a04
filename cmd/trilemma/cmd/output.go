package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// openOutput returns stdout, or the named file when path (or the configured
// output file) is set. The returned close func is always non-nil.
func openOutput(cmd *cobra.Command, path string) (io.Writer, func() error, error) {
	if path == "" {
		path = cfg.Output.File
	}
	if path == "" || path == "-" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("create output file: %w", err)
	}
	return f, f.Close, nil
}
