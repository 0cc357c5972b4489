package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func main() {
	rootCmd := newRootCmd(afero.NewOsFs())
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// newRootCmd builds the proselint command tree. The filesystem is injected
// so tests can run against an in-memory filesystem.
func newRootCmd(fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "proselint",
		Short:        "Rule-based prose linter for markdown and text content",
		Long:         "proselint scans prose content for spelling, grammar, honorific, placeholder,\ncapitalization, and style issues, and can apply mechanical fixes.",
		SilenceUsage: true,
	}

	cmd.AddCommand(newCheckCmd(fs))
	cmd.AddCommand(newFixCmd(fs))

	return cmd
}
