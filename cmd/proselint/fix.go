package main

import (
	"fmt"
	"io"

	"github.com/Code-Monger/ProseSpinneret/pkg/autofix"
	"github.com/Code-Monger/ProseSpinneret/pkg/config"
	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/Code-Monger/ProseSpinneret/pkg/validator"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type fixOptions struct {
	configPath  string
	dryRun      bool
	customWords []string
}

func newFixCmd(fs afero.Fs) *cobra.Command {
	opts := &fixOptions{}

	cmd := &cobra.Command{
		Use:   "fix [files...]",
		Short: "Apply mechanical fixes to prose files",
		Long:  "Validate prose files and rewrite them in place with fixes applied for\nspelling, grammar, honorific, and capitalization issues. Placeholder and\nstyle issues are reported but left for a human.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFix(cmd.OutOrStdout(), fs, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "Path to the config file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "Report what would change without writing files")
	cmd.Flags().StringSliceVar(&opts.customWords, "custom-words", nil, "Additional words to consider correctly spelled")

	return cmd
}

func runFix(out io.Writer, fs afero.Fs, opts *fixOptions, args []string) error {
	cfg, err := config.Load(fs, opts.configPath)
	if err != nil {
		return err
	}

	v := validator.New(validator.Options{
		EnabledTypes: cfg.EnabledTypes(),
		CustomWords:  append(cfg.CustomWords, opts.customWords...),
	})
	engine := autofix.NewEngine()

	files, err := expandPaths(fs, args)
	if err != nil {
		return err
	}

	totalFixed := 0
	for _, file := range files {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %v", file, err)
		}
		content := string(data)

		issues := v.Validate(content, file)
		fixed, result := engine.ApplyFixes(content, issues)

		if result.Total() == 0 {
			continue
		}
		totalFixed += result.Total()

		fmt.Fprintf(out, "%s: %d fix(es)", file, result.Total())
		for _, ruleType := range rules.AutoFixableTypes {
			if count := result.Fixed[ruleType]; count > 0 {
				fmt.Fprintf(out, " %s=%d", ruleType, count)
			}
		}
		if result.Skipped > 0 {
			fmt.Fprintf(out, " (skipped %d)", result.Skipped)
		}
		fmt.Fprintln(out)

		for _, failure := range result.Failures {
			fmt.Fprintf(out, "  failed on line %d: %s\n", failure.Issue.Line, failure.Reason)
		}

		if !opts.dryRun && fixed != content {
			if err := afero.WriteFile(fs, file, []byte(fixed), 0644); err != nil {
				return fmt.Errorf("error writing %s: %v", file, err)
			}
		}
	}

	if totalFixed == 0 {
		fmt.Fprintln(out, "Nothing to fix")
	} else if opts.dryRun {
		fmt.Fprintf(out, "Dry run: %d fix(es) not written\n", totalFixed)
	}

	return nil
}
