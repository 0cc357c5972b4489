package main

import (
	"fmt"
	"io"

	"github.com/Code-Monger/ProseSpinneret/pkg/config"
	"github.com/Code-Monger/ProseSpinneret/pkg/report"
	"github.com/Code-Monger/ProseSpinneret/pkg/rules"
	"github.com/Code-Monger/ProseSpinneret/pkg/validator"
	"github.com/fatih/color"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type checkOptions struct {
	configPath  string
	jsonOutput  bool
	noColor     bool
	strict      bool
	customWords []string
}

func newCheckCmd(fs afero.Fs) *cobra.Command {
	opts := &checkOptions{}

	cmd := &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate prose files and report issues",
		Long:  "Validate prose files against all enabled rules. Exits with code 1 when any\ncritical or high severity issue is found, for use as a CI gate.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), fs, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.configPath, "config", "c", config.DefaultFileName, "Path to the config file")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Emit issues as JSON")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Disable colored output")
	cmd.Flags().BoolVar(&opts.strict, "strict-spelling", false, "Also flag words unknown to the embedded word list")
	cmd.Flags().StringSliceVar(&opts.customWords, "custom-words", nil, "Additional words to consider correctly spelled")

	return cmd
}

func runCheck(out io.Writer, fs afero.Fs, opts *checkOptions, args []string) error {
	cfg, err := config.Load(fs, opts.configPath)
	if err != nil {
		return err
	}

	v := validator.New(validator.Options{
		EnabledTypes:   cfg.EnabledTypes(),
		CustomWords:    append(cfg.CustomWords, opts.customWords...),
		StrictSpelling: cfg.StrictSpelling || opts.strict,
	})

	files, err := expandPaths(fs, args)
	if err != nil {
		return err
	}

	var allIssues []rules.Issue
	for _, file := range files {
		data, err := afero.ReadFile(fs, file)
		if err != nil {
			return fmt.Errorf("error reading %s: %v", file, err)
		}
		allIssues = append(allIssues, v.Validate(string(data), file)...)
	}

	if opts.jsonOutput {
		text, err := report.FormatJSON(allIssues)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	} else {
		printIssues(out, allIssues, opts.noColor)
	}

	if validator.HasBlockingIssues(allIssues) {
		counts := report.CountBySeverity(allIssues)
		return fmt.Errorf("validation failed: %d critical, %d high severity issue(s)",
			counts[rules.SeverityCritical], counts[rules.SeverityHigh])
	}

	return nil
}

// severityColors maps severities to their terminal colors.
var severityColors = map[rules.Severity]*color.Color{
	rules.SeverityCritical: color.New(color.FgRed, color.Bold),
	rules.SeverityHigh:     color.New(color.FgYellow),
	rules.SeverityMedium:   color.New(color.FgBlue),
	rules.SeverityLow:      color.New(color.FgMagenta),
}

// printIssues renders issues grouped by severity with colored headings.
func printIssues(out io.Writer, issues []rules.Issue, noColor bool) {
	if noColor {
		color.NoColor = true
	}

	if len(issues) == 0 {
		fmt.Fprintln(out, report.NoIssuesMessage)
		return
	}

	fmt.Fprintf(out, "Found %d issue(s):\n", len(issues))
	for _, severity := range rules.SeverityOrder {
		for _, issue := range issues {
			if issue.Severity != severity {
				continue
			}
			label := severityColors[severity].Sprintf("%-8s", severity)
			fmt.Fprintf(out, "%s %s:%d [%s] %s\n", label, issue.File, issue.Line, issue.Type, issue.Message)
			if issue.Suggestion != "" {
				fmt.Fprintf(out, "         %s\n", issue.Suggestion)
			}
		}
	}
}
