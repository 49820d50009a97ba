package main

import (
	"github.com/spf13/cobra"

	"reconcile/internal/report"
)

func newReportCommand(ctx *commandContext) *cobra.Command {
	reportCmd := &cobra.Command{
		Use:   "report",
		Short: "Inspect a previously written match report",
	}
	reportCmd.AddCommand(newReportShowCommand(ctx))
	return reportCmd
}

func newReportShowCommand(ctx *commandContext) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Summarize the match report",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			rep, err := report.Read(cfg.Paths.ReportPath)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSummary(out, rep.Summarize(cfg.Matching.ReviewThreshold))
			printMatched(out, rep.Matched)

			if !full {
				return nil
			}
			printVideoOnly(out, rep.VideoOnly)
			printExportOnly(out, rep.ExportOnly)
			printDatabaseOnly(out, rep.DatabaseOnly)
			return nil
		},
	}

	cmd.Flags().BoolVar(&full, "full", false, "Also list the unmatched buckets")
	return cmd
}
