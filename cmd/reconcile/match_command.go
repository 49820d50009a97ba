package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"reconcile/internal/export"
	"reconcile/internal/inventory"
	"reconcile/internal/logging"
	"reconcile/internal/matcher"
	"reconcile/internal/report"
	"reconcile/internal/store"
)

func newMatchCommand(ctx *commandContext) *cobra.Command {
	var reportPath string

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match CDN inventory and notes export against the project store",
		Long: "Loads the CDN video inventory and the notes export, groups videos by owner,\n" +
			"matches each group against export records and stored projects, and writes\n" +
			"a review report. Matched pairs are listed riskiest first.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			assets, err := inventory.Load(cfg.Paths.InventoryFile)
			if err != nil {
				return err
			}
			groups := inventory.Group(assets, cfg.CDN.ExcludedCollections)
			logger.Info("inventory loaded",
				logging.Int("assets", len(assets)),
				logging.Int("groups", len(groups)),
			)

			records, err := export.Load(cfg.Paths.ExportFile)
			if err != nil {
				return err
			}
			logger.Info("export loaded", logging.Int("records", len(records)))

			st, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			projects, err := st.ListProjects(cmd.Context())
			if err != nil {
				return err
			}
			logger.Info("projects loaded", logging.Int("projects", len(projects)))

			strategy := matcher.NewGreedy(matcher.Thresholds{
				ConfidenceFloor: cfg.Matching.ConfidenceFloor,
				ReviewThreshold: cfg.Matching.ReviewThreshold,
				TitleDiscount:   cfg.Matching.TitleDiscount,
			})
			partitions := strategy.Match(groups, records, projects)

			rep := report.New(partitions)
			target := reportPath
			if target == "" {
				target = cfg.Paths.ReportPath
			}
			if err := rep.Write(target); err != nil {
				return err
			}
			logger.Info("report written", logging.String("path", target))

			out := cmd.OutOrStdout()
			printSummary(out, rep.Summarize(cfg.Matching.ReviewThreshold))
			printMatched(out, partitions.Matched)
			printVideoOnly(out, partitions.VideoOnly)
			printExportOnly(out, partitions.ExportOnly)
			printDatabaseOnly(out, partitions.DatabaseOnly)
			fmt.Fprintf(out, "\nReport written to %s\n", target)
			return nil
		},
	}

	cmd.Flags().StringVar(&reportPath, "report", "", "Report destination (defaults to the configured path)")
	return cmd
}
