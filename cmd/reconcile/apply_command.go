package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"reconcile/internal/apply"
	"reconcile/internal/credits"
	"reconcile/internal/decision"
	"reconcile/internal/store"
)

func newApplyCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool
	var decisionPath string

	cmd := &cobra.Command{
		Use:   "apply",
		Short: "Execute a reviewed decision file against the project store",
		Long: "Reads the decision file produced from a reviewed match report and applies\n" +
			"its UPDATE and CREATE entries to the project store. A failing entry is\n" +
			"reported and skipped; the rest of the batch still runs.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			// One apply pass at a time. The child-row replacement is
			// delete-then-insert, so a concurrent pass could interleave.
			lock := flock.New(filepath.Join(cfg.Paths.LogDir, "reconcile.lock"))
			locked, err := lock.TryLock()
			if err != nil {
				return fmt.Errorf("acquire apply lock: %w", err)
			}
			if !locked {
				return errors.New("another apply pass is already running")
			}
			defer lock.Unlock()

			source := decisionPath
			if source == "" {
				source = cfg.Paths.DecisionPath
			}
			file, err := decision.Load(source)
			if err != nil {
				return err
			}

			st, err := store.Open(cfg.Paths.DatabasePath)
			if err != nil {
				return err
			}
			defer st.Close()

			parser, err := credits.NewParser()
			if err != nil {
				return err
			}

			engine := apply.NewEngine(st, parser, cfg, logger)
			result, err := engine.Run(cmd.Context(), file, dryRun)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Projects updated:  %d\n", result.Updated)
			fmt.Fprintf(out, "Projects created:  %d\n", result.Created)
			fmt.Fprintf(out, "Projects skipped:  %d\n", result.Skipped)
			fmt.Fprintf(out, "Videos inserted:   %d\n", result.VideosInserted)
			fmt.Fprintf(out, "Credits inserted:  %d\n", result.CreditsInserted)
			if result.Failed > 0 {
				fmt.Fprintf(out, "Failed entries:    %d\n", result.Failed)
				for _, outcome := range result.Outcomes {
					if outcome.Err != nil {
						fmt.Fprintf(out, "  ✗ %s: %v\n", outcome.Owner, outcome.Err)
					}
				}
			}
			if dryRun {
				fmt.Fprintln(out, "\n(dry run, no changes made)")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log planned changes without touching the store")
	cmd.Flags().StringVar(&decisionPath, "decisions", "", "Decision file (defaults to the configured path)")
	return cmd
}
