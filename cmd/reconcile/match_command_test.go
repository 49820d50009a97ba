package main

import (
	"os"
	"testing"

	"reconcile/internal/report"
	"reconcile/internal/store"
	"reconcile/internal/testsupport"
)

func TestMatchCommandWritesReport(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.InventoryFile, testInventoryJSON)
	testsupport.WriteFile(t, env.cfg.Paths.ExportFile, testExportMarkdown)
	seedStore(t, env.cfg, func(st *store.Store) {
		testsupport.NewProject(t, st, "Acme Studios", "acme-studios")
	})

	out, _, err := runCLI(t, []string{"match"}, env.configPath)
	if err != nil {
		t.Fatalf("match: %v", err)
	}
	requireContains(t, out, "Matched")
	requireContains(t, out, "Report written to")

	rep, err := report.Read(env.cfg.Paths.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	if len(rep.Matched) != 2 {
		t.Fatalf("expected 2 matched groups, got %d", len(rep.Matched))
	}
	owners := map[string]bool{}
	for _, m := range rep.Matched {
		owners[m.VideoGroup.Owner] = true
	}
	if !owners["Acme Studios"] || !owners["Nova Films"] {
		t.Fatalf("unexpected matched owners: %v", owners)
	}
	for _, m := range rep.Matched {
		if m.VideoGroup.Owner == "Acme Studios" {
			if m.External == nil || m.Database == nil {
				t.Fatalf("Acme Studios should match both sources: %+v", m)
			}
		}
		if m.VideoGroup.Owner == "Nova Films" && m.Database != nil {
			t.Fatalf("Nova Films has no stored project: %+v", m)
		}
	}
}

func TestMatchCommandExcludesConfiguredCollections(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.InventoryFile, testInventoryJSON)
	testsupport.WriteFile(t, env.cfg.Paths.ExportFile, testExportMarkdown)

	if _, _, err := runCLI(t, []string{"match"}, env.configPath); err != nil {
		t.Fatalf("match: %v", err)
	}
	rep, err := report.Read(env.cfg.Paths.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	for _, m := range rep.Matched {
		if m.VideoGroup.Owner == "Hidden Reel" {
			t.Fatal("excluded collection leaked into matching")
		}
	}
	for _, group := range rep.VideoOnly {
		if group.Owner == "Hidden Reel" {
			t.Fatal("excluded collection leaked into video-only bucket")
		}
	}
}

func TestMatchCommandHonorsReportFlag(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.InventoryFile, testInventoryJSON)
	testsupport.WriteFile(t, env.cfg.Paths.ExportFile, testExportMarkdown)

	target := env.cfg.Paths.ReportPath + ".alt"
	if _, _, err := runCLI(t, []string{"match", "--report", target}, env.configPath); err != nil {
		t.Fatalf("match: %v", err)
	}
	if _, err := os.Stat(target); err != nil {
		t.Fatalf("expected report at %s: %v", target, err)
	}
}

func TestMatchCommandMissingInventoryFails(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.ExportFile, testExportMarkdown)

	if _, _, err := runCLI(t, []string{"match"}, env.configPath); err == nil {
		t.Fatal("expected error for missing inventory file")
	}
}

func TestReportShowAfterMatch(t *testing.T) {
	env := setupCLITestEnv(t)
	testsupport.WriteFile(t, env.cfg.Paths.InventoryFile, testInventoryJSON)
	testsupport.WriteFile(t, env.cfg.Paths.ExportFile, testExportMarkdown)
	seedStore(t, env.cfg, func(st *store.Store) {
		testsupport.NewProject(t, st, "Orphan Project", "orphan-project")
	})

	if _, _, err := runCLI(t, []string{"match"}, env.configPath); err != nil {
		t.Fatalf("match: %v", err)
	}
	out, _, err := runCLI(t, []string{"report", "show", "--full"}, env.configPath)
	if err != nil {
		t.Fatalf("report show: %v", err)
	}
	requireContains(t, out, "Matched")
	requireContains(t, out, "Database only (no matches):")
	requireContains(t, out, "Orphan Project")
}
