package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"reconcile/internal/config"
	"reconcile/internal/store"
	"reconcile/internal/testsupport"
)

type cliTestEnv struct {
	cfg        *config.Config
	configPath string
}

func setupCLITestEnv(t *testing.T) *cliTestEnv {
	t.Helper()

	cfg := testsupport.NewConfig(t)
	configPath := filepath.Join(testsupport.BaseDir(cfg), "config.toml")
	writeTestConfig(t, configPath, cfg)

	return &cliTestEnv{cfg: cfg, configPath: configPath}
}

func writeTestConfig(t *testing.T, path string, cfg *config.Config) {
	t.Helper()
	encoded, err := toml.Marshal(cfg)
	if err != nil {
		t.Fatalf("encode test config: %v", err)
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		t.Fatalf("write test config: %v", err)
	}
}

// seedStore opens the configured database, runs fn against it, and closes
// it again so the command under test can reopen the file.
func seedStore(t *testing.T, cfg *config.Config, fn func(*store.Store)) {
	t.Helper()
	st, err := store.Open(cfg.Paths.DatabasePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	fn(st)
	if err := st.Close(); err != nil {
		t.Fatalf("store.Close: %v", err)
	}
}

func runCLI(t *testing.T, args []string, configPath string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	flags := []string{}
	if configPath != "" {
		flags = append(flags, "--config", configPath)
	}
	cmd.SetArgs(append(flags, args...))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireContains(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Fatalf("expected %q to contain %q", output, substr)
	}
}

const testInventoryJSON = `[
  {
    "title": "Acme Studios • Brand Anthem",
    "bunny_url": "https://video.example.net/play/lib/vid-acme-1",
    "collection": "Portfolio"
  },
  {
    "title": "Acme Studios • BTS",
    "bunny_url": "https://video.example.net/play/lib/vid-acme-2",
    "collection": "Portfolio"
  },
  {
    "title": "Nova Films • Launch Film",
    "bunny_url": "https://video.example.net/play/lib/vid-nova-1",
    "collection": "Portfolio"
  },
  {
    "title": "Hidden Reel",
    "bunny_url": "https://video.example.net/play/lib/vid-reel-1",
    "collection": "Talent Reels for Portals"
  }
]
`

const testExportMarkdown = "" +
	"| #<br>project | owner | kind | locations | cast | crew | days | techniques | addons | style | delivered | credits |\n" +
	"| --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- | --- |\n" +
	"| \U0001f680<br>Acme Studios<br># | Acme Studios<br># | brand | 3<br># | 5 | 8 | 2 | aerial<br>gimbal | # | cinematic | film<br>cutdowns | director Jane Doe editor Sam Lee |\n" +
	"| \U0001f680<br>Nova Films<br># | \U0001f198 Nova Films<br># | launch | 1 | 2 | 4 | 1 | handheld | # | documentary | film | director Ana Ruiz |\n"
