package testsupport

import (
	"context"
	"testing"

	"reconcile/internal/config"
	"reconcile/internal/store"
)

// MustOpenStore opens the project store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *store.Store {
	t.Helper()

	st, err := store.Open(cfg.Paths.DatabasePath)
	if err != nil {
		t.Fatalf("store.Open: %v", err)
	}
	t.Cleanup(func() {
		st.Close()
	})
	return st
}

// NewProject inserts a minimal project for tests and returns its ID.
func NewProject(t testing.TB, st *store.Store, title, slug string) string {
	t.Helper()

	id, err := st.InsertProject(context.Background(), store.ProjectRow{
		Title:     title,
		Slug:      slug,
		OwnerName: title,
		Kind:      "video",
	})
	if err != nil {
		t.Fatalf("store.InsertProject: %v", err)
	}
	return id
}
