package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// projectColumns is the fixed projection used by every project read.
const projectColumns = "id, title, slug, owner_name, kind, published, description, category, thumbnail_url"

// ListProjects returns every project ordered by title. The full set is
// assumed to fit in memory; no pagination is applied.
func (s *Store) ListProjects(ctx context.Context) ([]Project, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY title`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []Project
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, project)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate projects: %w", err)
	}
	return projects, nil
}

// GetProject fetches one project by ID. Returns nil when no row exists.
func (s *Store) GetProject(ctx context.Context, id string) (*Project, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &project, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProject(row rowScanner) (Project, error) {
	var (
		project   Project
		category  sql.NullString
		thumbnail sql.NullString
	)
	err := row.Scan(
		&project.ID,
		&project.Title,
		&project.Slug,
		&project.OwnerName,
		&project.Kind,
		&project.Published,
		&project.Description,
		&category,
		&thumbnail,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Project{}, err
		}
		return Project{}, fmt.Errorf("scan project: %w", err)
	}
	project.Category = category.String
	project.ThumbnailURL = thumbnail.String
	return project, nil
}

// InsertProject inserts a full project row, minting an ID when the caller
// did not supply one, and returns the ID.
func (s *Store) InsertProject(ctx context.Context, row ProjectRow) (string, error) {
	id := strings.TrimSpace(row.ID)
	if id == "" {
		id = uuid.NewString()
	}
	timestamp := time.Now().UTC().Format(time.RFC3339Nano)

	styleTags, err := encodeTags(row.StyleTags)
	if err != nil {
		return "", err
	}
	premiumAddons, err := encodeTags(row.PremiumAddons)
	if err != nil {
		return "", err
	}
	cameraTechniques, err := encodeTags(row.CameraTechniques)
	if err != nil {
		return "", err
	}
	assetsDelivered, err := encodeTags(row.AssetsDelivered)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(
		ctx,
		`INSERT INTO projects (
            id, title, slug, owner_name, kind, published, featured, placeholder,
            full_width, is_campaign, subtitle, description, category, thumbnail_url,
            style_tags, premium_addons, camera_techniques, assets_delivered,
            production_days, crew_count, talent_count, location_count,
            created_at, updated_at
        ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		id,
		row.Title,
		row.Slug,
		row.OwnerName,
		row.Kind,
		row.Published,
		row.Featured,
		row.Placeholder,
		row.FullWidth,
		row.IsCampaign,
		row.Subtitle,
		row.Description,
		nullableStringPtr(row.Category),
		nullableStringPtr(row.ThumbnailURL),
		styleTags,
		premiumAddons,
		cameraTechniques,
		assetsDelivered,
		nullableIntPtr(row.ProductionDays),
		nullableIntPtr(row.CrewCount),
		nullableIntPtr(row.TalentCount),
		nullableIntPtr(row.LocationCount),
		timestamp,
		timestamp,
	)
	if err != nil {
		return "", fmt.Errorf("insert project %s: %w", row.Slug, err)
	}
	return id, nil
}

// UpdateProject applies a sparse patch to one project. Fields the patch
// does not carry keep their stored values. Updating a missing project is
// an error.
func (s *Store) UpdateProject(ctx context.Context, id string, patch ProjectPatch) error {
	assignments := make([]string, 0, 12)
	args := make([]any, 0, 13)

	addSet := func(column string, value any) {
		assignments = append(assignments, column+" = ?")
		args = append(args, value)
	}

	if patch.Category != nil {
		addSet("category", *patch.Category)
	}
	if patch.IsCampaign != nil {
		addSet("is_campaign", *patch.IsCampaign)
	}
	if patch.ThumbnailURL != nil {
		addSet("thumbnail_url", *patch.ThumbnailURL)
	}
	for _, tags := range []struct {
		column string
		values []string
	}{
		{"style_tags", patch.StyleTags},
		{"premium_addons", patch.PremiumAddons},
		{"camera_techniques", patch.CameraTechniques},
		{"assets_delivered", patch.AssetsDelivered},
	} {
		if len(tags.values) == 0 {
			continue
		}
		encoded, err := encodeTags(tags.values)
		if err != nil {
			return err
		}
		addSet(tags.column, encoded)
	}
	if patch.ProductionDays != nil {
		addSet("production_days", *patch.ProductionDays)
	}
	if patch.CrewCount != nil {
		addSet("crew_count", *patch.CrewCount)
	}
	if patch.TalentCount != nil {
		addSet("talent_count", *patch.TalentCount)
	}
	if patch.LocationCount != nil {
		addSet("location_count", *patch.LocationCount)
	}

	if len(assignments) == 0 {
		return nil
	}
	addSet("updated_at", time.Now().UTC().Format(time.RFC3339Nano))
	args = append(args, id)

	res, err := s.db.ExecContext(
		ctx,
		"UPDATE projects SET "+strings.Join(assignments, ", ")+" WHERE id = ?",
		args...,
	)
	if err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update project %s: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("update project %s: no such project", id)
	}
	return nil
}

func encodeTags(tags []string) (any, error) {
	if len(tags) == 0 {
		return nil, nil
	}
	encoded, err := json.Marshal(tags)
	if err != nil {
		return nil, fmt.Errorf("encode tags: %w", err)
	}
	return string(encoded), nil
}

func nullableStringPtr(value *string) any {
	if value == nil {
		return nil
	}
	return *value
}

func nullableIntPtr(value *int) any {
	if value == nil {
		return nil
	}
	return *value
}
