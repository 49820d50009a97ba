package store

import (
	"context"
	"fmt"
	"strings"
)

// DeleteVideos removes every child video row of a project.
func (s *Store) DeleteVideos(ctx context.Context, projectID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM project_videos WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("delete videos for %s: %w", projectID, err)
	}
	return nil
}

// InsertVideos inserts a batch of child video rows in one statement. The
// caller is responsible for keeping batches under the request-size limit.
func (s *Store) InsertVideos(ctx context.Context, rows []VideoRow) error {
	if len(rows) == 0 {
		return nil
	}
	placeholders := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*6)
	for _, row := range rows {
		placeholders = append(placeholders, "(?, ?, ?, ?, ?, ?)")
		args = append(args, row.ProjectID, row.VideoID, row.Title, row.VideoType, row.SortOrder, row.PasswordProtected)
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO project_videos (project_id, video_id, title, video_type, sort_order, password_protected) VALUES `+
			strings.Join(placeholders, ", "),
		args...,
	)
	if err != nil {
		return fmt.Errorf("insert %d videos: %w", len(rows), err)
	}
	return nil
}

// ListVideos returns a project's child video rows in sort order.
func (s *Store) ListVideos(ctx context.Context, projectID string) ([]VideoRow, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT project_id, video_id, title, video_type, sort_order, password_protected
         FROM project_videos WHERE project_id = ? ORDER BY sort_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list videos for %s: %w", projectID, err)
	}
	defer rows.Close()

	var videos []VideoRow
	for rows.Next() {
		var v VideoRow
		if err := rows.Scan(&v.ProjectID, &v.VideoID, &v.Title, &v.VideoType, &v.SortOrder, &v.PasswordProtected); err != nil {
			return nil, fmt.Errorf("scan video: %w", err)
		}
		videos = append(videos, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate videos: %w", err)
	}
	return videos, nil
}

// DeleteCredits removes every child credit row of a project.
func (s *Store) DeleteCredits(ctx context.Context, projectID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM project_credits WHERE project_id = ?`, projectID); err != nil {
		return fmt.Errorf("delete credits for %s: %w", projectID, err)
	}
	return nil
}

// InsertCredits inserts a batch of child credit rows in one statement.
func (s *Store) InsertCredits(ctx context.Context, rows []CreditRow) error {
	if len(rows) == 0 {
		return nil
	}
	placeholders := make([]string, 0, len(rows))
	args := make([]any, 0, len(rows)*4)
	for _, row := range rows {
		placeholders = append(placeholders, "(?, ?, ?, ?)")
		args = append(args, row.ProjectID, row.Role, row.Name, row.SortOrder)
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO project_credits (project_id, role, name, sort_order) VALUES `+
			strings.Join(placeholders, ", "),
		args...,
	)
	if err != nil {
		return fmt.Errorf("insert %d credits: %w", len(rows), err)
	}
	return nil
}

// ListCredits returns a project's child credit rows in sort order.
func (s *Store) ListCredits(ctx context.Context, projectID string) ([]CreditRow, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT project_id, role, name, sort_order
         FROM project_credits WHERE project_id = ? ORDER BY sort_order`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list credits for %s: %w", projectID, err)
	}
	defer rows.Close()

	var credits []CreditRow
	for rows.Next() {
		var c CreditRow
		if err := rows.Scan(&c.ProjectID, &c.Role, &c.Name, &c.SortOrder); err != nil {
			return nil, fmt.Errorf("scan credit: %w", err)
		}
		credits = append(credits, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate credits: %w", err)
	}
	return credits, nil
}
