// Package apply executes a reviewed decision file against the project
// store. UPDATE entries patch existing projects and rebuild their child
// rows, CREATE entries insert new unpublished projects, SKIP entries are
// counted and left alone. A failing entry is logged and skipped so one
// bad row never aborts the batch.
package apply

import (
	"context"
	"fmt"
	"log/slog"

	"reconcile/internal/config"
	"reconcile/internal/credits"
	"reconcile/internal/decision"
	"reconcile/internal/inventory"
	"reconcile/internal/logging"
	"reconcile/internal/store"
)

// Outcome records what happened to a single decision entry.
type Outcome struct {
	Owner           string
	Slug            string
	Action          decision.Action
	ProjectID       string
	VideosInserted  int
	CreditsInserted int
	Err             error
}

// BatchResult aggregates a full apply pass.
type BatchResult struct {
	Updated         int
	Created         int
	Skipped         int
	Failed          int
	VideosInserted  int
	CreditsInserted int
	DryRun          bool
	Outcomes        []Outcome
}

// Engine applies decision entries to a store.
type Engine struct {
	store     *store.Store
	parser    *credits.Parser
	hostname  string
	chunkSize int
	logger    *slog.Logger
}

// NewEngine wires an apply engine from its collaborators. A nil logger
// falls back to a no-op logger.
func NewEngine(st *store.Store, parser *credits.Parser, cfg *config.Config, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Engine{
		store:     st,
		parser:    parser,
		hostname:  cfg.CDN.Hostname,
		chunkSize: cfg.Apply.InsertChunkSize,
		logger:    logger,
	}
}

// Run walks the decision file in order: updates first, then creates.
// In dry-run mode every mutation is logged and counted but the store is
// never touched.
func (e *Engine) Run(ctx context.Context, file *decision.File, dryRun bool) (*BatchResult, error) {
	updates, creates, skips := file.ByAction()
	result := &BatchResult{Skipped: len(skips), DryRun: dryRun}

	e.logger.Info("apply pass starting",
		logging.Int("updates", len(updates)),
		logging.Int("creates", len(creates)),
		logging.Int("skips", len(skips)),
		logging.Bool("dry_run", dryRun),
	)

	for _, entry := range updates {
		outcome := e.applyUpdate(ctx, entry, dryRun)
		result.record(outcome)
	}
	for _, entry := range creates {
		outcome := e.applyCreate(ctx, entry, dryRun)
		result.record(outcome)
	}
	for _, entry := range skips {
		e.logger.Info("skipping project",
			logging.String("owner", entry.Owner),
			logging.String("note", entry.Note),
		)
	}

	e.logger.Info("apply pass finished",
		logging.Int("updated", result.Updated),
		logging.Int("created", result.Created),
		logging.Int("skipped", result.Skipped),
		logging.Int("failed", result.Failed),
		logging.Int("videos_inserted", result.VideosInserted),
		logging.Int("credits_inserted", result.CreditsInserted),
	)
	return result, nil
}

func (r *BatchResult) record(outcome Outcome) {
	r.Outcomes = append(r.Outcomes, outcome)
	if outcome.Err != nil {
		r.Failed++
		return
	}
	switch outcome.Action {
	case decision.ActionUpdate:
		r.Updated++
	case decision.ActionCreate:
		r.Created++
	}
	r.VideosInserted += outcome.VideosInserted
	r.CreditsInserted += outcome.CreditsInserted
}

func (e *Engine) applyUpdate(ctx context.Context, entry decision.Entry, dryRun bool) Outcome {
	outcome := Outcome{
		Owner:     entry.Owner,
		Slug:      entry.ProjectSlug,
		Action:    decision.ActionUpdate,
		ProjectID: entry.ProjectID,
	}

	patch := e.buildPatch(entry)
	if dryRun {
		e.logger.Info("dry-run update",
			logging.String("slug", entry.ProjectSlug),
			logging.String("project_id", entry.ProjectID),
			logging.Int("videos", len(entry.Videos)),
		)
	} else if !patch.Empty() {
		if err := e.store.UpdateProject(ctx, entry.ProjectID, patch); err != nil {
			outcome.Err = fmt.Errorf("update %s: %w", entry.ProjectSlug, err)
			e.logger.Error("project update failed",
				logging.String("slug", entry.ProjectSlug),
				logging.Error(err),
			)
			return outcome
		}
	}

	e.writeChildren(ctx, entry, entry.ProjectID, dryRun, true, &outcome)
	if !dryRun {
		e.logger.Info("project updated", logging.String("slug", entry.ProjectSlug))
	}
	return outcome
}

func (e *Engine) applyCreate(ctx context.Context, entry decision.Entry, dryRun bool) Outcome {
	slug := entry.NewSlug
	if slug == "" {
		slug = entry.ProjectSlug
	}
	if slug == "" {
		slug = "unknown"
	}
	title := entry.NewTitle
	if title == "" {
		title = entry.ExportName
	}
	if title == "" {
		title = entry.Owner
	}

	outcome := Outcome{Owner: entry.Owner, Slug: slug, Action: decision.ActionCreate}

	row := store.ProjectRow{
		Title:       title,
		Slug:        slug,
		OwnerName:   entry.Owner,
		Kind:        "video",
		Published:   entry.Published != nil && *entry.Published,
		IsCampaign:  entry.IsCampaign,
		Subtitle:    "",
		Description: "",
	}
	if entry.ExportKind != "" {
		kind := entry.ExportKind
		row.Category = &kind
	}
	if data := entry.ExportData; data != nil {
		row.StyleTags = data.StyleTags
		row.PremiumAddons = data.AddonTags
		row.CameraTechniques = data.TechniqueTags
		row.AssetsDelivered = data.DeliveredTags
		row.ProductionDays = data.DayCount
		row.CrewCount = data.CrewCount
		row.TalentCount = data.CastCount
		row.LocationCount = data.LocationCount
	}
	if thumb := e.thumbnailURL(entry.Videos); thumb != "" {
		row.ThumbnailURL = &thumb
	}

	projectID := "dry-run-id"
	if dryRun {
		e.logger.Info("dry-run create",
			logging.String("slug", slug),
			logging.String("title", title),
			logging.Int("videos", len(entry.Videos)),
		)
	} else {
		id, err := e.store.InsertProject(ctx, row)
		if err != nil {
			outcome.Err = fmt.Errorf("create %s: %w", slug, err)
			e.logger.Error("project create failed",
				logging.String("slug", slug),
				logging.Error(err),
			)
			return outcome
		}
		projectID = id
	}
	outcome.ProjectID = projectID

	e.writeChildren(ctx, entry, projectID, dryRun, false, &outcome)
	if !dryRun {
		e.logger.Info("project created",
			logging.String("slug", slug),
			logging.String("project_id", projectID),
		)
	}
	return outcome
}

// buildPatch maps decision export data onto a sparse project patch.
// Only fields with actual data land in the patch.
func (e *Engine) buildPatch(entry decision.Entry) store.ProjectPatch {
	var patch store.ProjectPatch
	if entry.ExportKind != "" {
		kind := entry.ExportKind
		patch.Category = &kind
	}
	if entry.IsCampaign {
		isCampaign := true
		patch.IsCampaign = &isCampaign
	}
	if data := entry.ExportData; data != nil {
		patch.StyleTags = data.StyleTags
		patch.PremiumAddons = data.AddonTags
		patch.CameraTechniques = data.TechniqueTags
		patch.AssetsDelivered = data.DeliveredTags
		patch.ProductionDays = data.DayCount
		patch.CrewCount = data.CrewCount
		patch.TalentCount = data.CastCount
		patch.LocationCount = data.LocationCount
	}
	if thumb := e.thumbnailURL(entry.Videos); thumb != "" {
		patch.ThumbnailURL = &thumb
	}
	return patch
}

// writeChildren replaces the project's video and credit rows. replace
// controls whether existing rows are deleted first; CREATE entries have
// none to delete.
func (e *Engine) writeChildren(ctx context.Context, entry decision.Entry, projectID string, dryRun, replace bool, outcome *Outcome) {
	if len(entry.Videos) > 0 {
		rows := make([]store.VideoRow, 0, len(entry.Videos))
		for i, video := range entry.Videos {
			rows = append(rows, store.VideoRow{
				ProjectID:         projectID,
				VideoID:           video.ID,
				Title:             inventory.StripOwnerPrefix(video.Title),
				VideoType:         video.Type,
				SortOrder:         i,
				PasswordProtected: entry.PasswordProtected,
			})
		}
		if dryRun {
			e.logger.Info("dry-run videos",
				logging.String("slug", outcome.Slug),
				logging.Int("count", len(rows)),
			)
			outcome.VideosInserted = len(rows)
		} else {
			if replace {
				if err := e.store.DeleteVideos(ctx, projectID); err != nil {
					e.logger.Error("video delete failed",
						logging.String("slug", outcome.Slug),
						logging.Error(err),
					)
				}
			}
			outcome.VideosInserted = e.insertVideoChunks(ctx, outcome.Slug, rows)
		}
	}

	if entry.ExportData == nil || entry.ExportData.CreditsText == "" {
		return
	}
	parsed := e.parser.Parse(entry.ExportData.CreditsText)
	if len(parsed) == 0 {
		return
	}
	rows := make([]store.CreditRow, 0, len(parsed))
	for _, credit := range parsed {
		rows = append(rows, store.CreditRow{
			ProjectID: projectID,
			Role:      credit.Role,
			Name:      credit.Name,
			SortOrder: credit.SortOrder,
		})
	}
	if dryRun {
		e.logger.Info("dry-run credits",
			logging.String("slug", outcome.Slug),
			logging.Int("count", len(rows)),
		)
		outcome.CreditsInserted = len(rows)
		return
	}
	if replace {
		if err := e.store.DeleteCredits(ctx, projectID); err != nil {
			e.logger.Error("credit delete failed",
				logging.String("slug", outcome.Slug),
				logging.Error(err),
			)
		}
	}
	outcome.CreditsInserted = e.insertCreditChunks(ctx, outcome.Slug, rows)
}

// insertVideoChunks inserts video rows in bounded chunks. A failed chunk
// is logged and skipped; the remaining chunks still go in.
func (e *Engine) insertVideoChunks(ctx context.Context, slug string, rows []store.VideoRow) int {
	inserted := 0
	for start := 0; start < len(rows); start += e.chunkSize {
		end := min(start+e.chunkSize, len(rows))
		chunk := rows[start:end]
		if err := e.store.InsertVideos(ctx, chunk); err != nil {
			e.logger.Error("video insert failed",
				logging.String("slug", slug),
				logging.Int("chunk_start", start),
				logging.Error(err),
			)
			continue
		}
		inserted += len(chunk)
	}
	return inserted
}

func (e *Engine) insertCreditChunks(ctx context.Context, slug string, rows []store.CreditRow) int {
	inserted := 0
	for start := 0; start < len(rows); start += e.chunkSize {
		end := min(start+e.chunkSize, len(rows))
		chunk := rows[start:end]
		if err := e.store.InsertCredits(ctx, chunk); err != nil {
			e.logger.Error("credit insert failed",
				logging.String("slug", slug),
				logging.Int("chunk_start", start),
				logging.Error(err),
			)
			continue
		}
		inserted += len(chunk)
	}
	return inserted
}

// thumbnailURL derives the project thumbnail from the flagship video,
// falling back to the first video when no flagship exists.
func (e *Engine) thumbnailURL(videos []decision.Video) string {
	var id string
	for _, video := range videos {
		if video.Type == "flagship" {
			id = video.ID
			break
		}
	}
	if id == "" && len(videos) > 0 {
		id = videos[0].ID
	}
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://%s/%s/thumbnail.jpg", e.hostname, id)
}
