package matcher

import (
	"sort"

	"reconcile/internal/export"
	"reconcile/internal/inventory"
	"reconcile/internal/store"
	"reconcile/internal/textutil"
)

// LowConfidenceNote tags matched results that fall below the review
// threshold so they surface first during review.
const LowConfidenceNote = "LOW CONFIDENCE — needs review"

// MatchResult is one attempted three-way pairing anchored on a video
// group. Either of Database and External may be nil when only one source
// cleared the floor.
type MatchResult struct {
	Database   *store.Project        `json:"database"`
	External   *export.Record        `json:"external"`
	VideoGroup *inventory.VideoGroup `json:"video_group"`
	Confidence float64               `json:"confidence"`
	Notes      string                `json:"notes"`
}

// Partitions holds the four output buckets of a matching pass.
type Partitions struct {
	Matched      []MatchResult          `json:"matched"`
	VideoOnly    []inventory.VideoGroup `json:"video_only"`
	ExportOnly   []export.Record        `json:"export_only"`
	DatabaseOnly []store.Project        `json:"database_only"`
}

// Thresholds carries the scoring knobs of the matcher.
type Thresholds struct {
	// ConfidenceFloor is the strict minimum a candidate score must exceed
	// to be claimed.
	ConfidenceFloor float64
	// ReviewThreshold marks matches below it with LowConfidenceNote.
	ReviewThreshold float64
	// TitleDiscount scales export scores derived from a video title
	// rather than the owner label.
	TitleDiscount float64
}

// Strategy assigns export records and database projects to video groups.
type Strategy interface {
	Match(groups []inventory.VideoGroup, records []export.Record, projects []store.Project) Partitions
}

// Greedy is the single-pass assignment strategy the reconciliation has
// always used.
type Greedy struct {
	thresholds Thresholds
}

// NewGreedy constructs a Greedy strategy with the provided thresholds.
func NewGreedy(t Thresholds) *Greedy {
	return &Greedy{thresholds: t}
}

// matchState tracks which source records a pass has already consumed. It
// is owned by a single Match call and never shared.
type matchState struct {
	claimedExport   map[int]struct{}
	claimedDatabase map[string]struct{}
}

func newMatchState() *matchState {
	return &matchState{
		claimedExport:   make(map[int]struct{}),
		claimedDatabase: make(map[string]struct{}),
	}
}

// Match runs the greedy assignment. Groups are visited in input order;
// each may claim at most one unclaimed export record and one unclaimed
// database project. Matched results come back sorted ascending by
// confidence so a reviewer sees the riskiest pairings first.
func (g *Greedy) Match(groups []inventory.VideoGroup, records []export.Record, projects []store.Project) Partitions {
	state := newMatchState()
	var out Partitions

	for i := range groups {
		group := &groups[i]

		exportIdx, exportScore := g.bestExport(group, records, state)
		dbIdx, dbScore := g.bestDatabase(group, projects, state)

		confidence := exportScore
		if dbScore > confidence {
			confidence = dbScore
		}

		if confidence <= g.thresholds.ConfidenceFloor {
			out.VideoOnly = append(out.VideoOnly, *group)
			continue
		}

		result := MatchResult{VideoGroup: group, Confidence: confidence}
		if exportIdx >= 0 {
			state.claimedExport[exportIdx] = struct{}{}
			result.External = &records[exportIdx]
		}
		if dbIdx >= 0 {
			state.claimedDatabase[projects[dbIdx].ID] = struct{}{}
			result.Database = &projects[dbIdx]
		}
		if confidence < g.thresholds.ReviewThreshold {
			result.Notes = LowConfidenceNote
		}
		out.Matched = append(out.Matched, result)
	}

	for i := range records {
		if _, claimed := state.claimedExport[i]; !claimed {
			out.ExportOnly = append(out.ExportOnly, records[i])
		}
	}
	for i := range projects {
		if _, claimed := state.claimedDatabase[projects[i].ID]; !claimed {
			out.DatabaseOnly = append(out.DatabaseOnly, projects[i])
		}
	}

	sort.SliceStable(out.Matched, func(a, b int) bool {
		return out.Matched[a].Confidence < out.Matched[b].Confidence
	})
	return out
}

// bestExport scores every unclaimed export record against a group. A
// record can match on the owner label or, discounted, on any of the
// group's video display titles.
func (g *Greedy) bestExport(group *inventory.VideoGroup, records []export.Record, state *matchState) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	for i := range records {
		if _, claimed := state.claimedExport[i]; claimed {
			continue
		}
		score := textutil.MatchScore(group.Owner, records[i].Owner)
		for _, video := range group.Videos {
			titleScore := g.thresholds.TitleDiscount * textutil.MatchScore(inventory.DisplayTitle(video.Title), records[i].Name)
			if titleScore > score {
				score = titleScore
			}
		}
		if score > g.thresholds.ConfidenceFloor && score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, bestScore
}

// bestDatabase scores every unclaimed database project against a group's
// owner label, matching either the stored owner or the project title.
func (g *Greedy) bestDatabase(group *inventory.VideoGroup, projects []store.Project, state *matchState) (int, float64) {
	bestIdx := -1
	bestScore := 0.0
	for i := range projects {
		if _, claimed := state.claimedDatabase[projects[i].ID]; claimed {
			continue
		}
		score := textutil.MatchScore(group.Owner, projects[i].OwnerName)
		if titleScore := textutil.MatchScore(group.Owner, projects[i].Title); titleScore > score {
			score = titleScore
		}
		if score > g.thresholds.ConfidenceFloor && score > bestScore {
			bestIdx = i
			bestScore = score
		}
	}
	return bestIdx, bestScore
}
