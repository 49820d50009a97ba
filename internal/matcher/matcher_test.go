package matcher

import (
	"testing"

	"reconcile/internal/export"
	"reconcile/internal/inventory"
	"reconcile/internal/store"
)

func defaultThresholds() Thresholds {
	return Thresholds{ConfidenceFloor: 0.4, ReviewThreshold: 0.7, TitleDiscount: 0.9}
}

func group(owner string, titles ...string) inventory.VideoGroup {
	g := inventory.VideoGroup{Owner: owner}
	for i, title := range titles {
		g.Videos = append(g.Videos, inventory.VideoAsset{
			Title:     owner + " • " + title,
			SourceURL: "https://cdn/play/1/" + owner + "-" + string(rune('a'+i)),
		})
		g.VideoIDs = append(g.VideoIDs, g.Videos[i].ID())
	}
	return g
}

func TestMatchThreeWay(t *testing.T) {
	groups := []inventory.VideoGroup{group("Acme Corp", "Spring Launch")}
	records := []export.Record{{Name: "Spring Launch", Owner: "ACME Corp."}}
	projects := []store.Project{{ID: "p1", Title: "Spring Launch", OwnerName: "Acme Corporation"}}

	out := NewGreedy(defaultThresholds()).Match(groups, records, projects)

	if len(out.Matched) != 1 {
		t.Fatalf("Matched = %d, want 1", len(out.Matched))
	}
	m := out.Matched[0]
	if m.External == nil || m.Database == nil {
		t.Fatalf("expected both sources claimed: %+v", m)
	}
	// Exact normalized owner match on the export side wins outright.
	if m.Confidence != 1.0 {
		t.Errorf("Confidence = %v, want 1.0", m.Confidence)
	}
	if m.Notes != "" {
		t.Errorf("Notes = %q, want empty for high confidence", m.Notes)
	}
	if len(out.VideoOnly)+len(out.ExportOnly)+len(out.DatabaseOnly) != 0 {
		t.Errorf("unexpected leftovers: %+v", out)
	}
}

func TestMatchBelowFloorGoesVideoOnly(t *testing.T) {
	groups := []inventory.VideoGroup{group("Zyndrax Labs", "Reel")}
	records := []export.Record{{Name: "Spring Launch", Owner: "Acme Corp"}}
	projects := []store.Project{{ID: "p1", Title: "Autumn", OwnerName: "Bravo Inc"}}

	out := NewGreedy(defaultThresholds()).Match(groups, records, projects)

	if len(out.Matched) != 0 {
		t.Errorf("Matched = %+v, want none", out.Matched)
	}
	if len(out.VideoOnly) != 1 || out.VideoOnly[0].Owner != "Zyndrax Labs" {
		t.Errorf("VideoOnly = %+v", out.VideoOnly)
	}
	if len(out.ExportOnly) != 1 || len(out.DatabaseOnly) != 1 {
		t.Errorf("unclaimed records not routed: %+v", out)
	}
}

func TestMatchNoReuse(t *testing.T) {
	groups := []inventory.VideoGroup{
		group("Acme Corp", "Spring Launch"),
		group("Acme Corp.", "Fall Launch"),
	}
	records := []export.Record{{Name: "Spring Launch", Owner: "Acme Corp"}}
	projects := []store.Project{{ID: "p1", Title: "Spring", OwnerName: "Acme Corp"}}

	out := NewGreedy(defaultThresholds()).Match(groups, records, projects)

	exportRefs := 0
	dbRefs := 0
	for _, m := range out.Matched {
		if m.External != nil {
			exportRefs++
		}
		if m.Database != nil {
			dbRefs++
		}
	}
	if exportRefs > 1 {
		t.Errorf("export record claimed %d times", exportRefs)
	}
	if dbRefs > 1 {
		t.Errorf("database project claimed %d times", dbRefs)
	}
}

func TestMatchTitleDiscount(t *testing.T) {
	// Owner labels are disjoint, but one video title exactly matches the
	// export name; the discounted score must carry the match.
	groups := []inventory.VideoGroup{group("Totally Different", "Spring Launch")}
	records := []export.Record{{Name: "Spring Launch", Owner: "Unrelated Owner"}}

	out := NewGreedy(defaultThresholds()).Match(groups, records, nil)

	if len(out.Matched) != 1 {
		t.Fatalf("Matched = %+v", out.Matched)
	}
	if got := out.Matched[0].Confidence; got != 0.9 {
		t.Errorf("Confidence = %v, want 0.9 (discounted exact title)", got)
	}
}

func TestMatchLowConfidenceNote(t *testing.T) {
	// "acme west" vs "acme east west": jaccard 2/3, between floor and
	// review threshold.
	groups := []inventory.VideoGroup{group("Acme West", "Reel")}
	records := []export.Record{{Name: "Untitled", Owner: "Acme East West"}}

	out := NewGreedy(defaultThresholds()).Match(groups, records, nil)

	if len(out.Matched) != 1 {
		t.Fatalf("Matched = %+v; VideoOnly = %+v", out.Matched, out.VideoOnly)
	}
	m := out.Matched[0]
	if m.Confidence >= 0.7 || m.Confidence <= 0.4 {
		t.Fatalf("Confidence = %v, want between floor and review threshold", m.Confidence)
	}
	if m.Notes != LowConfidenceNote {
		t.Errorf("Notes = %q", m.Notes)
	}
}

func TestMatchSortedAscendingByConfidence(t *testing.T) {
	groups := []inventory.VideoGroup{
		group("Acme Corp", "One"),
		group("Bravo", "Two"),
	}
	records := []export.Record{
		{Name: "One", Owner: "Acme Corp"},         // exact, 1.0
		{Name: "Two", Owner: "Bravo Productions"}, // containment, 0.8
	}

	out := NewGreedy(defaultThresholds()).Match(groups, records, nil)

	if len(out.Matched) != 2 {
		t.Fatalf("Matched = %d", len(out.Matched))
	}
	if out.Matched[0].Confidence > out.Matched[1].Confidence {
		t.Errorf("matches not sorted ascending: %v, %v", out.Matched[0].Confidence, out.Matched[1].Confidence)
	}
}

func TestMatchUniquenessInvariant(t *testing.T) {
	groups := []inventory.VideoGroup{
		group("Acme Corp", "One"),
		group("Acme Inc", "Two"),
		group("Bravo", "Three"),
	}
	records := []export.Record{
		{Name: "One", Owner: "Acme Corp"},
		{Name: "Three", Owner: "Bravo"},
	}
	projects := []store.Project{
		{ID: "p1", Title: "One", OwnerName: "Acme Corp"},
		{ID: "p2", Title: "Three", OwnerName: "Bravo"},
	}

	out := NewGreedy(defaultThresholds()).Match(groups, records, projects)

	seenExport := map[*export.Record]struct{}{}
	seenDB := map[string]struct{}{}
	exportRefs := 0
	dbRefs := 0
	for _, m := range out.Matched {
		if m.External != nil {
			if _, dup := seenExport[m.External]; dup {
				t.Error("export record referenced twice")
			}
			seenExport[m.External] = struct{}{}
			exportRefs++
		}
		if m.Database != nil {
			if _, dup := seenDB[m.Database.ID]; dup {
				t.Error("database project referenced twice")
			}
			seenDB[m.Database.ID] = struct{}{}
			dbRefs++
		}
	}
	if exportRefs+len(out.ExportOnly) != len(records) {
		t.Errorf("export partition mismatch: %d refs + %d only != %d", exportRefs, len(out.ExportOnly), len(records))
	}
	if dbRefs+len(out.DatabaseOnly) != len(projects) {
		t.Errorf("database partition mismatch: %d refs + %d only != %d", dbRefs, len(out.DatabaseOnly), len(projects))
	}
}
