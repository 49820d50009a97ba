package store

// Project mirrors the fixed column projection every list read uses.
type Project struct {
	ID           string `json:"id"`
	Title        string `json:"title"`
	Slug         string `json:"slug"`
	OwnerName    string `json:"owner_name"`
	Kind         string `json:"kind"`
	Published    bool   `json:"published"`
	Description  string `json:"description"`
	Category     string `json:"category"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// ProjectRow is the full insert payload for a new project.
type ProjectRow struct {
	ID               string
	Title            string
	Slug             string
	OwnerName        string
	Kind             string
	Published        bool
	Featured         bool
	Placeholder      bool
	FullWidth        bool
	IsCampaign       bool
	Subtitle         string
	Description      string
	Category         *string
	ThumbnailURL     *string
	StyleTags        []string
	PremiumAddons    []string
	CameraTechniques []string
	AssetsDelivered  []string
	ProductionDays   *int
	CrewCount        *int
	TalentCount      *int
	LocationCount    *int
}

// ProjectPatch is a sparse field update. Nil pointers and empty slices are
// left untouched so absent source data never overwrites existing values.
type ProjectPatch struct {
	Category         *string
	IsCampaign       *bool
	ThumbnailURL     *string
	StyleTags        []string
	PremiumAddons    []string
	CameraTechniques []string
	AssetsDelivered  []string
	ProductionDays   *int
	CrewCount        *int
	TalentCount      *int
	LocationCount    *int
}

// Empty reports whether the patch carries no field at all.
func (p ProjectPatch) Empty() bool {
	return p.Category == nil && p.IsCampaign == nil && p.ThumbnailURL == nil &&
		len(p.StyleTags) == 0 && len(p.PremiumAddons) == 0 &&
		len(p.CameraTechniques) == 0 && len(p.AssetsDelivered) == 0 &&
		p.ProductionDays == nil && p.CrewCount == nil &&
		p.TalentCount == nil && p.LocationCount == nil
}

// VideoRow is one child video record of a project.
type VideoRow struct {
	ProjectID         string
	VideoID           string
	Title             string
	VideoType         string
	SortOrder         int
	PasswordProtected bool
}

// CreditRow is one child credit record of a project.
type CreditRow struct {
	ProjectID string
	Role      string
	Name      string
	SortOrder int
}
