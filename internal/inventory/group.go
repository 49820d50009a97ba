package inventory

// VideoGroup is the cluster of inventory assets attributed to one owner.
// Owner keeps the first-seen raw label.
type VideoGroup struct {
	Owner    string       `json:"owner"`
	Videos   []VideoAsset `json:"videos"`
	VideoIDs []string     `json:"video_ids"`
}

// Group clusters assets by extracted owner, preserving input order for
// both groups and their members. Assets in an excluded collection are
// dropped before grouping.
func Group(assets []VideoAsset, excludedCollections []string) []VideoGroup {
	excluded := make(map[string]struct{}, len(excludedCollections))
	for _, name := range excludedCollections {
		excluded[name] = struct{}{}
	}

	index := make(map[string]int)
	groups := make([]VideoGroup, 0)
	for _, asset := range assets {
		if _, skip := excluded[asset.Collection]; skip {
			continue
		}
		owner := OwnerName(asset.Title)
		i, ok := index[owner]
		if !ok {
			i = len(groups)
			index[owner] = i
			groups = append(groups, VideoGroup{Owner: owner})
		}
		groups[i].Videos = append(groups[i].Videos, asset)
		groups[i].VideoIDs = append(groups[i].VideoIDs, asset.ID())
	}
	return groups
}
