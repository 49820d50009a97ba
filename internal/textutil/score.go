package textutil

import "strings"

// Score values for the two short-circuit tiers of MatchScore.
const (
	scoreExact       = 1.0
	scoreContainment = 0.8
)

// MatchScore computes a similarity score in [0,1] between two free-text
// labels. Identical normalized forms score 1.0, substring containment in
// either direction scores 0.8, and everything else falls back to the
// Jaccard similarity of the normalized word sets. Symmetric by
// construction.
func MatchScore(a, b string) float64 {
	na := Normalize(a)
	nb := Normalize(b)
	if na == nb {
		return scoreExact
	}
	if strings.Contains(na, nb) || strings.Contains(nb, na) {
		return scoreContainment
	}

	wa := wordSet(na)
	wb := wordSet(nb)
	intersection := 0
	for w := range wa {
		if _, ok := wb[w]; ok {
			intersection++
		}
	}
	union := len(wa) + len(wb) - intersection
	if union == 0 {
		return 0
	}
	return float64(intersection) / float64(union)
}

func wordSet(normalized string) map[string]struct{} {
	words := strings.Fields(normalized)
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}
