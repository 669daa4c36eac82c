package match

import (
	"sort"
	"strings"
)

// DefaultMinScore is the similarity below which Suggest drops a candidate.
const DefaultMinScore = 0.5

// Suggest returns up to limit candidates most similar to name, best first.
// Similarity is computed case-insensitively so that "Snake_Case" still
// suggests "snake_case". Ties keep the order of candidates.
func Suggest(name string, candidates []string, limit int) []string {
	type scored struct {
		name  string
		score float64
	}

	folded := strings.ToLower(name)

	var ranked []scored

	for _, c := range candidates {
		if c == name {
			continue
		}

		score := LevenshteinNormalized(folded, strings.ToLower(c))
		if score < DefaultMinScore {
			continue
		}

		ranked = append(ranked, scored{name: c, score: score})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}

	res := make([]string, 0, len(ranked))
	for _, r := range ranked {
		res = append(res, r.name)
	}

	return res
}
