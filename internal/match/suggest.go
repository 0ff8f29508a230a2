package match

import (
	"cmp"
	"slices"
)

// MinSimilarity is the score below which a candidate is not worth offering.
const MinSimilarity = 0.5

type scored struct {
	name  string
	score float64
}

// Suggest returns the candidates whose Similarity to name reaches
// MinSimilarity, best first. Ties keep the candidates' order.
func Suggest(name string, candidates []string) []string {
	var ranked []scored

	for _, c := range candidates {
		if s := Similarity(name, c); s >= MinSimilarity {
			ranked = append(ranked, scored{name: c, score: s})
		}
	}

	slices.SortStableFunc(ranked, func(a, b scored) int {
		return cmp.Compare(b.score, a.score)
	})

	out := make([]string, len(ranked))
	for i, r := range ranked {
		out[i] = r.name
	}

	return out
}
