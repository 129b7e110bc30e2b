package matcher

import (
	"math"
	"sort"
)

// candidate pairs a corpus index with its similarity score.
type candidate struct {
	index int
	score float64
}

// rank scores the query vector against every corpus vector and returns
// candidates at or above minScore, sorted by descending score and
// capped at topN. The sort is stable: equal scores keep corpus order.
// An empty result is not an error.
func rank(query vector, vectors []vector, topN int, minScore float64) []candidate {
	candidates := make([]candidate, 0, len(vectors))
	for i, vec := range vectors {
		score := cosineSimilarity(query, vec)
		if score < minScore {
			continue
		}
		candidates = append(candidates, candidate{index: i, score: score})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].score > candidates[j].score
	})

	if topN > 0 && len(candidates) > topN {
		candidates = candidates[:topN]
	}
	return candidates
}

// cosineSimilarity computes the cosine of the angle between two sparse
// vectors. Defined as 0 when either vector is the zero vector.
func cosineSimilarity(a, b vector) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	// Iterate the smaller map for the dot product.
	if len(b) < len(a) {
		a, b = b, a
	}

	var dot, normA, normB float64
	for idx, w := range a {
		normA += w * w
		if v, ok := b[idx]; ok {
			dot += w * v
		}
	}
	for _, w := range b {
		normB += w * w
	}

	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
