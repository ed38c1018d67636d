package engine

import (
	"pathfinder-backend-V1.0/internal/catalog"
	"pathfinder-backend-V1.0/utilities"
)

// SemanticMatcher scores the textual fit between a student's aspiration and
// every career description. Career embeddings are computed once at
// construction; matching is exact brute-force cosine over the catalog, which
// is hundreds of rows at most.
type SemanticMatcher struct {
	embedder   Embedder
	careerVecs [][]float64
}

// NewSemanticMatcher encodes every catalog entry up front. A failed encode
// leaves a nil vector for that career, which scores 0 against any query.
func NewSemanticMatcher(embedder Embedder, careers []catalog.CareerRecord) *SemanticMatcher {
	vecs := make([][]float64, len(careers))
	for i, c := range careers {
		vec, err := embedder.Embed(c.EmbeddingText())
		if err != nil {
			utilities.Warn("failed to embed career %s: %v", c.ID, err)
			continue
		}
		vecs[i] = vec
	}
	return &SemanticMatcher{embedder: embedder, careerVecs: vecs}
}

// Similarities returns one similarity per career, aligned with the catalog
// order, each clamped to [0,1]. An empty aspiration carries no textual
// signal and scores 0 everywhere; so does a failed query embedding. Neither
// is an error.
func (m *SemanticMatcher) Similarities(p StudentProfile) []float64 {
	sims := make([]float64, len(m.careerVecs))
	if p.Aspiration == "" {
		return sims
	}

	queryVec, err := m.embedder.Embed(p.QueryText())
	if err != nil {
		utilities.Warn("query embedding failed, degrading to zero similarity: %v", err)
		return sims
	}

	for i, vec := range m.careerVecs {
		sim := Cosine(queryVec, vec)
		if sim < 0 {
			sim = 0
		}
		if sim > 1 {
			sim = 1
		}
		sims[i] = sim
	}
	return sims
}
