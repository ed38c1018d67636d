package engine

import (
	"pathfinder-backend-V1.0/internal/catalog"
)

// Engine orchestrates the scoring pipeline: semantic matching, rule scoring,
// composite ranking and explanation. It holds only read-only state, so
// concurrent Score calls need no coordination.
type Engine struct {
	careers []catalog.CareerRecord
	matcher *SemanticMatcher
	weights Weights
	topK    int
}

// New builds an engine over the loaded catalog. Career embeddings are
// computed once here.
func New(careers []catalog.CareerRecord, embedder Embedder, weights Weights, defaultTopK int) *Engine {
	if weights == (Weights{}) {
		weights = DefaultWeights()
	}
	if defaultTopK <= 0 {
		defaultTopK = DefaultTopK
	}
	return &Engine{
		careers: careers,
		matcher: NewSemanticMatcher(embedder, careers),
		weights: weights,
		topK:    defaultTopK,
	}
}

// Careers returns the read-only catalog the engine scores against.
func (e *Engine) Careers() []catalog.CareerRecord {
	return e.careers
}

// Score runs the full pipeline for one profile and returns the ranked,
// explained top-K careers. Deterministic for identical catalog, profile and
// topK. An empty catalog yields an empty list, not an error.
func (e *Engine) Score(p StudentProfile, topK int) []ScoredCareer {
	if topK <= 0 {
		topK = e.topK
	}
	if len(e.careers) == 0 {
		return []ScoredCareer{}
	}

	sims := e.matcher.Similarities(p)

	scored := make([]ScoredCareer, len(e.careers))
	for i, career := range e.careers {
		sc := ScoredCareer{
			Career:     career,
			Similarity: sims[i],
			Aptitude:   AptitudeScore(p, career.Domain),
			Interest:   InterestScore(p, career.Domain),
		}
		sc.Composite = e.weights.Composite(sc.Similarity, sc.Aptitude, sc.Interest)
		scored[i] = sc
	}

	ranked := Rank(scored, topK)
	for i := range ranked {
		ranked[i].Explanation = Explain(p, ranked[i].Career, ranked[i])
	}
	return ranked
}
