package engine

import (
	"sort"

	"pathfinder-backend-V1.0/internal/catalog"
)

// Weights configures the composite blend. The three weights are expected to
// sum to 1; they are a tuning parameter, not a correctness knob.
type Weights struct {
	Similarity float64 `json:"similarity"`
	Aptitude   float64 `json:"aptitude"`
	Interest   float64 `json:"interest"`
}

// DefaultWeights is the production blend.
func DefaultWeights() Weights {
	return Weights{Similarity: 0.6, Aptitude: 0.2, Interest: 0.2}
}

// DefaultTopK is the ranked-list length when the caller does not supply one.
const DefaultTopK = 10

// ScoredCareer is the ephemeral per-request scoring result.
type ScoredCareer struct {
	Career      catalog.CareerRecord `json:"career"`
	Similarity  float64              `json:"similarity_score"`
	Aptitude    float64              `json:"aptitude_score"`
	Interest    float64              `json:"interest_score"`
	Composite   float64              `json:"composite_score"`
	Explanation Explanation          `json:"explanation"`
}

// Composite blends the three sub-scores, each clamped to [0,1] first, and
// scales the result onto the 0-10 display range.
func (w Weights) Composite(similarity, aptitude, interest float64) float64 {
	similarity = clamp(similarity, 0, 1)
	aptitude = clamp(aptitude, 0, 1)
	interest = clamp(interest, 0, 1)
	return (w.Similarity*similarity + w.Aptitude*aptitude + w.Interest*interest) * 10
}

// Rank sorts scored careers by composite score descending and truncates to
// topK. The sort is stable so ties keep catalog insertion order and repeated
// runs over identical inputs produce identical lists. topK <= 0 falls back
// to DefaultTopK.
func Rank(scored []ScoredCareer, topK int) []ScoredCareer {
	if topK <= 0 {
		topK = DefaultTopK
	}

	ranked := make([]ScoredCareer, len(scored))
	copy(ranked, scored)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Composite > ranked[j].Composite
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}
