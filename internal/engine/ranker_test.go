package engine

import (
	"math"
	"testing"

	"pathfinder-backend-V1.0/internal/catalog"
)

func TestCompositeBlend(t *testing.T) {
	w := DefaultWeights()

	tests := []struct {
		name            string
		sim, apt, inter float64
		want            float64
	}{
		{"similarity only", 1.0, 0, 0, 6.0},
		{"all perfect", 1.0, 1.0, 1.0, 10.0},
		{"all zero", 0, 0, 0, 0},
		{"rules only", 0, 1.0, 1.0, 4.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := w.Composite(tt.sim, tt.apt, tt.inter)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Composite(%v,%v,%v) = %v, want %v", tt.sim, tt.apt, tt.inter, got, tt.want)
			}
		})
	}
}

func TestCompositeClampsInputs(t *testing.T) {
	w := DefaultWeights()
	if got := w.Composite(1.7, -0.3, 0.5); got != w.Composite(1.0, 0, 0.5) {
		t.Errorf("out-of-range sub-scores should clamp before blending, got %v", got)
	}
}

func TestRankStableAndTruncated(t *testing.T) {
	scored := []ScoredCareer{
		{Career: catalog.CareerRecord{ID: "a"}, Composite: 5.0},
		{Career: catalog.CareerRecord{ID: "b"}, Composite: 8.0},
		{Career: catalog.CareerRecord{ID: "c"}, Composite: 5.0},
		{Career: catalog.CareerRecord{ID: "d"}, Composite: 9.0},
	}

	ranked := Rank(scored, 3)
	if len(ranked) != 3 {
		t.Fatalf("expected 3 results, got %d", len(ranked))
	}
	if ranked[0].Career.ID != "d" || ranked[1].Career.ID != "b" {
		t.Errorf("unexpected head of ranking: %s, %s", ranked[0].Career.ID, ranked[1].Career.ID)
	}
	// Tie between a and c keeps catalog order.
	if ranked[2].Career.ID != "a" {
		t.Errorf("tie should preserve insertion order, got %s", ranked[2].Career.ID)
	}
}

func TestRankDefaultTopK(t *testing.T) {
	scored := make([]ScoredCareer, 15)
	for i := range scored {
		scored[i].Composite = float64(i)
	}
	ranked := Rank(scored, 0)
	if len(ranked) != DefaultTopK {
		t.Errorf("topK <= 0 should fall back to %d, got %d", DefaultTopK, len(ranked))
	}
}

func TestRankDoesNotMutateInput(t *testing.T) {
	scored := []ScoredCareer{
		{Career: catalog.CareerRecord{ID: "a"}, Composite: 1.0},
		{Career: catalog.CareerRecord{ID: "b"}, Composite: 2.0},
	}
	Rank(scored, 1)
	if scored[0].Career.ID != "a" {
		t.Error("Rank should sort a copy, not the caller's slice")
	}
}
