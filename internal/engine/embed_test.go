package engine

import (
	"math"
	"testing"
)

func TestLexicalEmbedderIdenticalText(t *testing.T) {
	e := NewLexicalEmbedder()
	a, err := e.Embed("build software that helps people")
	if err != nil {
		t.Fatalf("embed failed: %v", err)
	}
	b, _ := e.Embed("build software that helps people")

	if sim := Cosine(a, b); math.Abs(sim-1.0) > 1e-9 {
		t.Errorf("identical text should have cosine 1.0, got %v", sim)
	}
}

func TestLexicalEmbedderRelatedTextScoresHigher(t *testing.T) {
	e := NewLexicalEmbedder()
	query, _ := e.Embed("i want to build software that helps people")
	related, _ := e.Embed("build software applications and tools that help people")
	unrelated, _ := e.Embed("audit accounts and plan taxes for businesses")

	if Cosine(query, related) <= Cosine(query, unrelated) {
		t.Error("overlapping vocabulary should score higher than disjoint vocabulary")
	}
}

func TestCosineEdgeCases(t *testing.T) {
	if got := Cosine([]float64{1, 0}, nil); got != 0 {
		t.Errorf("nil vector should score 0, got %v", got)
	}
	if got := Cosine([]float64{1, 0}, []float64{1, 0, 0}); got != 0 {
		t.Errorf("mismatched dimensions should score 0, got %v", got)
	}
	if got := Cosine([]float64{0, 0}, []float64{0, 0}); got != 0 {
		t.Errorf("zero vectors should score 0, got %v", got)
	}
}

func TestLexicalEmbedderVectorIsNormalized(t *testing.T) {
	e := NewLexicalEmbedder()
	vec, _ := e.Embed("career guidance for students")

	var norm float64
	for _, v := range vec {
		norm += v * v
	}
	if math.Abs(math.Sqrt(norm)-1.0) > 1e-9 {
		t.Errorf("expected unit vector, norm was %v", math.Sqrt(norm))
	}
}
