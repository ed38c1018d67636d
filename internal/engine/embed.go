package engine

import (
	"hash/fnv"
	"math"
	"strings"
	"unicode"
)

// Embedder turns text into a vector representation comparable by cosine
// similarity.
type Embedder interface {
	Embed(text string) ([]float64, error)
}

// LexicalEmbedder is the in-process default encoder: a hashed bag-of-words
// projected into a fixed-size vector and L2-normalized. Deterministic, needs
// no external service, and preserves exact cosine ranking over the catalog.
type LexicalEmbedder struct {
	Dim int
}

// NewLexicalEmbedder returns an embedder with the default dimensionality.
func NewLexicalEmbedder() *LexicalEmbedder {
	return &LexicalEmbedder{Dim: 256}
}

func (e *LexicalEmbedder) Embed(text string) ([]float64, error) {
	dim := e.Dim
	if dim <= 0 {
		dim = 256
	}
	vec := make([]float64, dim)

	for _, tok := range tokenize(text) {
		h := fnv.New32a()
		h.Write([]byte(tok))
		vec[int(h.Sum32())%dim]++
	}

	normalize(vec)
	return vec, nil
}

func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func normalize(vec []float64) {
	var sum float64
	for _, v := range vec {
		sum += v * v
	}
	if sum == 0 {
		return
	}
	norm := math.Sqrt(sum)
	for i := range vec {
		vec[i] /= norm
	}
}

// Cosine computes cosine similarity between two vectors. Mismatched or empty
// vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(b) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += a[i] * b[i]
		na += a[i] * a[i]
		nb += b[i] * b[i]
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
