package engine

import (
	"errors"
	"reflect"
	"testing"

	"pathfinder-backend-V1.0/internal/catalog"
)

func testCatalog() []catalog.CareerRecord {
	return []catalog.CareerRecord{
		{
			ID:          "software-developer",
			Title:       "Software Developer",
			Description: "Build software applications and tools that help people solve everyday problems.",
			Domain:      "technology",
		},
		{
			ID:          "chartered-accountant",
			Title:       "Chartered Accountant",
			Description: "Audit accounts, plan taxes and advise businesses on financial compliance.",
			Domain:      "finance",
		},
		{
			ID:          "graphic-designer",
			Title:       "Graphic Designer",
			Description: "Create visual identities, illustrations and layouts for brands and campaigns.",
			Domain:      "design",
		},
	}
}

func techProfileForm() RecommendationForm {
	return RecommendationForm{
		Email:      "student@example.com",
		Stream:     "science",
		ClassLevel: "12th",
		Marks10th:  85,
		Marks12th:  88,
		DreamText:  "I want to build software that helps people",
		Interests: map[string]FlexFloat{
			"coding": 5, "math": 4, "design": 2, "science": 4, "business": 1, "people": 3, "creative": 2,
		},
		Aptitude: map[string]FlexFloat{
			"quantitative": 9, "logical": 8, "verbal": 6, "creative": 5, "technical": 9, "commerce": 3,
		},
	}
}

func TestScoreEmptyCatalog(t *testing.T) {
	eng := New(nil, NewLexicalEmbedder(), DefaultWeights(), 10)
	got := eng.Score(NormalizeForm(techProfileForm()), 10)
	if got == nil {
		t.Fatal("empty catalog should yield an empty list, not nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no results, got %d", len(got))
	}
}

func TestScoreTechProfileRanksTechnologyFirst(t *testing.T) {
	eng := New(testCatalog(), NewLexicalEmbedder(), DefaultWeights(), 10)
	got := eng.Score(NormalizeForm(techProfileForm()), 10)

	if len(got) != 3 {
		t.Fatalf("expected all 3 careers ranked, got %d", len(got))
	}
	if got[0].Career.Domain != "technology" {
		t.Errorf("expected technology career on top, got %s (%s)", got[0].Career.ID, got[0].Career.Domain)
	}
	for _, sc := range got {
		if sc.Composite < 0 || sc.Composite > 10 {
			t.Errorf("composite out of range for %s: %v", sc.Career.ID, sc.Composite)
		}
		if sc.Similarity < 0 || sc.Similarity > 1 {
			t.Errorf("similarity out of range for %s: %v", sc.Career.ID, sc.Similarity)
		}
		if n := len(sc.Explanation.Reasons); n < 1 || n > 3 {
			t.Errorf("expected 1-3 reasons for %s, got %d", sc.Career.ID, n)
		}
	}
}

func TestScoreDeterministic(t *testing.T) {
	eng := New(testCatalog(), NewLexicalEmbedder(), DefaultWeights(), 10)
	p := NormalizeForm(techProfileForm())

	first := eng.Score(p, 10)
	for i := 0; i < 3; i++ {
		if got := eng.Score(p, 10); !reflect.DeepEqual(got, first) {
			t.Fatal("repeated scoring of the same profile should be identical")
		}
	}
}

func TestScoreEmptyAspirationZeroSimilarity(t *testing.T) {
	eng := New(testCatalog(), NewLexicalEmbedder(), DefaultWeights(), 10)

	form := techProfileForm()
	form.DreamText = ""
	got := eng.Score(NormalizeForm(form), 10)

	for _, sc := range got {
		if sc.Similarity != 0 {
			t.Errorf("empty aspiration should zero the similarity for %s, got %v", sc.Career.ID, sc.Similarity)
		}
	}
}

type failingEmbedder struct{}

func (failingEmbedder) Embed(string) ([]float64, error) {
	return nil, errors.New("encoder offline")
}

func TestScoreEmbedderFailureDegrades(t *testing.T) {
	eng := New(testCatalog(), failingEmbedder{}, DefaultWeights(), 10)
	got := eng.Score(NormalizeForm(techProfileForm()), 10)

	if len(got) != 3 {
		t.Fatalf("scoring should survive embedder failure, got %d results", len(got))
	}
	for _, sc := range got {
		if sc.Similarity != 0 {
			t.Errorf("failed embedding should degrade similarity to 0 for %s, got %v", sc.Career.ID, sc.Similarity)
		}
		// Rule scores still carry signal.
		if sc.Composite == 0 && sc.Aptitude > 0 {
			t.Errorf("composite should still reflect rule scores for %s", sc.Career.ID)
		}
	}
}

func TestScoreRespectsTopK(t *testing.T) {
	eng := New(testCatalog(), NewLexicalEmbedder(), DefaultWeights(), 10)
	got := eng.Score(NormalizeForm(techProfileForm()), 2)
	if len(got) != 2 {
		t.Errorf("expected 2 results, got %d", len(got))
	}
}
