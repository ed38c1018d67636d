package engine

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestFlexFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want float64
	}{
		{"number", `{"v": 85.5}`, 85.5},
		{"numeric string", `{"v": "72"}`, 72},
		{"garbage string", `{"v": "abc"}`, 0},
		{"null", `{"v": null}`, 0},
		{"empty string", `{"v": ""}`, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				V FlexFloat `json:"v"`
			}
			if err := json.Unmarshal([]byte(tt.in), &payload); err != nil {
				t.Fatalf("unmarshal failed: %v", err)
			}
			if float64(payload.V) != tt.want {
				t.Errorf("got %v, want %v", float64(payload.V), tt.want)
			}
		})
	}
}

func TestNormalizeFormDefaults(t *testing.T) {
	p := NormalizeForm(RecommendationForm{})

	if p.Interests.Coding != 6.0 || p.Interests.People != 6.0 {
		t.Errorf("missing interest ratings should default to 6.0, got %+v", p.Interests)
	}
	if p.Aptitudes.Quantitative != 5.0 || p.Aptitudes.Commerce != 5.0 {
		t.Errorf("missing aptitude scores should default to 5.0, got %+v", p.Aptitudes)
	}
	if p.Marks10th != 0 || p.CGPA != 0 {
		t.Errorf("missing marks should normalize to 0, got marks=%v cgpa=%v", p.Marks10th, p.CGPA)
	}
}

func TestNormalizeFormClamps(t *testing.T) {
	form := RecommendationForm{
		Marks10th:    150,
		Marks12th:    -20,
		MathsPercent: 120,
		Interests: map[string]FlexFloat{
			"coding": 9,  // above the 1-5 scale
			"design": -3, // below it
		},
		Aptitude: map[string]FlexFloat{
			"quantitative": 14,
			"logical":      -2,
		},
	}
	p := NormalizeForm(form)

	if p.Marks10th != 10 {
		t.Errorf("marks above 100%% should clamp to 10, got %v", p.Marks10th)
	}
	if p.Marks12th != 0 {
		t.Errorf("negative marks should clamp to 0, got %v", p.Marks12th)
	}
	if p.MathsPct != 10 {
		t.Errorf("maths percent should clamp to 10, got %v", p.MathsPct)
	}
	if p.Interests.Coding != 10 {
		t.Errorf("over-scale interest should clamp to 10, got %v", p.Interests.Coding)
	}
	if p.Interests.Design != 0 {
		t.Errorf("negative interest should clamp to 0, got %v", p.Interests.Design)
	}
	if p.Aptitudes.Quantitative != 10 {
		t.Errorf("over-scale aptitude should clamp to 10, got %v", p.Aptitudes.Quantitative)
	}
	if p.Aptitudes.Logical != 0 {
		t.Errorf("negative aptitude should clamp to 0, got %v", p.Aptitudes.Logical)
	}
}

func TestNormalizeFormCGPA(t *testing.T) {
	only10th := NormalizeForm(RecommendationForm{Marks10th: 80})
	if only10th.CGPA != 8.0 {
		t.Errorf("CGPA with only 10th marks should be 8.0, got %v", only10th.CGPA)
	}

	both := NormalizeForm(RecommendationForm{Marks10th: 80, Marks12th: 90})
	if both.CGPA != 8.5 {
		t.Errorf("CGPA should average both marks to 8.5, got %v", both.CGPA)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "I Want To Be A DOCTOR", "i want to be a doctor"},
		{"collapses whitespace", "build   software\t\nfor people", "build software for people"},
		{"strips specials", "engineer @ heart <3 #dream", "engineer  heart 3 dream"},
		{"empty", "   ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanText(tt.in); got != tt.want {
				t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestQueryTextIncludesStrongSignals(t *testing.T) {
	p := StudentProfile{
		Stream:     "science",
		ClassLevel: "12th",
		Aspiration: "i want to build software that helps people",
		Interests:  Interests{Coding: 10, Design: 2},
		Aptitudes:  Aptitudes{Technical: 9, Verbal: 3},
	}
	q := p.QueryText()

	for _, want := range []string{"build software", "coding", "technical skills", "science student"} {
		if !strings.Contains(q, want) {
			t.Errorf("query text missing %q: %q", want, q)
		}
	}
	if strings.Contains(q, "design") {
		t.Errorf("weak interest should not appear in query text: %q", q)
	}
}
