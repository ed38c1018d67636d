package quiz

import (
	"testing"

	"pathfinder-backend-V1.0/internal/llm"
)

func TestConvertGeneratedFiltersMalformed(t *testing.T) {
	in := []llm.GeneratedQuestion{
		{ID: "g1", Question: "Valid?", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 2},
		{ID: "g2", Question: "", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 0},
		{ID: "g3", Question: "Too few options", Options: []string{"a", "b"}, AnswerIndex: 0},
		{ID: "g4", Question: "Answer out of range", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 7},
		{Question: "No id", Options: []string{"a", "b", "c", "d"}, AnswerIndex: 1},
	}

	out := convertGenerated(in, SectionLogical)
	if len(out) != 2 {
		t.Fatalf("expected 2 usable questions, got %d", len(out))
	}
	if out[0].ID != "g1" || out[0].Section != SectionLogical {
		t.Errorf("unexpected first entry: %+v", out[0])
	}
	if out[1].ID == "" {
		t.Error("missing id should be synthesized, not left empty")
	}
}

func TestBuiltinPoolsAreDeepEnoughForRetakes(t *testing.T) {
	pools := NewBuiltinSource().Questions("12th")
	for name, pool := range map[string][]QuestionBankEntry{
		SectionQuantitative: pools.Quantitative,
		SectionLogical:      pools.Logical,
		SectionVerbal:       pools.Verbal,
	} {
		if len(pool) < 20 {
			t.Errorf("section %s: pool of %d cannot serve a disjoint retake", name, len(pool))
		}
		for _, q := range pool {
			if len(q.Options) != 4 {
				t.Errorf("question %s: expected 4 options, got %d", q.ID, len(q.Options))
			}
			if q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
				t.Errorf("question %s: answer index %d out of range", q.ID, q.AnswerIndex)
			}
		}
	}
}
