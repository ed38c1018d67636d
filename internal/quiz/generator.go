package quiz

import (
	"fmt"

	"pathfinder-backend-V1.0/internal/llm"
	"pathfinder-backend-V1.0/utilities"
)

// GenerativeSource asks the LLM for fresh questions and falls back to the
// built-in bank when generation fails or the payload is unusable.
type GenerativeSource struct {
	client     *llm.OllamaClient
	fallback   QuestionSource
	perSection int
}

func NewGenerativeSource(client *llm.OllamaClient, fallback QuestionSource, perSection int) *GenerativeSource {
	if perSection <= 0 {
		perSection = 10
	}
	return &GenerativeSource{client: client, fallback: fallback, perSection: perSection}
}

func (g *GenerativeSource) Questions(classLevel string) SectionPools {
	payload, err := g.client.GenerateQuizQuestions(classLevel, g.perSection)
	if err != nil {
		utilities.Warn("Quiz generation failed, using built-in bank: %v", err)
		return g.fallback.Questions(classLevel)
	}

	pools := SectionPools{
		Quantitative: convertGenerated(payload.Quantitative, SectionQuantitative),
		Logical:      convertGenerated(payload.Logical, SectionLogical),
		Verbal:       convertGenerated(payload.Verbal, SectionVerbal),
	}
	if len(pools.Quantitative) < g.perSection || len(pools.Logical) < g.perSection || len(pools.Verbal) < g.perSection {
		utilities.Warn("Generated quiz is short (%d/%d/%d questions), using built-in bank",
			len(pools.Quantitative), len(pools.Logical), len(pools.Verbal))
		return g.fallback.Questions(classLevel)
	}
	return pools
}

// convertGenerated keeps only well-formed questions: four options and an
// answer index that points at one of them.
func convertGenerated(in []llm.GeneratedQuestion, section string) []QuestionBankEntry {
	out := make([]QuestionBankEntry, 0, len(in))
	for i, q := range in {
		if q.Question == "" || len(q.Options) != 4 || q.AnswerIndex < 0 || q.AnswerIndex >= len(q.Options) {
			continue
		}
		id := q.ID
		if id == "" {
			id = fmt.Sprintf("%s-gen-%d", section, i)
		}
		out = append(out, QuestionBankEntry{
			ID:          id,
			Question:    q.Question,
			Options:     q.Options,
			AnswerIndex: q.AnswerIndex,
			Section:     section,
		})
	}
	return out
}
