package service

import (
	"strings"

	"github.com/google/uuid"

	"pathfinder-backend-V1.0/internal/engine"
	"pathfinder-backend-V1.0/internal/model"
	"pathfinder-backend-V1.0/internal/repository"
	"pathfinder-backend-V1.0/utilities"
)

// MaxTopK caps how many results a single request may ask for.
const MaxTopK = 20

type RecommendationService interface {
	Recommend(form engine.RecommendationForm, topK int, userID uint) (*model.RecommendationRun, error)
	GetRunBySessionID(sessionID string) (*model.RecommendationRun, error)
	GetRunsByUser(userID uint) ([]model.RecommendationRun, error)
}

type recommendationService struct {
	eng      *engine.Engine
	recoRepo repository.RecommendationRepository
}

func NewRecommendationService(eng *engine.Engine, recoRepo repository.RecommendationRepository) RecommendationService {
	return &recommendationService{eng: eng, recoRepo: recoRepo}
}

// Recommend normalizes the raw form, scores it against the career catalog
// and persists the ranked output under a fresh session id. Scoring itself
// never fails; an empty catalog simply yields an empty result list.
func (s *recommendationService) Recommend(form engine.RecommendationForm, topK int, userID uint) (*model.RecommendationRun, error) {
	if topK <= 0 {
		topK = engine.DefaultTopK
	}
	if topK > MaxTopK {
		topK = MaxTopK
	}

	profile := engine.NormalizeForm(form)
	ranked := s.eng.Score(profile, topK)

	run := &model.RecommendationRun{
		UserID:     userID,
		SessionID:  uuid.New().String(),
		Email:      profile.Email,
		Stream:     profile.Stream,
		ClassLevel: profile.ClassLevel,
		QueryText:  profile.QueryText(),
		TopK:       topK,
		Results:    make([]model.StoredResult, 0, len(ranked)),
	}
	for i, sc := range ranked {
		run.Results = append(run.Results, model.StoredResult{
			Rank:            i + 1,
			CareerID:        sc.Career.ID,
			Title:           sc.Career.Title,
			Domain:          sc.Career.Domain,
			CompositeScore:  sc.Composite,
			SimilarityScore: sc.Similarity,
			AptitudeScore:   sc.Aptitude,
			InterestScore:   sc.Interest,
			MatchStrength:   sc.Explanation.MatchStrength,
			Summary:         sc.Explanation.Summary,
			Reasons:         strings.Join(sc.Explanation.Reasons, "\n"),
		})
	}

	if err := s.recoRepo.SaveRun(run); err != nil {
		return nil, err
	}

	utilities.Info("Recommendation run %s stored with %d results", run.SessionID, len(run.Results))
	utilities.GlobalEventBus.Publish("recommendation_completed", run.SessionID)

	return run, nil
}

func (s *recommendationService) GetRunBySessionID(sessionID string) (*model.RecommendationRun, error) {
	return s.recoRepo.GetRunBySessionID(sessionID)
}

func (s *recommendationService) GetRunsByUser(userID uint) ([]model.RecommendationRun, error) {
	return s.recoRepo.GetRunsByUser(userID)
}
