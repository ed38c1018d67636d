package repository

import (
	"pathfinder-backend-V1.0/internal/db"
	"pathfinder-backend-V1.0/internal/model"
)

type RecommendationRepository interface {
	SaveRun(run *model.RecommendationRun) error
	GetRunBySessionID(sessionID string) (*model.RecommendationRun, error)
	GetRunsByUser(userID uint) ([]model.RecommendationRun, error)
}

type recommendationRepository struct{}

func NewRecommendationRepository() RecommendationRepository {
	return &recommendationRepository{}
}

func (r *recommendationRepository) SaveRun(run *model.RecommendationRun) error {
	return db.GetDB().Create(run).Error
}

func (r *recommendationRepository) GetRunBySessionID(sessionID string) (*model.RecommendationRun, error) {
	var run model.RecommendationRun
	err := db.GetDB().Preload("Results").Where("session_id = ?", sessionID).First(&run).Error
	if err != nil {
		return nil, err
	}
	return &run, nil
}

func (r *recommendationRepository) GetRunsByUser(userID uint) ([]model.RecommendationRun, error) {
	var runs []model.RecommendationRun
	err := db.GetDB().Preload("Results").Where("user_id = ?", userID).Order("created_at desc").Find(&runs).Error
	if err != nil {
		return nil, err
	}
	return runs, nil
}
