package model

import "time"

type User struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Email      string    `json:"email" gorm:"uniqueIndex;not null"`
	Password   string    `json:"password,omitempty"` // Exclude from JSON responses
	FirstName  string    `json:"first_name"`
	LastName   string    `json:"last_name"`
	Stream     string    `json:"stream"`
	ClassLevel string    `json:"class_level"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// RecommendationRun is one scoring request and its ranked output, keyed by a
// session id so the frontend can re-fetch results and download the report.
type RecommendationRun struct {
	ID         uint           `json:"id" gorm:"primaryKey"`
	UserID     uint           `json:"user_id" gorm:"index"`
	SessionID  string         `json:"session_id" gorm:"not null;unique"`
	Email      string         `json:"email"`
	Stream     string         `json:"stream"`
	ClassLevel string         `json:"class_level"`
	QueryText  string         `json:"query_text"`
	TopK       int            `json:"top_k"`
	Results    []StoredResult `json:"results" gorm:"foreignKey:RunID"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

// StoredResult is one ranked career inside a run.
type StoredResult struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	RunID           uint      `json:"run_id" gorm:"index"`
	Rank            int       `json:"rank"`
	CareerID        string    `json:"career_id"`
	Title           string    `json:"title"`
	Domain          string    `json:"domain"`
	CompositeScore  float64   `json:"composite_score"`
	SimilarityScore float64   `json:"similarity_score"`
	AptitudeScore   float64   `json:"aptitude_score"`
	InterestScore   float64   `json:"interest_score"`
	MatchStrength   string    `json:"match_strength"`
	Summary         string    `json:"summary"`
	Reasons         string    `json:"reasons"` // newline-joined
	CreatedAt       time.Time `json:"created_at"`
}
