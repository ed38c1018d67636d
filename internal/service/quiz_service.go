package service

import (
	"github.com/google/uuid"

	"pathfinder-backend-V1.0/internal/quiz"
)

// QuizSession is one assembled aptitude quiz handed to the frontend.
type QuizSession struct {
	SessionID string           `json:"session_id"`
	Sections  quiz.QuestionSet `json:"sections"`
}

type QuizService interface {
	StartQuiz(studentID, classLevel string) (*QuizSession, error)
	ResetHistory(studentID string)
}

type quizService struct {
	selector *quiz.Selector
}

func NewQuizService(selector *quiz.Selector) QuizService {
	return &quizService{selector: selector}
}

func (s *quizService) StartQuiz(studentID, classLevel string) (*QuizSession, error) {
	set := s.selector.Select(studentID, classLevel)
	return &QuizSession{
		SessionID: uuid.New().String(),
		Sections:  set,
	}, nil
}

func (s *quizService) ResetHistory(studentID string) {
	s.selector.ResetHistory(studentID)
}
