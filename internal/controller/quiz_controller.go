package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathfinder-backend-V1.0/internal/service"
)

type QuizController struct {
	QuizService service.QuizService
}

func NewQuizController(quizService service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// StartQuiz assembles a fresh aptitude quiz. The authenticated email is the
// student identity used for the repeat-question exclusion.
func (qc *QuizController) StartQuiz(c *gin.Context) {
	var req struct {
		ClassLevel string `json:"classLevel"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	studentID := c.GetString("email")
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing student identity"})
		return
	}

	session, err := qc.QuizService.StartQuiz(studentID, req.ClassLevel)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (qc *QuizController) ResetHistory(c *gin.Context) {
	studentID := c.GetString("email")
	if studentID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing student identity"})
		return
	}
	qc.QuizService.ResetHistory(studentID)
	c.JSON(http.StatusOK, gin.H{"status": "history cleared"})
}
