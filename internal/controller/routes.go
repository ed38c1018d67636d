package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathfinder-backend-V1.0/internal/engine"
	"pathfinder-backend-V1.0/internal/service"
)

// RegisterRoutes registers all route groups and their endpoints.
func RegisterRoutes(r *gin.Engine,
	authService service.AuthService,
	recoService service.RecommendationService,
	reportService service.ReportService,
	quizService service.QuizService,
	eng *engine.Engine,
) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Auth routes via AuthController.
	authCtrl := NewAuthController(authService)
	authRoutes := r.Group("/auth")
	{
		authRoutes.POST("/register", authCtrl.Register)
		authRoutes.POST("/login", authCtrl.Login)
		authRoutes.POST("/refresh", authCtrl.Refresh)
	}

	// Career catalog.
	careerCtrl := NewCareerController(eng)
	r.GET("/careers", careerCtrl.GetCareers)

	// Recommendation routes via RecommendationController.
	recoCtrl := NewRecommendationController(recoService, reportService)
	recoRoutes := r.Group("/recommendations")
	{
		recoRoutes.POST("", recoCtrl.Recommend)
		recoRoutes.GET("", recoCtrl.GetRunsForUser)
		recoRoutes.GET("/:session_id", recoCtrl.GetRun)
		recoRoutes.GET("/:session_id/report", recoCtrl.DownloadReport)
	}

	// Quiz routes via QuizController.
	quizCtrl := NewQuizController(quizService)
	quizRoutes := r.Group("/quiz")
	{
		quizRoutes.POST("/start", quizCtrl.StartQuiz)
		quizRoutes.DELETE("/history", quizCtrl.ResetHistory)
	}
}
