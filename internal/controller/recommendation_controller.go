package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pathfinder-backend-V1.0/internal/engine"
	"pathfinder-backend-V1.0/internal/service"
)

type RecommendationController struct {
	RecoService   service.RecommendationService
	ReportService service.ReportService
}

func NewRecommendationController(recoService service.RecommendationService, reportService service.ReportService) *RecommendationController {
	return &RecommendationController{RecoService: recoService, ReportService: reportService}
}

// Recommend scores a submitted profile form. top_k comes from the query
// string and is clamped server-side, so a malformed value just means the
// default list length.
func (rc *RecommendationController) Recommend(c *gin.Context) {
	var form engine.RecommendationForm
	if err := c.ShouldBindJSON(&form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	topK, _ := strconv.Atoi(c.DefaultQuery("top_k", "0"))
	userID := c.GetUint("user_id")

	run, err := rc.RecoService.Recommend(form, topK, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store recommendation run"})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (rc *RecommendationController) GetRun(c *gin.Context) {
	sessionID := c.Param("session_id")
	run, err := rc.RecoService.GetRunBySessionID(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "recommendation run not found"})
		return
	}
	c.JSON(http.StatusOK, run)
}

func (rc *RecommendationController) GetRunsForUser(c *gin.Context) {
	userID := c.GetUint("user_id")
	runs, err := rc.RecoService.GetRunsByUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, runs)
}

// DownloadReport serves the run's PDF, rendering it on demand if the event
// listener has not produced it yet.
func (rc *RecommendationController) DownloadReport(c *gin.Context) {
	sessionID := c.Param("session_id")
	path, err := rc.ReportService.GenerateReport(sessionID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report not available"})
		return
	}
	c.FileAttachment(path, "career_report_"+sessionID+".pdf")
}
