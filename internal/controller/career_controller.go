package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"pathfinder-backend-V1.0/internal/engine"
)

type CareerController struct {
	Engine *engine.Engine
}

func NewCareerController(eng *engine.Engine) *CareerController {
	return &CareerController{Engine: eng}
}

// GetCareers lists the full catalog the engine was loaded with.
func (cc *CareerController) GetCareers(c *gin.Context) {
	c.JSON(http.StatusOK, cc.Engine.Careers())
}
