package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type AnalysisController struct {
	analysisService services.AnalysisServiceInterface
}

func NewAnalysisController(analysisService services.AnalysisServiceInterface) *AnalysisController {
	return &AnalysisController{
		analysisService: analysisService,
	}
}

// AnalyzeText godoc
// @Summary Analyze free text
// @Description Run keyword-based sentiment, intent and entity analysis on the given text
// @Tags Analysis
// @Accept json
// @Produce json
// @Param request body request_models.AnalyzeTextRequest true "Text and optional analysis type (sentiment, entities, intent, all)"
// @Success 200 {object} utils.APIResponse{data=response_models.AnalysisResult}
// @Failure 400 {object} utils.APIResponse
// @Router /analyze [post]
func (a *AnalysisController) AnalyzeText(c *gin.Context) {
	var req request_models.AnalyzeTextRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.Text == "" {
		utils.RespondError(c, http.StatusBadRequest, "Text field is required")
		return
	}

	result, err := a.analysisService.Analyze(req.Text, req.AnalysisType)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Text analyzed successfully")
}
