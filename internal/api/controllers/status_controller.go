package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/response_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type StatusController struct {
	analysisService   services.AnalysisServiceInterface
	itineraryService  services.ItineraryServiceInterface
	preferenceService services.PreferenceServiceInterface
}

func NewStatusController(
	analysisService services.AnalysisServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	preferenceService services.PreferenceServiceInterface,
) *StatusController {
	return &StatusController{
		analysisService:   analysisService,
		itineraryService:  itineraryService,
		preferenceService: preferenceService,
	}
}

// ModelStatus godoc
// @Summary Component status
// @Description Uptime, catalog sizes and category lists for every engine component
// @Tags Status
// @Produce json
// @Success 200 {object} utils.APIResponse{data=response_models.ModelStatusResponse}
// @Router /models/status [get]
func (s *StatusController) ModelStatus(c *gin.Context) {
	status := response_models.ModelStatusResponse{
		NLPProcessor:         s.analysisService.Status(),
		RecommendationEngine: s.itineraryService.Status(),
		PreferenceModel:      s.preferenceService.Status(c.Request.Context()),
		ActivityModel:        s.preferenceService.ActivityCatalogStatus(),
		Timestamp:            time.Now().Format(time.RFC3339),
	}

	utils.RespondSuccess(c, status, "Model status fetched successfully")
}

// Health godoc
// @Summary Liveness probe
// @Produce json
// @Success 200 {object} utils.APIResponse
// @Router /health [get]
func (s *StatusController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, utils.APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: "Recommendation service is running",
	})
}
