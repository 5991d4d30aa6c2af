package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type RecommendationsController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewRecommendationsController(itineraryService services.ItineraryServiceInterface) *RecommendationsController {
	return &RecommendationsController{
		itineraryService: itineraryService,
	}
}

// GetRecommendations godoc
// @Summary Generate a travel itinerary for a date range
// @Description Build a personalized day-by-day itinerary from destination, dates and optional preferences
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.RecommendationRequest true "User ID, destination, start and end dates, optional preferences"
// @Success 200 {object} utils.APIResponse{data=response_models.RecommendationResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /recommendations [post]
func (r *RecommendationsController) GetRecommendations(c *gin.Context) {
	var req request_models.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if missing := req.MissingFields(); len(missing) > 0 {
		utils.RespondError(c, http.StatusBadRequest,
			fmt.Sprintf("Missing required fields: %s", strings.Join(missing, ", ")))
		return
	}

	result, err := r.itineraryService.BuildRecommendation(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Recommendations generated successfully")
}

// GenerateItinerary godoc
// @Summary Generate a travel itinerary for a trip length
// @Description Build an itinerary from destination and duration in days
// @Tags Recommendations
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Destination, duration in days, optional preferences"
// @Success 200 {object} utils.APIResponse{data=response_models.RecommendationResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /api/generate-itinerary [post]
func (r *RecommendationsController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination and a duration of at least 1 day are required")
		return
	}

	result, err := r.itineraryService.BuildFromDuration(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Itinerary generated successfully")
}
