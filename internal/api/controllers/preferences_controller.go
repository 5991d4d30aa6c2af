package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"itinera/internal/models/request_models"
	"itinera/internal/services"
	"itinera/pkg/utils"
)

type PreferencesController struct {
	preferenceService services.PreferenceServiceInterface
}

func NewPreferencesController(preferenceService services.PreferenceServiceInterface) *PreferencesController {
	return &PreferencesController{
		preferenceService: preferenceService,
	}
}

// UpdatePreferences godoc
// @Summary Store a user's travel preferences
// @Description Save the preference record and return recommended activities plus a similar-user count
// @Tags Preferences
// @Accept json
// @Produce json
// @Param request body request_models.UpdatePreferencesRequest true "User ID and preference record"
// @Success 200 {object} utils.APIResponse{data=response_models.ProcessedPreferencesResponse}
// @Failure 400 {object} utils.APIResponse
// @Router /preferences [post]
func (p *PreferencesController) UpdatePreferences(c *gin.Context) {
	var req request_models.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if req.UserID == "" {
		utils.RespondError(c, http.StatusBadRequest, "User ID is required")
		return
	}

	result, err := p.preferenceService.ProcessPreferences(c.Request.Context(), req.UserID, req.Preferences)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Preferences processed successfully")
}
