package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type PlannerController struct {
	generatorService services.GeneratorServiceInterface
}

func NewPlannerController(generatorService services.GeneratorServiceInterface) *PlannerController {
	return &PlannerController{
		generatorService: generatorService,
	}
}

// GenerateItinerary godoc
// @Summary Generate a trip itinerary
// @Description Validate the planning form and generate a day-by-day itinerary via the configured AI provider. The result is not persisted; save it explicitly.
// @Tags Planner
// @Accept json
// @Produce json
// @Param request body request_models.GenerateItineraryRequest true "Trip preferences"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 502 {object} utils.APIResponse
// @Router /itineraries/generate [post]
func (p *PlannerController) GenerateItinerary(c *gin.Context) {
	var req request_models.GenerateItineraryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Destination, dates, budget and interests are required")
		return
	}

	itinerary, err := p.generatorService.GenerateItinerary(c.Request.Context(), req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary generated successfully")
}
