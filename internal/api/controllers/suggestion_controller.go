package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type SuggestionController struct {
	suggestionService services.SuggestionServiceInterface
}

func NewSuggestionController(suggestionService services.SuggestionServiceInterface) *SuggestionController {
	return &SuggestionController{
		suggestionService: suggestionService,
	}
}

// SuggestDestinations godoc
// @Summary Suggest destinations
// @Description Return seeded destinations similar to the free-text interests query
// @Tags Suggestions
// @Produce json
// @Param q query string true "Interest text"
// @Success 200 {array} response_models.DestinationSuggestion
// @Failure 400 {object} utils.APIResponse
// @Router /suggestions [get]
func (s *SuggestionController) SuggestDestinations(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		utils.RespondError(c, http.StatusBadRequest, "Query parameter q is required")
		return
	}

	suggestions, err := s.suggestionService.SuggestDestinations(c.Request.Context(), query)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, suggestions, "Suggestions fetched successfully")
}
