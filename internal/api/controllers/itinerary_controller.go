package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"roamio/internal/models/request_models"
	"roamio/internal/models/response_models"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type ItineraryController struct {
	itineraryService services.ItineraryServiceInterface
}

func NewItineraryController(itineraryService services.ItineraryServiceInterface) *ItineraryController {
	return &ItineraryController{
		itineraryService: itineraryService,
	}
}

func dayNumberParam(c *gin.Context) (int, bool) {
	day, err := strconv.Atoi(c.Param("day"))
	if err != nil || day < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid day number")
		return 0, false
	}
	return day, true
}

// ListItineraries godoc
// @Summary List saved itineraries
// @Description Fetch a paginated list of itineraries for the authenticated user
// @Tags Itineraries
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Page size" default(10) minimum(1) maximum(100)
// @Success 200 {array} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [get]
func (i *ItineraryController) ListItineraries(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("pageSize", "10"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	itineraries, err := i.itineraryService.ListItineraries(c.Request.Context(), c.GetString("user_id"), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itineraries, "Itineraries fetched successfully")
}

// GetItinerary godoc
// @Summary Get one itinerary
// @Tags Itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} response_models.ItineraryResponse
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [get]
func (i *ItineraryController) GetItinerary(c *gin.Context) {
	itinerary, err := i.itineraryService.GetItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, itinerary, "Itinerary fetched successfully")
}

// SaveItinerary godoc
// @Summary Save an itinerary
// @Description Upsert the full itinerary document by its id
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param request body response_models.ItineraryResponse true "Itinerary document"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries [post]
func (i *ItineraryController) SaveItinerary(c *gin.Context) {
	var doc response_models.ItineraryResponse
	if err := c.ShouldBindJSON(&doc); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	saved, err := i.itineraryService.SaveItinerary(c.Request.Context(), c.GetString("user_id"), &doc)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, saved, "Itinerary saved successfully")
}

// DeleteItinerary godoc
// @Summary Delete an itinerary
// @Tags Itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId} [delete]
func (i *ItineraryController) DeleteItinerary(c *gin.Context) {
	err := i.itineraryService.DeleteItinerary(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "Itinerary deleted successfully")
}

// UpdateDayNotes godoc
// @Summary Update notes on one day
// @Description Replace the free-text notes for the given day; the note is also pushed to the remote note store best-effort
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param day path int true "Day number (1-based)"
// @Param request body request_models.DayNotesRequest true "Notes payload"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/days/{day}/notes [put]
func (i *ItineraryController) UpdateDayNotes(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req request_models.DayNotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := i.itineraryService.UpdateDayNotes(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"), day, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Notes updated successfully")
}

// ToggleActivity godoc
// @Summary Toggle an activity's selection
// @Description Flip selected on every activity matching the payload within the day; an unmatched payload is appended as a new selected activity
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param day path int true "Day number (1-based)"
// @Param request body request_models.ToggleActivityRequest true "Activity reference"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/days/{day}/activities/toggle [post]
func (i *ItineraryController) ToggleActivity(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req request_models.ToggleActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := i.itineraryService.ToggleActivity(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Activity toggled successfully")
}

// CommitSelection godoc
// @Summary Commit manage-mode selection
// @Description Replace the day's activity list with exactly the supplied selected activities, permanently discarding unselected ones
// @Tags Itineraries
// @Accept json
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param day path int true "Day number (1-based)"
// @Param request body request_models.CommitSelectionRequest true "Selected activities"
// @Success 200 {object} response_models.ItineraryResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/days/{day}/activities/commit [post]
func (i *ItineraryController) CommitSelection(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}

	var req request_models.CommitSelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	updated, err := i.itineraryService.CommitSelection(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"), day, req)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, updated, "Selection committed successfully")
}

// DayActivities godoc
// @Summary Get a day's activities in display order
// @Description Chronologically sorted activities; manage=true includes soft-deleted ones
// @Tags Itineraries
// @Produce json
// @Param itineraryId path string true "Itinerary ID"
// @Param day path int true "Day number (1-based)"
// @Param manage query bool false "Manage mode" default(false)
// @Success 200 {array} response_models.ActivityResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/days/{day}/activities [get]
func (i *ItineraryController) DayActivities(c *gin.Context) {
	day, ok := dayNumberParam(c)
	if !ok {
		return
	}
	manage := c.DefaultQuery("manage", "false") == "true"

	activities, err := i.itineraryService.DayActivities(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"), day, manage)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, activities, "Activities fetched successfully")
}
