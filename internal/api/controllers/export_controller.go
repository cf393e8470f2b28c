package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"roamio/internal/services"
	"roamio/pkg/utils"
)

type ExportController struct {
	exportService services.ExportServiceInterface
}

func NewExportController(exportService services.ExportServiceInterface) *ExportController {
	return &ExportController{
		exportService: exportService,
	}
}

// ExportPDF godoc
// @Summary Export an itinerary as PDF
// @Description Render the itinerary (selected activities only) with an embedded share QR code
// @Tags Export
// @Produce application/pdf
// @Param itineraryId path string true "Itinerary ID"
// @Success 200 {file} pdf
// @Failure 404 {object} utils.APIResponse
// @Security BearerAuth
// @Router /itineraries/{itineraryId}/export/pdf [get]
func (e *ExportController) ExportPDF(c *gin.Context) {
	pdfBytes, err := e.exportService.ExportPDF(c.Request.Context(), c.GetString("user_id"), c.Param("itineraryId"))
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", "attachment; filename=itinerary-"+c.Param("itineraryId")+".pdf")
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
