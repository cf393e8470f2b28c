package services

import (
	"bytes"
	"context"
	"fmt"

	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	dbm "roamio/internal/models/db_models"
	"roamio/internal/models/response_models"
	"roamio/internal/repositories"
	"roamio/pkg/utils"
)

type ExportServiceInterface interface {
	ExportPDF(ctx context.Context, accountID string, itineraryID string) ([]byte, error)
}

type ExportService struct {
	itineraryRepo repositories.ItineraryRepository
	shareLinks    ShareLinkServiceInterface
}

func NewExportService(
	itineraryRepo repositories.ItineraryRepository,
	shareLinks ShareLinkServiceInterface,
) ExportServiceInterface {
	return &ExportService{
		itineraryRepo: itineraryRepo,
		shareLinks:    shareLinks,
	}
}

// ExportPDF renders the itinerary day by day, selected activities only,
// with a share-link QR code on the first page.
func (e *ExportService) ExportPDF(ctx context.Context, accountID string, itineraryID string) ([]byte, error) {
	itinerary, err := e.itineraryRepo.GetByID(ctx, itineraryID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if itinerary == nil {
		return nil, utils.ErrItineraryNotFound
	}
	if itinerary.AccountID != nil && itinerary.AccountID.String() != accountID {
		return nil, utils.ErrForbidden
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, fmt.Sprintf("Trip to %s", itinerary.Destination))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.Cell(0, 8, fmt.Sprintf("%s to %s  |  %s  |  %s",
		itinerary.StartDate, itinerary.EndDate, itinerary.Budget, itinerary.TotalBudget))
	pdf.Ln(12)

	if link, err := e.shareLinks.Encode(response_models.BuildItineraryResponse(itinerary)); err == nil {
		if qrPNG, err := qrcode.Encode(link, qrcode.Medium, 256); err == nil {
			imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
			pdf.RegisterImageOptionsReader("share-qr", imageOpts, bytes.NewReader(qrPNG))
			pdf.ImageOptions("share-qr", 160, 10, 35, 35, false, imageOpts, 0, "")
		}
	}

	for i := range itinerary.Days {
		day := &itinerary.Days[i]

		pdf.SetFont("Arial", "B", 14)
		pdf.Cell(0, 9, fmt.Sprintf("Day %d - %s", day.DayNumber, day.Date))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		if day.TotalEstimatedCost != "" {
			pdf.Cell(0, 6, fmt.Sprintf("Estimated cost: %s", day.TotalEstimatedCost))
			pdf.Ln(6)
		}

		for _, act := range displayActivities(day, false) {
			e.writeActivity(pdf, &act)
		}

		if day.Notes != "" {
			pdf.SetFont("Arial", "I", 10)
			pdf.MultiCell(0, 5, fmt.Sprintf("Notes: %s", day.Notes), "", "L", false)
			pdf.SetFont("Arial", "", 10)
		}
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

func (e *ExportService) writeActivity(pdf *gofpdf.Fpdf, act *dbm.Activity) {
	pdf.SetFont("Arial", "B", 10)
	header := act.Title
	if act.Time != "" {
		header = fmt.Sprintf("%s  %s", act.Time, act.Title)
	}
	pdf.MultiCell(0, 5, header, "", "L", false)

	pdf.SetFont("Arial", "", 10)
	if act.Location != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("   %s", act.Location), "", "L", false)
	}
	if act.Description != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("   %s", act.Description), "", "L", false)
	}
	if act.CostEstimate != "" {
		pdf.MultiCell(0, 5, fmt.Sprintf("   Cost: %s", act.CostEstimate), "", "L", false)
	}
	pdf.Ln(2)
}
