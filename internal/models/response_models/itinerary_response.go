package response_models

import (
	"time"

	"roamio/internal/models/db_models"
)

// Field names follow the shape embedded in shared links, so the same DTO
// serves API responses, link previews and legacy token payloads.

type PreferencesResponse struct {
	Budget    string   `json:"budget"`
	Interests []string `json:"interests"`
}

type ActivityResponse struct {
	ID           string `json:"id,omitempty"`
	Time         string `json:"time"`
	Title        string `json:"title"`
	Description  string `json:"description,omitempty"`
	Location     string `json:"location,omitempty"`
	CostEstimate string `json:"costEstimate,omitempty"`
	Tips         string `json:"tips,omitempty"`
	Category     string `json:"category,omitempty"`
	Selected     *bool  `json:"selected,omitempty"`
}

type DayResponse struct {
	Day                int                `json:"day"`
	Date               string             `json:"date"`
	Activities         []ActivityResponse `json:"activities"`
	TotalEstimatedCost string             `json:"totalEstimatedCost"`
	Notes              string             `json:"notes,omitempty"`
}

type ItineraryResponse struct {
	ID          string              `json:"id"`
	Destination string              `json:"destination"`
	StartDate   string              `json:"startDate"`
	EndDate     string              `json:"endDate"`
	Preferences PreferencesResponse `json:"preferences"`
	Days        []DayResponse       `json:"days"`
	TotalBudget string              `json:"totalBudget"`
	CreatedAt   string              `json:"createdAt"`
	Currency    string              `json:"currency"`
}

type ShareLinkResponse struct {
	URL string `json:"url"`
}

func BuildItineraryResponse(it *db_models.Itinerary) *ItineraryResponse {
	out := &ItineraryResponse{
		ID:          it.ID.String(),
		Destination: it.Destination,
		StartDate:   it.StartDate,
		EndDate:     it.EndDate,
		Preferences: PreferencesResponse{
			Budget:    it.Budget,
			Interests: append([]string(nil), it.Interests...),
		},
		Days:        make([]DayResponse, 0, len(it.Days)),
		TotalBudget: it.TotalBudget,
		CreatedAt:   time.Unix(it.CreatedAt, 0).UTC().Format(time.RFC3339),
		Currency:    it.Currency,
	}

	for _, d := range it.Days {
		day := DayResponse{
			Day:                d.DayNumber,
			Date:               d.Date,
			Activities:         make([]ActivityResponse, 0, len(d.Activities)),
			TotalEstimatedCost: d.TotalEstimatedCost,
			Notes:              d.Notes,
		}
		for _, a := range d.Activities {
			day.Activities = append(day.Activities, ActivityResponse{
				ID:           a.ID.String(),
				Time:         a.Time,
				Title:        a.Title,
				Description:  a.Description,
				Location:     a.Location,
				CostEstimate: a.CostEstimate,
				Tips:         a.Tips,
				Category:     a.Category,
				Selected:     a.Selected,
			})
		}
		out.Days = append(out.Days, day)
	}

	return out
}
