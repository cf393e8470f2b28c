package request_models

// GenerateItineraryRequest is the planning form submission. Validation runs
// before any provider call; no partial submission reaches the LLM.
type GenerateItineraryRequest struct {
	Destinations []string `json:"destinations" binding:"required,min=1,dive,min=1"`
	StartDate    string   `json:"start_date" binding:"required"`
	EndDate      string   `json:"end_date" binding:"required"`
	Budget       string   `json:"budget" binding:"required,oneof=Budget Mid-range Luxury"`
	Interests    []string `json:"interests" binding:"required,min=1"`
	Currency     string   `json:"currency"`
}
