package request_models

// DayNotesRequest replaces the free-text annotation on one day.
type DayNotesRequest struct {
	Notes string `json:"notes"`
}

// ActivityRef identifies an activity inside a day. ID wins when present;
// title+time is the compatibility match for activities imported from legacy
// shared links, which carry no stable identifier.
type ActivityRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Time  string `json:"time"`
}

// ToggleActivityRequest flips the selection flag on every matching activity
// in the day. When nothing matches, the payload describes a brand-new
// activity to append with selected=true.
type ToggleActivityRequest struct {
	ID           string `json:"id"`
	Time         string `json:"time"`
	Title        string `json:"title" binding:"required"`
	Description  string `json:"description"`
	Location     string `json:"location"`
	CostEstimate string `json:"cost_estimate"`
	Tips         string `json:"tips"`
	Category     string `json:"category"`
}

// CommitSelectionRequest is manage-mode "Done": the day's activity list is
// replaced by exactly these entries, discarding everything unselected.
type CommitSelectionRequest struct {
	SelectedActivities []ToggleActivityRequest `json:"selected_activities"`
}

// ShareRequest asks for a share link of either a stored itinerary (by id)
// or an inline, never-persisted one.
type ShareRequest struct {
	ItineraryID string `json:"itinerary_id"`
}
