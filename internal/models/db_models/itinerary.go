package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Itinerary is the root entity for one trip. Dates and costs are display
// strings produced by the generator, not parsed values; startDate < endDate
// is validated at the form boundary before generation.
type Itinerary struct {
	BaseModel
	AccountID   *uuid.UUID `gorm:"type:uuid;index"`
	Destination string
	StartDate   string
	EndDate     string
	Budget      string
	Interests   pq.StringArray `gorm:"type:text[]"`
	TotalBudget string
	Currency    string `gorm:"default:USD"`

	Days []ItineraryDay `gorm:"constraint:OnDelete:CASCADE"`
}

type ItineraryDay struct {
	BaseModel
	ItineraryID        uuid.UUID `gorm:"type:uuid;index"`
	DayNumber          int
	Date               string
	TotalEstimatedCost string
	Notes              string

	Activities []Activity `gorm:"constraint:OnDelete:CASCADE"`
}

// Activity is one scheduled item within a day. Selected nil or true means
// included; explicit false is a soft delete kept around until a manage-mode
// commit replaces the day's list.
type Activity struct {
	BaseModel
	ItineraryDayID uuid.UUID `gorm:"type:uuid;index"`
	Time           string
	Title          string
	Description    string
	Location       string
	CostEstimate   string
	Tips           string
	Category       string
	Selected       *bool
}

// Included reports whether the activity belongs in the normal (viewing)
// display: absence of a selection flag counts as selected.
func (a *Activity) Included() bool {
	return a.Selected == nil || *a.Selected
}
