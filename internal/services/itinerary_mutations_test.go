package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	dbm "roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
)

func boolPtr(b bool) *bool { return &b }

func sampleModel() *dbm.Itinerary {
	it := &dbm.Itinerary{
		Destination: "Lisbon",
		StartDate:   "2026-09-01",
		EndDate:     "2026-09-02",
		Budget:      "Mid-range",
		Interests:   []string{"Food"},
		Days: []dbm.ItineraryDay{
			{
				DayNumber: 1,
				Date:      "Sep 1, 2026",
				Activities: []dbm.Activity{
					{Time: "2:00 PM", Title: "Museum"},
					{Time: "9:00 AM", Title: "Walking tour"},
					{Time: "7:00 PM", Title: "Dinner", Selected: boolPtr(false)},
				},
			},
			{
				DayNumber: 2,
				Date:      "Sep 2, 2026",
				Activities: []dbm.Activity{
					{Time: "10:00 AM", Title: "Beach"},
				},
			},
		},
	}
	for i := range it.Days {
		for j := range it.Days[i].Activities {
			it.Days[i].Activities[j].ID = uuid.New()
		}
	}
	return it
}

func TestSetDayNotes(t *testing.T) {
	src := sampleModel()
	out := setDayNotes(src, 1, "pack sunscreen")

	assert.Equal(t, "pack sunscreen", out.Days[0].Notes)
	assert.Empty(t, out.Days[1].Notes)
	assert.Empty(t, src.Days[0].Notes, "input snapshot must stay untouched")
}

func TestSetDayNotesUnknownDayIsNoop(t *testing.T) {
	src := sampleModel()
	out := setDayNotes(src, 99, "lost")

	for i := range out.Days {
		assert.Empty(t, out.Days[i].Notes)
	}
}

func TestToggleActivityExcludesAndReincludes(t *testing.T) {
	src := sampleModel()
	target := src.Days[0].Activities[0]

	ref := request_models.ToggleActivityRequest{ID: target.ID.String(), Title: target.Title, Time: target.Time}

	excluded := toggleActivity(src, 1, ref)
	assert.False(t, excluded.Days[0].Activities[0].Included())
	assert.True(t, src.Days[0].Activities[0].Included(), "input snapshot must stay untouched")

	restored := toggleActivity(excluded, 1, ref)
	assert.True(t, restored.Days[0].Activities[0].Included())
}

func TestToggleActivityMatchesByTitleAndTime(t *testing.T) {
	src := sampleModel()
	// Legacy refs carry no id; title+time only, and every match flips.
	src.Days[0].Activities = append(src.Days[0].Activities, dbm.Activity{
		BaseModel: dbm.BaseModel{ID: uuid.New()}, Time: "2:00 PM", Title: "Museum",
	})

	out := toggleActivity(src, 1, request_models.ToggleActivityRequest{Title: "Museum", Time: "2:00 PM"})

	assert.False(t, out.Days[0].Activities[0].Included())
	assert.False(t, out.Days[0].Activities[3].Included())
	assert.True(t, out.Days[0].Activities[1].Included(), "non-matching activity untouched")
}

func TestToggleActivityAppendsWhenNothingMatches(t *testing.T) {
	src := sampleModel()
	out := toggleActivity(src, 2, request_models.ToggleActivityRequest{
		Time: "3:00 PM", Title: "Surf lesson", Category: "Adventure",
	})

	require.Len(t, out.Days[1].Activities, 2)
	added := out.Days[1].Activities[1]
	assert.Equal(t, "Surf lesson", added.Title)
	assert.True(t, added.Included())
	assert.NotEqual(t, uuid.Nil, added.ID)
	assert.Len(t, src.Days[1].Activities, 1, "input snapshot must stay untouched")
}

func TestToggleActivityUnknownDayIsNoop(t *testing.T) {
	src := sampleModel()
	out := toggleActivity(src, 99, request_models.ToggleActivityRequest{Title: "Museum", Time: "2:00 PM"})

	require.Len(t, out.Days, 2)
	assert.Len(t, out.Days[0].Activities, 3)
	assert.Len(t, out.Days[1].Activities, 1)
}

func TestCommitSelectionReplacesDayAtomically(t *testing.T) {
	src := sampleModel()
	keep := src.Days[0].Activities[1]

	out := commitSelection(src, 1, []request_models.ToggleActivityRequest{
		{ID: keep.ID.String(), Time: keep.Time, Title: keep.Title},
	})

	require.Len(t, out.Days[0].Activities, 1)
	assert.Equal(t, keep.ID, out.Days[0].Activities[0].ID)
	assert.True(t, out.Days[0].Activities[0].Included())
	assert.Len(t, out.Days[1].Activities, 1, "other days untouched")
	assert.Len(t, src.Days[0].Activities, 3, "input snapshot must stay untouched")
}

func TestCommitSelectionEmptyClearsDay(t *testing.T) {
	src := sampleModel()
	out := commitSelection(src, 1, nil)
	assert.Empty(t, out.Days[0].Activities)
}

func TestDisplayActivitiesSortsAndFilters(t *testing.T) {
	src := sampleModel()

	viewing := displayActivities(&src.Days[0], false)
	require.Len(t, viewing, 2, "excluded activity hidden in viewing mode")
	assert.Equal(t, "Walking tour", viewing[0].Title)
	assert.Equal(t, "Museum", viewing[1].Title)

	manage := displayActivities(&src.Days[0], true)
	require.Len(t, manage, 3, "manage mode shows excluded activities")
	assert.Equal(t, "Dinner", manage[2].Title)
}

func TestDisplayActivitiesUnparseableTimesSortLast(t *testing.T) {
	day := dbm.ItineraryDay{
		DayNumber: 1,
		Activities: []dbm.Activity{
			{Time: "Afternoon", Title: "first stored"},
			{Time: "9:00 AM", Title: "morning"},
			{Time: "whenever", Title: "second stored"},
		},
	}

	out := displayActivities(&day, false)
	require.Len(t, out, 3)
	assert.Equal(t, "morning", out[0].Title)
	// Stable sort keeps stored order among unparseable times.
	assert.Equal(t, "first stored", out[1].Title)
	assert.Equal(t, "second stored", out[2].Title)
}

func TestCloneItineraryIsDeep(t *testing.T) {
	src := sampleModel()
	out := cloneItinerary(src)

	out.Days[0].Activities[0].Title = "changed"
	out.Days[0].Activities[2].Selected = boolPtr(true)
	out.Interests[0] = "changed"

	assert.Equal(t, "Museum", src.Days[0].Activities[0].Title)
	assert.False(t, *src.Days[0].Activities[2].Selected)
	assert.Equal(t, "Food", src.Interests[0])
}
