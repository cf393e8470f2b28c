package services

import (
	"sort"

	"github.com/google/uuid"
	dbm "roamio/internal/models/db_models"
	"roamio/internal/models/request_models"
	"roamio/pkg/utils"
)

// Snapshot mutations. Every function here returns a new itinerary value and
// leaves its input untouched; callers persist the snapshot as a whole. At
// most one day's activity list differs between input and output.

func cloneItinerary(src *dbm.Itinerary) *dbm.Itinerary {
	out := *src
	out.Interests = append([]string(nil), src.Interests...)
	out.Days = make([]dbm.ItineraryDay, len(src.Days))
	for i, d := range src.Days {
		day := d
		day.Activities = make([]dbm.Activity, len(d.Activities))
		for j, a := range d.Activities {
			act := a
			if a.Selected != nil {
				sel := *a.Selected
				act.Selected = &sel
			}
			day.Activities[j] = act
		}
		out.Days[i] = day
	}
	return &out
}

// setDayNotes replaces the notes on the day with the matching number. An
// unknown day number returns the snapshot unchanged; the caller decides
// whether that is worth reporting.
func setDayNotes(src *dbm.Itinerary, dayNumber int, notes string) *dbm.Itinerary {
	out := cloneItinerary(src)
	for i := range out.Days {
		if out.Days[i].DayNumber == dayNumber {
			out.Days[i].Notes = notes
			break
		}
	}
	return out
}

// matchesRef matches by the synthetic activity id when the payload carries
// one. Title+time is the fallback for activities that came in through
// legacy shared links and never got an id; collisions there flip every
// match, which is the historical behavior.
func matchesRef(a *dbm.Activity, id string, title string, timeStr string) bool {
	if id != "" {
		return a.ID.String() == id
	}
	return a.Title == title && a.Time == timeStr
}

// toggleActivity flips the selection flag on all matching activities within
// the target day. When nothing matches, the payload is appended as a new
// activity with selected=true.
func toggleActivity(src *dbm.Itinerary, dayNumber int, req request_models.ToggleActivityRequest) *dbm.Itinerary {
	out := cloneItinerary(src)
	for i := range out.Days {
		day := &out.Days[i]
		if day.DayNumber != dayNumber {
			continue
		}

		matched := false
		for j := range day.Activities {
			a := &day.Activities[j]
			if matchesRef(a, req.ID, req.Title, req.Time) {
				flipped := !a.Included()
				a.Selected = &flipped
				matched = true
			}
		}

		if !matched {
			selected := true
			day.Activities = append(day.Activities, activityFromPayload(req, &selected))
		}
		break
	}
	return out
}

// commitSelection is manage-mode "Done": the day's list becomes exactly the
// supplied selected activities, atomically. Everything soft-deleted is gone
// for good; there is no cancel path out of manage mode.
func commitSelection(src *dbm.Itinerary, dayNumber int, selected []request_models.ToggleActivityRequest) *dbm.Itinerary {
	out := cloneItinerary(src)
	for i := range out.Days {
		day := &out.Days[i]
		if day.DayNumber != dayNumber {
			continue
		}

		acts := make([]dbm.Activity, 0, len(selected))
		for _, p := range selected {
			sel := true
			acts = append(acts, activityFromPayload(p, &sel))
		}
		day.Activities = acts
		break
	}
	return out
}

func activityFromPayload(p request_models.ToggleActivityRequest, selected *bool) dbm.Activity {
	act := dbm.Activity{
		Time:         p.Time,
		Title:        p.Title,
		Description:  p.Description,
		Location:     p.Location,
		CostEstimate: p.CostEstimate,
		Tips:         p.Tips,
		Category:     p.Category,
		Selected:     selected,
	}
	if id, err := uuid.Parse(p.ID); err == nil {
		act.ID = id
	} else {
		act.ID = uuid.New()
	}
	return act
}

// displayActivities derives the chronological view of one day. Viewing mode
// hides soft-deleted activities; manage mode shows everything so excluded
// items can be re-included. The sort is stable so equal (or unparseable)
// start times keep their stored relative order.
func displayActivities(day *dbm.ItineraryDay, manage bool) []dbm.Activity {
	out := make([]dbm.Activity, 0, len(day.Activities))
	for _, a := range day.Activities {
		if manage || a.Included() {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return utils.ClockMinutes(out[i].Time) < utils.ClockMinutes(out[j].Time)
	})
	return out
}
