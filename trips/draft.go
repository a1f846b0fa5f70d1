package trips

import (
	"errors"
	"fmt"
	"time"

	"natty/models"
)

// ErrIncompleteActivity is returned when an activity draft is committed
// without its required fields.
var ErrIncompleteActivity = errors.New("time, activity name, and location are required")

// ActivityDraft is the in-progress activity entry of one day.
type ActivityDraft struct {
	Time          string `json:"time"`
	Activity      string `json:"activity"`
	Location      string `json:"location"`
	Description   string `json:"description,omitempty"`
	ReferenceType string `json:"referenceType,omitempty"` // path/poi/campsite
	ReferenceID   string `json:"referenceId,omitempty"`
}

// DayDraft holds one day's committed activities plus its in-progress
// activity draft.
type DayDraft struct {
	Day        int               `json:"day"`
	Date       string            `json:"date"`
	Notes      string            `json:"notes,omitempty"`
	Activities []models.Activity `json:"activities"`
	Draft      ActivityDraft     `json:"draft"`
}

// TripDraft mirrors the itinerary authoring form: trip metadata plus a
// per-day draft array kept consistent with trip length and start date.
type TripDraft struct {
	TripID       string     `json:"tripid"`
	TripName     string     `json:"tripName"`
	Park         string     `json:"park,omitempty"`
	StartDate    string     `json:"startDate"`
	Length       int        `json:"tripLength"`
	CampsiteID   string     `json:"campsiteId,omitempty"`
	CampsiteName string     `json:"campsiteName,omitempty"`
	Days         []DayDraft `json:"days"`
}

func defaultDay(dayNum int) DayDraft {
	return DayDraft{
		Day:        dayNum,
		Activities: []models.Activity{},
	}
}

// NewTripDraft starts a one-day trip.
func NewTripDraft() *TripDraft {
	return &TripDraft{
		Length: 1,
		Days:   []DayDraft{defaultDay(1)},
	}
}

// SetLength resizes the day array, preserving existing day data by
// index and default-initializing new days. Lengths below 1 clamp to 1.
func (t *TripDraft) SetLength(length int) {
	if length < 1 {
		length = 1
	}
	t.Length = length

	next := make([]DayDraft, length)
	for i := 0; i < length; i++ {
		if i < len(t.Days) {
			next[i] = t.Days[i]
			next[i].Day = i + 1
		} else {
			next[i] = defaultDay(i + 1)
		}
	}
	t.Days = next
	t.updateAutoDates()
}

// SetStartDate recomputes every day's date as start + dayIndex days.
func (t *TripDraft) SetStartDate(date string) {
	t.StartDate = date
	t.updateAutoDates()
}

// SetPark switches the scoping park and clears the location selection
// of every day's in-progress draft; fetching the park-scoped options
// is the caller's concern.
func (t *TripDraft) SetPark(parkID string) {
	t.Park = parkID
	for i := range t.Days {
		t.Days[i].Draft.Location = ""
		t.Days[i].Draft.ReferenceType = ""
		t.Days[i].Draft.ReferenceID = ""
	}
}

func (t *TripDraft) updateAutoDates() {
	if t.StartDate == "" || t.Length < 1 {
		return
	}
	for i := range t.Days {
		if d := addDays(t.StartDate, i); d != "" {
			t.Days[i].Date = d
		}
	}
}

// addDays offsets a YYYY-MM-DD date, returning "" on a malformed base.
func addDays(base string, days int) string {
	d, err := time.Parse("2006-01-02", base)
	if err != nil {
		return ""
	}
	return d.AddDate(0, 0, days).Format("2006-01-02")
}

// AddActivity validates and commits the given day's in-progress draft
// to its activity list, then clears the draft.
func (t *TripDraft) AddActivity(dayIndex int) error {
	if dayIndex < 0 || dayIndex >= len(t.Days) {
		return fmt.Errorf("no day at index %d", dayIndex)
	}

	day := &t.Days[dayIndex]
	draft := day.Draft
	if draft.Time == "" || draft.Activity == "" || draft.Location == "" {
		return ErrIncompleteActivity
	}

	activity := models.Activity{
		Time:        draft.Time,
		Activity:    draft.Activity,
		Location:    draft.Location,
		Description: draft.Description,
	}
	if draft.ReferenceID != "" {
		switch draft.ReferenceType {
		case "path":
			activity.PathID = draft.ReferenceID
		case "poi":
			activity.PoiID = draft.ReferenceID
		case "campsite":
			activity.CampsiteID = draft.ReferenceID
		}
	}

	day.Activities = append(day.Activities, activity)
	day.Draft = ActivityDraft{}
	return nil
}

// RemoveActivity drops a committed activity from a day.
func (t *TripDraft) RemoveActivity(dayIndex, idx int) {
	if dayIndex < 0 || dayIndex >= len(t.Days) {
		return
	}
	day := &t.Days[dayIndex]
	if idx < 0 || idx >= len(day.Activities) {
		return
	}
	day.Activities = append(day.Activities[:idx], day.Activities[idx+1:]...)
}

// Build assembles one itinerary document per day, with ids following
// the `${tripid}-day${n}` convention and a synthesized card summary.
func (t *TripDraft) Build() []models.Itinerary {
	itineraries := make([]models.Itinerary, 0, len(t.Days))
	for _, d := range t.Days {
		title := "Itinerary"
		if len(d.Activities) > 0 {
			title = d.Activities[0].Activity
		}
		description := d.Notes
		if description == "" {
			description = "User-created itinerary"
		}

		itineraries = append(itineraries, models.Itinerary{
			ItineraryID:  fmt.Sprintf("%s-day%d", t.TripID, d.Day),
			TripID:       t.TripID,
			TripName:     t.TripName,
			Day:          d.Day,
			Date:         d.Date,
			Notes:        d.Notes,
			CampsiteID:   t.CampsiteID,
			CampsiteName: t.CampsiteName,
			Activities:   append([]models.Activity{}, d.Activities...),
			Card: models.Card{
				Title:       fmt.Sprintf("Day %d: %s", d.Day, title),
				Description: description,
				Href:        fmt.Sprintf("/app/trips/%s/itinerary/day%d", t.TripID, d.Day),
			},
		})
	}
	return itineraries
}

// Validate checks the draft is submittable.
func (t *TripDraft) Validate() error {
	switch {
	case t.TripID == "":
		return errors.New("tripid is required")
	case t.TripName == "":
		return errors.New("tripName is required")
	case t.StartDate == "":
		return errors.New("startDate is required")
	case addDays(t.StartDate, 0) == "":
		return errors.New("startDate must be a YYYY-MM-DD date")
	case len(t.Days) == 0:
		return errors.New("trip has no days")
	}
	return nil
}
