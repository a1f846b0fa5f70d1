package trips

import (
	"testing"

	"natty/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetLengthShrinkPreservesFirstDay(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(3)
	require.Len(t, d.Days, 3)

	d.Days[0].Notes = "arrive late"
	d.Days[0].Activities = append(d.Days[0].Activities, models.Activity{
		Time: "09:00", Activity: "Hike", Location: "Mist Trail",
	})
	d.Days[1].Notes = "doomed"
	d.Days[2].Notes = "also doomed"

	d.SetLength(1)
	require.Len(t, d.Days, 1)
	assert.Equal(t, "arrive late", d.Days[0].Notes)
	require.Len(t, d.Days[0].Activities, 1)
	assert.Equal(t, "Hike", d.Days[0].Activities[0].Activity)
}

func TestSetLengthGrowDefaultInitializes(t *testing.T) {
	d := NewTripDraft()
	d.Days[0].Notes = "day one"

	d.SetLength(3)
	require.Len(t, d.Days, 3)
	assert.Equal(t, "day one", d.Days[0].Notes)

	for i, day := range d.Days {
		assert.Equal(t, i+1, day.Day)
	}
	assert.Empty(t, d.Days[1].Notes)
	assert.Empty(t, d.Days[1].Activities)
	assert.Empty(t, d.Days[2].Notes)
}

func TestSetLengthClampsToOne(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(0)
	assert.Len(t, d.Days, 1)
	d.SetLength(-5)
	assert.Len(t, d.Days, 1)
}

func TestSetStartDateRecomputesDayDates(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(3)
	d.SetStartDate("2024-07-10")

	assert.Equal(t, "2024-07-10", d.Days[0].Date)
	assert.Equal(t, "2024-07-11", d.Days[1].Date)
	assert.Equal(t, "2024-07-12", d.Days[2].Date)
}

func TestSetStartDateAcrossMonthBoundary(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(2)
	d.SetStartDate("2024-06-30")

	assert.Equal(t, "2024-06-30", d.Days[0].Date)
	assert.Equal(t, "2024-07-01", d.Days[1].Date)
}

func TestSetStartDateMalformedLeavesDates(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(2)
	d.SetStartDate("2024-07-10")
	d.SetStartDate("not-a-date")

	// malformed start keeps the previously derived dates
	assert.Equal(t, "2024-07-10", d.Days[0].Date)
	assert.Equal(t, "2024-07-11", d.Days[1].Date)
}

func TestSetParkClearsDraftLocations(t *testing.T) {
	d := NewTripDraft()
	d.SetLength(2)
	d.Days[0].Draft = ActivityDraft{Time: "10:00", Activity: "Walk", Location: "Valley Loop", ReferenceType: "path", ReferenceID: "valley-loop"}
	d.Days[1].Draft.Location = "Old Faithful"
	d.Days[1].Draft.ReferenceType = "poi"
	d.Days[1].Draft.ReferenceID = "old-faithful"

	d.SetPark("yell")

	assert.Equal(t, "yell", d.Park)
	for _, day := range d.Days {
		assert.Empty(t, day.Draft.Location)
		assert.Empty(t, day.Draft.ReferenceType)
		assert.Empty(t, day.Draft.ReferenceID)
	}
	// non-location draft fields survive the park switch
	assert.Equal(t, "10:00", d.Days[0].Draft.Time)
	assert.Equal(t, "Walk", d.Days[0].Draft.Activity)
}

func TestAddActivityValidatesRequiredFields(t *testing.T) {
	d := NewTripDraft()

	d.Days[0].Draft = ActivityDraft{Activity: "Hike", Location: "Mist Trail"}
	assert.ErrorIs(t, d.AddActivity(0), ErrIncompleteActivity)

	d.Days[0].Draft = ActivityDraft{Time: "09:00", Location: "Mist Trail"}
	assert.ErrorIs(t, d.AddActivity(0), ErrIncompleteActivity)

	d.Days[0].Draft = ActivityDraft{Time: "09:00", Activity: "Hike"}
	assert.ErrorIs(t, d.AddActivity(0), ErrIncompleteActivity)

	assert.Empty(t, d.Days[0].Activities)
}

func TestAddActivityCommitsAndClearsDraft(t *testing.T) {
	d := NewTripDraft()
	d.Days[0].Draft = ActivityDraft{
		Time:          "09:00",
		Activity:      "Hike",
		Location:      "Mist Trail",
		Description:   "bring water",
		ReferenceType: "path",
		ReferenceID:   "mist-trail",
	}

	require.NoError(t, d.AddActivity(0))
	require.Len(t, d.Days[0].Activities, 1)

	got := d.Days[0].Activities[0]
	assert.Equal(t, "09:00", got.Time)
	assert.Equal(t, "Hike", got.Activity)
	assert.Equal(t, "Mist Trail", got.Location)
	assert.Equal(t, "bring water", got.Description)
	assert.Equal(t, "mist-trail", got.PathID)
	assert.Empty(t, got.PoiID)

	assert.Equal(t, ActivityDraft{}, d.Days[0].Draft)
}

func TestAddActivityReferenceKinds(t *testing.T) {
	d := NewTripDraft()

	d.Days[0].Draft = ActivityDraft{Time: "12:00", Activity: "Watch eruption", Location: "Old Faithful", ReferenceType: "poi", ReferenceID: "old-faithful"}
	require.NoError(t, d.AddActivity(0))

	d.Days[0].Draft = ActivityDraft{Time: "18:00", Activity: "Camp", Location: "Bridge Bay", ReferenceType: "campsite", ReferenceID: "bridge-bay-001"}
	require.NoError(t, d.AddActivity(0))

	assert.Equal(t, "old-faithful", d.Days[0].Activities[0].PoiID)
	assert.Equal(t, "bridge-bay-001", d.Days[0].Activities[1].CampsiteID)
}

func TestAddActivityBadDayIndex(t *testing.T) {
	d := NewTripDraft()
	assert.Error(t, d.AddActivity(5))
	assert.Error(t, d.AddActivity(-1))
}

func TestRemoveActivity(t *testing.T) {
	d := NewTripDraft()
	for _, name := range []string{"a", "b", "c"} {
		d.Days[0].Draft = ActivityDraft{Time: "09:00", Activity: name, Location: "x"}
		require.NoError(t, d.AddActivity(0))
	}

	d.RemoveActivity(0, 1)
	require.Len(t, d.Days[0].Activities, 2)
	assert.Equal(t, "a", d.Days[0].Activities[0].Activity)
	assert.Equal(t, "c", d.Days[0].Activities[1].Activity)

	// out-of-range indexes are ignored
	d.RemoveActivity(0, 9)
	d.RemoveActivity(3, 0)
	assert.Len(t, d.Days[0].Activities, 2)
}

func TestBuildProducesOneDocumentPerDay(t *testing.T) {
	d := NewTripDraft()
	d.TripID = "yose-fall"
	d.TripName = "Yosemite Fall Adventure"
	d.SetLength(3)
	d.SetStartDate("2024-07-10")
	d.Days[0].Draft = ActivityDraft{Time: "09:00", Activity: "Hike", Location: "Mist Trail"}
	require.NoError(t, d.AddActivity(0))
	d.Days[1].Notes = "rest day"

	docs := d.Build()
	require.Len(t, docs, 3)

	assert.Equal(t, "yose-fall-day1", docs[0].ItineraryID)
	assert.Equal(t, "yose-fall-day2", docs[1].ItineraryID)
	assert.Equal(t, "yose-fall-day3", docs[2].ItineraryID)

	for i, doc := range docs {
		assert.Equal(t, "yose-fall", doc.TripID)
		assert.Equal(t, "Yosemite Fall Adventure", doc.TripName)
		assert.Equal(t, i+1, doc.Day)
	}

	assert.Equal(t, "2024-07-10", docs[0].Date)
	assert.Equal(t, "2024-07-12", docs[2].Date)

	// card synthesis: first activity names the day, notes fill the description
	assert.Equal(t, "Day 1: Hike", docs[0].Card.Title)
	assert.Equal(t, "Day 2: Itinerary", docs[1].Card.Title)
	assert.Equal(t, "rest day", docs[1].Card.Description)
	assert.Equal(t, "User-created itinerary", docs[2].Card.Description)
	assert.Equal(t, "/app/trips/yose-fall/itinerary/day1", docs[0].Card.Href)

	// owner is never set by the builder
	for _, doc := range docs {
		assert.Empty(t, doc.Owner)
	}
}

func TestValidateRejectsMalformedStartDate(t *testing.T) {
	d := NewTripDraft()
	d.TripID = "yose-fall"
	d.TripName = "Yosemite Fall"
	d.SetLength(2)
	d.SetStartDate("not-a-date")

	assert.Error(t, d.Validate())
}

// A draft run through the plan endpoint's pre-insert sequence must
// never build day documents with empty dates.
func TestPlanSequenceDerivesEveryDayDate(t *testing.T) {
	d := TripDraft{
		TripID:    "yose-fall",
		TripName:  "Yosemite Fall",
		StartDate: "not-a-date",
		Length:    2,
	}
	d.SetLength(d.Length)
	d.SetStartDate(d.StartDate)
	require.Error(t, d.Validate())

	d.SetStartDate("2024-07-10")
	require.NoError(t, d.Validate())
	for _, doc := range d.Build() {
		assert.NotEmpty(t, doc.Date)
	}
}

func TestValidate(t *testing.T) {
	d := NewTripDraft()
	assert.Error(t, d.Validate())

	d.TripID = "yose-fall"
	assert.Error(t, d.Validate())

	d.TripName = "Yosemite Fall"
	assert.Error(t, d.Validate())

	d.SetStartDate("2024-07-10")
	assert.NoError(t, d.Validate())
}
