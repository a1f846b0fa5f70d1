package models

// Activity is one timed entry within a day's plan. At most one of
// PathID/PoiID/CampsiteID references the chosen location.
type Activity struct {
	Time        string `json:"time" bson:"time"`
	Activity    string `json:"activity" bson:"activity"`
	Location    string `json:"location" bson:"location"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	PathID      string `json:"pathId,omitempty" bson:"pathId,omitempty"`
	PoiID       string `json:"poiId,omitempty" bson:"poiId,omitempty"`
	CampsiteID  string `json:"campsiteId,omitempty" bson:"campsiteId,omitempty"`
}

// Itinerary is one persisted document representing a single day's plan
// within a trip. Days of a trip share a tripid and are grouped by it;
// itineraryid follows the `${tripid}-day${n}` convention.
type Itinerary struct {
	ItineraryID  string     `json:"itineraryid" bson:"itineraryid"`
	TripID       string     `json:"tripid" bson:"tripid"`
	TripName     string     `json:"tripName" bson:"tripName"`
	Owner        string     `json:"owner" bson:"owner"` // username, set server-side
	Day          int        `json:"day" bson:"day"`
	Date         string     `json:"date" bson:"date"`
	Activities   []Activity `json:"activities" bson:"activities"`
	CampsiteID   string     `json:"campsiteId,omitempty" bson:"campsiteId,omitempty"`
	CampsiteName string     `json:"campsiteName,omitempty" bson:"campsiteName,omitempty"`
	Notes        string     `json:"notes,omitempty" bson:"notes,omitempty"`
	Card         Card       `json:"card" bson:"card"`
}
