package models

// ConnectedPath and NearbyPoi carry cached display names so campsite
// views render without extra lookups. Broken references are rendered
// as missing, not enforced here.
type ConnectedPath struct {
	PathID   string `json:"pathId" bson:"pathId"`
	PathName string `json:"pathName" bson:"pathName"`
	PathType string `json:"pathType" bson:"pathType"` // road/trail
}

type NearbyPoi struct {
	PoiID   string `json:"poiId" bson:"poiId"`
	PoiName string `json:"poiName" bson:"poiName"`
	PoiType string `json:"poiType" bson:"poiType"`
}

type Campsite struct {
	SiteID         string          `json:"siteid" bson:"siteid"`
	Park           string          `json:"park" bson:"park"`
	ParkName       string          `json:"parkName" bson:"parkName"`
	Name           string          `json:"name" bson:"name"`
	Capacity       string          `json:"capacity" bson:"capacity"`
	Location       string          `json:"location" bson:"location"`
	Description    string          `json:"description" bson:"description"`
	ConnectedPaths []ConnectedPath `json:"connectedPaths" bson:"connectedPaths"`
	NearbyPoi      []NearbyPoi     `json:"nearbyPoi" bson:"nearbyPoi"`
	Card           Card            `json:"card" bson:"card"`
}
