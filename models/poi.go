package models

type POI struct {
	PoiID       string `json:"poiid" bson:"poiid"`
	Park        string `json:"park" bson:"park"`
	ParkName    string `json:"parkName" bson:"parkName"`
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"`
	Description string `json:"description" bson:"description"`
	Card        Card   `json:"card" bson:"card"`
}
