package models

const (
	PathTypeRoad  = "road"
	PathTypeTrail = "trail"
)

type Path struct {
	PathID      string `json:"pathid" bson:"pathid"`
	Park        string `json:"park" bson:"park"`
	ParkName    string `json:"parkName" bson:"parkName"`
	Name        string `json:"name" bson:"name"`
	Type        string `json:"type" bson:"type"` // road/trail
	Description string `json:"description" bson:"description"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty" bson:"imageAlt,omitempty"`
	Card        Card   `json:"card" bson:"card"`
}
