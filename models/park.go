package models

type Park struct {
	ParkID      string `json:"parkid" bson:"parkid"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description" bson:"description"`
	Location    string `json:"location" bson:"location"`
	Established string `json:"established" bson:"established"`
	Size        string `json:"size" bson:"size"`
	Card        Card   `json:"card" bson:"card"`
}
