package models

// Card is the denormalized summary embedded in every entity for
// list-view rendering.
type Card struct {
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Href        string `json:"href" bson:"href"`
	Image       string `json:"image,omitempty" bson:"image,omitempty"`
	ImageAlt    string `json:"imageAlt,omitempty" bson:"imageAlt,omitempty"`
}
