package models

import "time"

// User stores a credential pair. Password carries the plaintext only
// during request decoding and is replaced with the bcrypt hash before
// the document is saved.
type User struct {
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"password" bson:"password"`
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
	LastLogin time.Time `json:"last_login,omitempty" bson:"last_login,omitempty"`
}
