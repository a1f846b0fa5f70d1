package utils

import (
	"net/http"

	"natty/globals"
)

// GetUsernameFromRequest returns the username the auth middleware
// attached to the request context, or "" when unauthenticated.
func GetUsernameFromRequest(r *http.Request) string {
	username, ok := r.Context().Value(globals.UsernameKey).(string)
	if !ok || username == "" {
		return ""
	}
	return username
}
