package globals

import (
	"context"
	"os"
)

var (
	// Signing key for access tokens. TOKEN_SECRET must be set in production.
	JwtSecret = []byte(getenv("TOKEN_SECRET", "NOT_A_SECRET"))
)

// Context keys
type ContextKey string

const UsernameKey ContextKey = "username"
const RequestIDKey ContextKey = "requestId"

var Ctx = context.Background()

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
