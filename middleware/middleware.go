package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"natty/globals"
	"natty/utils"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"
)

// JWT claims
type Claims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// Authenticate guards the /api/* surface. It extracts the bearer token,
// verifies signature and expiry, and stores the username claim in the
// request context.
func Authenticate(next httprouter.Handle) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
		tokenString := bearerToken(r)
		if tokenString == "" {
			utils.RespondWithError(w, http.StatusUnauthorized, "No token provided")
			return
		}

		claims, err := parseToken(tokenString)
		if err != nil {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), globals.UsernameKey, claims.Username)
		next(w, r.WithContext(ctx), ps)
	}
}

// ValidateJWT verifies a raw "Bearer ..." header value and returns the
// decoded claims. Handlers that need the username outside the normal
// middleware chain (e.g. the PDF printer) use this directly.
func ValidateJWT(authHeader string) (*Claims, error) {
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return nil, fmt.Errorf("invalid token")
	}
	return parseToken(strings.TrimPrefix(authHeader, "Bearer "))
}

func bearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimPrefix(authHeader, "Bearer ")
}

func parseToken(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return globals.JwtSecret, nil
	})
	if err != nil || !token.Valid {
		return nil, fmt.Errorf("unauthorized: %w", err)
	}
	return claims, nil
}
