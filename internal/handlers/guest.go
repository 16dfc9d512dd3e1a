// internal/handlers/guest.go
package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/danvv/auctionfc/internal/auth"
)

// EnsureGuest authenticates the request's auth_token cookie, minting a fresh
// guest identity (and cookie) when the token is missing or invalid. Guests
// are purely in-memory; the ID only has to be stable for the session.
func EnsureGuest(w http.ResponseWriter, r *http.Request) (uuid.UUID, error) {
	cookieHeader := r.Header.Get("Cookie")
	if strings.Contains(cookieHeader, "auth_token=") {
		token := extractCookieToken(cookieHeader, "auth_token")
		if sub, err := auth.AuthenticateJWT(token); err == nil {
			id, parseErr := uuid.Parse(sub)
			if parseErr != nil {
				return uuid.Nil, fmt.Errorf("invalid user ID in token: %w", parseErr)
			}
			return id, nil
		}
		// fall through: stale or forged token gets replaced
	}

	guestID := uuid.New()
	token, err := auth.CreateJWT(guestID.String())
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create guest JWT: %w", err)
	}
	http.SetCookie(w, &http.Cookie{
		Name:     "auth_token",
		Value:    token,
		HttpOnly: true,
		Path:     "/",
		MaxAge:   auth.TOKEN_EXPIRE_TIME_SEC,
	})
	return guestID, nil
}
