package helpers

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/gatherhub/server/internal/models"
)

// SessionCookie is the HTTP-only cookie carrying the session token.
const SessionCookie = "session"

// RegistrantCookie carries the registration-by-email session marker. It is
// separate from SessionCookie so registering while logged in does not
// replace the login session.
const RegistrantCookie = "registrant"

// SessionTTL bounds every session; there is no refresh flow, expiry means
// a fresh login (or a fresh registration for anonymous registrants).
const SessionTTL = 24 * time.Hour

// SessionClaims is the identity payload of a session token. Kind mirrors
// models.ActorKind; the remaining fields are set according to the kind.
type SessionClaims struct {
	Kind     string `json:"kind"`
	UserID   int64  `json:"user_id,omitempty"`
	Username string `json:"username,omitempty"`
	Email    string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// SignSession issues a session token for the actor.
func SignSession(secret string, actor models.Actor) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		Kind:     string(actor.Kind),
		UserID:   actor.UserID,
		Username: actor.Username,
		Email:    actor.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(SessionTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateSession parses and verifies a session token.
func ValidateSession(secret, tokenStr string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &SessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("token validation failed: %w", err)
	}
	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return claims, nil
}

// Actor rebuilds the request identity from validated claims. Unknown or
// incomplete claims degrade to guest rather than failing the request.
func (c *SessionClaims) Actor() models.Actor {
	switch models.ActorKind(c.Kind) {
	case models.ActorOrganizer:
		return models.Actor{Kind: models.ActorOrganizer, Username: c.Username}
	case models.ActorUser:
		if c.UserID == 0 || c.Email == "" {
			return models.Guest()
		}
		return models.Actor{Kind: models.ActorUser, UserID: c.UserID, Username: c.Username, Email: c.Email}
	case models.ActorRegistrant:
		if c.Email == "" {
			return models.Guest()
		}
		return models.Actor{Kind: models.ActorRegistrant, Email: c.Email}
	default:
		return models.Guest()
	}
}
