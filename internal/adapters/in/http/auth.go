package http

import (
	"errors"
	"net/http"
	"strings"

	"ordertrack/internal/core/domain/model/account"
	"ordertrack/internal/core/domain/model/kernel"

	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const actorContextKey = "ordertrack.actor"

// Actor is the authenticated caller extracted from the bearer token.
// ID is the vendor or partner profile id carried in the subject claim.
type Actor struct {
	ID   kernel.UUID
	Role account.Role
}

type actorClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// parseToken validates an HS256 bearer token and extracts the actor.
// The subject claim carries the profile id and the role claim the account role.
func parseToken(tokenStr string, secret []byte) (Actor, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &actorClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		if err == nil {
			err = errors.New("invalid token")
		}
		return Actor{}, err
	}

	claims, ok := token.Claims.(*actorClaims)
	if !ok || claims.Subject == "" {
		return Actor{}, errors.New("invalid claims")
	}

	id, err := kernel.UUIDFromString(claims.Subject)
	if err != nil {
		return Actor{}, errors.New("invalid subject claim")
	}

	role, err := account.RoleFromString(strings.ToLower(claims.Role))
	if err != nil {
		return Actor{}, errors.New("invalid role claim")
	}

	return Actor{ID: id, Role: role}, nil
}

// AuthMiddleware validates the Authorization header and stores the actor in
// the request context. Requests without a valid bearer token are rejected
// with 401.
func AuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Missing or malformed authorization header",
				})
			}

			actor, err := parseToken(strings.TrimSpace(parts[1]), secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, errorResponse{
					Code:    http.StatusUnauthorized,
					Message: "Invalid or expired token",
				})
			}

			c.Set(actorContextKey, actor)
			return next(c)
		}
	}
}

// actorFromContext returns the actor stored by AuthMiddleware.
func actorFromContext(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorContextKey).(Actor)
	return actor, ok
}
