package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"supplymitra/internal/core/domain/model/account"
	"supplymitra/internal/core/domain/model/kernel"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	actorIDContextKey   = "actorID"
	actorRoleContextKey = "actorRole"

	// requestTimeout bounds every persistence call made on behalf of one
	// request. A database that cannot answer in time surfaces as 503, not
	// as a hung connection.
	requestTimeout = 5 * time.Second
)

// NewTimeoutMiddleware returns echo middleware that bounds the request
// context. Deadline hits inside the storage layer map to Unavailable.
func NewTimeoutMiddleware(timeout time.Duration) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx, cancel := context.WithTimeout(c.Request().Context(), timeout)
			defer cancel()

			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// NewAuthMiddleware returns echo middleware that verifies the request's
// bearer token and stores the authenticated actor on the request context.
// Tokens are HMAC-signed JWTs carrying the account id in "sub" and the
// marketplace role in "role"; issuance belongs to the identity provider.
func NewAuthMiddleware(secret []byte) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			raw, found := strings.CutPrefix(header, "Bearer ")
			if !found || raw == "" {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "missing bearer token",
				})
			}

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(raw, claims, func(_ *jwt.Token) (any, error) {
				return secret, nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token",
				})
			}

			subject, err := claims.GetSubject()
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token subject",
				})
			}
			actorID, err := kernel.UUIDFromString(subject)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token subject",
				})
			}

			roleClaim, _ := claims["role"].(string)
			role, err := account.RoleFromString(roleClaim)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, ErrorResponse{
					Code:    http.StatusUnauthorized,
					Message: "invalid token role",
				})
			}

			c.Set(actorIDContextKey, actorID)
			c.Set(actorRoleContextKey, role)
			return next(c)
		}
	}
}

// actorID returns the authenticated account identifier set by the auth middleware.
func actorID(c echo.Context) kernel.UUID {
	id, _ := c.Get(actorIDContextKey).(kernel.UUID)
	return id
}

// actorRole returns the authenticated account role set by the auth middleware.
func actorRole(c echo.Context) account.Role {
	role, _ := c.Get(actorRoleContextKey).(account.Role)
	return role
}
