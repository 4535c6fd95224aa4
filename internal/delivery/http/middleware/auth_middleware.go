package middleware

import (
	"net/http"
	"strings"

	"vendir/internal/delivery/http/response"
	"vendir/internal/domain/entity"
	"vendir/internal/domain/service"
	"vendir/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// Context keys set by Authenticate for downstream handlers.
const (
	ContextKeyUserID = "userID"
	ContextKeyRole   = "role"
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the caller's
// identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), nil)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// OptionalAuthenticate stores the caller's identity when a valid token is
// present and lets anonymous requests pass untouched. A malformed token is
// still rejected rather than silently downgraded to guest.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if c.Request().Header.Get("Authorization") == "" {
			return next(c)
		}

		claims, err := m.claimsFromRequest(c)
		if err != nil {
			return response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", err.Error(), nil)
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(ContextKeyRole, claims.Role)

		return next(c)
	}
}

// RequireRole checks that the authenticated caller holds the given role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := c.Get(ContextKeyRole).(string)
			if !ok {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "role information missing", nil)
			}
			if role != requiredRole.String() {
				return response.Error(c, http.StatusForbidden, "FORBIDDEN", "require '"+requiredRole.String()+"' role", nil)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) claimsFromRequest(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return nil, errMissingAuthHeader
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		return nil, errNotBearerToken
	}

	claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
	if err != nil {
		return nil, errInvalidToken
	}

	return claims, nil
}

// UserIDFromContext reads the authenticated user ID set by Authenticate.
func UserIDFromContext(c echo.Context) (uuid.UUID, bool) {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)

	return userID, ok
}

var (
	errMissingAuthHeader = errors.New("Authorization header is missing")
	errNotBearerToken    = errors.New("invalid token format, must be Bearer token")
	errInvalidToken      = errors.New("invalid or expired token")
)
