package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"booth-booking/internal/domain/staff"
	"booth-booking/internal/handler/httperr"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ctxSessionIDKey = "session_id"
	ctxStaffIDKey   = "staff_id"
	ctxStaffRoleKey = "staff_role"

	maxSessionIDLength = 128
)

var (
	errMissingToken = errors.New("bearer token required")
	errBadSession   = errors.New("session id is malformed")
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

// RequireSession accepts the browser session id as an opaque bearer token.
func (m *AuthMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := bearerToken(c)
		if sessionID == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingToken, "Session token required")
			return
		}
		if len(sessionID) > maxSessionIDLength {
			httperr.BadRequest(c, errBadSession, "Session token is too long")
			return
		}

		c.Set(ctxSessionIDKey, sessionID)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireStaff() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, errMissingToken, "Access token required")
			return
		}

		staffID, role, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.AbortWithError(c, http.StatusUnauthorized, errs.KindForbidden, err, "Invalid or expired token")
			return
		}

		c.Set(ctxStaffIDKey, staffID)
		c.Set(ctxStaffRoleKey, role)
		c.Set("jwt_claims", map[string]any{
			"staff_id": staffID.String(),
			"role":     string(role),
		})
		c.Next()
	}
}

func (m *AuthMiddleware) RequireRoleAtLeast(minRole staff.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetStaffRole(c)
		if !ok {
			// should be used after RequireStaff()
			httperr.AbortWithError(c, http.StatusInternalServerError, errs.KindInternal,
				errors.New("staff role missing from context"), "Internal server error")
			return
		}

		if !role.AtLeast(minRole) {
			httperr.AbortWithError(c, http.StatusForbidden, errs.KindForbidden,
				staff.ErrInvalidRole, "Insufficient permissions")
			return
		}

		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func GetSessionID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxSessionIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetStaffID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(ctxStaffIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}

func GetStaffRole(c *gin.Context) (staff.Role, bool) {
	v, exists := c.Get(ctxStaffRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(staff.Role)
	return role, ok
}
