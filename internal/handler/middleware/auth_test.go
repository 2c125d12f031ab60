//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"booth-booking/internal/domain/staff"
	"booth-booking/internal/handler/middleware"
	"booth-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTokenValidator struct {
	staffID uuid.UUID
	role    staff.Role
	err     error
}

func (f fakeTokenValidator) ValidateToken(string) (uuid.UUID, staff.Role, error) {
	return f.staffID, f.role, f.err
}

func TestRequireSession(t *testing.T) {
	gin.SetMode(gin.TestMode)
	auth := middleware.NewAuthMiddleware(fakeTokenValidator{})
	r := gin.New()
	r.GET("/me", auth.RequireSession(), func(c *gin.Context) {
		id, ok := middleware.GetSessionID(c)
		require.True(t, ok)
		c.String(http.StatusOK, id)
	})

	t.Run("bearer value becomes the session id", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "session-abc")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "session-abc", rec.Body.String())
	})

	t.Run("missing token is 401", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, "")

		httptest.AssertErrorKind(t, rec, http.StatusUnauthorized, "forbidden")
	})

	t.Run("oversized token is 400", func(t *testing.T) {
		rec := httptest.PerformRequest(t, r, http.MethodGet, "/me", nil, strings.Repeat("s", 129))

		httptest.AssertErrorKind(t, rec, http.StatusBadRequest, "validation")
	})
}

func TestRequireStaff(t *testing.T) {
	gin.SetMode(gin.TestMode)
	staffID := uuid.New()

	newRouter := func(v fakeTokenValidator) *gin.Engine {
		auth := middleware.NewAuthMiddleware(v)
		r := gin.New()
		r.POST("/staff/action", auth.RequireStaff(), auth.RequireRoleAtLeast(staff.RoleOperator), func(c *gin.Context) {
			id, _ := middleware.GetStaffID(c)
			c.String(http.StatusOK, id.String())
		})
		return r
	}

	testCases := []struct {
		name       string
		validator  fakeTokenValidator
		token      string
		expectCode int
	}{
		{name: "operator passes", validator: fakeTokenValidator{staffID: staffID, role: staff.RoleOperator}, token: "jwt", expectCode: http.StatusOK},
		{name: "admin passes", validator: fakeTokenValidator{staffID: staffID, role: staff.RoleAdmin}, token: "jwt", expectCode: http.StatusOK},
		{name: "viewer is forbidden", validator: fakeTokenValidator{staffID: staffID, role: staff.RoleViewer}, token: "jwt", expectCode: http.StatusForbidden},
		{name: "invalid token is 401", validator: fakeTokenValidator{err: errors.New("token is expired")}, token: "jwt", expectCode: http.StatusUnauthorized},
		{name: "missing token is 401", validator: fakeTokenValidator{}, token: "", expectCode: http.StatusUnauthorized},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := httptest.PerformRequest(t, newRouter(tc.validator), http.MethodPost, "/staff/action", nil, tc.token)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode == http.StatusOK {
				assert.Equal(t, staffID.String(), rec.Body.String())
			}
		})
	}
}
