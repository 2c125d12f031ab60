//go:build unit

package api_test

import (
	"net/http"
	"strings"
	"testing"

	"booth-booking/internal/handler/api"
	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/commands"
	"booth-booking/tests/common/builder"
	"booth-booking/tests/common/httptest"
	"booth-booking/tests/common/testutil"
	commandsmock "booth-booking/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// sessionAuth stands in for RequireSession: the bearer value becomes the session id.
func sessionAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	if header == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"success": false, "error": gin.H{"kind": "forbidden", "message": "Unauthorized"}})
		return
	}
	c.Set("session_id", strings.TrimPrefix(header, "Bearer "))
	c.Next()
}

type HoldHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockHoldCommands
	staffID      uuid.UUID
}

func (s *HoldHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockHoldCommands(s.mockCtrl)
	handler := api.NewHoldHandler(s.mockCommands)
	s.staffID = uuid.New()

	staffAuth := func(c *gin.Context) {
		c.Set("staff_id", s.staffID)
		c.Next()
	}

	s.router.POST("/holds", sessionAuth, handler.Create)
	s.router.GET("/holds/:id", sessionAuth, handler.Get)
	s.router.POST("/holds/:id/extend", sessionAuth, handler.Extend)
	s.router.POST("/holds/:id/release", sessionAuth, handler.Release)
	s.router.POST("/staff/holds/:id/release", staffAuth, handler.StaffRelease)
}

func (s *HoldHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestHoldHandlerSuite(t *testing.T) {
	suite.Run(t, new(HoldHandlerTestSuite))
}

type testCaseHold struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *HoldHandlerTestSuite) TestCreate() {
	url := "/holds"
	reqBody := builder.NewHoldBuilder().BuildCreateRequestDTO()
	view := builder.NewHoldBuilder().BuildView()

	s.Run("success: returns 201 with Location", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateHoldInput) (*commands.HoldResult, error) {
				s.Equal("session-abc", in.SessionID)
				s.Equal("18:00", in.Start)
				s.Nil(in.IdempotencyKey)
				return &commands.HoldResult{Hold: *view}, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc")

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(view.ID, res.ID)
		s.Equal("active", res.Status)
		s.Equal("/api/holds/"+view.ID.String(), rec.Header().Get("Location"))
	})

	s.Run("success: replay with Idempotency-Key returns 200", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.CreateHoldInput) (*commands.HoldResult, error) {
				s.Require().NotNil(in.IdempotencyKey)
				s.Equal("key-1", *in.IdempotencyKey)
				return &commands.HoldResult{Hold: *view, Replayed: true}, nil
			})

		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc",
			map[string]string{"Idempotency-Key": "key-1"})

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Replayed)
	})

	s.Run("error: overlapping hold returns 409", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).
			Return(nil, errs.MarkAll(nil, commands.ErrSlotTaken, errs.ErrConflict))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc")

		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("error: missing session returns 401", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")

		s.Equal(http.StatusUnauthorized, rec.Code)
	})

	s.Run("error: oversized Idempotency-Key returns 400", func() {
		rec := httptest.PerformRequestWithHeaders(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc",
			map[string]string{"Idempotency-Key": strings.Repeat("k", 256)})

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})

	validation := []testCaseHold{
		{name: "missing boothId", mutate: testutil.Field("boothId", nil), expectCode: http.StatusBadRequest},
		{name: "missing venue", mutate: testutil.Field("venue", nil), expectCode: http.StatusBadRequest},
		{name: "malformed date", mutate: testutil.Field("date", "2026/03/14"), expectCode: http.StatusBadRequest},
		{name: "impossible date", mutate: testutil.Field("date", "2026-02-30"), expectCode: http.StatusBadRequest},
		{name: "malformed start", mutate: testutil.Field("startTime", "6pm"), expectCode: http.StatusBadRequest},
		{name: "out of range end", mutate: testutil.Field("endTime", "24:30"), expectCode: http.StatusBadRequest},
		{name: "invalid contact email", mutate: testutil.Field("contactEmail", "nope"), expectCode: http.StatusBadRequest},
		{name: "zero ttl is ignored", mutate: testutil.Field("ttlMinutes", 0), expectCode: http.StatusCreated},
	}
	for _, tc := range validation {
		s.Run(tc.name, func() {
			if tc.expectCode == http.StatusCreated {
				s.mockCommands.EXPECT().Create(gomock.Any(), gomock.Any()).Return(&commands.HoldResult{Hold: *view}, nil)
			}
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "session-abc")

			s.Equal(tc.expectCode, rec.Code, rec.Body.String())
		})
	}
}

// ================================================================================
// TestGet / TestExtend / TestRelease
// ================================================================================

func (s *HoldHandlerTestSuite) TestGet() {
	view := builder.NewHoldBuilder().BuildView()

	s.Run("success", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), view.ID, "session-abc").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+view.ID.String(), nil, "session-abc")

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(view.ExpiresAt.Unix(), res.ExpiresAt.Unix())
	})

	s.Run("error: invalid id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/not-a-uuid", nil, "session-abc")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})

	s.Run("error: another session's hold returns 403", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), view.ID, "session-other").
			Return(nil, errs.MarkAll(nil, commands.ErrHoldNotOwned, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+view.ID.String(), nil, "session-other")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("error: unknown hold returns 404", func() {
		s.mockCommands.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.MarkAll(nil, commands.ErrHoldNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/holds/"+uuid.NewString(), nil, "session-abc")

		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "not_found")
	})
}

func (s *HoldHandlerTestSuite) TestExtend() {
	view := builder.NewHoldBuilder().BuildView()
	url := "/holds/" + view.ID.String() + "/extend"

	s.Run("success: body is optional", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), view.ID, "session-abc", 0).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "session-abc")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: ttl is passed through", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), view.ID, "session-abc", 15).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"ttlMinutes": 15}, "session-abc")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: lapsed hold returns 410", func() {
		s.mockCommands.EXPECT().Extend(gomock.Any(), view.ID, "session-abc", 0).
			Return(nil, errs.MarkAll(nil, commands.ErrHoldExpired, errs.ErrExpiredState))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, nil, "session-abc")

		httptest.AssertErrorKind(s.T(), rec, http.StatusGone, "expired_state")
	})
}

func (s *HoldHandlerTestSuite) TestRelease() {
	view := builder.NewHoldBuilder().With(func(b *builder.HoldBuilder) { b.Status = "released" }).BuildView()

	s.Run("success: session release", func() {
		s.mockCommands.EXPECT().Release(gomock.Any(), view.ID, "session-abc").Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/holds/"+view.ID.String()+"/release", nil, "session-abc")

		var res resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("released", res.Status)
	})

	s.Run("success: staff release records the staff member", func() {
		s.mockCommands.EXPECT().StaffRelease(gomock.Any(), view.ID, s.staffID).Return(view, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/staff/holds/"+view.ID.String()+"/release", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})
}
