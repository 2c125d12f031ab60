//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"booth-booking/internal/handler/api"
	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/queries"
	"booth-booking/internal/usecase/readmodel"
	"booth-booking/tests/common/httptest"
	queriesmock "booth-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GuestListHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockGuestListQueries
}

func (s *GuestListHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockGuestListQueries(s.mockCtrl)
	s.router.GET("/bookings/:id/guests", api.NewGuestListHandler(s.mockQueries).List)
}

func (s *GuestListHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGuestListHandlerSuite(t *testing.T) {
	suite.Run(t, new(GuestListHandlerTestSuite))
}

func (s *GuestListHandlerTestSuite) TestList() {
	bookingID := uuid.New()
	url := "/bookings/" + bookingID.String() + "/guests?token=signed"

	s.Run("success: formats the booking date", func() {
		list := &queries.GuestList{
			Booking: readmodel.BookingRM{
				ID:            bookingID,
				Category:      "karaoke_session",
				Venue:         "soho",
				Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
				StartTime:     "18:00",
				EndTime:       "20:00",
				GuestCount:    4,
				ReferenceCode: "ABCDEFGH",
				Status:        "confirmed",
			},
			Guests: []readmodel.GuestRM{{ID: uuid.New(), Name: "Alex Doe", IsOrganiser: true}},
		}
		s.mockQueries.EXPECT().GuestList(gomock.Any(), bookingID, "signed").Return(list, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		var res resdto.GuestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal("2026-03-14", res.Booking.Date)
		s.Equal("ABCDEFGH", res.Booking.ReferenceCode)
		s.Require().Len(res.Guests, 1)
		s.True(res.Guests[0].IsOrganiser)
	})

	s.Run("error: missing token returns 403", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/"+bookingID.String()+"/guests", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("error: rejected token returns 403", func() {
		s.mockQueries.EXPECT().GuestList(gomock.Any(), bookingID, "signed").
			Return(nil, errs.MarkAll(nil, queries.ErrGuestListToken, errs.ErrForbidden))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("error: invalid booking id returns 400", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/xyz/guests?token=signed", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})
}
