//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"booth-booking/internal/handler/api"
	"booth-booking/internal/handler/middleware"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/queries"
	"booth-booking/tests/common/httptest"
	queriesmock "booth-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AvailabilityHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *queriesmock.MockAvailabilityQueries
}

func (s *AvailabilityHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = queriesmock.NewMockAvailabilityQueries(s.mockCtrl)
	handler := api.NewAvailabilityHandler(s.mockQueries)
	s.router.GET("/availability", handler.Grid)
	s.router.GET("/availability/booths", handler.BoothsForSlot)
}

func (s *AvailabilityHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAvailabilityHandlerSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityHandlerTestSuite))
}

func (s *AvailabilityHandlerTestSuite) TestGrid() {
	boothID := uuid.New()

	s.Run("success: boothId selects the booth grid", func() {
		grid := &queries.BoothGrid{BoothID: boothID, Date: "2026-03-14", Granularity: 30, Slots: []queries.Slot{
			{Start: "18:00", End: "18:30", Available: false, BlockedBy: "hold"},
		}}
		s.mockQueries.EXPECT().BoothGrid(gomock.Any(), boothID, "2026-03-14", 30).Return(grid, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?boothId="+boothID.String()+"&date=2026-03-14&granularity=30", nil, "")

		var res queries.BoothGrid
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Require().Len(res.Slots, 1)
		s.Equal("hold", res.Slots[0].BlockedBy)
	})

	s.Run("success: venue selects the venue grid", func() {
		s.mockQueries.EXPECT().VenueGrid(gomock.Any(), "soho", "2026-03-14", 0, 6).
			Return(&queries.VenueGrid{Venue: "soho", MinCapacity: 6}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?venue=soho&date=2026-03-14&minCapacity=6", nil, "")

		var res queries.VenueGrid
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(6, res.MinCapacity)
	})

	s.Run("error: unknown booth returns 404", func() {
		s.mockQueries.EXPECT().BoothGrid(gomock.Any(), boothID, "2026-03-14", 0).
			Return(nil, errs.MarkAll(nil, queries.ErrBoothNotFound, errs.ErrNotFound))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability?boothId="+boothID.String()+"&date=2026-03-14", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusNotFound, "not_found")
	})

	s.Run("error: datastore failure returns 502", func() {
		s.mockQueries.EXPECT().VenueGrid(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errs.MarkAll(nil, queries.ErrDatastore, errs.ErrUpstream))

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/availability?venue=soho&date=2026-03-14", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadGateway, "upstream")
	})

	invalid := map[string]string{
		"missing venue and booth": "/availability?date=2026-03-14",
		"missing date":            "/availability?venue=soho",
		"malformed date":          "/availability?venue=soho&date=14-03-2026",
		"negative capacity":       "/availability?venue=soho&date=2026-03-14&minCapacity=-2",
		"malformed booth id":      "/availability?boothId=abc&date=2026-03-14",
	}
	for name, url := range invalid {
		s.Run("validation: "+name, func() {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
		})
	}
}

func (s *AvailabilityHandlerTestSuite) TestBoothsForSlot() {
	s.Run("success", func() {
		options := []queries.BoothOption{{ID: uuid.New(), Name: "Booth 2", Capacity: 12, HourlyRateCents: 6000}}
		s.mockQueries.EXPECT().BoothsForSlot(gomock.Any(), "soho", "2026-03-14", "19:00", "21:00", 0).Return(options, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability/booths?venue=soho&date=2026-03-14&start=19:00&end=21:00", nil, "")

		var res []queries.BoothOption
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.Equal(options, res)
	})

	s.Run("validation: malformed start", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/availability/booths?venue=soho&date=2026-03-14&start=7pm&end=21:00", nil, "")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})
}
