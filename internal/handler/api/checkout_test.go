//go:build unit

package api_test

import (
	"errors"
	"net/http"
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

type CheckoutHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockCheckoutCommands
}

func (s *CheckoutHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.Require().NoError(middleware.RegisterValidators())
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockCheckoutCommands(s.mockCtrl)
	s.router.POST("/checkout", sessionAuth, api.NewCheckoutHandler(s.mockCommands).Finalize)
}

func (s *CheckoutHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCheckoutHandlerSuite(t *testing.T) {
	suite.Run(t, new(CheckoutHandlerTestSuite))
}

// ================================================================================
// TestFinalize
// ================================================================================

func (s *CheckoutHandlerTestSuite) TestFinalize() {
	url := "/checkout"
	reqBody := builder.NewCheckoutBuilder().BuildRequestDTO()
	result := &commands.FinalizeResult{
		BookingID:      uuid.New(),
		ReferenceCode:  "ABCDEFGH",
		TransactionID:  "txn_1",
		GuestListToken: "guest-token",
		TicketBooking:  &commands.BookingRef{BookingID: uuid.New(), ReferenceCode: "JKLMNPQR"},
		TotalCents:     11000,
		Currency:       "GBP",
	}

	s.Run("success: returns 201 with booking references", func() {
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, in commands.FinalizeInput) (*commands.FinalizeResult, error) {
				s.Equal("session-abc", in.SessionID)
				s.Equal(reqBody.HoldID, in.HoldID)
				s.Equal(4, in.GuestCount)
				return result, nil
			})

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc")

		var res resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
		s.Equal(result.BookingID, res.BookingID)
		s.Equal("ABCDEFGH", res.ReferenceCode)
		s.Equal("guest-token", res.GuestListToken)
		s.Require().NotNil(res.TicketBooking)
		s.Equal("JKLMNPQR", res.TicketBooking.ReferenceCode)
		s.Equal(int64(11000), res.TotalCents)
		s.False(res.Replayed)
	})

	s.Run("success: replay returns 200", func() {
		replayed := *result
		replayed.Replayed = true
		s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(&replayed, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc")

		var res resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &res)
		s.True(res.Replayed)
	})

	errorCases := []struct {
		name       string
		err        error
		expectCode int
		expectKind string
	}{
		{name: "payment declined", err: errs.MarkAll(errors.New("card declined"), commands.ErrPaymentFailed, errs.ErrUpstream), expectCode: http.StatusBadGateway, expectKind: "upstream"},
		{name: "hold expired", err: errs.MarkAll(nil, commands.ErrHoldExpired, errs.ErrExpiredState), expectCode: http.StatusGone, expectKind: "expired_state"},
		{name: "hold of another session", err: errs.MarkAll(nil, commands.ErrHoldNotOwned, errs.ErrForbidden), expectCode: http.StatusForbidden, expectKind: "forbidden"},
		{name: "booking not saved", err: errs.MarkAll(errors.New("booking could not be saved; the charge was refunded"), commands.ErrBookingNotSaved, errs.ErrPersistence), expectCode: http.StatusInternalServerError, expectKind: "persistence"},
	}
	for _, tc := range errorCases {
		s.Run("error: "+tc.name, func() {
			s.mockCommands.EXPECT().Finalize(gomock.Any(), gomock.Any()).Return(nil, tc.err)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "session-abc")

			httptest.AssertErrorKind(s.T(), rec, tc.expectCode, tc.expectKind)
		})
	}

	validation := []struct {
		name   string
		mutate func(m map[string]any)
	}{
		{name: "missing holdId", mutate: testutil.Field("holdId", nil)},
		{name: "missing customerName", mutate: testutil.Field("customerName", nil)},
		{name: "invalid email", mutate: testutil.Field("email", "nope")},
		{name: "zero guests", mutate: testutil.Field("guestCount", 0)},
		{name: "too many guests", mutate: testutil.Field("guestCount", 101)},
		{name: "negative tickets", mutate: testutil.Field("ticketQuantity", -1)},
		{name: "missing paymentToken", mutate: testutil.Field("paymentToken", nil)},
	}
	for _, tc := range validation {
		s.Run("validation: "+tc.name, func() {
			body := testutil.DtoMap(s.T(), reqBody, tc.mutate)

			rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, "session-abc")

			httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
		})
	}
}
