//go:build e2e

package booking_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"booth-booking/internal/domain/staff"
	resdto "booth-booking/internal/handler/dto/response"
	"booth-booking/internal/usecase/queries"
	"booth-booking/tests/common/authtest"
	"booth-booking/tests/common/dbtest"
	"booth-booking/tests/common/httptest"
	"booth-booking/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	holdsURL    = "/api/holds"
	checkoutURL = "/api/checkout"
	bookingDate = "2030-06-14"
)

type bookingSuite struct {
	e2e.SharedSuite
	boothID uuid.UUID
}

func TestBookingSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(bookingSuite))
}

func (s *bookingSuite) SetupTest() {
	s.SharedSuite.SetupTest()
	s.boothID = dbtest.CreateTestBooth(s.T(), s.DB, dbtest.DefaultBooth())
}

func (s *bookingSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()
	s.boothID = dbtest.CreateTestBooth(s.T(), s.DB, dbtest.DefaultBooth())
}

func (s *bookingSuite) holdBody(start, end string) map[string]any {
	return map[string]any{
		"boothId":   s.boothID,
		"venue":     "soho",
		"date":      bookingDate,
		"startTime": start,
		"endTime":   end,
	}
}

func (s *bookingSuite) createHold(session, start, end string) resdto.HoldResponse {
	rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody(start, end), session)
	var res resdto.HoldResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &res)
	return res
}

func checkoutBody(holdID uuid.UUID, tickets int) map[string]any {
	return map[string]any{
		"holdId":         holdID,
		"customerName":   "Alex Doe",
		"email":          "alex@example.com",
		"guestCount":     4,
		"paymentToken":   "pm_card_visa",
		"ticketQuantity": tickets,
	}
}

// =============================================================================
// Holds
// =============================================================================

func (s *bookingSuite) TestHoldLifecycle() {
	s.Run("overlapping hold from another session is rejected until release", func() {
		first := s.createHold("session-a", "18:00", "20:00")
		s.Equal("active", first.Status)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody("19:00", "21:00"), "session-b")
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, "conflict")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL+"/"+first.ID.String()+"/release", nil, "session-b")
		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "forbidden")

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL+"/"+first.ID.String()+"/release", nil, "session-a")
		var released resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &released)
		s.Equal("released", released.Status)

		// releasing again is harmless
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL+"/"+first.ID.String()+"/release", nil, "session-a")
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		second := s.createHold("session-b", "19:00", "21:00")
		s.NotEqual(first.ID, second.ID)
	})

	s.Run("adjacent holds do not conflict", func() {
		s.createHold("session-a", "18:00", "20:00")
		s.createHold("session-b", "20:00", "22:00")
	})

	s.Run("overnight hold crosses midnight", func() {
		res := s.createHold("session-a", "23:00", "01:00")

		expected := resdto.HoldResponse{
			BoothID: s.boothID,
			Venue:   "soho",
			Date:    bookingDate,
			Start:   "23:00",
			End:     "01:00",
			Status:  "active",
		}
		opts := cmp.Options{cmpopts.IgnoreFields(resdto.HoldResponse{}, "ID", "ExpiresAt")}
		if diff := cmp.Diff(expected, res, opts...); diff != "" {
			s.T().Errorf("hold mismatch (-want +got):\n%s", diff)
		}

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody("00:30", "01:30"), "session-b")
		httptest.AssertErrorKind(s.T(), rec, http.StatusConflict, "conflict")
	})

	s.Run("same idempotency key replays the hold", func() {
		headers := map[string]string{"Idempotency-Key": "attempt-1"}
		rec := httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody("18:00", "20:00"), "session-a", headers)
		var first resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &first)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody("18:00", "20:00"), "session-a", headers)
		var replay resdto.HoldResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
		s.Equal(first.ID, replay.ID)

		rec = httptest.PerformRequestWithHeaders(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody("21:00", "22:00"), "session-a", headers)
		httptest.AssertErrorKind(s.T(), rec, http.StatusBadRequest, "validation")
	})

	s.Run("staff can release any hold", func() {
		hold := s.createHold("session-a", "18:00", "20:00")
		helper := authtest.NewJWTHelper(s.Config.JWT)

		viewer := helper.GenerateToken(s.T(), uuid.New(), staff.RoleViewer)
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/staff/holds/"+hold.ID.String()+"/release", nil, viewer)
		s.Equal(http.StatusForbidden, rec.Code)

		staffID := uuid.New()
		operator := helper.GenerateToken(s.T(), staffID, staff.RoleOperator)
		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/staff/holds/"+hold.ID.String()+"/release", nil, operator)
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)

		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE id = $1 AND released_by = $2", hold.ID, staffID))
	})
}

func (s *bookingSuite) TestConcurrentHoldsOnlyOneWins() {
	const contenders = 12
	var (
		wg    sync.WaitGroup
		mu    sync.Mutex
		codes = map[int]int{}
	)
	for i := 0; i < contenders; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			start, end := "18:00", "20:00"
			if i%2 == 1 {
				start, end = "19:00", "21:00"
			}
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, holdsURL, s.holdBody(start, end), fmt.Sprintf("session-%d", i))
			mu.Lock()
			codes[rec.Code]++
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	s.Equal(1, codes[http.StatusCreated], "codes: %v", codes)
	s.Equal(contenders-1, codes[http.StatusConflict], "codes: %v", codes)
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE status = 'active'"))
}

// =============================================================================
// Checkout
// =============================================================================

func (s *bookingSuite) TestCheckout() {
	s.Run("finalize books the slot once, even when retried", func() {
		hold := s.createHold("session-a", "18:00", "20:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 2), "session-a")
		var booked resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)
		s.Len(booked.ReferenceCode, 8)
		s.NotEmpty(booked.GuestListToken)
		s.Require().NotNil(booked.TicketBooking)
		s.Equal(int64(8000+2*1000), booked.TotalCents)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 2), "session-a")
		var replay resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &replay)
		s.True(replay.Replayed)
		s.Equal(booked.BookingID, replay.BookingID)
		s.Equal(booked.TransactionID, replay.TransactionID)

		s.Equal(1, s.Gateway.Charges())
		s.Equal(2, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM charges"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM notification_jobs WHERE kind = 'booking.confirmed'"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE id = $1 AND status = 'converted'", hold.ID))

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/availability?boothId="+s.boothID.String()+"&date="+bookingDate, nil, "")
		var grid queries.BoothGrid
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &grid)
		blocked := map[string]string{}
		for _, slot := range grid.Slots {
			if !slot.Available {
				blocked[slot.Start] = slot.BlockedBy
			}
		}
		s.Equal(map[string]string{"18:00": "booking", "19:00": "booking"}, blocked)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/bookings/"+booked.BookingID.String()+"/guests?token="+booked.GuestListToken, nil, "")
		var guests resdto.GuestListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &guests)
		s.Equal(booked.ReferenceCode, guests.Booking.ReferenceCode)
		s.Require().Len(guests.Guests, 1)
		s.True(guests.Guests[0].IsOrganiser)
	})

	s.Run("declined payment leaves the hold active", func() {
		hold := s.createHold("session-a", "18:00", "20:00")
		s.Gateway.Decline = true

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 0), "session-a")

		httptest.AssertErrorKind(s.T(), rec, http.StatusBadGateway, "upstream")
		s.Equal(0, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings"))
		s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM holds WHERE id = $1 AND status = 'active'", hold.ID))
	})

	s.Run("expired hold cannot be paid for", func() {
		hold := s.createHold("session-a", "18:00", "20:00")
		_, err := s.DB.Exec(s.T().Context(), "UPDATE holds SET expires_at = now() - interval '1 minute' WHERE id = $1", hold.ID)
		require.NoError(s.T(), err)

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 0), "session-a")

		httptest.AssertErrorKind(s.T(), rec, http.StatusGone, "expired_state")
		s.Equal(0, s.Gateway.Charges())
	})

	s.Run("another session cannot pay for the hold", func() {
		hold := s.createHold("session-a", "18:00", "20:00")

		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 0), "session-b")

		httptest.AssertErrorKind(s.T(), rec, http.StatusForbidden, "forbidden")
	})

	s.Run("guest list rejects a token for another booking", func() {
		hold := s.createHold("session-a", "18:00", "20:00")
		rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 0), "session-a")
		var booked resdto.FinalizeResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &booked)

		rec = httptest.PerformRequest(s.T(), s.Router, http.MethodGet,
			"/api/bookings/"+uuid.NewString()+"/guests?token="+booked.GuestListToken, nil, "")

		s.Equal(http.StatusForbidden, rec.Code)
	})
}

func (s *bookingSuite) TestConcurrentFinalizeChargesOnce() {
	hold := s.createHold("session-a", "18:00", "20:00")

	const attempts = 5
	var wg sync.WaitGroup
	results := make([]resdto.FinalizeResponse, attempts)
	codes := make([]int, attempts)
	for i := range attempts {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, checkoutURL, checkoutBody(hold.ID, 0), "session-a")
			codes[i] = rec.Code
			var env struct {
				Data resdto.FinalizeResponse `json:"data"`
			}
			_ = json.Unmarshal(rec.Body.Bytes(), &env)
			results[i] = env.Data
		}(i)
	}
	wg.Wait()

	for i, code := range codes {
		s.Contains([]int{http.StatusCreated, http.StatusOK}, code, "attempt %d", i)
		s.Equal(results[0].BookingID, results[i].BookingID)
	}
	s.Equal(1, s.Gateway.Charges())
	s.Empty(s.Gateway.Refunds())
	s.Equal(1, dbtest.CountRows(s.T(), s.DB, "SELECT count(*) FROM bookings"))
}
