//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booth-booking/internal/infra"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/queries"
	"booth-booking/internal/usecase/readmodel"
	queriesmock "booth-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGuestListQueries_GuestList(t *testing.T) {
	ctx := context.Background()
	bookingID := uuid.New()
	email := "alex@example.com"
	bookingRM := &readmodel.BookingRM{
		ID:            bookingID,
		Category:      "karaoke_session",
		Venue:         "soho",
		Date:          time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		StartTime:     "18:00",
		EndTime:       "20:00",
		GuestCount:    4,
		ReferenceCode: "ABCDEFGH",
		Status:        "confirmed",
	}
	guestRMs := []readmodel.GuestRM{{ID: uuid.New(), Name: "Alex Doe", Email: &email, IsOrganiser: true}}

	testCases := []struct {
		name     string
		setup    func(r *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier)
		wantKind errs.Kind
	}{
		{
			name: "success",
			setup: func(r *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier) {
				v.EXPECT().Verify("token").Return(bookingID, nil)
				r.EXPECT().BookingByID(ctx, bookingID).Return(bookingRM, nil)
				r.EXPECT().ListByBooking(ctx, bookingID).Return(guestRMs, nil)
			},
		},
		{
			name: "invalid token",
			setup: func(_ *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier) {
				v.EXPECT().Verify("token").Return(uuid.Nil, errors.New("token is expired"))
			},
			wantKind: errs.KindForbidden,
		},
		{
			name: "token for another booking",
			setup: func(_ *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier) {
				v.EXPECT().Verify("token").Return(uuid.New(), nil)
			},
			wantKind: errs.KindForbidden,
		},
		{
			name: "booking missing",
			setup: func(r *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier) {
				v.EXPECT().Verify("token").Return(bookingID, nil)
				r.EXPECT().BookingByID(ctx, bookingID).Return(nil, infra.WrapRepoErr("booking", nil, infra.KindNotFound))
			},
			wantKind: errs.KindNotFound,
		},
		{
			name: "guest read fails",
			setup: func(r *queriesmock.MockGuestReader, v *queriesmock.MockGuestTokenVerifier) {
				v.EXPECT().Verify("token").Return(bookingID, nil)
				r.EXPECT().BookingByID(ctx, bookingID).Return(bookingRM, nil)
				r.EXPECT().ListByBooking(ctx, bookingID).Return(nil, infra.WrapRepoErr("guests", errors.New("timeout")))
			},
			wantKind: errs.KindUpstream,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reader := queriesmock.NewMockGuestReader(ctrl)
			verifier := queriesmock.NewMockGuestTokenVerifier(ctrl)
			tc.setup(reader, verifier)

			list, err := queries.NewGuestListQueries(reader, verifier).GuestList(ctx, bookingID, "token")

			if tc.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tc.wantKind, errs.KindOf(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ABCDEFGH", list.Booking.ReferenceCode)
			require.Len(t, list.Guests, 1)
			assert.True(t, list.Guests[0].IsOrganiser)
		})
	}
}
