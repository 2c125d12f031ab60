package converter

import (
	"booth-booking/internal/domain/hold"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
)

func HoldToInfra(h *hold.Hold) pgsql.CreateHoldParams {
	iv := h.Interval()
	return pgsql.CreateHoldParams{
		ID:             h.ID(),
		BoothID:        h.BoothID(),
		Venue:          h.Venue(),
		BookingDate:    pgconv.DateToPgtype(h.Date()),
		StartTime:      iv.StartClock().String(),
		EndTime:        iv.EndClock().String(),
		StartMinute:    int32(iv.Start),
		EndMinute:      int32(iv.End),
		SessionID:      h.SessionID(),
		ExpiresAt:      pgconv.TimeToPgtype(h.ExpiresAt()),
		ContactEmail:   pgconv.StringPtrToPgtype(h.ContactEmail()),
		IdempotencyKey: pgconv.StringPtrToPgtype(h.IdempotencyKey()),
	}
}

// HoldFromInfra rebuilds the hold from its stored minutes, which are already anchored to the booking date.
func HoldFromInfra(row pgsql.Hold) (*hold.Hold, error) {
	iv, err := timeslot.FromMinutes(int(row.StartMinute), int(row.EndMinute))
	if err != nil {
		return nil, err
	}
	return hold.Rehydrate(row.ID, hold.Params{
		BoothID:        row.BoothID,
		Venue:          row.Venue,
		Date:           pgconv.DateFromPgtype(row.BookingDate),
		Interval:       iv,
		SessionID:      row.SessionID,
		ContactEmail:   pgconv.StringPtrFromPgtype(row.ContactEmail),
		IdempotencyKey: pgconv.StringPtrFromPgtype(row.IdempotencyKey),
	}, hold.Status(row.Status), pgconv.TimeFromPgtype(row.ExpiresAt), pgconv.TimeFromPgtype(row.CreatedAt))
}
