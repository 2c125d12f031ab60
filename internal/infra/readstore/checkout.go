package readstore

import (
	"context"

	"booth-booking/internal/domain/booking"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/pgsql"
	"booth-booking/internal/pkg/pgconv"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CheckoutReadQueries interface {
	GetChargeByHoldID(ctx context.Context, db pgsql.DBTX, holdID uuid.UUID) (pgsql.Charge, error)
	ListBookingsByChargeID(ctx context.Context, db pgsql.DBTX, chargeID uuid.UUID) ([]pgsql.Booking, error)
}

// CheckoutReadStore reads back what a completed checkout stored for a hold.
type CheckoutReadStore struct {
	queries CheckoutReadQueries
	db      pgsql.DBTX
}

func NewCheckoutReadStore(queries CheckoutReadQueries, db pgsql.DBTX) *CheckoutReadStore {
	return &CheckoutReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *CheckoutReadStore) FindByHoldID(ctx context.Context, holdID uuid.UUID) (*shared.CheckoutRecord, error) {
	ch, err := r.queries.GetChargeByHoldID(ctx, r.db, holdID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("no charge recorded for hold", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find charge by hold", err)
	}

	rows, err := r.queries.ListBookingsByChargeID(ctx, r.db, ch.ID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list bookings by charge", err)
	}

	record := &shared.CheckoutRecord{
		ChargeID:       ch.ID,
		TransactionID:  ch.TransactionID,
		AmountCents:    ch.AmountCents,
		Currency:       ch.Currency,
		GuestListToken: ch.GuestToken,
	}
	for _, row := range rows {
		snap := &shared.BookingSnapshot{
			ID:            row.ID,
			Category:      row.Category,
			ReferenceCode: row.ReferenceCode,
			AmountCents:   row.AmountCents,
			Date:          pgconv.DateFromPgtype(row.BookingDate),
		}
		switch booking.Category(row.Category) {
		case booking.CategoryKaraokeSession:
			record.Session = snap
		case booking.CategoryTicketEntry:
			record.Tickets = snap
		}
	}
	if record.Session == nil {
		return nil, infra.WrapRepoErr("charge has no session booking", nil, infra.KindDBFailure)
	}
	return record, nil
}
