//go:build unit || e2e

package builder

import (
	"time"

	"booth-booking/internal/domain/hold"
	"booth-booking/internal/domain/timeslot"
	reqdto "booth-booking/internal/handler/dto/request"
	"booth-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type HoldBuilder struct {
	ID             uuid.UUID
	BoothID        uuid.UUID
	Venue          string
	Date           string
	Start          string
	End            string
	SessionID      string
	Status         hold.Status
	ExpiresAt      time.Time
	CreatedAt      time.Time
	ContactEmail   *string
	IdempotencyKey *string
}

func NewHoldBuilder() *HoldBuilder {
	now := time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)
	return &HoldBuilder{
		ID:        uuid.New(),
		BoothID:   uuid.New(),
		Venue:     "soho",
		Date:      "2026-03-14",
		Start:     "18:00",
		End:       "20:00",
		SessionID: "session-abc",
		Status:    hold.StatusActive,
		ExpiresAt: now.Add(10 * time.Minute),
		CreatedAt: now,
	}
}

func (b *HoldBuilder) With(mutate func(*HoldBuilder)) *HoldBuilder {
	mutate(b)
	return b
}

func (b *HoldBuilder) ForBooth(id uuid.UUID) *HoldBuilder {
	b.BoothID = id
	return b
}

func (b *HoldBuilder) BuildDomain() (*hold.Hold, error) {
	date, err := timeslot.ParseDate(b.Date)
	if err != nil {
		return nil, err
	}
	iv, err := timeslot.ParseInterval(b.Start, b.End)
	if err != nil {
		return nil, err
	}
	return hold.Rehydrate(b.ID, hold.Params{
		BoothID:        b.BoothID,
		Venue:          b.Venue,
		Date:           date,
		Interval:       iv,
		SessionID:      b.SessionID,
		ContactEmail:   b.ContactEmail,
		IdempotencyKey: b.IdempotencyKey,
	}, b.Status, b.ExpiresAt, b.CreatedAt)
}

func (b *HoldBuilder) MustBuild() *hold.Hold {
	h, err := b.BuildDomain()
	if err != nil {
		panic(err)
	}
	return h
}

func (b *HoldBuilder) BuildCreateInput() commands.CreateHoldInput {
	return commands.CreateHoldInput{
		BoothID:        b.BoothID,
		Venue:          b.Venue,
		Date:           b.Date,
		Start:          b.Start,
		End:            b.End,
		SessionID:      b.SessionID,
		ContactEmail:   b.ContactEmail,
		IdempotencyKey: b.IdempotencyKey,
	}
}

func (b *HoldBuilder) BuildCreateRequestDTO() reqdto.CreateHoldRequest {
	return reqdto.CreateHoldRequest{
		BoothID:      b.BoothID,
		Venue:        b.Venue,
		Date:         b.Date,
		StartTime:    b.Start,
		EndTime:      b.End,
		ContactEmail: b.ContactEmail,
	}
}

func (b *HoldBuilder) BuildView() *commands.HoldView {
	return &commands.HoldView{
		ID:        b.ID,
		BoothID:   b.BoothID,
		Venue:     b.Venue,
		Date:      b.Date,
		Start:     b.Start,
		End:       b.End,
		Status:    b.Status.String(),
		ExpiresAt: b.ExpiresAt,
	}
}
