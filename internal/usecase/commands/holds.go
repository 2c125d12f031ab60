package commands

import (
	"context"
	"time"

	"booth-booking/internal/domain/hold"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/infra/metrics"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

const constraintHoldSessionKey = "uq_holds_session_idempotency"

type CreateHoldInput struct {
	BoothID        uuid.UUID
	Venue          string
	Date           string
	Start          string
	End            string
	SessionID      string
	TTLMinutes     int
	ContactEmail   *string
	IdempotencyKey *string
}

type HoldView struct {
	ID        uuid.UUID
	BoothID   uuid.UUID
	Venue     string
	Date      string
	Start     string
	End       string
	Status    string
	ExpiresAt time.Time
}

type HoldResult struct {
	Hold     HoldView
	Replayed bool
}

type HoldCommands interface {
	Create(ctx context.Context, in CreateHoldInput) (*HoldResult, error)
	Get(ctx context.Context, holdID uuid.UUID, sessionID string) (*HoldView, error)
	Extend(ctx context.Context, holdID uuid.UUID, sessionID string, ttlMinutes int) (*HoldView, error)
	Release(ctx context.Context, holdID uuid.UUID, sessionID string) (*HoldView, error)
	StaffRelease(ctx context.Context, holdID uuid.UUID, staffID uuid.UUID) (*HoldView, error)
}

type holdUseCaseImpl struct {
	uow   shared.UnitOfWork
	ttl   hold.TTLPolicy
	clock clock.Clock
}

func NewHoldUseCase(uow shared.UnitOfWork, ttl hold.TTLPolicy, clk clock.Clock) HoldCommands {
	return &holdUseCaseImpl{uow: uow, ttl: ttl, clock: clk}
}

func (uc *holdUseCaseImpl) Create(ctx context.Context, in CreateHoldInput) (*HoldResult, error) {
	result, err := uc.create(ctx, in)
	switch {
	case err == nil && result.Replayed:
		metrics.HoldOutcomes.WithLabelValues("replayed").Inc()
	case err == nil:
		metrics.HoldOutcomes.WithLabelValues("created").Inc()
	default:
		metrics.HoldOutcomes.WithLabelValues(string(errs.KindOf(err))).Inc()
	}
	return result, err
}

func (uc *holdUseCaseImpl) create(ctx context.Context, in CreateHoldInput) (*HoldResult, error) {
	if in.SessionID == "" {
		return nil, validation(hold.ErrEmptySession)
	}
	date, err := timeslot.ParseDate(in.Date)
	if err != nil {
		return nil, validation(err)
	}
	start, err := timeslot.ParseClockTime(in.Start)
	if err != nil {
		return nil, validation(err)
	}
	end, err := timeslot.ParseClockTime(in.End)
	if err != nil {
		return nil, validation(err)
	}
	if err := hold.ValidateDuration(timeslot.NewInterval(start, end)); err != nil {
		return nil, validation(err)
	}

	b, err := uc.uow.CommandReads().BoothByID(ctx, in.BoothID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.MarkAll(err, ErrBoothNotFound, errs.ErrNotFound)
		}
		return nil, datastore(err)
	}
	if in.Venue != "" && in.Venue != b.Venue() {
		return nil, errs.MarkAll(nil, ErrVenueMismatch, errs.ErrValidation)
	}
	iv, err := b.Placement(start, end)
	if err != nil {
		return nil, validation(err)
	}

	params := hold.Params{
		BoothID:        b.ID(),
		Venue:          b.Venue(),
		Date:           date,
		Interval:       iv,
		SessionID:      in.SessionID,
		ContactEmail:   in.ContactEmail,
		IdempotencyKey: in.IdempotencyKey,
	}
	ttl := uc.ttl.Resolve(in.TTLMinutes)

	var result *HoldResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		result = nil
		now := uc.clock.Now()

		if err := tx.Holds().LockBoothDate(ctx, tx.DB(), b.ID(), date); err != nil {
			return err
		}
		if _, err := tx.Holds().ExpireLapsed(ctx, tx.DB(), b.ID(), date, now); err != nil {
			return err
		}

		if in.IdempotencyKey != nil {
			existing, err := tx.Holds().FindBySessionKey(ctx, tx.DB(), in.SessionID, *in.IdempotencyKey)
			switch {
			case err == nil:
				if !sameRequest(existing, params) {
					return errs.MarkAll(nil, ErrIdempotencyKeyReused, errs.ErrValidation)
				}
				result = &HoldResult{Hold: toHoldView(existing), Replayed: true}
				return nil
			case !infra.IsKind(err, infra.KindNotFound):
				return err
			}
		}

		source, err := tx.Holds().FindConflict(ctx, tx.DB(), shared.ConflictQuery{
			BoothID:  b.ID(),
			Date:     date,
			Interval: iv,
			Now:      now,
		})
		if err != nil {
			return err
		}
		if source != shared.BlockNone {
			return errs.MarkAll(errs.New("blocked by "+string(source)), ErrSlotTaken, errs.ErrConflict)
		}

		h, err := hold.New(params, ttl, now)
		if err != nil {
			return validation(err)
		}
		if err := tx.Holds().Create(ctx, tx.DB(), h); err != nil {
			return err
		}
		result = &HoldResult{Hold: toHoldView(h)}
		return nil
	})
	if err == nil {
		return result, nil
	}

	switch {
	case infra.IsKind(err, infra.KindConflict):
		return nil, errs.MarkAll(err, ErrSlotTaken, errs.ErrConflict)
	case infra.IsKind(err, infra.KindDuplicateKey) && infra.ViolatedConstraint(err) == constraintHoldSessionKey:
		// A concurrent request with the same key won; answer with its hold.
		return uc.replayByKey(ctx, in.SessionID, *in.IdempotencyKey, params)
	case isClassified(err):
		return nil, err
	default:
		return nil, datastore(err)
	}
}

func (uc *holdUseCaseImpl) replayByKey(ctx context.Context, sessionID, key string, params hold.Params) (*HoldResult, error) {
	var existing *hold.Hold
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		existing, err = tx.Holds().FindBySessionKey(ctx, tx.DB(), sessionID, key)
		return err
	})
	if err != nil {
		return nil, datastore(err)
	}
	if !sameRequest(existing, params) {
		return nil, errs.MarkAll(nil, ErrIdempotencyKeyReused, errs.ErrValidation)
	}
	return &HoldResult{Hold: toHoldView(existing), Replayed: true}, nil
}

func (uc *holdUseCaseImpl) Get(ctx context.Context, holdID uuid.UUID, sessionID string) (*HoldView, error) {
	h, err := uc.uow.CommandReads().HoldByID(ctx, holdID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, holdLookupErr(err)
		}
		return nil, datastore(err)
	}
	if !h.OwnedBy(sessionID) {
		return nil, errs.MarkAll(nil, ErrHoldNotOwned, errs.ErrForbidden)
	}
	view := toHoldView(h)
	if h.Status() == hold.StatusActive && !h.IsBlocking(uc.clock.Now()) {
		view.Status = hold.StatusExpired.String()
	}
	return &view, nil
}

func (uc *holdUseCaseImpl) Extend(ctx context.Context, holdID uuid.UUID, sessionID string, ttlMinutes int) (*HoldView, error) {
	var view HoldView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().GetForUpdate(ctx, tx.DB(), holdID)
		if err != nil {
			return holdLookupErr(err)
		}
		if err := h.Extend(sessionID, uc.ttl.Resolve(ttlMinutes), uc.clock.Now()); err != nil {
			return holdStateErr(err)
		}
		if err := tx.Holds().UpdateExpiry(ctx, tx.DB(), h.ID(), h.ExpiresAt()); err != nil {
			return err
		}
		view = toHoldView(h)
		return nil
	})
	if err != nil {
		if isClassified(err) {
			return nil, err
		}
		return nil, datastore(err)
	}
	return &view, nil
}

func (uc *holdUseCaseImpl) Release(ctx context.Context, holdID uuid.UUID, sessionID string) (*HoldView, error) {
	return uc.release(ctx, holdID, func(h *hold.Hold, now time.Time) (bool, error) {
		released, err := h.Release(sessionID, now)
		if err != nil {
			return false, holdStateErr(err)
		}
		return released, nil
	}, nil)
}

func (uc *holdUseCaseImpl) StaffRelease(ctx context.Context, holdID uuid.UUID, staffID uuid.UUID) (*HoldView, error) {
	return uc.release(ctx, holdID, func(h *hold.Hold, now time.Time) (bool, error) {
		return h.ForceRelease(now), nil
	}, &staffID)
}

// release is idempotent: holds that are already released, expired or converted are returned unchanged.
func (uc *holdUseCaseImpl) release(
	ctx context.Context,
	holdID uuid.UUID,
	apply func(h *hold.Hold, now time.Time) (bool, error),
	releasedBy *uuid.UUID,
) (*HoldView, error) {
	var view HoldView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		h, err := tx.Holds().GetForUpdate(ctx, tx.DB(), holdID)
		if err != nil {
			return holdLookupErr(err)
		}
		now := uc.clock.Now()
		released, err := apply(h, now)
		if err != nil {
			return err
		}

		view = toHoldView(h)
		switch {
		case released:
			_, err = tx.Holds().UpdateStatus(ctx, tx.DB(), h.ID(), hold.StatusActive, hold.StatusReleased, releasedBy)
		case h.Status() == hold.StatusActive:
			// Lapsed but never swept.
			view.Status = hold.StatusExpired.String()
			_, err = tx.Holds().UpdateStatus(ctx, tx.DB(), h.ID(), hold.StatusActive, hold.StatusExpired, nil)
		}
		return err
	})
	if err != nil {
		if isClassified(err) {
			return nil, err
		}
		return nil, datastore(err)
	}
	return &view, nil
}

func sameRequest(h *hold.Hold, p hold.Params) bool {
	return h.BoothID() == p.BoothID &&
		h.Date().Equal(p.Date) &&
		h.Interval() == p.Interval
}

func toHoldView(h *hold.Hold) HoldView {
	iv := h.Interval()
	return HoldView{
		ID:        h.ID(),
		BoothID:   h.BoothID(),
		Venue:     h.Venue(),
		Date:      h.Date().Format(timeslot.DateLayout),
		Start:     iv.StartClock().String(),
		End:       iv.EndClock().String(),
		Status:    h.Status().String(),
		ExpiresAt: h.ExpiresAt(),
	}
}

func holdLookupErr(err error) error {
	if infra.IsKind(err, infra.KindNotFound) {
		return errs.MarkAll(err, ErrHoldNotFound, errs.ErrNotFound)
	}
	return err
}

func holdStateErr(err error) error {
	switch {
	case errs.Is(err, hold.ErrNotOwner):
		return errs.MarkAll(err, ErrHoldNotOwned, errs.ErrForbidden)
	case errs.Is(err, hold.ErrHoldInactive):
		return errs.MarkAll(err, ErrHoldExpired, errs.ErrExpiredState)
	default:
		return validation(err)
	}
}

// isClassified reports whether err already carries an outcome category.
func isClassified(err error) bool {
	return errs.KindOf(err) != errs.KindInternal
}
