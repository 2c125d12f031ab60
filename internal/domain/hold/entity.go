package hold

import (
	"errors"
	"strings"
	"time"

	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

var (
	ErrEmptySession   = errors.New("session id cannot be empty")
	ErrNotOwner       = errors.New("hold belongs to another session")
	ErrHoldInactive   = errors.New("hold expired or inactive")
	ErrInvalidTTL     = errors.New("ttl must be positive")
	ErrInvalidStatus  = errors.New("invalid hold status")
	ErrDurationPolicy = errors.New("session duration is outside policy")
)

const MaxSessionMinutes = 120

type Hold struct {
	id             uuid.UUID
	boothID        uuid.UUID
	venue          string
	date           time.Time
	interval       timeslot.Interval
	sessionID      string
	status         Status
	expiresAt      time.Time
	contactEmail   *string
	idempotencyKey *string
	createdAt      time.Time
}

type Params struct {
	BoothID        uuid.UUID
	Venue          string
	Date           time.Time
	Interval       timeslot.Interval
	SessionID      string
	ContactEmail   *string
	IdempotencyKey *string
}

// New issues an active hold that lapses ttl after now.
func New(p Params, ttl time.Duration, now time.Time) (*Hold, error) {
	sessionID := strings.TrimSpace(p.SessionID)
	if sessionID == "" {
		return nil, ErrEmptySession
	}
	if ttl <= 0 {
		return nil, ErrInvalidTTL
	}
	if err := ValidateDuration(p.Interval); err != nil {
		return nil, err
	}

	return &Hold{
		id:             uuid.New(),
		boothID:        p.BoothID,
		venue:          p.Venue,
		date:           p.Date,
		interval:       p.Interval,
		sessionID:      sessionID,
		status:         StatusActive,
		expiresAt:      now.Add(ttl),
		contactEmail:   p.ContactEmail,
		idempotencyKey: p.IdempotencyKey,
		createdAt:      now,
	}, nil
}

// Rehydrate rebuilds a stored hold without re-running creation rules.
func Rehydrate(id uuid.UUID, p Params, status Status, expiresAt, createdAt time.Time) (*Hold, error) {
	if !status.IsValid() {
		return nil, ErrInvalidStatus
	}
	return &Hold{
		id:             id,
		boothID:        p.BoothID,
		venue:          p.Venue,
		date:           p.Date,
		interval:       p.Interval,
		sessionID:      p.SessionID,
		status:         status,
		expiresAt:      expiresAt,
		contactEmail:   p.ContactEmail,
		idempotencyKey: p.IdempotencyKey,
		createdAt:      createdAt,
	}, nil
}

// ValidateDuration enforces the bookable session length.
func ValidateDuration(iv timeslot.Interval) error {
	if iv.Minutes() <= 0 || iv.Minutes() > MaxSessionMinutes {
		return ErrDurationPolicy
	}
	return nil
}

// IsBlocking is true only while the hold is active and now is before expiry.
func (h *Hold) IsBlocking(now time.Time) bool {
	return h.status == StatusActive && now.Before(h.expiresAt)
}

func (h *Hold) OwnedBy(sessionID string) bool {
	return h.sessionID == strings.TrimSpace(sessionID)
}

func (h *Hold) Extend(sessionID string, ttl time.Duration, now time.Time) error {
	if !h.OwnedBy(sessionID) {
		return ErrNotOwner
	}
	if ttl <= 0 {
		return ErrInvalidTTL
	}
	if !h.IsBlocking(now) {
		return ErrHoldInactive
	}
	h.expiresAt = now.Add(ttl)
	return nil
}

// Release frees the slot. It reports false when there was nothing to release.
func (h *Hold) Release(sessionID string, now time.Time) (bool, error) {
	if !h.OwnedBy(sessionID) {
		return false, ErrNotOwner
	}
	return h.ForceRelease(now), nil
}

func (h *Hold) ForceRelease(now time.Time) bool {
	if !h.IsBlocking(now) {
		return false
	}
	h.status = StatusReleased
	return true
}

// RequireConvertible checks the hold can still be paid for.
func (h *Hold) RequireConvertible(sessionID string, now time.Time) error {
	if !h.IsBlocking(now) {
		return ErrHoldInactive
	}
	if !h.OwnedBy(sessionID) {
		return ErrNotOwner
	}
	return nil
}

func (h *Hold) ID() uuid.UUID               { return h.id }
func (h *Hold) BoothID() uuid.UUID          { return h.boothID }
func (h *Hold) Venue() string               { return h.venue }
func (h *Hold) Date() time.Time             { return h.date }
func (h *Hold) Interval() timeslot.Interval { return h.interval }
func (h *Hold) SessionID() string           { return h.sessionID }
func (h *Hold) Status() Status              { return h.status }
func (h *Hold) ExpiresAt() time.Time        { return h.expiresAt }
func (h *Hold) ContactEmail() *string       { return h.contactEmail }
func (h *Hold) IdempotencyKey() *string     { return h.idempotencyKey }
func (h *Hold) CreatedAt() time.Time        { return h.createdAt }
