package queries

//go:generate mockgen -destination=../../../tests/mock/queries/queries.go -package=queriesmock . AvailabilityQueries,GuestListQueries,BoothReader,OccupancyReader,AvailabilityCache,GuestReader,GuestTokenVerifier

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"booth-booking/internal/domain/booth"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/readmodel"
	"booth-booking/internal/usecase/shared"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultGranularity = 60
	MinGranularity     = 15
	MaxGranularity     = 240
)

var (
	ErrBoothNotFound      = errs.New("booth not found")
	ErrInvalidGranularity = errs.New(fmt.Sprintf("granularity must be between %d and %d minutes", MinGranularity, MaxGranularity))
	ErrInvalidDate        = errs.New("date must be YYYY-MM-DD")
	ErrInvalidTimeRange   = errs.New("start and end must be HH:MM")
	ErrInvalidCapacity    = errs.New("minimum capacity cannot be negative")
	ErrDatastore          = errs.New("availability could not be read")
)

type Slot struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
	BlockedBy string `json:"blocked_by,omitempty"`
}

type BoothGrid struct {
	BoothID     uuid.UUID `json:"booth_id"`
	Venue       string    `json:"venue"`
	Date        string    `json:"date"`
	Granularity int       `json:"granularity"`
	OpensAt     string    `json:"opens_at"`
	ClosesAt    string    `json:"closes_at"`
	Slots       []Slot    `json:"slots"`
}

type VenueSlot struct {
	Start      string `json:"start"`
	End        string `json:"end"`
	Available  bool   `json:"available"`
	Capacities []int  `json:"capacities"`
}

type VenueGrid struct {
	Venue       string      `json:"venue"`
	Date        string      `json:"date"`
	Granularity int         `json:"granularity"`
	MinCapacity int         `json:"min_capacity"`
	Slots       []VenueSlot `json:"slots"`
}

type BoothOption struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Capacity        int       `json:"capacity"`
	HourlyRateCents int64     `json:"hourly_rate_cents"`
}

type BoothReader interface {
	FindByID(ctx context.Context, id uuid.UUID) (*booth.Booth, error)
	ListByVenue(ctx context.Context, venue string, minCapacity int) ([]*booth.Booth, error)
}

type OccupancyReader interface {
	BookedRanges(ctx context.Context, boothIDs []uuid.UUID, date time.Time) ([]readmodel.OccupiedRange, error)
	HeldRanges(ctx context.Context, boothIDs []uuid.UUID, date time.Time, now time.Time) ([]readmodel.OccupiedRange, error)
}

// AvailabilityCache is a short-lived read-through cache. Entries are never invalidated on write.
type AvailabilityCache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any) error
}

type AvailabilityQueries interface {
	BoothGrid(ctx context.Context, boothID uuid.UUID, date string, granularity int) (*BoothGrid, error)
	VenueGrid(ctx context.Context, venue, date string, granularity, minCapacity int) (*VenueGrid, error)
	BoothsForSlot(ctx context.Context, venue, date, start, end string, minCapacity int) ([]BoothOption, error)
}

type availabilityQueriesImpl struct {
	booths             BoothReader
	occupancy          OccupancyReader
	cache              AvailabilityCache
	clock              clock.Clock
	defaultGranularity int
}

func NewAvailabilityQueries(
	booths BoothReader,
	occupancy OccupancyReader,
	cache AvailabilityCache,
	clk clock.Clock,
	defaultGranularity int,
) AvailabilityQueries {
	if defaultGranularity < MinGranularity || defaultGranularity > MaxGranularity {
		defaultGranularity = DefaultGranularity
	}
	return &availabilityQueriesImpl{
		booths:             booths,
		occupancy:          occupancy,
		cache:              cache,
		clock:              clk,
		defaultGranularity: defaultGranularity,
	}
}

func (q *availabilityQueriesImpl) BoothGrid(ctx context.Context, boothID uuid.UUID, date string, granularity int) (*BoothGrid, error) {
	day, g, err := q.parseGridParams(date, granularity)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("booth:%s:%s:%d", boothID, date, g)
	var cached BoothGrid
	if q.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	var (
		b      *booth.Booth
		booked []readmodel.OccupiedRange
		held   []readmodel.OccupiedRange
	)
	ids := []uuid.UUID{boothID}
	now := q.clock.Now()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		b, err = q.booths.FindByID(egCtx, boothID)
		return err
	})
	eg.Go(func() error {
		var err error
		booked, err = q.occupancy.BookedRanges(egCtx, ids, day)
		return err
	})
	eg.Go(func() error {
		var err error
		held, err = q.occupancy.HeldRanges(egCtx, ids, day, now)
		return err
	})
	if err := eg.Wait(); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.MarkAll(err, ErrBoothNotFound, errs.ErrNotFound)
		}
		return nil, errs.MarkAll(err, ErrDatastore, errs.ErrUpstream)
	}

	hours := b.OperatingHours()
	grid := &BoothGrid{
		BoothID:     b.ID(),
		Venue:       b.Venue(),
		Date:        date,
		Granularity: g,
		OpensAt:     hours.OpensAt(),
		ClosesAt:    hours.ClosesAt(),
		Slots:       []Slot{},
	}
	for _, slot := range hours.Slots(g) {
		s := Slot{
			Start:     slot.StartClock().String(),
			End:       slot.EndClock().String(),
			Available: true,
		}
		if source := blockedBy(slot, boothID, booked, held); source != "" {
			s.Available = false
			s.BlockedBy = source
		}
		grid.Slots = append(grid.Slots, s)
	}

	q.cacheSet(ctx, key, grid)
	return grid, nil
}

func (q *availabilityQueriesImpl) VenueGrid(ctx context.Context, venue, date string, granularity, minCapacity int) (*VenueGrid, error) {
	day, g, err := q.parseGridParams(date, granularity)
	if err != nil {
		return nil, err
	}
	if minCapacity < 0 {
		return nil, errs.MarkAll(nil, ErrInvalidCapacity, errs.ErrValidation)
	}

	key := fmt.Sprintf("venue:%s:%s:%d:%d", venue, date, g, minCapacity)
	var cached VenueGrid
	if q.cacheGet(ctx, key, &cached) {
		return &cached, nil
	}

	booths, booked, held, err := q.loadVenue(ctx, venue, minCapacity, day)
	if err != nil {
		return nil, err
	}

	grid := &VenueGrid{
		Venue:       venue,
		Date:        date,
		Granularity: g,
		MinCapacity: minCapacity,
		Slots:       []VenueSlot{},
	}
	if len(booths) == 0 {
		q.cacheSet(ctx, key, grid)
		return grid, nil
	}

	span := booths[0].OperatingHours().Window()
	for _, b := range booths[1:] {
		w := b.OperatingHours().Window()
		span.Start = min(span.Start, w.Start)
		span.End = max(span.End, w.End)
	}

	for _, slot := range span.Split(g) {
		free := map[int]struct{}{}
		for _, b := range booths {
			if !b.OperatingHours().Window().Contains(slot) {
				continue
			}
			if blockedBy(slot, b.ID(), booked, held) == "" {
				free[b.Capacity()] = struct{}{}
			}
		}
		capacities := make([]int, 0, len(free))
		for c := range free {
			capacities = append(capacities, c)
		}
		sort.Ints(capacities)

		grid.Slots = append(grid.Slots, VenueSlot{
			Start:      slot.StartClock().String(),
			End:        slot.EndClock().String(),
			Available:  len(capacities) > 0,
			Capacities: capacities,
		})
	}

	q.cacheSet(ctx, key, grid)
	return grid, nil
}

func (q *availabilityQueriesImpl) BoothsForSlot(ctx context.Context, venue, date, start, end string, minCapacity int) ([]BoothOption, error) {
	day, err := timeslot.ParseDate(date)
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidDate, errs.ErrValidation)
	}
	startAt, err := timeslot.ParseClockTime(start)
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidTimeRange, errs.ErrValidation)
	}
	endAt, err := timeslot.ParseClockTime(end)
	if err != nil {
		return nil, errs.MarkAll(err, ErrInvalidTimeRange, errs.ErrValidation)
	}
	if minCapacity < 0 {
		return nil, errs.MarkAll(nil, ErrInvalidCapacity, errs.ErrValidation)
	}

	key := fmt.Sprintf("slot:%s:%s:%s-%s:%d", venue, date, startAt, endAt, minCapacity)
	var cached []BoothOption
	if q.cacheGet(ctx, key, &cached) {
		return cached, nil
	}

	booths, booked, held, err := q.loadVenue(ctx, venue, minCapacity, day)
	if err != nil {
		return nil, err
	}

	options := []BoothOption{}
	for _, b := range booths {
		iv, perr := b.Placement(startAt, endAt)
		if perr != nil {
			continue
		}
		if blockedBy(iv, b.ID(), booked, held) != "" {
			continue
		}
		options = append(options, BoothOption{
			ID:              b.ID(),
			Name:            b.Name(),
			Capacity:        b.Capacity(),
			HourlyRateCents: b.HourlyRateCents(),
		})
	}

	q.cacheSet(ctx, key, options)
	return options, nil
}

// loadVenue lists the qualifying booths, then fetches their bookings and holds concurrently.
func (q *availabilityQueriesImpl) loadVenue(
	ctx context.Context,
	venue string,
	minCapacity int,
	day time.Time,
) ([]*booth.Booth, []readmodel.OccupiedRange, []readmodel.OccupiedRange, error) {
	booths, err := q.booths.ListByVenue(ctx, venue, minCapacity)
	if err != nil {
		return nil, nil, nil, errs.MarkAll(err, ErrDatastore, errs.ErrUpstream)
	}
	if len(booths) == 0 {
		return nil, nil, nil, nil
	}

	ids := make([]uuid.UUID, len(booths))
	for i, b := range booths {
		ids[i] = b.ID()
	}
	now := q.clock.Now()

	var booked, held []readmodel.OccupiedRange
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		booked, err = q.occupancy.BookedRanges(egCtx, ids, day)
		return err
	})
	eg.Go(func() error {
		var err error
		held, err = q.occupancy.HeldRanges(egCtx, ids, day, now)
		return err
	})
	if err := eg.Wait(); err != nil {
		return nil, nil, nil, errs.MarkAll(err, ErrDatastore, errs.ErrUpstream)
	}
	return booths, booked, held, nil
}

func (q *availabilityQueriesImpl) parseGridParams(date string, granularity int) (time.Time, int, error) {
	day, err := timeslot.ParseDate(date)
	if err != nil {
		return time.Time{}, 0, errs.MarkAll(err, ErrInvalidDate, errs.ErrValidation)
	}
	if granularity == 0 {
		granularity = q.defaultGranularity
	}
	if granularity < MinGranularity || granularity > MaxGranularity {
		return time.Time{}, 0, errs.MarkAll(nil, ErrInvalidGranularity, errs.ErrValidation)
	}
	return day, granularity, nil
}

// Cache failures fall through to the datastore.
func (q *availabilityQueriesImpl) cacheGet(ctx context.Context, key string, dst any) bool {
	hit, err := q.cache.Get(ctx, key, dst)
	if err != nil {
		slog.Warn("availability cache read failed", "key", key, "error", err.Error())
		return false
	}
	return hit
}

func (q *availabilityQueriesImpl) cacheSet(ctx context.Context, key string, value any) {
	if err := q.cache.Set(ctx, key, value); err != nil {
		slog.Warn("availability cache write failed", "key", key, "error", err.Error())
	}
}

// blockedBy reports what occupies iv on the booth; bookings take precedence over holds.
func blockedBy(iv timeslot.Interval, boothID uuid.UUID, booked, held []readmodel.OccupiedRange) string {
	for _, r := range booked {
		if r.BoothID == boothID && r.Interval.Overlaps(iv) {
			return string(shared.BlockBooking)
		}
	}
	for _, r := range held {
		if r.BoothID == boothID && r.Interval.Overlaps(iv) {
			return string(shared.BlockHold)
		}
	}
	return ""
}
