//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"booth-booking/internal/domain/booth"
	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/infra"
	"booth-booking/internal/pkg/clock"
	"booth-booking/internal/pkg/errs"
	"booth-booking/internal/usecase/queries"
	"booth-booking/internal/usecase/readmodel"
	"booth-booking/tests/common/builder"
	queriesmock "booth-booking/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

var testNow = time.Date(2026, 3, 14, 17, 0, 0, 0, time.UTC)

type AvailabilityQueriesTestSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	booths    *queriesmock.MockBoothReader
	occupancy *queriesmock.MockOccupancyReader
	cache     *queriesmock.MockAvailabilityCache
	queries   queries.AvailabilityQueries

	small *booth.Booth
	large *booth.Booth
	ctx   context.Context
}

func (s *AvailabilityQueriesTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.booths = queriesmock.NewMockBoothReader(s.ctrl)
	s.occupancy = queriesmock.NewMockOccupancyReader(s.ctrl)
	s.cache = queriesmock.NewMockAvailabilityCache(s.ctrl)
	s.queries = queries.NewAvailabilityQueries(s.booths, s.occupancy, s.cache, clock.NewMockClock(testNow), 60)

	s.small = builder.NewBoothBuilder().MustBuild()
	s.large = builder.NewBoothBuilder().With(func(b *builder.BoothBuilder) {
		b.Name = "Booth 2"
		b.Capacity = 12
		b.OpensAt = "18:00"
		b.ClosesAt = "23:00"
	}).MustBuild()
	s.ctx = context.Background()
}

func (s *AvailabilityQueriesTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAvailabilityQueriesSuite(t *testing.T) {
	suite.Run(t, new(AvailabilityQueriesTestSuite))
}

func occupied(boothID uuid.UUID, start, end string) readmodel.OccupiedRange {
	iv, err := timeslot.ParseInterval(start, end)
	if err != nil {
		panic(err)
	}
	return readmodel.OccupiedRange{BoothID: boothID, Interval: iv}
}

func (s *AvailabilityQueriesTestSuite) expectCacheMiss() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
}

// =============================================================================
// BoothGrid
// =============================================================================

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_MarksHeldAndBookedSlots() {
	s.expectCacheMiss()
	ids := []uuid.UUID{s.small.ID()}
	s.booths.EXPECT().FindByID(gomock.Any(), s.small.ID()).Return(s.small, nil)
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), ids, gomock.Any()).
		Return([]readmodel.OccupiedRange{occupied(s.small.ID(), "22:00", "00:00")}, nil)
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), ids, gomock.Any(), testNow).
		Return([]readmodel.OccupiedRange{occupied(s.small.ID(), "18:00", "20:00")}, nil)

	grid, err := s.queries.BoothGrid(s.ctx, s.small.ID(), "2026-03-14", 0)

	s.Require().NoError(err)
	s.Equal(60, grid.Granularity)
	s.Equal("12:00", grid.OpensAt)
	s.Equal("02:00", grid.ClosesAt)
	s.Require().Len(grid.Slots, 14)

	blocked := map[string]string{}
	for _, slot := range grid.Slots {
		if !slot.Available {
			blocked[slot.Start] = slot.BlockedBy
		}
	}
	s.Equal(map[string]string{
		"18:00": "hold",
		"19:00": "hold",
		"22:00": "booking",
		"23:00": "booking",
	}, blocked)
	s.Equal("01:00", grid.Slots[13].Start)
	s.Equal("02:00", grid.Slots[13].End)
}

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_CacheHitSkipsDatastore() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, key string, dst any) (bool, error) {
			s.Equal("booth:"+s.small.ID().String()+":2026-03-14:30", key)
			*dst.(*queries.BoothGrid) = queries.BoothGrid{BoothID: s.small.ID(), Granularity: 30}
			return true, nil
		})

	grid, err := s.queries.BoothGrid(s.ctx, s.small.ID(), "2026-03-14", 30)

	s.Require().NoError(err)
	s.Equal(s.small.ID(), grid.BoothID)
}

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_CacheFailureFallsThrough() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, errors.New("redis down"))
	s.cache.EXPECT().Set(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("redis down"))
	s.booths.EXPECT().FindByID(gomock.Any(), s.small.ID()).Return(s.small, nil)
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	grid, err := s.queries.BoothGrid(s.ctx, s.small.ID(), "2026-03-14", 60)

	s.Require().NoError(err)
	for _, slot := range grid.Slots {
		s.True(slot.Available)
	}
}

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_DatastoreFailureIsUpstream() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.booths.EXPECT().FindByID(gomock.Any(), s.small.ID()).Return(s.small, nil).AnyTimes()
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("bookings", errors.New("connection refused"))).AnyTimes()
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.queries.BoothGrid(s.ctx, s.small.ID(), "2026-03-14", 60)

	s.Require().Error(err)
	s.Equal(errs.KindUpstream, errs.KindOf(err))
}

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_UnknownBooth() {
	s.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
	s.booths.EXPECT().FindByID(gomock.Any(), gomock.Any()).
		Return(nil, infra.WrapRepoErr("booth", nil, infra.KindNotFound))
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()

	_, err := s.queries.BoothGrid(s.ctx, uuid.New(), "2026-03-14", 60)

	s.Require().Error(err)
	s.Equal(errs.KindNotFound, errs.KindOf(err))
}

func (s *AvailabilityQueriesTestSuite) TestBoothGrid_InvalidParams() {
	testCases := []struct {
		name        string
		date        string
		granularity int
	}{
		{name: "malformed date", date: "14/03/2026", granularity: 60},
		{name: "granularity too small", date: "2026-03-14", granularity: 5},
		{name: "granularity too large", date: "2026-03-14", granularity: 480},
	}
	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.queries.BoothGrid(s.ctx, s.small.ID(), tc.date, tc.granularity)

			s.Require().Error(err)
			s.Equal(errs.KindValidation, errs.KindOf(err))
		})
	}
}

// =============================================================================
// VenueGrid
// =============================================================================

func (s *AvailabilityQueriesTestSuite) TestVenueGrid_ListsFreeCapacitiesPerSlot() {
	s.expectCacheMiss()
	s.booths.EXPECT().ListByVenue(gomock.Any(), "soho", 0).Return([]*booth.Booth{s.small, s.large}, nil)
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), []uuid.UUID{s.small.ID(), s.large.ID()}, gomock.Any()).
		Return([]readmodel.OccupiedRange{occupied(s.large.ID(), "19:00", "20:00")}, nil)
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), testNow).
		Return([]readmodel.OccupiedRange{occupied(s.small.ID(), "19:00", "21:00")}, nil)

	grid, err := s.queries.VenueGrid(s.ctx, "soho", "2026-03-14", 60, 0)

	s.Require().NoError(err)
	bySlot := map[string]queries.VenueSlot{}
	for _, slot := range grid.Slots {
		bySlot[slot.Start] = slot
	}
	s.Equal([]int{8}, bySlot["13:00"].Capacities)
	s.Equal([]int{8, 12}, bySlot["18:00"].Capacities)
	s.False(bySlot["19:00"].Available)
	s.Empty(bySlot["19:00"].Capacities)
	s.Equal([]int{12}, bySlot["20:00"].Capacities)
	s.Equal([]int{8}, bySlot["23:00"].Capacities)
}

func (s *AvailabilityQueriesTestSuite) TestVenueGrid_NoBooths() {
	s.expectCacheMiss()
	s.booths.EXPECT().ListByVenue(gomock.Any(), "camden", 20).Return(nil, nil)

	grid, err := s.queries.VenueGrid(s.ctx, "camden", "2026-03-14", 60, 20)

	s.Require().NoError(err)
	s.Empty(grid.Slots)
}

func (s *AvailabilityQueriesTestSuite) TestVenueGrid_NegativeCapacity() {
	_, err := s.queries.VenueGrid(s.ctx, "soho", "2026-03-14", 60, -1)

	s.Require().Error(err)
	s.Equal(errs.KindValidation, errs.KindOf(err))
}

// =============================================================================
// BoothsForSlot
// =============================================================================

func (s *AvailabilityQueriesTestSuite) TestBoothsForSlot_ExcludesBlockedBooths() {
	s.expectCacheMiss()
	s.booths.EXPECT().ListByVenue(gomock.Any(), "soho", 0).Return([]*booth.Booth{s.small, s.large}, nil)
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]readmodel.OccupiedRange{occupied(s.small.ID(), "18:00", "20:00")}, nil)

	options, err := s.queries.BoothsForSlot(s.ctx, "soho", "2026-03-14", "19:00", "21:00", 0)

	s.Require().NoError(err)
	s.Require().Len(options, 1)
	s.Equal(s.large.ID(), options[0].ID)
	s.Equal(12, options[0].Capacity)
}

func (s *AvailabilityQueriesTestSuite) TestBoothsForSlot_SkipsBoothsClosedForTheRange() {
	s.expectCacheMiss()
	s.booths.EXPECT().ListByVenue(gomock.Any(), "soho", 0).Return([]*booth.Booth{s.small, s.large}, nil)
	s.occupancy.EXPECT().BookedRanges(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)
	s.occupancy.EXPECT().HeldRanges(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil)

	options, err := s.queries.BoothsForSlot(s.ctx, "soho", "2026-03-14", "23:30", "01:30", 0)

	s.Require().NoError(err)
	s.Require().Len(options, 1)
	s.Equal(s.small.ID(), options[0].ID)
}

func (s *AvailabilityQueriesTestSuite) TestBoothsForSlot_MalformedTime() {
	_, err := s.queries.BoothsForSlot(s.ctx, "soho", "2026-03-14", "7pm", "21:00", 0)

	s.Require().Error(err)
	s.True(errs.Is(err, queries.ErrInvalidTimeRange))
}
