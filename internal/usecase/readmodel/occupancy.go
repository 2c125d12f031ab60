package readmodel

import (
	"booth-booking/internal/domain/timeslot"

	"github.com/google/uuid"
)

// OccupiedRange is a booked or held interval on one booth.
type OccupiedRange struct {
	BoothID  uuid.UUID
	Interval timeslot.Interval
}
