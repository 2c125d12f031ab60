package response

import (
	"errors"
	"time"

	"booth-booking/internal/domain/timeslot"
	"booth-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type GuestBookingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Category      string     `json:"category"`
	Venue         string     `json:"venue"`
	BoothID       *uuid.UUID `json:"boothId,omitempty"`
	Date          string     `json:"date"`
	StartTime     string     `json:"startTime"`
	EndTime       string     `json:"endTime"`
	GuestCount    int        `json:"guestCount"`
	ReferenceCode string     `json:"referenceCode"`
	Status        string     `json:"status"`
}

type GuestResponse struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	IsOrganiser bool      `json:"isOrganiser"`
	CreatedAt   time.Time `json:"createdAt"`
}

type GuestListResponse struct {
	Booking GuestBookingResponse `json:"booking"`
	Guests  []GuestResponse      `json:"guests"`
}

var bookingDateConverter = copier.TypeConverter{
	SrcType: time.Time{},
	DstType: copier.String,
	Fn: func(src any) (any, error) {
		t, ok := src.(time.Time)
		if !ok {
			return nil, errors.New("booking date is not a time")
		}
		return t.Format(timeslot.DateLayout), nil
	},
}

func FromGuestList(gl *queries.GuestList) (*GuestListResponse, error) {
	res := GuestListResponse{Guests: make([]GuestResponse, 0, len(gl.Guests))}
	opt := copier.Option{Converters: []copier.TypeConverter{bookingDateConverter}}
	if err := copier.CopyWithOption(&res.Booking, &gl.Booking, opt); err != nil {
		return nil, err
	}
	if err := copier.Copy(&res.Guests, &gl.Guests); err != nil {
		return nil, err
	}
	return &res, nil
}
