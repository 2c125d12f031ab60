package response

import (
	"time"

	"booth-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type HoldResponse struct {
	ID        uuid.UUID `json:"id"`
	BoothID   uuid.UUID `json:"boothId"`
	Venue     string    `json:"venue"`
	Date      string    `json:"date"`
	Start     string    `json:"startTime"`
	End       string    `json:"endTime"`
	Status    string    `json:"status"`
	ExpiresAt time.Time `json:"expiresAt"`
	Replayed  bool      `json:"replayed,omitempty"`
}

func FromHoldView(v *commands.HoldView) (*HoldResponse, error) {
	var res HoldResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromHoldResult(r *commands.HoldResult) (*HoldResponse, error) {
	res, err := FromHoldView(&r.Hold)
	if err != nil {
		return nil, err
	}
	res.Replayed = r.Replayed
	return res, nil
}
