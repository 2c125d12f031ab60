package response

import (
	"booth-booking/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type TicketBookingResponse struct {
	BookingID     uuid.UUID `json:"bookingId"`
	ReferenceCode string    `json:"referenceCode"`
}

type FinalizeResponse struct {
	BookingID      uuid.UUID              `json:"bookingId"`
	ReferenceCode  string                 `json:"referenceCode"`
	TransactionID  string                 `json:"transactionId"`
	GuestListToken string                 `json:"guestListToken,omitempty"`
	TicketBooking  *TicketBookingResponse `json:"ticketBooking,omitempty"`
	TotalCents     int64                  `json:"totalCents"`
	Currency       string                 `json:"currency"`
	Replayed       bool                   `json:"replayed"`
}

func FromFinalizeResult(r *commands.FinalizeResult) (*FinalizeResponse, error) {
	var res FinalizeResponse
	if err := copier.Copy(&res, r); err != nil {
		return nil, err
	}
	return &res, nil
}
