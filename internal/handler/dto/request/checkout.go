package request

import "github.com/google/uuid"

type FinalizeRequest struct {
	HoldID         uuid.UUID `json:"holdId" binding:"required"`
	CustomerName   string    `json:"customerName" binding:"required,max=200"`
	Email          string    `json:"email" binding:"required,email,max=255"`
	Phone          *string   `json:"phone,omitempty" binding:"omitempty,max=40"`
	GuestCount     int       `json:"guestCount" binding:"required,min=1,max=100"`
	PaymentToken   string    `json:"paymentToken" binding:"required,max=255"`
	TicketQuantity int       `json:"ticketQuantity" binding:"omitempty,min=0,max=100"`
}
