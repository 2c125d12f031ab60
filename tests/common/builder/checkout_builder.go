//go:build unit || e2e

package builder

import (
	reqdto "booth-booking/internal/handler/dto/request"
	"booth-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CheckoutBuilder struct {
	HoldID         uuid.UUID
	SessionID      string
	CustomerName   string
	Email          string
	Phone          *string
	GuestCount     int
	PaymentToken   string
	TicketQuantity int
}

func NewCheckoutBuilder() *CheckoutBuilder {
	return &CheckoutBuilder{
		HoldID:         uuid.New(),
		SessionID:      "session-abc",
		CustomerName:   "Alex Doe",
		Email:          "alex@example.com",
		GuestCount:     4,
		PaymentToken:   "pm_card_visa",
		TicketQuantity: 0,
	}
}

func (b *CheckoutBuilder) With(mutate func(*CheckoutBuilder)) *CheckoutBuilder {
	mutate(b)
	return b
}

func (b *CheckoutBuilder) BuildInput() commands.FinalizeInput {
	return commands.FinalizeInput{
		HoldID:         b.HoldID,
		SessionID:      b.SessionID,
		CustomerName:   b.CustomerName,
		Email:          b.Email,
		Phone:          b.Phone,
		GuestCount:     b.GuestCount,
		PaymentToken:   b.PaymentToken,
		TicketQuantity: b.TicketQuantity,
	}
}

func (b *CheckoutBuilder) BuildRequestDTO() reqdto.FinalizeRequest {
	return reqdto.FinalizeRequest{
		HoldID:         b.HoldID,
		CustomerName:   b.CustomerName,
		Email:          b.Email,
		Phone:          b.Phone,
		GuestCount:     b.GuestCount,
		PaymentToken:   b.PaymentToken,
		TicketQuantity: b.TicketQuantity,
	}
}
