package readmodel

import (
	"time"

	"github.com/google/uuid"
)

type BookingRM struct {
	ID            uuid.UUID  `json:"id"`
	Category      string     `json:"category"`
	Venue         string     `json:"venue"`
	BoothID       *uuid.UUID `json:"booth_id,omitempty"`
	Date          time.Time  `json:"date"`
	StartTime     string     `json:"start_time"`
	EndTime       string     `json:"end_time"`
	GuestCount    int        `json:"guest_count"`
	ReferenceCode string     `json:"reference_code"`
	Status        string     `json:"status"`
}

type GuestRM struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Email       *string   `json:"email,omitempty"`
	IsOrganiser bool      `json:"is_organiser"`
	CreatedAt   time.Time `json:"created_at"`
}
