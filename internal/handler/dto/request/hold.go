package request

import (
	"strings"

	"github.com/google/uuid"
)

type CreateHoldRequest struct {
	BoothID      uuid.UUID `json:"boothId" binding:"required"`
	Venue        string    `json:"venue" binding:"required,max=100"`
	Date         string    `json:"date" binding:"required,isodate"`
	StartTime    string    `json:"startTime" binding:"required,hhmm"`
	EndTime      string    `json:"endTime" binding:"required,hhmm"`
	TTLMinutes   int       `json:"ttlMinutes" binding:"omitempty,min=1"`
	ContactEmail *string   `json:"contactEmail,omitempty" binding:"omitempty,email,max=255"`
}

func (r CreateHoldRequest) GetContactEmail() *string {
	if r.ContactEmail == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*r.ContactEmail)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

type ExtendHoldRequest struct {
	TTLMinutes int `json:"ttlMinutes" binding:"omitempty,min=1"`
}
