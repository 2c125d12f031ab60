package request

import "github.com/google/uuid"

// AvailabilityQuery selects a booth grid when BoothID is set and a venue grid otherwise.
type AvailabilityQuery struct {
	BoothID     *uuid.UUID `form:"boothId"`
	Venue       string     `form:"venue" binding:"required_without=BoothID,max=100"`
	Date        string     `form:"date" binding:"required,isodate"`
	Granularity int        `form:"granularity" binding:"omitempty,min=0"`
	MinCapacity int        `form:"minCapacity" binding:"omitempty,min=0"`
}

type BoothsForSlotQuery struct {
	Venue       string `form:"venue" binding:"required,max=100"`
	Date        string `form:"date" binding:"required,isodate"`
	Start       string `form:"start" binding:"required,hhmm"`
	End         string `form:"end" binding:"required,hhmm"`
	MinCapacity int    `form:"minCapacity" binding:"omitempty,min=0"`
}
