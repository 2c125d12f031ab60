package commands

import (
	"booth-booking/internal/pkg/errs"
)

var (
	ErrInvalidRequest       = errs.New("invalid request")
	ErrBoothNotFound        = errs.New("booth not found")
	ErrVenueMismatch        = errs.New("booth does not belong to this venue")
	ErrSlotTaken            = errs.New("slot is already held or booked")
	ErrIdempotencyKeyReused = errs.New("idempotency key was used for a different hold")
	ErrHoldNotFound         = errs.New("hold not found")
	ErrHoldNotOwned         = errs.New("hold belongs to another session")
	ErrHoldExpired          = errs.New("hold is no longer active")
	ErrRateNotConfigured    = errs.New("booth has no hourly rate")
	ErrPaymentFailed        = errs.New("payment was not taken")
	ErrBookingNotSaved      = errs.New("payment taken but booking could not be saved")
	ErrDatabaseOperation    = errs.New("database operation failed")
)

func validation(err error) error {
	return errs.MarkAll(err, ErrInvalidRequest, errs.ErrValidation)
}

func datastore(err error) error {
	return errs.MarkAll(err, ErrDatabaseOperation, errs.ErrUpstream)
}
