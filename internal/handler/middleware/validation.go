package middleware

import (
	"booth-booking/internal/domain/timeslot"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the hhmm and isodate tags to gin's binding validator.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	if err := v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseClockTime(fl.Field().String())
		return err == nil
	}); err != nil {
		return err
	}
	return v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := timeslot.ParseDate(fl.Field().String())
		return err == nil
	})
}
