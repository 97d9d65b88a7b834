package api

import (
	"log"
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	// 24-hour wall-clock "HH:MM", the format all booking times travel in.
	hhmmRe = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)
	// ISO calendar date "YYYY-MM-DD".
	isoDateRe = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])-(0[1-9]|[12][0-9]|3[01])$`)
)

// registerValidators adds the custom binding tags used by booking DTOs to
// gin's validator engine. Both formats order lexically, which the schedule
// rules rely on, so anything else is rejected at the boundary.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		log.Printf("warning: unexpected validator engine, custom tags not registered")
		return
	}

	_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
		return hhmmRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		return isoDateRe.MatchString(fl.Field().String())
	})
}
