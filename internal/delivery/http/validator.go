package http

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/campushq/campusconnect-backend/internal/domain"
)

// registerValidators installs the custom binding rules used by preference
// payloads: "weekday" accepts English weekday names case-insensitively and
// "timeofday" accepts the scoring buckets.
func registerValidators() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}

	_ = v.RegisterValidation("weekday", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for d := time.Sunday; d <= time.Saturday; d++ {
			if strings.EqualFold(value, d.String()) {
				return true
			}
		}
		return false
	})

	_ = v.RegisterValidation("timeofday", func(fl validator.FieldLevel) bool {
		value := strings.ToLower(fl.Field().String())
		for _, bucket := range domain.TimeOfDayBuckets {
			if value == bucket {
				return true
			}
		}
		return false
	})
}
