// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"spendcheck/internal/feedback"
	"spendcheck/internal/period"
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("date_key", validateDateKey)
		_ = v.RegisterValidation("month_key", validateMonthKey)
		_ = v.RegisterValidation("range_type", validateRangeType)
		_ = v.RegisterValidation("feedback_tone", validateFeedbackTone)
	}
}

func validateDateKey(fl validator.FieldLevel) bool {
	return period.ValidDateKey(fl.Field().String())
}

func validateMonthKey(fl validator.FieldLevel) bool {
	return period.ValidMonthKey(fl.Field().String())
}

func validateRangeType(fl validator.FieldLevel) bool {
	return period.ValidRangeType(fl.Field().String())
}

func validateFeedbackTone(fl validator.FieldLevel) bool {
	return feedback.ValidTone(fl.Field().String())
}
