package model

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// BloodPressurePattern matches systolic/diastolic readings like "120/80".
var BloodPressurePattern = regexp.MustCompile(`^\d{2,3}/\d{2,3}$`)

// RegisterValidations installs domain validation tags on gin's binding
// validator. Must be called before the router handles requests.
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("bloodpressure", func(fl validator.FieldLevel) bool {
		return BloodPressurePattern.MatchString(fl.Field().String())
	})
}
