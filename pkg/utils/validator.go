package util

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("hasuppercase", validateHasUppercase)
}

func validateHasUppercase(fl validator.FieldLevel) bool {
	password := fl.Field().String()

	return regexp.MustCompile(`[A-Z]`).MatchString(password)
}

type ErrorResponse struct {
	Field string `json:"field"`
	Tag   string `json:"tag"`
	Msg   string `json:"message"`
}

// ValidateStruct runs the shared validator over s and translates tag
// failures into readable field messages.
func ValidateStruct(s interface{}) []*ErrorResponse {
	var errs []*ErrorResponse
	err := Validate.Struct(s)
	if err != nil {
		for _, fieldErr := range err.(validator.ValidationErrors) {
			var element ErrorResponse
			element.Field = fieldErr.Field()
			element.Tag = fieldErr.Tag()

			switch fieldErr.Tag() {
			case "required":
				element.Msg = fmt.Sprintf("field '%s' is required", element.Field)
			case "min":
				element.Msg = fmt.Sprintf("field '%s' must have at least %s characters", element.Field, fieldErr.Param())
			case "max":
				element.Msg = fmt.Sprintf("field '%s' must have at most %s characters", element.Field, fieldErr.Param())
			case "email":
				element.Msg = fmt.Sprintf("field '%s' must be a valid email address", element.Field)
			case "hasuppercase":
				element.Msg = "password must contain at least one uppercase letter"
			case "datetime":
				element.Msg = fmt.Sprintf("field '%s' must match the format %s", element.Field, fieldErr.Param())
			case "oneof":
				element.Msg = fmt.Sprintf("field '%s' must be one of: %s", element.Field, fieldErr.Param())
			case "latitude", "longitude":
				element.Msg = fmt.Sprintf("field '%s' must be a valid coordinate", element.Field)
			default:
				element.Msg = fmt.Sprintf("field '%s' failed validation for tag '%s'", element.Field, element.Tag)
			}
			errs = append(errs, &element)
		}
	}
	return errs
}
