package utils

import (
	"regexp"

	"medibook-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePassword)
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("slot_date", validateSlotDateKey)
	validate.RegisterValidation("slot_time", validateSlotTimeKey)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexPhoneNumberGeneral).MatchString(fl.Field().String())
}

func validateSlotDateKey(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexSlotDateKey).MatchString(fl.Field().String())
}

func validateSlotTimeKey(fl validator.FieldLevel) bool {
	return regexp.MustCompile(constvars.RegexSlotTimeKey).MatchString(fl.Field().String())
}
