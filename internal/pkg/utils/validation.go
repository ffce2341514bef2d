package utils

import (
	"regexp"

	"slotly-service/internal/pkg/constvars"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("password", validatePassword)
}

func validatePassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	hasMinLen := len(password) >= 8
	hasSpecialChar := regexp.MustCompile(constvars.RegexContainAtLeastOneSpecialChar).MatchString(password)
	hasUppercase := regexp.MustCompile(constvars.RegexContainAtLeastOneUppercase).MatchString(password)
	hasLowercase := regexp.MustCompile(constvars.RegexContainAtLeastOneLowercase).MatchString(password)
	hasDigit := regexp.MustCompile(constvars.RegexContainAtLeastOneDigit).MatchString(password)
	return hasMinLen && hasSpecialChar && hasUppercase && hasLowercase && hasDigit
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}
