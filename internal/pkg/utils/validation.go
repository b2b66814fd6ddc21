package utils

import (
	"carelink-service/internal/pkg/constvars"
	"errors"
	"regexp"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate *validator.Validate

var emailRegex = regexp.MustCompile(constvars.RegexEmail)

func init() {
	validate = validator.New()
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// ValidateEmail applies the standard address grammar used across the
// directory; it backs the uniqueness pre-checks where the struct validator
// is not in play.
func ValidateEmail(email string) error {
	if !emailRegex.MatchString(email) {
		return errors.New("email does not match the address grammar")
	}
	return nil
}

func ValidateURLParamID(param string) error {
	if param == "" {
		return errors.New("parameter is missing from url path")
	}
	_, err := primitive.ObjectIDFromHex(param)
	return err
}
