package utils

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// profilePictureRe matches http(s) URLs ending in a known image extension.
var profilePictureRe = regexp.MustCompile(`^https?://.+\.(jpg|jpeg|png|gif|webp)$`)

func init() {
	_ = validate.RegisterValidation("image_url", func(fl validator.FieldLevel) bool {
		return profilePictureRe.MatchString(fl.Field().String())
	})
}

// Validate runs struct validation on v using the shared validator instance.
func Validate(v interface{}) error {
	return validate.Struct(v)
}

// ValidationMessage converts a validator error into a single human-readable
// message suitable for a 400 response body.
func ValidationMessage(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return "invalid request"
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		switch fe.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", fe.Field()))
		case "email":
			msgs = append(msgs, fmt.Sprintf("%s must be a valid email address", fe.Field()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param()))
		case "max":
			msgs = append(msgs, fmt.Sprintf("%s must not exceed %s characters", fe.Field(), fe.Param()))
		case "image_url":
			msgs = append(msgs, fmt.Sprintf("%s must be an http(s) URL ending in a known image extension", fe.Field()))
		default:
			msgs = append(msgs, fmt.Sprintf("validation failed on field %s for tag %s", fe.Field(), fe.Tag()))
		}
	}
	return strings.Join(msgs, ", ")
}
