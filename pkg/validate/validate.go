package validate

import (
	"github.com/go-playground/validator/v10"
)

var v = validator.New(validator.WithRequiredStructEnabled())

// Struct validates request DTOs against their validate tags.
func Struct(s any) error {
	return v.Struct(s)
}
