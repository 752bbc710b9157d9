package server

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// validate checks all request structs in this package.
var validate = validator.New()

// validationMessage renders the first validation failure as a client-facing
// message.
func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		ve := verrs[0]
		return fmt.Sprintf("validation error: %s - %s", ve.Field(), ve.Tag())
	}
	return "validation error: invalid request"
}
