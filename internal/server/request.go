package server

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// cardRequest holds the query parameters of /card and /api.
type cardRequest struct {
	Username string `validate:"required,max=100"`
}

func parseCardRequest(r *http.Request) (cardRequest, error) {
	req := cardRequest{Username: strings.TrimSpace(r.URL.Query().Get("username"))}
	if err := validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 && fieldErrs[0].Tag() == "max" {
			return req, &ErrValidation{Field: "username", Message: "Username parameter is too long"}
		}
		return req, &ErrValidation{Field: "username", Message: "Missing username parameter"}
	}
	return req, nil
}
