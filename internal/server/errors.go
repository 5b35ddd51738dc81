package server

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jonathan/achievement-card/internal/ingestion"
	"github.com/jonathan/achievement-card/internal/rendering"
)

// ErrValidation indicates request validation failure
type ErrValidation struct {
	Field   string
	Message string
}

func (e *ErrValidation) Error() string {
	return e.Message
}

// HTTPStatus returns the HTTP status code for an error raised before rendering.
func HTTPStatus(err error) int {
	var validation *ErrValidation
	switch {
	case errors.As(err, &validation), errors.Is(err, ingestion.ErrMissingIdentifier):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorCardMarkup renders the fallback card for a pipeline error.
func errorCardMarkup(err error) string {
	var fetchErr *ingestion.UpstreamFetchError
	if errors.As(err, &fetchErr) && fetchErr.StatusCode == http.StatusNotFound {
		return rendering.ErrorCard("Profile not found")
	}
	if errors.As(err, &fetchErr) && fetchErr.StatusCode != 0 {
		return rendering.ErrorCard(fmt.Sprintf("Upstream returned HTTP %d", fetchErr.StatusCode))
	}
	return rendering.ErrorCard(err.Error())
}
