package ingestion

import (
	"encoding/json"
	"errors"
	"strings"

	"github.com/jonathan/achievement-card/internal/schemas"
)

// decodeModels validates a structured payload and returns its record objects.
func decodeModels(half string, body []byte) ([]map[string]any, error) {
	if err := schemas.Envelope.ValidateBytes(body); err != nil {
		var docErr *schemas.DocumentError
		if errors.As(err, &docErr) {
			return nil, &UpstreamParseError{Half: half, Message: "payload is not valid JSON", Cause: err}
		}
		return nil, &UpstreamParseError{Half: half, Message: "unexpected payload shape", Cause: err}
	}

	if strings.HasPrefix(strings.TrimSpace(string(body)), "[") {
		var records []map[string]any
		if err := json.Unmarshal(body, &records); err != nil {
			return nil, &UpstreamParseError{Half: half, Message: "failed to decode records", Cause: err}
		}
		return records, nil
	}

	var envelope struct {
		Models []map[string]any `json:"models"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, &UpstreamParseError{Half: half, Message: "failed to decode envelope", Cause: err}
	}
	return envelope.Models, nil
}
