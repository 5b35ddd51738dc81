package schemas

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvelope_Valid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"bare array", `[{"name":"Python"}]`},
		{"empty array", `[]`},
		{"models envelope", `{"models":[{"name":"Python"}],"total":1}`},
		{"empty models", `{"models":[]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, Envelope.ValidateBytes([]byte(tt.doc)))
		})
	}
}

func TestEnvelope_Invalid(t *testing.T) {
	tests := []struct {
		name string
		doc  string
	}{
		{"missing models", `{"data":[]}`},
		{"models not array", `{"models":{"name":"x"}}`},
		{"array of strings", `["a","b"]`},
		{"scalar", `42`},
		{"null", `null`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Envelope.ValidateBytes([]byte(tt.doc))
			require.Error(t, err)
			var ve *ValidationError
			assert.True(t, errors.As(err, &ve))
			assert.NotEmpty(t, ve.Errors)
			assert.Contains(t, err.Error(), "envelope validation failed")
		})
	}
}

func TestValidateBytes_MalformedJSON(t *testing.T) {
	err := Envelope.ValidateBytes([]byte(`<html>`))
	require.Error(t, err)
	var de *DocumentError
	assert.True(t, errors.As(err, &de))
}

func TestCompile_InvalidSchema(t *testing.T) {
	_, err := Compile("broken", `{"type": 12}`)
	require.Error(t, err)
	var le *SchemaLoadError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, "broken", le.Name)
}

func TestMustCompile_Panics(t *testing.T) {
	assert.Panics(t, func() { MustCompile("broken", `not json`) })
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{
		Schema: "envelope",
		Errors: []FieldError{
			{Field: "(root)", Message: "Must validate one and only one schema (oneOf)"},
			{Field: "models", Message: "Invalid type. Expected: array, given: object"},
		},
	}
	assert.Equal(t, "envelope validation failed: (root): Must validate one and only one schema (oneOf); models: Invalid type. Expected: array, given: object", err.Error())
}

func TestCompile_CustomSchema(t *testing.T) {
	s, err := Compile("star", `{"type":"object","properties":{"stars":{"type":"integer","minimum":0}}}`)
	require.NoError(t, err)
	assert.NoError(t, s.ValidateBytes([]byte(`{"stars":3}`)))
	assert.Error(t, s.ValidateBytes([]byte(`{"stars":-1}`)))
}
