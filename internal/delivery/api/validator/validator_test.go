package validator

import (
	"testing"

	"tarjeta/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type linkRequest struct {
	Title    string `json:"title" validate:"required,max=5"`
	URL      string `json:"url" validate:"required"`
	Position int    `json:"position" validate:"gte=0"`
}

func TestRequestValidator_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		input      linkRequest
		wantFields []FieldError
	}{
		{
			name:  "valid",
			input: linkRequest{Title: "Web", URL: "example.com"},
		},
		{
			name:  "missing required fields",
			input: linkRequest{},
			wantFields: []FieldError{
				{Field: "title", Rule: "required"},
				{Field: "url", Rule: "required"},
			},
		},
		{
			name:  "too long and negative",
			input: linkRequest{Title: "Portfolio", URL: "x", Position: -1},
			wantFields: []FieldError{
				{Field: "title", Rule: "max", Param: "5"},
				{Field: "position", Rule: "gte", Param: "0"},
			},
		},
	}

	v := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := v.Validate(&tt.input)
			if tt.wantFields == nil {
				assert.NoError(t, err)

				return
			}

			verr, ok := errors.AsType[*ValidationError](err)
			require.True(t, ok)
			assert.Equal(t, tt.wantFields, verr.Fields)
			assert.Equal(t, 400, verr.HTTPCode())
		})
	}
}
