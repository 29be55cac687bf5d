package handlers

import (
	"encoding/json"
	"fmt"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"healthinfo-api/core/errors"
)

func TestToHumaError(t *testing.T) {
	tests := []struct {
		name            string
		input           error
		expectedStatus  int
		expectedMessage string
		expectedError   string
	}{
		{
			name:            "NotFoundError returns 404",
			input:           &errors.NotFoundError{Resource: "News article", ID: "flu"},
			expectedStatus:  404,
			expectedMessage: "News article with slug 'flu' not found",
		},
		{
			name:            "wrapped NotFoundError returns 404",
			input:           fmt.Errorf("wrapped: %w", &errors.NotFoundError{Resource: "Drug"}),
			expectedStatus:  404,
			expectedMessage: "Drug not found",
		},
		{
			name:            "ValidationError returns 400",
			input:           &errors.ValidationError{Field: "limit", Message: "must not be negative"},
			expectedStatus:  400,
			expectedMessage: "validation error on field 'limit': must not be negative",
		},
		{
			name:           "UnavailableError returns 503",
			input:          &errors.UnavailableError{Service: "content service", Cause: fmt.Errorf("refused")},
			expectedStatus: 503,
			expectedError:  "Service unavailable: unable to connect to the content service",
		},
		{
			name:           "InternalError keeps its message",
			input:          &errors.InternalError{Message: "Failed to retrieve drug list", Cause: fmt.Errorf("bad json")},
			expectedStatus: 500,
			expectedError:  "Failed to retrieve drug list",
		},
		{
			name:           "unknown error returns 500",
			input:          fmt.Errorf("some unknown error"),
			expectedStatus: 500,
			expectedError:  unexpectedErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := toHumaError(tt.input, staticEnv{production: true})

			apiErr, ok := result.(*APIError)
			require.True(t, ok, "expected *APIError, got %T", result)
			assert.Equal(t, tt.expectedStatus, apiErr.GetStatus())
			assert.Equal(t, tt.expectedMessage, apiErr.Message)
			assert.Equal(t, tt.expectedError, apiErr.Err)
		})
	}
}

func TestToHumaError_Nil(t *testing.T) {
	assert.Nil(t, toHumaError(nil, staticEnv{}))
}

func TestToHumaError_UpstreamStatusAndBodyForwarded(t *testing.T) {
	err := &errors.UpstreamError{Service: "content service", StatusCode: 422, Body: []byte(`{"detail":"bad limit"}`)}

	apiErr := toHumaError(err, staticEnv{production: true}).(*APIError)

	assert.Equal(t, 422, apiErr.GetStatus())
	raw, marshalErr := json.Marshal(apiErr)
	require.NoError(t, marshalErr)
	assert.JSONEq(t, `{"message":"content service returned status 422","detail":{"detail":"bad limit"}}`, string(raw))

	textErr := &errors.UpstreamError{Service: "content service", StatusCode: 502, Body: []byte("Bad Gateway")}
	apiErr = toHumaError(textErr, staticEnv{production: true}).(*APIError)
	assert.Equal(t, 502, apiErr.GetStatus())
	assert.Equal(t, "Bad Gateway", apiErr.Detail)
	assert.NotEmpty(t, apiErr.Err)
}

func TestToHumaError_DetailOnlyOutsideProduction(t *testing.T) {
	cause := fmt.Errorf("database is locked")

	prod := toHumaError(cause, staticEnv{production: true}).(*APIError)
	assert.Nil(t, prod.Detail)

	dev := toHumaError(cause, staticEnv{production: false}).(*APIError)
	assert.Equal(t, "database is locked", dev.Detail)
}

func TestNewError_UsesMessageBodies(t *testing.T) {
	clientErr := huma.NewError(422, "validation failed", fmt.Errorf("limit: expected integer"))
	raw, err := json.Marshal(clientErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"validation failed","detail":["limit: expected integer"]}`, string(raw))

	serverErr := huma.NewError(500, "boom", fmt.Errorf("secret"))
	raw, err = json.Marshal(serverErr)
	require.NoError(t, err)
	assert.JSONEq(t, `{"error":"boom"}`, string(raw))
}
