//go:build unit || e2e

package httptest

import (
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   struct {
		Kind    string `json:"kind"`
		Message string `json:"message"`
	} `json:"error"`
}

// AssertSuccessResponse checks the status and decodes the envelope's data into targetStruct.
func AssertSuccessResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, targetStruct any) {
	t.Helper()

	if !assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String())) {
		return
	}

	var env envelope
	if !assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), fmt.Sprintf("Failed to decode response JSON: %s", w.Body.String())) {
		return
	}
	assert.True(t, env.Success, "success flag should be set")

	if targetStruct != nil {
		err := json.Unmarshal(env.Data, targetStruct)
		assert.NoError(t, err, fmt.Sprintf("Failed to decode response data: %s", string(env.Data)))
	}
}

func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMsg string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d", expectedStatus, w.Code))

	var env envelope
	err := json.Unmarshal(w.Body.Bytes(), &env)
	assert.NoError(t, err, fmt.Sprintf("Failed to decode error response JSON: %s", w.Body.String()))
	assert.False(t, env.Success, "success flag should be false")

	if expectedErrorMsg != "" {
		assert.Contains(t, env.Error.Message, expectedErrorMsg,
			"Response error message doesn't contain expected text")
	}
}

// AssertErrorKind checks status and the envelope's error kind.
func AssertErrorKind(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedKind string) {
	t.Helper()

	assert.Equal(t, expectedStatus, w.Code,
		fmt.Sprintf("Expected status %d, got %d. Response: %s", expectedStatus, w.Code, w.Body.String()))

	var env envelope
	if assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &env)) {
		assert.Equal(t, expectedKind, env.Error.Kind)
	}
}

// AssertHeaders checks response headers; an empty expected value asserts the header is absent.
func AssertHeaders(t *testing.T, w *httptest.ResponseRecorder, expected map[string]string) {
	t.Helper()
	for k, v := range expected {
		if v == "" {
			assert.Empty(t, w.Header().Values(k), "header %s should be absent", k)
			continue
		}
		assert.Equal(t, v, w.Header().Get(k), "header %s mismatch", k)
	}
}
