package testutil

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Envelope is the API response envelope used by every endpoint.
type Envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// DecodeEnvelope reads and decodes the response body
func DecodeEnvelope(t *testing.T, resp *http.Response) Envelope {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err, "failed to read response body")

	var env Envelope
	err = json.Unmarshal(body, &env)
	require.NoError(t, err, "failed to unmarshal response: %s", string(body))

	return env
}

// DecodeData unmarshals the envelope's data field into v
func (e Envelope) DecodeData(t *testing.T, v interface{}) {
	t.Helper()

	err := json.Unmarshal(e.Data, v)
	require.NoError(t, err, "failed to unmarshal data: %s", string(e.Data))
}

// AssertStatusCode verifies the HTTP response status code
func AssertStatusCode(t *testing.T, resp *http.Response, expected int) {
	t.Helper()
	assert.Equal(t, expected, resp.StatusCode, "unexpected status code")
}

// AssertSuccess verifies status code and success envelope, returning the envelope
func AssertSuccess(t *testing.T, resp *http.Response, expectedStatus int) Envelope {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")
	env := DecodeEnvelope(t, resp)
	assert.True(t, env.Success, "expected success envelope")
	return env
}

// AssertError verifies an error envelope with the expected status and message
func AssertError(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) Envelope {
	t.Helper()

	assert.Equal(t, expectedStatus, resp.StatusCode, "unexpected status code")
	env := DecodeEnvelope(t, resp)
	assert.False(t, env.Success, "expected error envelope")
	if expectedMessage != "" {
		assert.Equal(t, expectedMessage, env.Message, "error message mismatch")
	}
	return env
}
