package gatewaysdk

import (
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func fakeResponse(status int, body string) *http.Response {
	return &http.Response{
		StatusCode: status,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestNormalize_WrappedSuccess(t *testing.T) {
	res, err := normalize(fakeResponse(200, `{"success":true,"message":"ok","data":{"id":"p1"}}`))
	require.NoError(t, err)

	require.True(t, res.Wrapped)
	require.Equal(t, "ok", res.Message)
	require.JSONEq(t, `{"id":"p1"}`, string(res.Data))
}

func TestNormalize_WrappedWithoutData(t *testing.T) {
	res, err := normalize(fakeResponse(200, `{"success":true,"message":"deleted"}`))
	require.NoError(t, err)

	require.True(t, res.Wrapped)
	// No data to unwrap: the raw body passes through
	require.JSONEq(t, `{"success":true,"message":"deleted"}`, string(res.Data))
}

func TestNormalize_RawArray(t *testing.T) {
	res, err := normalize(fakeResponse(200, `[{"id":"p1"},{"id":"p2"}]`))
	require.NoError(t, err)

	require.False(t, res.Wrapped)
	require.True(t, res.IsArray())
	require.JSONEq(t, `[{"id":"p1"},{"id":"p2"}]`, string(res.Data))
}

func TestNormalize_RawObject(t *testing.T) {
	res, err := normalize(fakeResponse(200, `{"id":"p1","company_name":"Acme"}`))
	require.NoError(t, err)

	require.False(t, res.Wrapped)
	require.False(t, res.IsArray())
	require.JSONEq(t, `{"id":"p1","company_name":"Acme"}`, string(res.Data))
}

func TestNormalize_EmptyBody(t *testing.T) {
	res, err := normalize(fakeResponse(200, ""))
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(res.Data))

	res, err = normalize(fakeResponse(200, "  \n"))
	require.NoError(t, err)
	require.JSONEq(t, `{}`, string(res.Data))
}

func TestNormalize_InvalidJSON(t *testing.T) {
	_, err := normalize(fakeResponse(502, `<html>Bad Gateway</html>`))

	var de *DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, 502, de.StatusCode)
	require.Equal(t, "Invalid response from backend (502)", de.Error())
}

func TestNormalize_ErrorMessageFromEnvelope(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"message field", 404, `{"success":false,"message":"Partner not found"}`, "Partner not found"},
		{"error field", 400, `{"error":"validation failed"}`, "validation failed"},
		{"no fields", 500, `{}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalize(fakeResponse(tt.status, tt.body))

			var be *BackendError
			require.ErrorAs(t, err, &be)
			require.Equal(t, tt.status, be.StatusCode)
			require.Equal(t, tt.message, be.Message)
		})
	}
}

func TestIsUnauthorized(t *testing.T) {
	require.True(t, IsUnauthorized(&BackendError{StatusCode: 401}))
	require.False(t, IsUnauthorized(&BackendError{StatusCode: 404}))
	require.False(t, IsUnauthorized(&DecodeError{StatusCode: 401}))
	require.False(t, IsUnauthorized(nil))
}
