package console_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestLoginAndListCompanies walks the main admin flow: log in, list the
// partner collection, read one record back.
func TestLoginAndListCompanies(t *testing.T) {
	baseURL := setupConsole(t)
	token, _ := login(t, baseURL)

	code, body := doJSON(t, http.MethodGet, baseURL+"/api/companies", token, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, true, body["success"])

	companies, ok := body["data"].([]any)
	require.True(t, ok, "list must wrap the backend array under data")
	require.Len(t, companies, 1)

	code, body = doJSON(t, http.MethodGet, baseURL+"/api/companies/p1", token, "")
	require.Equal(t, http.StatusOK, code)

	company := body["data"].(map[string]any)
	require.Equal(t, "Acme", company["company_name"])
}

// TestUpdateCompanyFlow verifies payload shaping end to end: unknown keys are
// dropped, display statuses are translated, and the backend's answer comes
// back through the envelope.
func TestUpdateCompanyFlow(t *testing.T) {
	baseURL := setupConsole(t)
	token, _ := login(t, baseURL)

	code, body := doJSON(t, http.MethodPut, baseURL+"/api/companies/p1", token,
		`{"company_name":"Acme Rebranded","status":"inactive","api_key":"should-be-dropped"}`)
	require.Equal(t, http.StatusOK, code)

	company := body["data"].(map[string]any)
	require.Equal(t, "Acme Rebranded", company["company_name"])
	require.Equal(t, "N", company["status"], "display status must reach the backend as a code")
	require.NotContains(t, company, "api_key")
}

// TestInvalidUpdateRejectedLocally: an update touching no known field never
// reaches the backend.
func TestInvalidUpdateRejectedLocally(t *testing.T) {
	baseURL := setupConsole(t)
	token, _ := login(t, baseURL)

	code, body := doJSON(t, http.MethodPut, baseURL+"/api/companies/p1", token, `{"favourite_colour":"blue"}`)
	require.Equal(t, http.StatusBadRequest, code)
	require.Equal(t, "No fields to update", body["message"])
}

// TestResetAPIKeyFlow verifies the reset proxy forwards the backend's message
// and new key.
func TestResetAPIKeyFlow(t *testing.T) {
	baseURL := setupConsole(t)
	token, _ := login(t, baseURL)

	code, body := doJSON(t, http.MethodPost, baseURL+"/api/companies/p1/reset-api-key", token, "")
	require.Equal(t, http.StatusOK, code)
	require.Equal(t, "API key reset successfully", body["message"])
	require.Equal(t, "sk-new-key", body["data"].(map[string]any)["api_key"])
}

// TestSessionSurvivesUnrelatedFailures: backend rejections of other tokens,
// and plain 404s on our own token, must not evict the session.
func TestSessionSurvivesUnrelatedFailures(t *testing.T) {
	baseURL := setupConsole(t)
	_, sessionID := login(t, baseURL)

	code, _ := doJSON(t, http.MethodGet, baseURL+"/api/companies", "some-stale-token", "")
	require.Equal(t, http.StatusUnauthorized, code)

	// The stale token didn't belong to our session, so ours survives.
	req, err := http.NewRequest(http.MethodGet, baseURL+"/api/auth/session", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-ID", sessionID)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Rejecting the real token kills the session.
	code, _ = doJSON(t, http.MethodGet, baseURL+"/api/companies/missing-partner", adminToken, "")
	require.Equal(t, http.StatusNotFound, code)

	// Session still alive after a plain 404.
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestLogoutFlow verifies the session dies on logout.
func TestLogoutFlow(t *testing.T) {
	baseURL := setupConsole(t)
	_, sessionID := login(t, baseURL)

	req, err := http.NewRequest(http.MethodPost, baseURL+"/api/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-ID", sessionID)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	req, err = http.NewRequest(http.MethodGet, baseURL+"/api/auth/session", nil)
	require.NoError(t, err)
	req.Header.Set("X-Session-ID", sessionID)
	resp, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

// TestSuggestCodeFlow verifies code suggestions avoid codes the backend
// already holds.
func TestSuggestCodeFlow(t *testing.T) {
	baseURL := setupConsole(t)
	token, _ := login(t, baseURL)

	code, body := doJSON(t, http.MethodGet, baseURL+"/api/companies/suggest-code?name=Globex", token, "")
	require.Equal(t, http.StatusOK, code)

	data := body["data"].(map[string]any)
	require.NotEmpty(t, data["company_code"])
	require.NotEqual(t, "PT-ACM-001", data["company_code"], "existing backend code must not be suggested")
	require.NotEmpty(t, data["pks_number"])
}
