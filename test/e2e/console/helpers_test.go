package console_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	consolehttp "github.com/tigaron/partner-admin/internal/console/http"
	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/internal/console/store/drivers/sqlite"
	"github.com/tigaron/partner-admin/pkg/cryptox"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
)

/*
 * End-to-end tests for the console gateway. The full HTTP stack runs behind
 * a real listener with a file-backed session database; the partner backend
 * is a local fake implementing the handful of endpoints the console proxies.
 */

const (
	adminUsername = "root"
	adminPassword = "Admin123!"
	adminToken    = "backend-token-001"
)

// fakeBackend is a minimal partner-management backend: one admin account and
// an in-memory partner list.
type fakeBackend struct {
	mux      *http.ServeMux
	partners map[string]map[string]any
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		mux: http.NewServeMux(),
		partners: map[string]map[string]any{
			"p1": {"id": "p1", "company_id": "PT-ACM-001", "company_name": "Acme", "status": "Y"},
		},
	}

	b.mux.HandleFunc("POST /api/v1/auth/admin/login", func(w http.ResponseWriter, r *http.Request) {
		var creds struct{ Username, Password string }
		_ = json.NewDecoder(r.Body).Decode(&creds)
		if creds.Username != adminUsername || creds.Password != adminPassword {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false, "message": "Invalid credentials",
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Login successful",
			"data": map[string]any{
				"token": adminToken,
				"admin": map[string]any{"id": "a1", "username": adminUsername},
			},
		})
	})

	b.mux.HandleFunc("GET /admin/partners", b.authed(func(w http.ResponseWriter, r *http.Request) {
		list := make([]map[string]any, 0, len(b.partners))
		for _, p := range b.partners {
			list = append(list, p)
		}
		writeJSON(w, http.StatusOK, list) // raw array on purpose
	}))

	b.mux.HandleFunc("GET /admin/partners/{id}", b.authed(func(w http.ResponseWriter, r *http.Request) {
		p, ok := b.partners[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Partner not found"})
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": p})
	}))

	b.mux.HandleFunc("PUT /admin/partners/{id}", b.authed(func(w http.ResponseWriter, r *http.Request) {
		p, ok := b.partners[r.PathValue("id")]
		if !ok {
			writeJSON(w, http.StatusNotFound, map[string]any{"success": false, "message": "Partner not found"})
			return
		}
		var patch map[string]any
		_ = json.NewDecoder(r.Body).Decode(&patch)
		for k, v := range patch {
			p[k] = v
		}
		writeJSON(w, http.StatusOK, map[string]any{"success": true, "data": p})
	}))

	b.mux.HandleFunc("POST /admin/partners/{id}/reset-api-key", b.authed(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "API key reset successfully",
			"data":    map[string]any{"api_key": "sk-new-key"},
		})
	}))

	return b
}

func (b *fakeBackend) authed(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+adminToken {
			writeJSON(w, http.StatusUnauthorized, map[string]any{"success": false, "message": "Token expired"})
			return
		}
		next(w, r)
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// setupConsole stands up the whole console stack and returns its base URL.
func setupConsole(t *testing.T) string {
	t.Helper()
	t.Setenv("ADMIN_MASTER_KEY", "e2e-master-key")
	cryptox.ResetMasterKeyForTesting()

	backendSrv := httptest.NewServer(newFakeBackend().mux)
	t.Cleanup(backendSrv.Close)

	st, err := sqlite.NewStore("file:" + filepath.Join(t.TempDir(), "console.db"))
	require.NoError(t, err)
	require.NoError(t, st.ApplyMigrations())
	t.Cleanup(func() { _ = st.Close() })

	gateway := gatewaysdk.NewClient(backendSrv.URL)
	sessions := &service.SessionService{
		Store:   st,
		Gateway: gateway,
		TTL:     time.Hour,
		Watcher: service.NewAuthWatcher(),
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := consolehttp.NewRouter(backendSrv.URL, "e2e", st, logger)
	router.SessionService = sessions
	router.CompanyService = &service.CompanyService{Gateway: gateway, Sessions: sessions}
	router.SuggestService = &service.SuggestService{Gateway: gateway, Sessions: sessions}
	router.ApplyRoutes()

	consoleSrv := httptest.NewServer(router)
	t.Cleanup(consoleSrv.Close)

	return consoleSrv.URL
}

// doJSON sends a request with an optional bearer token and JSON body, and
// decodes the response envelope.
func doJSON(t *testing.T, method, url, token, body string) (int, map[string]any) {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req, err := http.NewRequest(method, url, rd)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	return resp.StatusCode, out
}

// login authenticates against the console and returns the bearer token and
// session ID.
func login(t *testing.T, baseURL string) (token, sessionID string) {
	t.Helper()

	code, body := doJSON(t, http.MethodPost, baseURL+"/api/auth/login", "",
		`{"username":"`+adminUsername+`","password":"`+adminPassword+`"}`)
	require.Equal(t, http.StatusOK, code)

	data, ok := body["data"].(map[string]any)
	require.True(t, ok, "login response missing data: %v", body)

	token, _ = data["token"].(string)
	sessionID, _ = data["session_id"].(string)
	require.NotEmpty(t, token)
	require.NotEmpty(t, sessionID)
	return token, sessionID
}
