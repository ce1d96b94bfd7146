package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// sessionIDHeader carries the console session ID issued at login.
const sessionIDHeader = "X-Session-ID"

type AuthHandler struct {
	SessionService *service.SessionService
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponseData struct {
	Token     string                  `json:"token"`
	Admin     gatewaysdk.AdminProfile `json:"admin"`
	SessionID string                  `json:"session_id"`
	ExpiresAt time.Time               `json:"expires_at"`
}

type sessionResponseData struct {
	SessionID string                  `json:"session_id"`
	Admin     gatewaysdk.AdminProfile `json:"admin"`
	ExpiresAt time.Time               `json:"expires_at"`
}

// HandleLogin handles the admin login endpoint
//
//	@Summary		Admin login
//	@Description	Authenticates an admin against the partner backend and opens a console session.
//	@Description	The returned token must be sent as a bearer token on all company endpoints.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			request	body		loginRequest	true	"Admin credentials"
//	@Success		200		{object}	map[string]any	"success, message, data with token / admin / session_id / expires_at"
//	@Failure		400		{object}	map[string]any	"Invalid JSON payload"
//	@Failure		401		{object}	map[string]any	"Backend rejected the credentials"
//	@Failure		500		{object}	map[string]any	"Backend unreachable"
//	@Router			/api/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		httpx.WriteError(w, http.StatusBadRequest, "Username and password are required")
		return
	}

	result, err := h.SessionService.Login(ctx, req.Username, req.Password)
	if err != nil {
		writeProxyError(w, log, err, "Login failed")
		return
	}

	msg := result.Message
	if msg == "" {
		msg = "Login successful"
	}

	httpx.WriteMessage(w, http.StatusOK, msg, loginResponseData{
		Token:     result.Session.Token,
		Admin:     result.Session.Admin,
		SessionID: result.Session.ID,
		ExpiresAt: result.Session.ExpiresAt,
	})
}

// HandleSession handles the session introspection endpoint
//
//	@Summary		Current session
//	@Description	Returns the admin profile and expiry for the session named in the X-Session-ID header.
//	@Tags			Auth
//	@Produce		json
//	@Param			X-Session-ID	header		string			true	"Console session ID"
//	@Success		200				{object}	map[string]any	"success, data with session_id / admin / expires_at"
//	@Failure		401				{object}	map[string]any	"Session missing or expired"
//	@Router			/api/auth/session [get].
func (h *AuthHandler) HandleSession(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sid := strings.TrimSpace(r.Header.Get(sessionIDHeader))
	if sid == "" {
		httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	sess, err := h.SessionService.Get(ctx, sid)
	if err != nil {
		if errors.Is(err, service.ErrSessionNotFound) {
			httpx.WriteError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		log.Error("failed to load session", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "Failed to load session")
		return
	}

	httpx.WriteData(w, http.StatusOK, sessionResponseData{
		SessionID: sess.ID,
		Admin:     sess.Admin,
		ExpiresAt: sess.ExpiresAt,
	})
}

// HandleLogout handles the logout endpoint
//
//	@Summary		Logout
//	@Description	Removes the console session named in the X-Session-ID header. Idempotent.
//	@Tags			Auth
//	@Produce		json
//	@Param			X-Session-ID	header		string			true	"Console session ID"
//	@Success		200				{object}	map[string]any	"success, message"
//	@Router			/api/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	sid := strings.TrimSpace(r.Header.Get(sessionIDHeader))
	if sid != "" {
		if err := h.SessionService.Logout(ctx, sid); err != nil {
			log.Error("failed to remove session", "session_id", sid, "error", err)
			httpx.WriteError(w, http.StatusInternalServerError, "Failed to log out")
			return
		}
	}

	httpx.WriteMessage(w, http.StatusOK, "Logged out", nil)
}
