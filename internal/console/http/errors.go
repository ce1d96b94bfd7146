package http

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/pkg/gatewaysdk"
	"github.com/tigaron/partner-admin/pkg/httpx"
)

// writeProxyError maps service and backend errors onto the browser-facing
// envelope. fallback is the route's default message for backend failures
// that carry no message of their own.
func writeProxyError(w http.ResponseWriter, log *slog.Logger, err error, fallback string) {
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		httpx.WriteError(w, http.StatusBadRequest, verr.Message)
		return
	}

	var terr *gatewaysdk.TransportError
	if errors.As(err, &terr) {
		log.Error("backend unreachable", "url", terr.URL, "error", terr.Err)
		httpx.WriteError(w, http.StatusInternalServerError,
			fmt.Sprintf("Network error: cannot reach backend at %s", terr.URL))
		return
	}

	var derr *gatewaysdk.DecodeError
	if errors.As(err, &derr) {
		log.Error("backend response undecodable", "status", derr.StatusCode)
		httpx.WriteError(w, derr.StatusCode, derr.Error())
		return
	}

	var berr *gatewaysdk.BackendError
	if errors.As(err, &berr) {
		msg := berr.Message
		if msg == "" {
			msg = fallback
		}
		httpx.WriteError(w, berr.StatusCode, msg)
		return
	}

	log.Error("proxy request failed", "error", err)
	httpx.WriteError(w, http.StatusInternalServerError, fallback)
}

// invalidCompanyID catches the literal strings a browser produces when its
// state is undefined, before any backend call is made. IDs that are blank
// after trimming count as missing.
func invalidCompanyID(id string) bool {
	id = strings.TrimSpace(id)
	return id == "" || id == "undefined" || id == "null"
}
