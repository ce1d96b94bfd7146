package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/tigaron/partner-admin/internal/console/service"
	"github.com/tigaron/partner-admin/pkg/httpx"
	"github.com/tigaron/partner-admin/pkg/slogx"
)

// keepAliveInterval keeps intermediaries from timing out idle streams.
const keepAliveInterval = 30 * time.Second

type AuthEventsHandler struct {
	Watcher *service.AuthWatcher
}

// ServeHTTP streams auth-state changes as server-sent events
//
//	@Summary		Auth event stream
//	@Description	Server-sent event stream of login and logout events. Each event is a JSON
//	@Description	object with type, session_id, and admin. Clients subscribe here instead of
//	@Description	polling the session endpoint.
//	@Tags			Auth
//	@Produce		text/event-stream
//	@Success		200	{string}	string			"event stream"
//	@Failure		500	{object}	map[string]any	"Streaming unsupported"
//	@Router			/api/auth/events [get].
func (h *AuthEventsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		httpx.WriteError(w, http.StatusInternalServerError, "Streaming is not supported")
		return
	}

	events, cancel := h.Watcher.Subscribe()
	defer cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	keepAlive := time.NewTicker(keepAliveInterval)
	defer keepAlive.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-keepAlive.C:
			fmt.Fprint(w, ": keep-alive\n\n")
			flusher.Flush()
		case ev, ok := <-events:
			if !ok {
				return
			}
			payload, err := json.Marshal(ev)
			if err != nil {
				log.Error("failed to marshal auth event", "error", err)
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
