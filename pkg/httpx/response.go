package httpx

import (
	"encoding/json"
	"net/http"
)

// WriteJSON writes a JSON response with the given status code.
// It automatically sets the Content-Type header and Cache-Control headers.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteData writes a success envelope: {"success": true, "data": ...}.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, map[string]any{
		"success": true,
		"data":    data,
	})
}

// WriteMessage writes a success envelope carrying a message alongside data.
// Data may be nil, in which case only the message is included.
func WriteMessage(w http.ResponseWriter, code int, message string, data any) {
	body := map[string]any{
		"success": true,
		"message": message,
	}
	if data != nil {
		body["data"] = data
	}
	WriteJSON(w, code, body)
}

// WriteError writes an error envelope: {"success": false, "message": ...}.
func WriteError(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, map[string]any{
		"success": false,
		"message": message,
	})
}

// NoCache sets the Cache-Control and Pragma headers to prevent caching.
// This is commonly required for sensitive responses like revealed API keys.
func NoCache(w http.ResponseWriter) {
	w.Header().Set("Cache-Control", "no-store")
	w.Header().Set("Pragma", "no-cache")
}
