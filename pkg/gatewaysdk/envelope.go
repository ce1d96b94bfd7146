package gatewaysdk

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// Result is the normalized outcome of a successful backend call.
//
// The backend speaks two body shapes: a wrapped envelope
// {"success": ..., "message": ..., "data": ...} and raw JSON (often a bare
// array on list endpoints). The tagged union is resolved here, at the edge:
// Data holds the unwrapped payload when the envelope carried one, otherwise
// the raw body, and callers never inspect the wrapping again.
type Result struct {
	StatusCode int
	// Message from the wrapped envelope, "" when the body was raw.
	Message string
	// Data is the effective payload. Never nil: an empty backend body
	// normalizes to {}.
	Data json.RawMessage
	// Wrapped reports whether the body carried the success envelope.
	Wrapped bool
}

// IsArray reports whether the payload is a raw JSON array.
func (r *Result) IsArray() bool {
	trimmed := bytes.TrimLeft(r.Data, " \t\r\n")
	return len(trimmed) > 0 && trimmed[0] == '['
}

// envelopeProbe mirrors the wrapped body shape. Success is a pointer so the
// presence of the key itself distinguishes wrapped from raw objects.
type envelopeProbe struct {
	Success *bool           `json:"success"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
	Data    json.RawMessage `json:"data"`
}

// normalize consumes the response body and resolves the envelope.
// Error mapping:
//   - unreadable/unparseable body: *DecodeError at the backend status
//   - non-2xx status: *BackendError with message from the envelope
func normalize(resp *http.Response) (*Result, error) {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &DecodeError{StatusCode: resp.StatusCode}
	}

	// Empty backend body is treated as an empty object.
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	if !json.Valid(body) {
		return nil, &DecodeError{StatusCode: resp.StatusCode}
	}

	res := &Result{
		StatusCode: resp.StatusCode,
		Data:       json.RawMessage(body),
	}

	var probe envelopeProbe
	if err := json.Unmarshal(body, &probe); err == nil && probe.Success != nil {
		res.Wrapped = true
		res.Message = probe.Message
		if *probe.Success && probe.Data != nil {
			res.Data = probe.Data
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg := probe.Message
		if msg == "" {
			msg = probe.Error
		}
		return nil, &BackendError{StatusCode: resp.StatusCode, Message: msg}
	}

	return res, nil
}
