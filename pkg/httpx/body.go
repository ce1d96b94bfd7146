package httpx

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
)

// maxPeekBytes caps how much of a request body PeekJSONField will buffer.
const maxPeekBytes = 1 << 20

// PeekJSONField reads a top-level string field from a JSON request body
// without consuming it: the body is buffered and restored so downstream
// handlers can still decode it. Returns "" if the body is not JSON or the
// field is absent.
func PeekJSONField(r *http.Request, field string) string {
	if r.Body == nil {
		return ""
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, maxPeekBytes))
	if err != nil {
		return ""
	}
	_ = r.Body.Close()
	r.Body = io.NopCloser(bytes.NewReader(data))

	var obj map[string]json.RawMessage
	if err := json.Unmarshal(data, &obj); err != nil {
		return ""
	}

	var val string
	if raw, ok := obj[field]; ok {
		_ = json.Unmarshal(raw, &val)
	}
	return val
}
