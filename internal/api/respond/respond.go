// Package respond writes the API's JSON bodies, cache headers and error
// envelope.
package respond

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"
)

const contentTypeJSON = "application/json"

// ErrorDetail is the body of an API error.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Detail  string `json:"detail,omitempty"`
}

// ErrorResponse wraps every API error as {"error": {...}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// cacheControl renders a shared-cache policy for ttl. Stale copies may be
// served for half the TTL while the edge revalidates.
func cacheControl(ttl time.Duration) string {
	age := strconv.Itoa(int(ttl.Seconds()))
	swr := strconv.Itoa(int(ttl.Seconds()) / 2)
	return "public, max-age=" + age + ", s-maxage=" + age + ", stale-while-revalidate=" + swr
}

// WriteJSON writes an already rendered body with its ETag. hit reports
// whether the body came from the response cache.
func WriteJSON(w http.ResponseWriter, body []byte, etag string, ttl time.Duration, hit bool) {
	h := w.Header()
	h.Set("Content-Type", contentTypeJSON)
	h.Set("ETag", etag)
	h.Set("Vary", "Accept-Encoding")
	h.Set("Cache-Control", cacheControl(ttl))
	if hit {
		h.Set("X-Cache", "HIT")
	} else {
		h.Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(body)
}

// WriteNotModified answers a matching If-None-Match.
func WriteNotModified(w http.ResponseWriter, etag string) {
	w.Header().Set("ETag", etag)
	w.WriteHeader(http.StatusNotModified)
}

// WriteError sends an error envelope without detail.
func WriteError(w http.ResponseWriter, status int, code, message string) {
	WriteErrorDetail(w, status, code, message, "")
}

// WriteErrorDetail sends an error envelope. Errors are never cached.
func WriteErrorDetail(w http.ResponseWriter, status int, code, message, detail string) {
	w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
	encode(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message, Detail: detail}})
}

// WriteJSONObject encodes v for live responses such as health checks.
func WriteJSONObject(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Cache-Control", "no-cache")
	encode(w, status, v)
}

func encode(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
