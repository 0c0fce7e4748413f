// Package response writes JSON bodies for the HTTP handlers.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/just-nibble/codehost/pkg/errcodes"
)

// ErrorBody is the shape of every non-2xx response.
type ErrorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// internalMessage replaces the message of internal errors so causes never leak.
const internalMessage = "internal server error"

// SuccessResponse writes data as JSON with the given status.
func SuccessResponse(w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, data)
}

// ErrorResponse writes a bare error body. The kind is derived from status.
func ErrorResponse(w http.ResponseWriter, status int, message string) {
	kind := "invalid"
	switch {
	case status == http.StatusNotFound:
		kind = "not_found"
	case status >= http.StatusInternalServerError:
		kind = "internal"
	}
	writeJSON(w, status, ErrorBody{Kind: kind, Message: message})
}

// Error writes err using its errcodes kind.
func Error(w http.ResponseWriter, err error) {
	status := errcodes.HTTPStatus(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = internalMessage
	}
	writeJSON(w, status, ErrorBody{Kind: errcodes.KindName(err), Message: msg})
}

// NoContent writes a 204.
func NoContent(w http.ResponseWriter) {
	w.WriteHeader(http.StatusNoContent)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}
