// Package httputil writes JSON responses and maps errors to HTTP statuses.
package httputil

import (
	"encoding/json"
	"errors"
	"net/http"

	dErrors "oba/pkg/domain-errors"
)

// UpstreamError is implemented by errors that carry the HTTP status and
// developer message returned by a collaborator.
type UpstreamError interface {
	error
	UpstreamStatus() int
	DevMessage() string
}

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description,omitempty"`
}

// WriteJSON writes v as JSON with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError maps err to a status and writes the error envelope.
//
// Domain errors use their fixed mapping. Upstream errors keep the upstream
// status, except 408 which is reported as 410. Anything else is a 500 that
// carries the raw message.
func WriteError(w http.ResponseWriter, err error) {
	if de, ok := dErrors.As(err); ok {
		resp := ErrorResponse{Error: string(de.Code)}
		if de.Code != dErrors.CodeInternal {
			resp.ErrorDescription = de.Message
		}
		WriteJSON(w, dErrors.ToHTTPStatus(de.Code), resp)
		return
	}

	var ue UpstreamError
	if errors.As(err, &ue) {
		status := ue.UpstreamStatus()
		if status == http.StatusRequestTimeout {
			WriteJSON(w, http.StatusGone, ErrorResponse{
				Error:            string(dErrors.CodeResourceExpired),
				ErrorDescription: "Resource expired",
			})
			return
		}
		if status < 400 || status > 599 {
			status = http.StatusInternalServerError
		}
		WriteJSON(w, status, ErrorResponse{
			Error:            string(codeForStatus(status)),
			ErrorDescription: ue.DevMessage(),
		})
		return
	}

	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:            string(dErrors.CodeInternal),
		ErrorDescription: err.Error(),
	})
}

func codeForStatus(status int) dErrors.Code {
	switch status {
	case http.StatusBadRequest:
		return dErrors.CodeBadRequest
	case http.StatusUnauthorized, http.StatusForbidden:
		return dErrors.CodeAccessForbidden
	case http.StatusNotFound:
		return dErrors.CodeNotFound
	case http.StatusGone:
		return dErrors.CodeResourceExpired
	default:
		return dErrors.CodeConnection
	}
}

// maxBodyBytes bounds request bodies read by DecodeJSON.
const maxBodyBytes = 1 << 20

// DecodeJSON decodes the request body into T. On failure it writes a 400
// and returns false.
func DecodeJSON[T any](w http.ResponseWriter, r *http.Request) (*T, bool) {
	var v T
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(&v); err != nil {
		WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return nil, false
	}
	return &v, true
}
