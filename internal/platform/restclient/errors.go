package restclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Error is a non-2xx response from a collaborator.
type Error struct {
	Service string
	Method  string
	Path    string
	Status  int
	Body    []byte
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s %s %s: status %d", e.Service, e.Method, e.Path, e.Status)
}

// UpstreamStatus returns the collaborator's HTTP status.
func (e *Error) UpstreamStatus() int {
	return e.Status
}

// DevMessage extracts the developer message from the response body.
// Ledgers and CMS report it as "devMessage"; plain bodies are returned trimmed.
func (e *Error) DevMessage() string {
	var body struct {
		DevMessage string `json:"devMessage"`
		Message    string `json:"message"`
	}
	if err := json.Unmarshal(e.Body, &body); err == nil {
		if body.DevMessage != "" {
			return body.DevMessage
		}
		if body.Message != "" {
			return body.Message
		}
	}
	return strings.TrimSpace(string(e.Body))
}

// StatusOf returns the upstream status when err wraps an *Error.
func StatusOf(err error) (int, bool) {
	var re *Error
	if errors.As(err, &re) {
		return re.Status, true
	}
	return 0, false
}

// DevMessageOf returns the upstream developer message, or err's text.
func DevMessageOf(err error) string {
	var re *Error
	if errors.As(err, &re) {
		if msg := re.DevMessage(); msg != "" {
			return msg
		}
	}
	return err.Error()
}
