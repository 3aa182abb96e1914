package cms

import (
	"fmt"
	"net/http"

	"oba/internal/platform/restclient"
	"oba/pkg/platform/sentinel"
)

// classify attaches a sentinel to CMS not-found and expiry responses while
// keeping the upstream error in the chain.
func classify(op string, err error) error {
	status, ok := restclient.StatusOf(err)
	if ok {
		switch status {
		case http.StatusNotFound:
			return fmt.Errorf("cms: %s: %w: %w", op, sentinel.ErrNotFound, err)
		case http.StatusRequestTimeout, http.StatusGone:
			return fmt.Errorf("cms: %s: %w: %w", op, sentinel.ErrExpired, err)
		}
	}
	return fmt.Errorf("cms: %s: %w", op, err)
}
