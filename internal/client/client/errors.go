package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/dmitrijs2005/auctionhub/internal/common"
)

// ErrBadResponse is returned when a 2xx body cannot be decoded.
var ErrBadResponse = errors.New("unexpected response from server")

type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// mapStatus turns a non-2xx response into a sentinel, keeping the server's
// message when the body carries one.
func mapStatus(code int, body []byte) error {
	var sentinel error
	switch {
	case code == http.StatusUnauthorized:
		sentinel = common.ErrUnauthorized
	case code == http.StatusForbidden:
		sentinel = common.ErrForbidden
	case code == http.StatusNotFound:
		sentinel = common.ErrNotFound
	case code == http.StatusBadRequest, code == http.StatusConflict, code == http.StatusUnprocessableEntity:
		sentinel = common.ErrRejected
	case code >= 500:
		sentinel = common.ErrUnavailable
	default:
		sentinel = fmt.Errorf("http status %d", code)
	}

	if msg := serverMessage(body); msg != "" {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	return sentinel
}

func serverMessage(body []byte) string {
	var e apiError
	if err := json.Unmarshal(body, &e); err == nil {
		if e.Message != "" {
			return e.Message
		}
		return e.Error
	}
	return ""
}

// mapError classifies transport failures. Caller cancellation is passed
// through untouched.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) {
		return err
	}
	return fmt.Errorf("%w: %v", common.ErrUnavailable, err)
}

// Message is the text shown to the user for a failed call: the server's
// explanation when it sent one, otherwise fallback.
func Message(err error, fallback string) string {
	if err == nil {
		return ""
	}
	for _, s := range []error{common.ErrRejected, common.ErrForbidden, common.ErrNotFound} {
		if errors.Is(err, s) {
			if _, msg, ok := strings.Cut(err.Error(), s.Error()+": "); ok && msg != "" {
				return msg
			}
		}
	}
	return fallback
}
