package adapter

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
)

var statusErrors = map[int]error{
	http.StatusBadRequest:          ErrBadRequest,
	http.StatusUnauthorized:        ErrUnauthorized,
	http.StatusForbidden:           ErrForbidden,
	http.StatusNotFound:            ErrNotFound,
	http.StatusTooManyRequests:     ErrTooManyRequests,
	http.StatusInternalServerError: ErrInternalServerError,
	http.StatusBadGateway:          ErrBadGateway,
}

// mapHTTPError converts a non-2xx provider response into a sentinel error
// carrying the provider's message. The provider answers errors with plain
// text, so the body is used as is.
func mapHTTPError(resp *resty.Response) error {
	code := resp.StatusCode()
	if code >= http.StatusOK && code < http.StatusMultipleChoices {
		return nil
	}

	msg := strings.TrimSpace(string(resp.Body()))
	if msg == "" {
		msg = http.StatusText(code)
	}

	if sentinel, ok := statusErrors[code]; ok {
		return fmt.Errorf("%w: %s", sentinel, msg)
	}
	if code >= http.StatusInternalServerError {
		return fmt.Errorf("%w: status %d: %s", ErrInternalServerError, code, msg)
	}
	return fmt.Errorf("%w: status %d: %s", ErrUnexpectedResponse, code, msg)
}
