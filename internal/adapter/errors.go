package adapter

import "errors"

// REST errors, mapped from HTTP status codes by mapHTTPError.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnexpectedResponse  = errors.New("unexpected response")
)

// Push stream errors.
var (
	ErrStreamDial     = errors.New("stream dial failed")
	ErrStreamClosed   = errors.New("stream closed")
	ErrMalformedFrame = errors.New("malformed stream frame")
)

// ErrTranslation is returned when a provider payload lacks a required field
// or carries a value that cannot be converted.
var ErrTranslation = errors.New("time entry translation failed")
