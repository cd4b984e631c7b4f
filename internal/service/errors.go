package service

import (
	"errors"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/internal/validators"
)

var (
	// ErrConfiguration blocks synchronization before any network activity.
	ErrConfiguration = errors.New("timer sync is not configured")
	ErrEmptyToken    = validators.ErrEmptyToken
	ErrInvalidProxy  = validators.ErrInvalidProxy

	ErrConnection  = errors.New("push connection error")
	ErrTranslation = adapter.ErrTranslation

	ErrFetchCurrentEntry = errors.New("failed to fetch current entry")
	ErrStopCurrentEntry  = errors.New("failed to stop current entry")
	ErrEmptyCurrentEntry = errors.New("no current entry to stop")
	ErrTimeout           = errors.New("request timed out")
	ErrInvalidToken      = errors.New("access token was rejected by the provider")

	ErrSessionAlreadyStarted = errors.New("timer session already started")
	ErrSessionClosed         = errors.New("timer session closed")
	ErrSupervisorAlreadyOpen = errors.New("connection supervisor already open")

	ErrUpdateTimerConfig = errors.New("failed to update timer config")
)
