package service

import (
	"context"

	"github.com/MKhiriev/go-timer-sync/models"
)

// TimerEventListener receives the notifications of a [TimerSession]. Every
// method is required. Calls are made from the session's actor goroutine one at
// a time, so implementations must return promptly and must not call the
// session's Start or Close.
type TimerEventListener interface {
	// OnStartSubscribe is called each time the push stream is (re)established.
	OnStartSubscribe()

	// OnEndSubscribe is called each time the push stream drops, after the
	// session has rebuilt its REST adapter.
	OnEndSubscribe()

	// OnError reports configuration errors, connection errors and failed
	// background fetches. None of them stop the session.
	OnError(err error)

	// OnInsertEntry, OnUpdateEntry and OnDeleteEntry report the translated
	// payload of a push event. The cache is refreshed by a separate fetch,
	// not from these payloads.
	OnInsertEntry(entry models.Entry)
	OnUpdateEntry(entry models.Entry)
	OnDeleteEntry(entry models.Entry)
}

// TimerSyncService is the client-side contract for keeping the running entry
// of one account in sync with the provider.
type TimerSyncService interface {
	// Start validates cfg and begins synchronization. It fails with an error
	// wrapping ErrConfiguration when cfg has no token, before any network
	// activity.
	Start(ctx context.Context, cfg models.AccessConfig, listener TimerEventListener) error

	// FetchCurrentEntry refreshes the cached entry from the provider.
	// Returns nil when nothing is running.
	FetchCurrentEntry(ctx context.Context) (*models.Entry, error)

	// StopCurrentEntry stops the cached entry on the provider and returns it.
	StopCurrentEntry(ctx context.Context) (models.Entry, error)

	// CurrentEntry returns a copy of the cached entry.
	CurrentEntry() (models.Entry, bool)

	// Snapshot returns the presentation view of the session.
	Snapshot() models.TimerState

	// State returns the connection state.
	State() models.ConnectionState

	// LastError returns the error recorded by the most recent remote call.
	LastError() error

	// Close stops synchronization and releases the push connection.
	Close()
}

// TimerConfigService defines the contract for reading and saving the
// per-account access config document.
type TimerConfigService interface {
	// GetTimerConfig returns the stored document for accountID.
	// Returns store.ErrTimerConfigNotFound if nothing was saved yet.
	GetTimerConfig(ctx context.Context, accountID string) (models.AccessConfig, error)

	// UpdateTimerConfig saves cfg for accountID and tracks the outcome in
	// UpdateStatus and UpdateError.
	UpdateTimerConfig(ctx context.Context, accountID string, cfg models.AccessConfig) error

	// UpdateStatus reports the progress of the last UpdateTimerConfig call.
	UpdateStatus() models.UpdateStatus

	// UpdateError returns the error of the last failed update, or nil.
	UpdateError() error
}

type nopListener struct{}

func (nopListener) OnStartSubscribe()          {}
func (nopListener) OnEndSubscribe()            {}
func (nopListener) OnError(error)              {}
func (nopListener) OnInsertEntry(models.Entry) {}
func (nopListener) OnUpdateEntry(models.Entry) {}
func (nopListener) OnDeleteEntry(models.Entry) {}
