package service

import (
	"sync/atomic"

	"github.com/MKhiriev/go-timer-sync/models"
)

// CurrentEntryCache holds at most one entry: the one currently running.
// Each Set swaps in a fresh record, so readers never see a partial update.
// Only the session's actor goroutine writes to it.
type CurrentEntryCache struct {
	current atomic.Pointer[models.Entry]
}

func NewCurrentEntryCache() *CurrentEntryCache {
	return &CurrentEntryCache{}
}

// Get returns a copy of the cached entry and whether one is present.
func (c *CurrentEntryCache) Get() (models.Entry, bool) {
	entry := c.current.Load()
	if entry == nil {
		return models.Entry{}, false
	}
	return *entry, true
}

func (c *CurrentEntryCache) Set(entry models.Entry) {
	c.current.Store(&entry)
}

func (c *CurrentEntryCache) Clear() {
	c.current.Store(nil)
}
