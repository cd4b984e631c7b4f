package service

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-timer-sync/models"
)

func TestCurrentEntryCache(t *testing.T) {
	c := NewCurrentEntryCache()

	_, ok := c.Get()
	assert.False(t, ok)

	e := models.Entry{ID: 42, Description: "Write spec", StartedAt: time.Now(), DurationSeconds: -1}
	c.Set(e)

	got, ok := c.Get()
	require.True(t, ok)
	assert.Equal(t, e, got)

	// callers get copies
	got.Description = "changed"
	again, _ := c.Get()
	assert.Equal(t, "Write spec", again.Description)

	c.Set(models.Entry{ID: 43, DurationSeconds: -1})
	got, _ = c.Get()
	assert.Equal(t, int64(43), got.ID)

	c.Clear()
	_, ok = c.Get()
	assert.False(t, ok)
}

func TestCurrentEntryCache_ConcurrentReadersSeeWholeEntries(t *testing.T) {
	c := NewCurrentEntryCache()
	a := models.Entry{ID: 1, Description: "a", DurationSeconds: -1}
	b := models.Entry{ID: 2, Description: "b", DurationSeconds: 60}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			switch i % 3 {
			case 0:
				c.Set(a)
			case 1:
				c.Set(b)
			default:
				c.Clear()
			}
		}
	}()

	for range 10000 {
		got, ok := c.Get()
		if !ok {
			continue
		}
		if got != a && got != b {
			t.Fatalf("observed a mixed entry: %+v", got)
		}
	}
	close(stop)
	wg.Wait()
}
