package service

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/MKhiriev/go-timer-sync/internal/adapter"
	"github.com/MKhiriev/go-timer-sync/models"
)

const waitTimeout = 2 * time.Second

type frame struct {
	msg models.StreamMessage
	err error
}

// fakeStream is a push stream driven by the test.
type fakeStream struct {
	frames    chan frame
	closed    chan struct{}
	closeOnce sync.Once
	onClose   func()
}

func newFakeStream() *fakeStream {
	return &fakeStream{
		frames: make(chan frame, 16),
		closed: make(chan struct{}),
	}
}

func (f *fakeStream) Receive() (models.StreamMessage, error) {
	select {
	case fr := <-f.frames:
		return fr.msg, fr.err
	case <-f.closed:
		return models.StreamMessage{}, fmt.Errorf("%w: closed locally", adapter.ErrStreamClosed)
	}
}

func (f *fakeStream) Close() error {
	f.closeOnce.Do(func() {
		close(f.closed)
		if f.onClose != nil {
			f.onClose()
		}
	})
	return nil
}

func (f *fakeStream) push(msg models.StreamMessage) {
	f.frames <- frame{msg: msg}
}

func (f *fakeStream) pushErr(err error) {
	f.frames <- frame{err: err}
}

// drop simulates the remote closing the connection.
func (f *fakeStream) drop() {
	f.pushErr(fmt.Errorf("%w: remote went away", adapter.ErrStreamClosed))
}

func (f *fakeStream) isClosed() bool {
	select {
	case <-f.closed:
		return true
	default:
		return false
	}
}

// fakeDialer hands out fakeStreams and tracks how many are open at once.
type fakeDialer struct {
	failFirst int32

	dials   atomic.Int32
	open    atomic.Int32
	maxOpen atomic.Int32

	mu       sync.Mutex
	accesses []models.AccessConfig

	dialed chan *fakeStream
}

func newFakeDialer() *fakeDialer {
	return &fakeDialer{dialed: make(chan *fakeStream, 16)}
}

func (d *fakeDialer) Dial(ctx context.Context, access models.AccessConfig) (adapter.Stream, error) {
	n := d.dials.Add(1)

	d.mu.Lock()
	d.accesses = append(d.accesses, access)
	d.mu.Unlock()

	if n <= d.failFirst {
		return nil, fmt.Errorf("%w: connection refused", adapter.ErrStreamDial)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	st := newFakeStream()
	cur := d.open.Add(1)
	for {
		m := d.maxOpen.Load()
		if cur <= m || d.maxOpen.CompareAndSwap(m, cur) {
			break
		}
	}
	st.onClose = func() { d.open.Add(-1) }

	d.dialed <- st
	return st, nil
}

func (d *fakeDialer) next(t *testing.T) *fakeStream {
	t.Helper()
	select {
	case st := <-d.dialed:
		return st
	case <-time.After(waitTimeout):
		t.Fatal("no stream was dialed")
		return nil
	}
}

func (d *fakeDialer) lastAccess() models.AccessConfig {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.accesses) == 0 {
		return models.AccessConfig{}
	}
	return d.accesses[len(d.accesses)-1]
}

// recordingHandler records supervisor notifications.
type recordingHandler struct {
	mu     sync.Mutex
	starts int
	ends   int
	errs   []error
	msgs   []models.StreamMessage
}

func (h *recordingHandler) OnStartSubscribe() {
	h.mu.Lock()
	h.starts++
	h.mu.Unlock()
}

func (h *recordingHandler) OnEndSubscribe() {
	h.mu.Lock()
	h.ends++
	h.mu.Unlock()
}

func (h *recordingHandler) OnError(err error) {
	h.mu.Lock()
	h.errs = append(h.errs, err)
	h.mu.Unlock()
}

func (h *recordingHandler) OnMessage(msg models.StreamMessage) {
	h.mu.Lock()
	h.msgs = append(h.msgs, msg)
	h.mu.Unlock()
}

func (h *recordingHandler) counts() (starts, ends, errs, msgs int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.starts, h.ends, len(h.errs), len(h.msgs)
}

func (h *recordingHandler) errors() []error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]error(nil), h.errs...)
}

func (h *recordingHandler) messages() []models.StreamMessage {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]models.StreamMessage(nil), h.msgs...)
}

// recordingListener records session notifications.
type recordingListener struct {
	mu       sync.Mutex
	starts   int
	ends     int
	errs     []error
	inserted []models.Entry
	updated  []models.Entry
	deleted  []models.Entry
	order    []string
}

func (l *recordingListener) OnStartSubscribe() {
	l.mu.Lock()
	l.starts++
	l.order = append(l.order, "start")
	l.mu.Unlock()
}

func (l *recordingListener) OnEndSubscribe() {
	l.mu.Lock()
	l.ends++
	l.mu.Unlock()
}

func (l *recordingListener) OnError(err error) {
	l.mu.Lock()
	l.errs = append(l.errs, err)
	l.order = append(l.order, "error")
	l.mu.Unlock()
}

func (l *recordingListener) OnInsertEntry(entry models.Entry) {
	l.mu.Lock()
	l.inserted = append(l.inserted, entry)
	l.mu.Unlock()
}

func (l *recordingListener) OnUpdateEntry(entry models.Entry) {
	l.mu.Lock()
	l.updated = append(l.updated, entry)
	l.mu.Unlock()
}

func (l *recordingListener) OnDeleteEntry(entry models.Entry) {
	l.mu.Lock()
	l.deleted = append(l.deleted, entry)
	l.mu.Unlock()
}

func (l *recordingListener) startCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.starts
}

func (l *recordingListener) endCount() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.ends
}

func (l *recordingListener) events() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.order...)
}

func (l *recordingListener) errors() []error {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]error(nil), l.errs...)
}

func (l *recordingListener) deletedEntries() []models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Entry(nil), l.deleted...)
}

func (l *recordingListener) insertedEntries() []models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Entry(nil), l.inserted...)
}

func (l *recordingListener) updatedEntries() []models.Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]models.Entry(nil), l.updated...)
}

func ptr[T any](v T) *T {
	return &v
}

// rawEntry builds a complete wire payload.
func rawEntry(id int64, description, start string, duration int64) *models.RawTimeEntry {
	return &models.RawTimeEntry{
		ID:          ptr(id),
		Description: ptr(description),
		Start:       ptr(start),
		Duration:    ptr(duration),
	}
}
