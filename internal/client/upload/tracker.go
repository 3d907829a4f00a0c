// Package upload tracks per-file upload attempts through their lifecycle:
// uploading → encrypting → secured, or failed from any non-terminal state.
package upload

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/syncveil/syncveil/internal/client/models"
)

// DefaultSettleDelay is how long an upload stays in "encrypting" after the
// transport finishes before it settles to "secured".
const DefaultSettleDelay = 1500 * time.Millisecond

// Tracker owns the collection of upload records. Records are independent:
// every update rebuilds the slice with only the addressed record replaced,
// so overlapping progress callbacks for different uploads never perturb
// each other. Undefined transitions (any event against a terminal record,
// or against a missing id) are silently ignored.
type Tracker struct {
	mu          sync.Mutex
	records     []models.UploadRecord // newest first
	timers      map[string]*time.Timer
	settleDelay time.Duration
	closed      bool
}

func NewTracker(settleDelay time.Duration) *Tracker {
	if settleDelay <= 0 {
		settleDelay = DefaultSettleDelay
	}
	return &Tracker{
		timers:      make(map[string]*time.Timer),
		settleDelay: settleDelay,
	}
}

// Start accepts a file for upload and returns the new record's id.
// The record is prepended with status "uploading" and progress 0.
func (t *Tracker) Start(name string) string {
	id := uuid.NewString()

	t.mu.Lock()
	defer t.mu.Unlock()

	record := models.UploadRecord{
		ID:     id,
		Name:   name,
		Status: models.UploadStatusUploading,
	}
	t.records = append([]models.UploadRecord{record}, t.records...)
	return id
}

// update replaces the addressed record with fn's result when fn accepts the
// current state. Must be called with the mutex held.
func (t *Tracker) update(id string, fn func(r models.UploadRecord) (models.UploadRecord, bool)) {
	for i, r := range t.records {
		if r.ID != id {
			continue
		}
		next, ok := fn(r)
		if !ok {
			return
		}
		updated := make([]models.UploadRecord, len(t.records))
		copy(updated, t.records)
		updated[i] = next
		t.records = updated
		return
	}
}

// Progress records a transport progress event. Only meaningful while the
// record is still uploading.
func (t *Tracker) Progress(id string, percent float64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.update(id, func(r models.UploadRecord) (models.UploadRecord, bool) {
		if r.Status != models.UploadStatusUploading {
			return r, false
		}
		p := int(percent + 0.5)
		if p < 0 {
			p = 0
		}
		if p > 100 {
			p = 100
		}
		r.Progress = p
		return r, true
	})
}

// TransportComplete moves an uploading record to "encrypting" and schedules
// the settle transition after the configured delay.
func (t *Tracker) TransportComplete(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	moved := false
	t.update(id, func(r models.UploadRecord) (models.UploadRecord, bool) {
		if r.Status != models.UploadStatusUploading {
			return r, false
		}
		r.Status = models.UploadStatusEncrypting
		moved = true
		return r, true
	})

	if !moved || t.closed {
		return
	}
	t.timers[id] = time.AfterFunc(t.settleDelay, func() { t.Settle(id) })
}

// Settle moves an encrypting record to the terminal "secured" state and
// forces its progress to 100. Settling a record that already left
// "encrypting" (or a torn-down tracker) is a no-op.
func (t *Tracker) Settle(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.timers, id)
	t.update(id, func(r models.UploadRecord) (models.UploadRecord, bool) {
		if r.Status != models.UploadStatusEncrypting {
			return r, false
		}
		r.Status = models.UploadStatusSecured
		r.Progress = 100
		return r, true
	})
}

// Fail moves an uploading or encrypting record to the terminal "failed"
// state and records the message.
func (t *Tracker) Fail(id string, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if timer, ok := t.timers[id]; ok {
		timer.Stop()
		delete(t.timers, id)
	}

	t.update(id, func(r models.UploadRecord) (models.UploadRecord, bool) {
		if r.Status.Terminal() {
			return r, false
		}
		r.Status = models.UploadStatusFailed
		r.Err = message
		return r, true
	})
}

// Records returns a copy of the collection, newest first.
func (t *Tracker) Records() []models.UploadRecord {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]models.UploadRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Record returns the addressed record.
func (t *Tracker) Record(id string) (models.UploadRecord, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, r := range t.records {
		if r.ID == id {
			return r, true
		}
	}
	return models.UploadRecord{}, false
}

// Close stops all pending settle timers. Timers that already fired find
// their records unchanged or settled; either way the write is safely
// ignorable.
func (t *Tracker) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true
	for id, timer := range t.timers {
		timer.Stop()
		delete(t.timers, id)
	}
}
