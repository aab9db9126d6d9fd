package qpic

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// RenderState captures render progress states.
type RenderState string

const (
	StateRunning   RenderState = "running"
	StateCompleted RenderState = "completed"
	StateFailed    RenderState = "failed"
)

// RenderRecord captures one export run.
type RenderRecord struct {
	ID          string
	Filename    string
	Format      Format
	State       RenderState
	Qubits      int
	Gates       int
	Bytes       int64
	Error       string
	CreatedAt   time.Time
	CompletedAt time.Time
}

// RenderFilter filters tracker lists.
type RenderFilter struct {
	Format Format
	State  RenderState
	Since  time.Time
	Until  time.Time
}

// RenderTracker records export runs.
type RenderTracker interface {
	Start(ctx context.Context, record RenderRecord) (string, error)
	Complete(ctx context.Context, id string, bytes int64) error
	Fail(ctx context.Context, id string, err error) error
	Status(ctx context.Context, id string) (RenderRecord, error)
	List(ctx context.Context, filter RenderFilter) ([]RenderRecord, error)
	Delete(ctx context.Context, id string) error
}

// MemoryTracker stores render records in memory (test/dev only).
type MemoryTracker struct {
	mu      sync.RWMutex
	records map[string]RenderRecord
	Now     func() time.Time
}

// NewMemoryTracker creates an in-memory render tracker.
func NewMemoryTracker() *MemoryTracker {
	return &MemoryTracker{records: make(map[string]RenderRecord), Now: time.Now}
}

// Start creates a new record.
func (t *MemoryTracker) Start(ctx context.Context, record RenderRecord) (string, error) {
	_ = ctx
	if record.ID == "" {
		record.ID = NewRecordID()
	}
	if record.State == "" {
		record.State = StateRunning
	}
	if record.CreatedAt.IsZero() {
		record.CreatedAt = t.now()
	}

	t.mu.Lock()
	t.records[record.ID] = record
	t.mu.Unlock()
	return record.ID, nil
}

// Complete marks a record as completed.
func (t *MemoryTracker) Complete(ctx context.Context, id string, bytes int64) error {
	return t.update(ctx, id, func(r *RenderRecord) {
		r.State = StateCompleted
		r.Bytes = bytes
		r.CompletedAt = t.now()
	})
}

// Fail marks a record as failed.
func (t *MemoryTracker) Fail(ctx context.Context, id string, cause error) error {
	return t.update(ctx, id, func(r *RenderRecord) {
		r.State = StateFailed
		if cause != nil {
			r.Error = cause.Error()
		}
		r.CompletedAt = t.now()
	})
}

// Status returns a record by ID.
func (t *MemoryTracker) Status(ctx context.Context, id string) (RenderRecord, error) {
	_ = ctx
	t.mu.RLock()
	record, ok := t.records[id]
	t.mu.RUnlock()
	if !ok {
		return RenderRecord{}, NewError(KindNotFound, fmt.Sprintf("render %q not found", id), nil)
	}
	return record, nil
}

// List returns records matching the filter, oldest first.
func (t *MemoryTracker) List(ctx context.Context, filter RenderFilter) ([]RenderRecord, error) {
	_ = ctx
	t.mu.RLock()
	out := make([]RenderRecord, 0, len(t.records))
	for _, record := range t.records {
		if filter.Format != "" && record.Format != filter.Format {
			continue
		}
		if filter.State != "" && record.State != filter.State {
			continue
		}
		if !filter.Since.IsZero() && record.CreatedAt.Before(filter.Since) {
			continue
		}
		if !filter.Until.IsZero() && record.CreatedAt.After(filter.Until) {
			continue
		}
		out = append(out, record)
	}
	t.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}

// Delete removes a record.
func (t *MemoryTracker) Delete(ctx context.Context, id string) error {
	_ = ctx
	t.mu.Lock()
	delete(t.records, id)
	t.mu.Unlock()
	return nil
}

func (t *MemoryTracker) update(_ context.Context, id string, apply func(*RenderRecord)) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	record, ok := t.records[id]
	if !ok {
		return NewError(KindNotFound, fmt.Sprintf("render %q not found", id), nil)
	}
	apply(&record)
	t.records[id] = record
	return nil
}

func (t *MemoryTracker) now() time.Time {
	if t.Now != nil {
		return t.Now()
	}
	return time.Now()
}

// NewRecordID generates a render record ID.
func NewRecordID() string {
	return "qpic-" + uuid.NewString()
}
