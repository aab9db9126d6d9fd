package qpic

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryTracker_Lifecycle(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	id, err := tracker.Start(ctx, RenderRecord{Filename: "circ.pdf", Format: FormatPDF, Qubits: 2, Gates: 3})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if id == "" {
		t.Fatalf("expected generated id")
	}

	if err := tracker.Complete(ctx, id, 120); err != nil {
		t.Fatalf("complete: %v", err)
	}

	record, err := tracker.Status(ctx, id)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if record.State != StateCompleted || record.Bytes != 120 {
		t.Fatalf("unexpected record %+v", record)
	}
	if record.CompletedAt.IsZero() {
		t.Fatalf("expected completion timestamp")
	}
}

func TestMemoryTracker_Fail(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	id, err := tracker.Start(ctx, RenderRecord{Filename: "circ.png", Format: FormatPNG})
	if err != nil {
		t.Fatalf("start: %v", err)
	}
	if err := tracker.Fail(ctx, id, errors.New("renderer crashed")); err != nil {
		t.Fatalf("fail: %v", err)
	}

	record, err := tracker.Status(ctx, id)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if record.State != StateFailed || record.Error != "renderer crashed" {
		t.Fatalf("unexpected record %+v", record)
	}
}

func TestMemoryTracker_ListFilters(t *testing.T) {
	ctx := context.Background()
	tracker := NewMemoryTracker()

	base := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	for i, format := range []Format{FormatPDF, FormatPNG, FormatPDF} {
		if _, err := tracker.Start(ctx, RenderRecord{
			Filename:  "circ",
			Format:    format,
			CreatedAt: base.Add(time.Duration(i) * time.Minute),
		}); err != nil {
			t.Fatalf("start: %v", err)
		}
	}

	pdfs, err := tracker.List(ctx, RenderFilter{Format: FormatPDF})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(pdfs) != 2 {
		t.Fatalf("expected 2 pdf records, got %d", len(pdfs))
	}
	if !pdfs[0].CreatedAt.Before(pdfs[1].CreatedAt) {
		t.Fatalf("expected oldest-first ordering")
	}

	recent, err := tracker.List(ctx, RenderFilter{Since: base.Add(90 * time.Second)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(recent) != 1 {
		t.Fatalf("expected 1 recent record, got %d", len(recent))
	}
}

func TestMemoryTracker_StatusNotFound(t *testing.T) {
	tracker := NewMemoryTracker()
	if _, err := tracker.Status(context.Background(), "missing"); KindFromError(err) != KindNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}
