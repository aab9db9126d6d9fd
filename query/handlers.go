package query

import (
	"context"

	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/qpic"
)

// RenderStatusHandler returns a single render record.
type RenderStatusHandler struct {
	Tracker qpic.RenderTracker
}

func NewRenderStatusHandler(tracker qpic.RenderTracker) *RenderStatusHandler {
	return &RenderStatusHandler{Tracker: tracker}
}

func (h *RenderStatusHandler) Query(ctx context.Context, msg RenderStatus) (qpic.RenderRecord, error) {
	if h == nil || h.Tracker == nil {
		return qpic.RenderRecord{}, errors.New("render tracker is required", errors.CategoryInternal).
			WithTextCode("TRACKER_REQUIRED")
	}
	return h.Tracker.Status(ctx, msg.RenderID)
}

// RenderHistoryHandler returns render history.
type RenderHistoryHandler struct {
	Tracker qpic.RenderTracker
}

func NewRenderHistoryHandler(tracker qpic.RenderTracker) *RenderHistoryHandler {
	return &RenderHistoryHandler{Tracker: tracker}
}

func (h *RenderHistoryHandler) Query(ctx context.Context, msg RenderHistory) ([]qpic.RenderRecord, error) {
	if h == nil || h.Tracker == nil {
		return nil, errors.New("render tracker is required", errors.CategoryInternal).
			WithTextCode("TRACKER_REQUIRED")
	}
	return h.Tracker.List(ctx, msg.Filter)
}
