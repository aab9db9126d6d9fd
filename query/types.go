package query

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/qpic"
)

// RenderStatus requests a render record.
type RenderStatus struct {
	RenderID string
}

func (RenderStatus) Type() string { return "qpic:status" }

func (msg RenderStatus) Validate() error {
	if msg.RenderID == "" {
		return errors.New("render ID is required", errors.CategoryValidation).
			WithTextCode("RENDER_ID_REQUIRED")
	}
	return nil
}

// RenderHistory requests render history.
type RenderHistory struct {
	Filter qpic.RenderFilter
}

func (RenderHistory) Type() string { return "qpic:history" }

func (RenderHistory) Validate() error { return nil }
