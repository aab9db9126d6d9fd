package command

import (
	"context"

	gcmd "github.com/goliatone/go-command"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/qpic"
)

// ExportCircuitHandler handles circuit export requests.
type ExportCircuitHandler struct {
	Exporter *qpic.Exporter
}

func NewExportCircuitHandler(exporter *qpic.Exporter) *ExportCircuitHandler {
	return &ExportCircuitHandler{Exporter: exporter}
}

func (h *ExportCircuitHandler) Execute(ctx context.Context, msg ExportCircuit) error {
	if h == nil || h.Exporter == nil {
		return errors.New("exporter is required", errors.CategoryInternal).
			WithTextCode("EXPORTER_REQUIRED")
	}
	record, err := h.Exporter.ExportTo(ctx, msg.Circuit, msg.Filename)
	if err != nil {
		return err
	}
	if msg.Result != nil {
		*msg.Result = record
	}
	if res := gcmd.ResultFromContext[qpic.RenderRecord](ctx); res != nil {
		res.Store(record)
	}
	return nil
}

// BuildDocumentHandler renders qpic documents.
type BuildDocumentHandler struct {
	Exporter *qpic.Exporter
}

func NewBuildDocumentHandler(exporter *qpic.Exporter) *BuildDocumentHandler {
	return &BuildDocumentHandler{Exporter: exporter}
}

func (h *BuildDocumentHandler) Execute(ctx context.Context, msg BuildDocument) error {
	if h == nil || h.Exporter == nil {
		return errors.New("exporter is required", errors.CategoryInternal).
			WithTextCode("EXPORTER_REQUIRED")
	}

	var doc string
	var err error
	if msg.Filename != "" {
		doc, err = h.Exporter.WriteDocument(msg.Circuit, msg.Filename, msg.Dir)
	} else {
		doc, err = h.Exporter.Document(msg.Circuit)
	}
	if err != nil {
		return err
	}

	if msg.Result != nil {
		*msg.Result = doc
	}
	if res := gcmd.ResultFromContext[string](ctx); res != nil {
		res.Store(doc)
	}
	return nil
}
