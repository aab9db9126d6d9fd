package command

import (
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/circuit"
	"github.com/goliatone/go-qpic/qpic"
)

// ExportCircuit exports a circuit to a rendered artifact.
type ExportCircuit struct {
	Circuit  *circuit.Circuit
	Filename string
	Result   *qpic.RenderRecord
}

func (ExportCircuit) Type() string { return "qpic:export" }

func (msg ExportCircuit) Validate() error {
	if msg.Circuit == nil {
		return errors.New("circuit is required", errors.CategoryValidation).
			WithTextCode("CIRCUIT_REQUIRED")
	}
	if msg.Filename == "" {
		return errors.New("filename is required", errors.CategoryValidation).
			WithTextCode("FILENAME_REQUIRED")
	}
	return nil
}

// BuildDocument renders a circuit into a qpic document, optionally
// persisting it.
type BuildDocument struct {
	Circuit  *circuit.Circuit
	Filename string
	Dir      string
	Result   *string
}

func (BuildDocument) Type() string { return "qpic:document" }

func (msg BuildDocument) Validate() error {
	if msg.Circuit == nil {
		return errors.New("circuit is required", errors.CategoryValidation).
			WithTextCode("CIRCUIT_REQUIRED")
	}
	return nil
}
