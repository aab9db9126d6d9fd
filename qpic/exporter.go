package qpic

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/goliatone/go-qpic/circuit"
)

// CompileFunc rewrites a circuit before export. The diagram format
// cannot express trotterized composite gates directly, so the default
// pass expands them first.
type CompileFunc func(*circuit.Circuit) *circuit.Circuit

// Exporter converts circuits into qpic documents and rendered
// artifacts.
type Exporter struct {
	Options Options
	Engine  Engine
	Compile CompileFunc
	Tracker RenderTracker
	Logger  Logger
	Now     func() time.Time
}

// NewExporter creates an exporter with default options, the CLI
// render engine, and the trotterization compile pass.
func NewExporter() *Exporter {
	return &Exporter{
		Options: DefaultOptions(),
		Engine:  CLIEngine{},
		Compile: circuit.Compiler{Trotterized: true}.Compile,
		Logger:  NopLogger{},
		Now:     time.Now,
	}
}

// Document renders the circuit as an in-memory qpic document.
func (e *Exporter) Document(c *circuit.Circuit) (string, error) {
	doc, err := Document(c, e.Options)
	if err != nil {
		return "", AsGoError(err)
	}
	return doc, nil
}

// WriteDocument renders the circuit and writes the document under dir.
func (e *Exporter) WriteDocument(c *circuit.Circuit, filename, dir string) (string, error) {
	doc, err := WriteDocument(c, filename, dir, e.Options)
	if err != nil {
		return "", AsGoError(err)
	}
	return doc, nil
}

// ExportTo produces a rendered artifact for the circuit. The filename
// extension selects the output type; the native "qpic" extension
// skips the external renderer entirely. The renderer availability and
// the extension are checked before any file is written.
func (e *Exporter) ExportTo(ctx context.Context, c *circuit.Circuit, filename string) (RenderRecord, error) {
	engine := e.Engine
	if engine == nil {
		engine = CLIEngine{}
	}

	if err := engine.Available(); err != nil {
		return RenderRecord{}, AsGoError(err)
	}

	dir, base := filepath.Split(filename)
	if !strings.Contains(base, ".") {
		return RenderRecord{}, AsGoError(NewError(KindValidation,
			fmt.Sprintf("no filetype given in %q, expected something like %s.pdf", filename, filename), nil))
	}

	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	name := strings.TrimSuffix(base, "."+ext)
	format := Format(strings.ToLower(ext))

	compiled := e.compile(c)

	record := RenderRecord{
		Filename: filename,
		Format:   format,
		State:    StateRunning,
		Qubits:   len(compiled.Qubits()),
		Gates:    len(compiled.Gates),
	}
	record.ID, _ = e.trackStart(ctx, record)

	doc, err := WriteDocument(compiled, name, dir, e.Options)
	if err != nil {
		e.trackFail(ctx, record.ID, err)
		return record, AsGoError(err)
	}

	if format != FormatQPIC {
		e.logger().Debugf("rendering %s via external qpic renderer", filename)
		if err := engine.Render(ctx, name+"."+Extension, format, dir); err != nil {
			e.trackFail(ctx, record.ID, err)
			return record, err
		}
	}

	record.State = StateCompleted
	record.Bytes = int64(len(doc))
	e.trackComplete(ctx, record.ID, record.Bytes)
	e.logger().Infof("exported circuit to %s", filename)
	return record, nil
}

func (e *Exporter) compile(c *circuit.Circuit) *circuit.Circuit {
	if e.Compile != nil {
		return e.Compile(c)
	}
	return circuit.Compiler{Trotterized: true}.Compile(c)
}

func (e *Exporter) logger() Logger {
	if e.Logger != nil {
		return e.Logger
	}
	return NopLogger{}
}

func (e *Exporter) trackStart(ctx context.Context, record RenderRecord) (string, error) {
	if e.Tracker == nil {
		return NewRecordID(), nil
	}
	if record.CreatedAt.IsZero() && e.Now != nil {
		record.CreatedAt = e.Now()
	}
	return e.Tracker.Start(ctx, record)
}

func (e *Exporter) trackComplete(ctx context.Context, id string, bytes int64) {
	if e.Tracker == nil {
		return
	}
	if err := e.Tracker.Complete(ctx, id, bytes); err != nil {
		e.logger().Errorf("tracker complete: %v", err)
	}
}

func (e *Exporter) trackFail(ctx context.Context, id string, cause error) {
	if e.Tracker == nil {
		return
	}
	if err := e.Tracker.Fail(ctx, id, cause); err != nil {
		e.logger().Errorf("tracker fail: %v", err)
	}
}

// ExportTo exports the circuit with the given options and the default
// CLI engine.
func ExportTo(ctx context.Context, c *circuit.Circuit, filename string, opts Options) error {
	exporter := NewExporter()
	exporter.Options = opts
	_, err := exporter.ExportTo(ctx, c, filename)
	return err
}
