package qpic

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	errorslib "github.com/goliatone/go-errors"
	"github.com/goliatone/go-qpic/circuit"
)

type fakeEngine struct {
	availableErr error
	renderErr    error
	calls        int
	lastDoc      string
	lastFormat   Format
	lastDir      string
}

func (e *fakeEngine) Available() error {
	return e.availableErr
}

func (e *fakeEngine) Render(_ context.Context, docPath string, format Format, dir string) error {
	e.calls++
	e.lastDoc = docPath
	e.lastFormat = format
	e.lastDir = dir
	return e.renderErr
}

func testCircuit() *circuit.Circuit {
	c := circuit.New()
	c.H(0)
	c.R(circuit.AxisX, 1, circuit.Fixed(0.5), 0)
	return c
}

func newTestExporter(engine Engine) *Exporter {
	exporter := NewExporter()
	exporter.Engine = engine
	return exporter
}

func TestExportTo_NativeExtensionSkipsRenderer(t *testing.T) {
	engine := &fakeEngine{}
	exporter := newTestExporter(engine)
	dir := t.TempDir()

	record, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ.qpic"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if engine.calls != 0 {
		t.Fatalf("renderer must not run for native extension, got %d calls", engine.calls)
	}
	if record.State != StateCompleted {
		t.Fatalf("expected completed record, got %s", record.State)
	}
	if _, err := os.Stat(filepath.Join(dir, "circ.qpic")); err != nil {
		t.Fatalf("expected document on disk: %v", err)
	}
}

func TestExportTo_ForeignExtensionInvokesRendererOnce(t *testing.T) {
	engine := &fakeEngine{}
	exporter := newTestExporter(engine)
	dir := t.TempDir()

	if _, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ.png")); err != nil {
		t.Fatalf("export: %v", err)
	}
	if engine.calls != 1 {
		t.Fatalf("expected exactly one renderer call, got %d", engine.calls)
	}
	if engine.lastFormat != FormatPNG {
		t.Fatalf("expected png format, got %q", engine.lastFormat)
	}
	if engine.lastDoc != "circ.qpic" {
		t.Fatalf("expected intermediate document path, got %q", engine.lastDoc)
	}
	if engine.lastDir != dir+string(filepath.Separator) {
		t.Fatalf("expected renderer cwd %q, got %q", dir, engine.lastDir)
	}
}

func TestExportTo_MissingExtensionFailsBeforeAnyWrite(t *testing.T) {
	engine := &fakeEngine{}
	exporter := newTestExporter(engine)
	dir := t.TempDir()

	_, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ"))
	if err == nil {
		t.Fatalf("expected usage error for missing extension")
	}

	var ge *errorslib.Error
	if !errors.As(err, &ge) || ge.Category != errorslib.CategoryValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("no file may be written, found %d entries", len(entries))
	}
	if engine.calls != 0 {
		t.Fatalf("renderer must not run, got %d calls", engine.calls)
	}
}

func TestExportTo_MissingRendererFailsBeforeAnyWrite(t *testing.T) {
	engine := &fakeEngine{availableErr: NewError(KindMissingTool, "qpic renderer not found", nil)}
	exporter := newTestExporter(engine)
	dir := t.TempDir()

	_, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ.pdf"))
	if err == nil {
		t.Fatalf("expected configuration error")
	}

	var ge *errorslib.Error
	if !errors.As(err, &ge) || ge.TextCode != "missing_tool" {
		t.Fatalf("expected missing_tool error, got %v", err)
	}
	entries, readErr := os.ReadDir(dir)
	if readErr != nil {
		t.Fatalf("read dir: %v", readErr)
	}
	if len(entries) != 0 {
		t.Fatalf("no file may be written, found %d entries", len(entries))
	}
}

func TestExportTo_RoundTripMatchesDocument(t *testing.T) {
	exporter := newTestExporter(&fakeEngine{})
	dir := t.TempDir()
	c := testCircuit()

	if _, err := exporter.ExportTo(context.Background(), c, filepath.Join(dir, "circ.qpic")); err != nil {
		t.Fatalf("export: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "circ.qpic"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	want, err := Document(circuit.Compiler{Trotterized: true}.Compile(c), exporter.Options)
	if err != nil {
		t.Fatalf("document: %v", err)
	}
	if string(data) != want {
		t.Fatalf("written document diverges from in-memory builder")
	}
}

func TestExportTo_RendererFailurePropagates(t *testing.T) {
	renderErr := errors.New("exit status 1")
	engine := &fakeEngine{renderErr: renderErr}
	exporter := newTestExporter(engine)
	dir := t.TempDir()

	_, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ.pdf"))
	if !errors.Is(err, renderErr) {
		t.Fatalf("expected renderer error as-is, got %v", err)
	}
}

func TestExportTo_TracksRenderRecords(t *testing.T) {
	tracker := NewMemoryTracker()
	exporter := newTestExporter(&fakeEngine{})
	exporter.Tracker = tracker
	dir := t.TempDir()

	record, err := exporter.ExportTo(context.Background(), testCircuit(), filepath.Join(dir, "circ.qpic"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	stored, err := tracker.Status(context.Background(), record.ID)
	if err != nil {
		t.Fatalf("status: %v", err)
	}
	if stored.State != StateCompleted {
		t.Fatalf("expected completed, got %s", stored.State)
	}
	if stored.Qubits != 2 || stored.Gates != 2 {
		t.Fatalf("unexpected record counts: %+v", stored)
	}
	if stored.Bytes == 0 {
		t.Fatalf("expected byte count")
	}
}

func TestExportTo_TrotterizedGatesAreCompiled(t *testing.T) {
	c := circuit.New()
	c.Add(circuit.Gate{
		Kind:      circuit.KindTrotterized,
		Name:      "Trotter",
		Parameter: circuit.Fixed(1.0),
		Generator: []circuit.PauliString{
			{Coeff: 1, Ops: map[int]circuit.Pauli{0: circuit.PauliX}},
		},
		Steps: 2,
	})

	exporter := newTestExporter(&fakeEngine{})
	dir := t.TempDir()
	record, err := exporter.ExportTo(context.Background(), c, filepath.Join(dir, "circ.qpic"))
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if record.Gates != 2 {
		t.Fatalf("expected 2 expanded gates, got %d", record.Gates)
	}
}
