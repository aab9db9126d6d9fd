package qpic

import "strings"

// Format is the export output format. Anything other than FormatQPIC
// is produced by the external qpic renderer.
type Format string

const (
	FormatQPIC Format = "qpic"
	FormatPDF  Format = "pdf"
	FormatPNG  Format = "png"
	FormatTEX  Format = "tex"
)

// GroupMode controls how generator terms of one gate are grouped in
// the diagram.
type GroupMode string

const (
	GroupNone    GroupMode = ""
	GroupTouch   GroupMode = "TOUCH"
	GroupBarrier GroupMode = "BARRIER"
)

// Normalized upper-cases the mode so lower-case input is accepted.
func (m GroupMode) Normalized() GroupMode {
	return GroupMode(strings.ToUpper(string(m)))
}

// DefaultGeneratorGates lists gate names that must always render
// through their generator because the diagram format cannot express
// them as plain boxes. Matched case-insensitively.
var DefaultGeneratorGates = []string{"Exp-Pauli", "GenRot"}

// Options configures document generation.
type Options struct {
	// AlwaysUseGenerators renders every gate that has a generator
	// decomposition as its generator terms.
	AlwaysUseGenerators bool

	// DecomposeControlGenerators folds control qubits into the
	// generator expansion instead of drawing control wires.
	DecomposeControlGenerators bool

	// GroupTogether emits a grouping directive spanning all qubits
	// after each gate's generator terms.
	GroupTogether GroupMode

	// QubitNames supplies per-qubit display names, positional over
	// the circuit qubits. A single entry broadcasts to every qubit.
	// Nil uses the raw qubit identifiers.
	QubitNames []string

	// MarkParametrizedGates highlights gates with symbolic
	// parameters.
	MarkParametrizedGates bool

	// GeneratorGates overrides the gate names that always render
	// through their generator. Nil uses DefaultGeneratorGates.
	GeneratorGates []string
}

// DefaultOptions returns the default export options.
func DefaultOptions() Options {
	return Options{
		AlwaysUseGenerators:   true,
		MarkParametrizedGates: true,
	}
}

func (o Options) generatorGates() []string {
	if o.GeneratorGates != nil {
		return o.GeneratorGates
	}
	return DefaultGeneratorGates
}

func (o Options) requiresGenerator(name string) bool {
	for _, candidate := range o.generatorGates() {
		if strings.EqualFold(candidate, name) {
			return true
		}
	}
	return false
}

// Logger provides logging hooks.
type Logger interface {
	Debugf(format string, args ...any)
	Infof(format string, args ...any)
	Errorf(format string, args ...any)
}

// NopLogger is a no-op logger.
type NopLogger struct{}

func (NopLogger) Debugf(string, ...any) {}
func (NopLogger) Infof(string, ...any)  {}
func (NopLogger) Errorf(string, ...any) {}
