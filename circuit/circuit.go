package circuit

import "sort"

// Kind tags the gate variant. Each kind declares which of parameter,
// axis, generator, and controls it carries; consumers dispatch on the
// tag instead of probing capabilities at runtime.
type Kind string

const (
	KindHadamard            Kind = "hadamard"
	KindRotation            Kind = "rotation"
	KindPhase               Kind = "phase"
	KindPauliExp            Kind = "exp-pauli"
	KindGeneralizedRotation Kind = "genrot"
	KindTrotterized         Kind = "trotterized"
	KindGeneric             Kind = "generic"
)

// Axis is a rotation axis.
type Axis int

const (
	AxisX Axis = iota
	AxisY
	AxisZ
)

// String returns the lower-case axis letter used in rotation labels.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	case AxisZ:
		return "z"
	}
	return "?"
}

// Pauli returns the Pauli operator matching the axis.
func (a Axis) Pauli() Pauli {
	switch a {
	case AxisX:
		return PauliX
	case AxisY:
		return PauliY
	}
	return PauliZ
}

// Gate is one gate instance in a circuit.
type Gate struct {
	Kind      Kind
	Name      string
	Targets   []int
	Controls  []int
	Parameter Parameter
	Axis      Axis
	Generator []PauliString
	// Steps is the repetition count for trotterized gates.
	Steps int
}

// IsControlled reports whether the gate carries control qubits.
func (g Gate) IsControlled() bool {
	return len(g.Controls) > 0
}

// HasAxis reports whether the gate carries a rotation axis.
func (g Gate) HasAxis() bool {
	return g.Kind == KindRotation
}

// MakeGenerator returns the Hermitian generator of the gate as a sum
// of Pauli strings, or nil when the gate kind has none. When
// includeControls is set the control projectors are folded into the
// expansion, scaling each term by 1/2 per control and emitting one
// signed term per control subset.
func (g Gate) MakeGenerator(includeControls bool) []PauliString {
	base := g.baseGenerator()
	if base == nil {
		return nil
	}
	if !includeControls || !g.IsControlled() {
		return base
	}
	return foldControls(base, g.Controls)
}

func (g Gate) baseGenerator() []PauliString {
	switch g.Kind {
	case KindRotation:
		terms := make([]PauliString, 0, len(g.Targets))
		for _, t := range g.Targets {
			terms = append(terms, PauliString{Coeff: 1, Ops: map[int]Pauli{t: g.Axis.Pauli()}})
		}
		return terms
	case KindPhase:
		if len(g.Targets) == 0 {
			return nil
		}
		terms := []PauliString{{Coeff: 0.5}}
		for _, t := range g.Targets {
			terms = append(terms, PauliString{Coeff: -0.5, Ops: map[int]Pauli{t: PauliZ}})
		}
		return terms
	case KindPauliExp, KindGeneralizedRotation, KindTrotterized:
		return g.Generator
	case KindHadamard:
		terms := make([]PauliString, 0, 2*len(g.Targets))
		for _, t := range g.Targets {
			terms = append(terms,
				PauliString{Coeff: 1, Ops: map[int]Pauli{t: PauliX}},
				PauliString{Coeff: 1, Ops: map[int]Pauli{t: PauliZ}})
		}
		return terms
	}
	return nil
}

// foldControls multiplies each term by the projector product
// prod_c (1-Z_c)/2 and expands it into plain Pauli strings.
func foldControls(terms []PauliString, controls []int) []PauliString {
	expanded := terms
	for _, c := range controls {
		next := make([]PauliString, 0, 2*len(expanded))
		for _, ps := range expanded {
			next = append(next, ps.Scaled(0.5), ps.WithOp(c, PauliZ).Scaled(-0.5))
		}
		expanded = next
	}
	return expanded
}

// Circuit is an ordered sequence of qubits and gate instances.
type Circuit struct {
	qubits []int
	Gates  []Gate
}

// New creates a circuit over the given qubits.
func New(qubits ...int) *Circuit {
	c := &Circuit{}
	for _, q := range qubits {
		c.addQubit(q)
	}
	return c
}

// Qubits returns the circuit qubits in ascending order.
func (c *Circuit) Qubits() []int {
	out := make([]int, len(c.qubits))
	copy(out, c.qubits)
	return out
}

// Add appends a gate, registering any qubits it touches.
func (c *Circuit) Add(g Gate) *Circuit {
	for _, q := range g.Targets {
		c.addQubit(q)
	}
	for _, q := range g.Controls {
		c.addQubit(q)
	}
	for _, ps := range g.Generator {
		for _, q := range ps.Qubits() {
			c.addQubit(q)
		}
	}
	c.Gates = append(c.Gates, g)
	return c
}

func (c *Circuit) addQubit(q int) {
	i := sort.SearchInts(c.qubits, q)
	if i < len(c.qubits) && c.qubits[i] == q {
		return
	}
	c.qubits = append(c.qubits, 0)
	copy(c.qubits[i+1:], c.qubits[i:])
	c.qubits[i] = q
}

// H appends a Hadamard gate.
func (c *Circuit) H(target int, controls ...int) *Circuit {
	return c.Add(Gate{Kind: KindHadamard, Name: "H", Targets: []int{target}, Controls: controls})
}

// R appends a rotation gate around the given axis.
func (c *Circuit) R(axis Axis, target int, angle Parameter, controls ...int) *Circuit {
	name := "R" + axis.String()
	return c.Add(Gate{
		Kind:      KindRotation,
		Name:      name,
		Targets:   []int{target},
		Controls:  controls,
		Parameter: angle,
		Axis:      axis,
	})
}

// Phase appends a phase gate.
func (c *Circuit) Phase(target int, angle Parameter, controls ...int) *Circuit {
	return c.Add(Gate{
		Kind:      KindPhase,
		Name:      "Phase",
		Targets:   []int{target},
		Controls:  controls,
		Parameter: angle,
	})
}

// ExpPauli appends an exponential-Pauli gate with the given generator.
func (c *Circuit) ExpPauli(angle Parameter, generator []PauliString, controls ...int) *Circuit {
	return c.Add(Gate{
		Kind:      KindPauliExp,
		Name:      "Exp-Pauli",
		Controls:  controls,
		Parameter: angle,
		Generator: generator,
	})
}
