package circuit

import (
	"fmt"
	"sort"
	"strings"
)

// Pauli is a single-qubit Pauli operator label.
type Pauli string

const (
	PauliX Pauli = "x"
	PauliY Pauli = "y"
	PauliZ Pauli = "z"
)

// PauliString is a weighted product of single-qubit Pauli operators
// indexed by qubit. An empty Ops map represents the identity.
type PauliString struct {
	Coeff float64
	Ops   map[int]Pauli
}

// NewPauliString creates a Pauli string with the given coefficient.
func NewPauliString(coeff float64, ops map[int]Pauli) PauliString {
	return PauliString{Coeff: coeff, Ops: ops}
}

// Len returns the number of non-identity factors.
func (p PauliString) Len() int {
	return len(p.Ops)
}

// IsIdentity reports whether the string carries no Pauli factors.
func (p PauliString) IsIdentity() bool {
	return len(p.Ops) == 0
}

// Qubits returns the qubits the string acts on, in ascending order.
func (p PauliString) Qubits() []int {
	qubits := make([]int, 0, len(p.Ops))
	for q := range p.Ops {
		qubits = append(qubits, q)
	}
	sort.Ints(qubits)
	return qubits
}

// WithOp returns a copy of the string extended by one factor.
func (p PauliString) WithOp(qubit int, op Pauli) PauliString {
	ops := make(map[int]Pauli, len(p.Ops)+1)
	for q, v := range p.Ops {
		ops[q] = v
	}
	ops[qubit] = op
	return PauliString{Coeff: p.Coeff, Ops: ops}
}

// Scaled returns a copy of the string with the coefficient multiplied.
func (p PauliString) Scaled(factor float64) PauliString {
	return PauliString{Coeff: p.Coeff * factor, Ops: p.Ops}
}

// String renders the Pauli string as e.g. "+0.5*x(0)z(2)".
func (p PauliString) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%+g", p.Coeff)
	if len(p.Ops) > 0 {
		b.WriteString("*")
	}
	for _, q := range p.Qubits() {
		fmt.Fprintf(&b, "%s(%d)", p.Ops[q], q)
	}
	return b.String()
}
