package circuit

// Compiler rewrites circuits into forms downstream consumers can
// express. Only trotterized expansion is implemented; the zero value
// is a no-op pass.
type Compiler struct {
	// Trotterized expands trotterized gates into repeated
	// exponential-Pauli gates, one per generator term per step.
	Trotterized bool
}

// Compile returns a rewritten copy of the circuit. The input circuit
// is never mutated.
func (c Compiler) Compile(in *Circuit) *Circuit {
	out := New(in.Qubits()...)
	for _, g := range in.Gates {
		if c.Trotterized && g.Kind == KindTrotterized {
			for _, expanded := range expandTrotter(g) {
				out.Add(expanded)
			}
			continue
		}
		out.Add(g)
	}
	return out
}

// expandTrotter splits a trotterized gate into Steps repetitions of
// one exponential-Pauli gate per generator term, each carrying the
// step-scaled coefficient.
func expandTrotter(g Gate) []Gate {
	steps := g.Steps
	if steps < 1 {
		steps = 1
	}
	scale := 1.0 / float64(steps)
	out := make([]Gate, 0, steps*len(g.Generator))
	for step := 0; step < steps; step++ {
		for _, ps := range g.Generator {
			out = append(out, Gate{
				Kind:      KindPauliExp,
				Name:      "Exp-Pauli",
				Controls:  g.Controls,
				Parameter: g.Parameter,
				Generator: []PauliString{ps.Scaled(scale)},
			})
		}
	}
	return out
}
