package qpic

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goliatone/go-qpic/circuit"
)

// Extension is the native file extension of the document format.
const Extension = "qpic"

// Diagram colors. base fills regular operator boxes, accent fills
// boxes of gates carrying symbolic parameters.
const (
	colorBase   = "base"
	colorAccent = "accent"

	colorBaseRGB   = "0.03137254901960784 0.1607843137254902 0.23921568627450981"
	colorAccentRGB = "0.988 0.141 0.757"
)

// Document renders the circuit as a qpic document: two COLOR header
// lines, one wire declaration per qubit, then one block per gate in
// circuit order.
func Document(c *circuit.Circuit, opts Options) (string, error) {
	qubits := c.Qubits()

	displayNames, err := resolveQubitNames(qubits, opts.QubitNames)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "COLOR %s %s\n", colorBase, colorBaseRGB)
	fmt.Fprintf(&b, "COLOR %s %s\n", colorAccent, colorAccentRGB)

	names := make(map[int]string, len(qubits))
	for i, q := range qubits {
		name := "a" + strconv.Itoa(q)
		names[q] = name
		b.WriteString(name + " W " + displayNames[i] + "\n")
	}

	for _, g := range c.Gates {
		writeGate(&b, g, qubits, names, opts)
	}

	return b.String(), nil
}

// WriteDocument renders the circuit and persists the document under
// dir, appending the native extension when filename lacks it. The
// full document text is returned alongside the write.
func WriteDocument(c *circuit.Circuit, filename, dir string, opts Options) (string, error) {
	doc, err := Document(c, opts)
	if err != nil {
		return "", err
	}

	target := filename
	if !strings.HasSuffix(target, "."+Extension) {
		target += "." + Extension
	}
	if dir != "" {
		target = filepath.Join(dir, target)
	}
	if err := os.WriteFile(target, []byte(doc), 0o644); err != nil {
		return "", err
	}
	return doc, nil
}

func resolveQubitNames(qubits []int, names []string) ([]string, error) {
	switch {
	case len(names) == 0:
		out := make([]string, len(qubits))
		for i, q := range qubits {
			out[i] = strconv.Itoa(q)
		}
		return out, nil
	case len(names) == 1:
		out := make([]string, len(qubits))
		for i := range qubits {
			out[i] = names[0]
		}
		return out, nil
	case len(names) == len(qubits):
		return names, nil
	default:
		return nil, NewError(KindValidation,
			fmt.Sprintf("expected %d qubit names, got %d", len(qubits), len(names)), nil)
	}
}

func writeGate(b *strings.Builder, g circuit.Gate, qubits []int, names map[int]string, opts Options) {
	fill, text := colorBase, "black"
	if opts.MarkParametrizedGates && circuit.IsSymbolic(g.Parameter) {
		fill, text = colorAccent, "white"
	}

	switch {
	case g.Name == "H" || g.Name == "h":
		for _, t := range g.Targets {
			writeBox(b, t, fill, text, "H")
			writeControls(b, g, names)
		}

	case opts.AlwaysUseGenerators && g.MakeGenerator(opts.DecomposeControlGenerators) != nil:
		generator := g.MakeGenerator(opts.DecomposeControlGenerators)
		writeGeneratorTerms(b, generator, g, qubits, names, opts, !opts.DecomposeControlGenerators, fill, text)

	case opts.requiresGenerator(g.Name):
		writeGeneratorTerms(b, g.Generator, g, qubits, names, opts, true, fill, text)

	default:
		for _, t := range g.Targets {
			b.WriteString(names[t] + " ")
		}
		switch {
		case g.HasAxis():
			label := ParameterLabel(g.Parameter)
			fmt.Fprintf(b, " G $R_{%s}(%s)$ width=%d ", g.Axis, label, boxWidth(label))
		case g.Parameter != nil:
			label := ParameterLabel(g.Parameter)
			fmt.Fprintf(b, " G $%s(%s)$ width=%d ", g.Name, label, boxWidth(label))
		default:
			b.WriteString(g.Name + " ")
		}
		writeControls(b, g, names)
	}

	b.WriteString("\n")
}

// writeGeneratorTerms emits one box line per non-empty generator term,
// each followed by a grouping directive spanning all qubits when one
// is configured. Empty (identity) terms produce no line at all.
func writeGeneratorTerms(b *strings.Builder, terms []circuit.PauliString, g circuit.Gate, qubits []int, names map[int]string, opts Options, withControls bool, fill, text string) {
	mode := opts.GroupTogether.Normalized()
	for _, ps := range terms {
		if ps.Len() == 0 {
			continue
		}
		for _, q := range ps.Qubits() {
			writeBox(b, q, fill, text, strings.ToUpper(string(ps.Ops[q])))
		}
		if withControls {
			writeControls(b, g, names)
		}
		b.WriteString("\n")

		if mode != GroupNone {
			for _, q := range qubits {
				fmt.Fprintf(b, "a%d ", q)
			}
			fmt.Fprintf(b, "%s\n", mode)
		}
	}
}

func writeBox(b *strings.Builder, qubit int, fill, text, op string) {
	fmt.Fprintf(b, " a%d P:fill=%s  \\textcolor{%s}{%s} ", qubit, fill, text, op)
}

func writeControls(b *strings.Builder, g circuit.Gate, names map[int]string) {
	if !g.IsControlled() {
		return
	}
	for _, c := range g.Controls {
		b.WriteString(names[c] + " ")
	}
}

// boxWidth scales a labeled box with the label length.
func boxWidth(label string) int {
	return 25 + 5*len(label)
}
