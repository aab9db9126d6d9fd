package circuit

import (
	"fmt"
	"strings"
)

// Parameter is a gate parameter: either a fixed numeric value, a
// symbolic expression over free variables, or a two-valued pair.
type Parameter interface {
	fmt.Stringer
	parameter()
}

// Fixed is a plain numeric parameter.
type Fixed float64

func (Fixed) parameter() {}

func (f Fixed) String() string {
	return fmt.Sprintf("%g", float64(f))
}

// Value returns the numeric value.
func (f Fixed) Value() float64 {
	return float64(f)
}

// Expr is a symbolic parameter exposing the free variables it
// depends on.
type Expr struct {
	Text string
	Vars []string
}

func (Expr) parameter() {}

// Variables returns the free variables of the expression.
func (e Expr) Variables() []string {
	return e.Vars
}

func (e Expr) String() string {
	if e.Text != "" {
		return e.Text
	}
	return strings.Join(e.Vars, ", ")
}

// Variable is a single free symbolic parameter.
func Variable(name string) Expr {
	return Expr{Text: name, Vars: []string{name}}
}

// Pair is a two-valued parameter, rendered as a generic angle.
type Pair [2]float64

func (Pair) parameter() {}

func (p Pair) String() string {
	return fmt.Sprintf("(%g, %g)", p[0], p[1])
}

// IsSymbolic reports whether the parameter is anything other than a
// plain numeric value. Nil parameters are not symbolic.
func IsSymbolic(p Parameter) bool {
	if p == nil {
		return false
	}
	_, fixed := p.(Fixed)
	return !fixed
}
