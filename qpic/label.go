package qpic

import (
	"fmt"
	"math"
	"strings"

	"github.com/goliatone/go-qpic/circuit"
)

// piTolerance is the absolute tolerance used when matching fixed
// values against rational multiples of pi.
const piTolerance = 1e-4

// ParameterLabel produces a short human-readable label for a gate
// parameter, suitable for embedding in a diagram box. Pairs render as
// a generic angle, symbolic expressions as their free-variable list,
// and fixed values as a signed pi fraction when one matches within
// tolerance, otherwise as a signed 4-digit decimal.
func ParameterLabel(p circuit.Parameter) string {
	switch v := p.(type) {
	case nil:
		return ""
	case circuit.Pair:
		return `\theta`
	case circuit.Expr:
		return strings.Join(v.Variables(), ", ")
	case circuit.Fixed:
		return fixedLabel(v.Value())
	default:
		return p.String()
	}
}

func fixedLabel(value float64) string {
	for i := 1; i <= 4; i++ {
		if math.Abs(math.Abs(value)-math.Pi/float64(i)) <= piTolerance {
			if value < 0 {
				return fmt.Sprintf(`-\pi/%d`, i)
			}
			return fmt.Sprintf(`+\pi/%d`, i)
		}
	}
	return fmt.Sprintf("%+2.4f", value)
}
