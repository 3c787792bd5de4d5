package input

import (
	"fmt"
	"strings"

	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
)

// DefaultMarker marks every non-blank cell
const DefaultMarker = `value != ""`

// Marker decides whether a cell of a class column assigns the row's teacher to the class.
// The expression sees the trimmed cell text as `value`, e.g. `value in ["x", "X"]`.
type Marker struct {
	Expression string
	program    *vm.Program
}

func NewMarker(expression string) (*Marker, error) {
	if strings.TrimSpace(expression) == "" {
		expression = DefaultMarker
	}

	program, err := expr.Compile(expression, expr.Env(markerEnv("")), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid marker expression %q: %w", expression, err)
	}
	return &Marker{
		Expression: expression,
		program:    program,
	}, nil
}

func (marker *Marker) Marks(value string) (bool, error) {
	output, err := expr.Run(marker.program, markerEnv(strings.TrimSpace(value)))
	if err != nil {
		return false, fmt.Errorf("cannot evaluate marker %q on %q: %w", marker.Expression, value, err)
	}
	return output.(bool), nil
}

func markerEnv(value string) map[string]interface{} {
	return map[string]interface{}{
		"value": value,
	}
}
