package chain

import (
	"errors"
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// ErrInvalidExpression is returned when a handler predicate does not compile.
var ErrInvalidExpression = errors.New("invalid handler expression")

// ExprHandler consumes numbers for which a boolean expression over n holds.
type ExprHandler struct {
	name       string
	expression string
	program    *vm.Program
}

// NewExprHandler compiles expression once. The expression sees the number
// as the integer variable n and must evaluate to a bool.
func NewExprHandler(name, expression string) (*ExprHandler, error) {
	program, err := expr.Compile(expression, expr.Env(exprEnv(0)), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q: %v", ErrInvalidExpression, name, expression, err)
	}
	return &ExprHandler{
		name:       name,
		expression: expression,
		program:    program,
	}, nil
}

// Name implements Handler.Name.
func (h *ExprHandler) Name() string {
	return h.name
}

// Handle implements Handler.Handle.
func (h *ExprHandler) Handle(n int) (string, bool, error) {
	out, err := expr.Run(h.program, exprEnv(n))
	if err != nil {
		return "", false, fmt.Errorf("eval %q: %w", h.expression, err)
	}
	if ok, _ := out.(bool); !ok {
		return "", false, nil
	}
	return fmt.Sprintf("%s: consumed number %d (%s)", h.name, n, h.expression), true, nil
}

func exprEnv(n int) map[string]any {
	return map[string]any{"n": n}
}
