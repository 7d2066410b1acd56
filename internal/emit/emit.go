// Package emit turns a normalized expression AST (internal/normalize) into
// a callable Go function value, for the three conversion kinds ExifTool
// distinguishes: Condition (bool), ValueConv (Value->Value), and PrintConv
// (Value->string). Anything the visitor doesn't recognize trips the
// complexity gate and the caller falls back to treating the tag as
// unconverted, rather than emitting a best-effort guess.
package emit

import (
	"fmt"
	"strings"

	"github.com/mmoretti/exifcore/internal/ast"
	"github.com/mmoretti/exifcore/internal/runtime"
	"github.com/mmoretti/exifcore/internal/value"
)

// Kind names which of the three conversion signatures a Node is being
// compiled for; the visitor enforces that the root node resolves to a
// matching Go return type.
type Kind int

const (
	KindCondition Kind = iota
	KindValueConv
	KindPrintConv
)

// Context is the narrow runtime view a compiled expression gets: its own
// tag's raw value, and a lookup into sibling tags for $$self{Field}
// references. It intentionally exposes nothing beyond what the reference
// conversions are allowed to read.
type Context struct {
	Self   value.Value
	Fields map[string]value.Value
}

// CompiledCondition/ValueConv/PrintConv are the three function shapes
// emit() produces.
type CompiledCondition func(Context) (bool, error)
type CompiledValueConv func(Context) (value.Value, error)
type CompiledPrintConv func(Context) (string, error)

// ErrUnsupported is returned (wrapped with the node class that tripped it)
// when the visitor can't lower a construct; callers treat this as
// "leave the tag's raw value as-is" rather than a hard failure.
type ErrUnsupported struct{ NodeClass string }

func (e *ErrUnsupported) Error() string {
	return fmt.Sprintf("emit: unsupported construct %q", e.NodeClass)
}

// maxDepth bounds recursion so a malformed or adversarial expression can't
// blow the stack during emission; anything deeper trips the complexity gate.
const maxDepth = 64

func Compile(n *ast.Node, kind Kind) (any, error) {
	expr, err := compileExpr(n, 0)
	if err != nil {
		return nil, err
	}
	switch kind {
	case KindCondition:
		return CompiledCondition(func(ctx Context) (bool, error) {
			v, err := expr(ctx)
			if err != nil {
				return false, err
			}
			return value.LooksNumeric(v.String()) && v.String() != "0" && v.String() != "", nil
		}), nil
	case KindValueConv:
		return CompiledValueConv(func(ctx Context) (value.Value, error) { return expr(ctx) }), nil
	case KindPrintConv:
		return CompiledPrintConv(func(ctx Context) (string, error) {
			v, err := expr(ctx)
			if err != nil {
				return "", err
			}
			return v.String(), nil
		}), nil
	default:
		return nil, fmt.Errorf("emit: unknown kind %d", kind)
	}
}

type exprFn func(Context) (value.Value, error)

func compileExpr(n *ast.Node, depth int) (exprFn, error) {
	if n == nil {
		return nil, &ErrUnsupported{NodeClass: "<nil>"}
	}
	if depth > maxDepth {
		return nil, &ErrUnsupported{NodeClass: "max-depth-exceeded"}
	}

	switch n.Class {
	case "Token::Number":
		v := value.NewF64(n.NumericValue)
		return func(Context) (value.Value, error) { return v, nil }, nil

	case "Token::Quote":
		v := value.NewString(n.StringValue)
		return func(Context) (value.Value, error) { return v, nil }, nil

	case "Node::SelfFieldAccess":
		field := n.Content
		return func(ctx Context) (value.Value, error) {
			if v, ok := ctx.Fields[field]; ok {
				return v, nil
			}
			return ctx.Self, nil
		}, nil

	case "Node::SafeDivision":
		if len(n.Children) != 2 {
			return nil, &ErrUnsupported{NodeClass: n.Class}
		}
		numFn, err := compileExpr(n.Children[0], depth+1)
		if err != nil {
			return nil, err
		}
		denFn, err := compileExpr(n.Children[1], depth+1)
		if err != nil {
			return nil, err
		}
		return func(ctx Context) (value.Value, error) {
			nv, err := numFn(ctx)
			if err != nil {
				return value.Value{}, err
			}
			dv, err := denFn(ctx)
			if err != nil {
				return value.Value{}, err
			}
			numF, _ := nv.AsF64()
			denF, _ := dv.AsF64()
			return value.NewF64(runtime.SafeDivision(numF, denF)), nil
		}, nil

	case "Node::SprintfRepeat":
		if len(n.Children) != 1 {
			return nil, &ErrUnsupported{NodeClass: n.Class}
		}
		repeat := int(n.NumericValue)
		valFn, err := compileExpr(n.Children[0], depth+1)
		if err != nil {
			return nil, err
		}
		return func(ctx Context) (value.Value, error) {
			v, err := valFn(ctx)
			if err != nil {
				return value.Value{}, err
			}
			return value.NewString(runtime.SprintfWithStringConcatRepeat(strings.Repeat("%s", repeat), v.String(), repeat)), nil
		}, nil

	case "Expression":
		return compileExpression(n, depth)

	default:
		return nil, &ErrUnsupported{NodeClass: n.Class}
	}
}

// compileExpression handles the binary-operator shape produced by the
// parser for `a OP b`: exactly three children, the middle one an operator.
func compileExpression(n *ast.Node, depth int) (exprFn, error) {
	if len(n.Children) == 1 {
		return compileExpr(n.Children[0], depth+1)
	}
	if len(n.Children) != 3 || !n.Children[1].IsOperator() {
		return nil, &ErrUnsupported{NodeClass: "Expression(arity)"}
	}
	lhs, err := compileExpr(n.Children[0], depth+1)
	if err != nil {
		return nil, err
	}
	rhs, err := compileExpr(n.Children[2], depth+1)
	if err != nil {
		return nil, err
	}
	op := n.Children[1].Content
	return func(ctx Context) (value.Value, error) {
		a, err := lhs(ctx)
		if err != nil {
			return value.Value{}, err
		}
		b, err := rhs(ctx)
		if err != nil {
			return value.Value{}, err
		}
		switch op {
		case "+":
			return value.Add(a, b), nil
		case "-":
			return value.Sub(a, b), nil
		case "*":
			return value.Mul(a, b), nil
		case "/":
			return value.Div(a, b), nil
		default:
			return value.Value{}, &ErrUnsupported{NodeClass: "operator:" + op}
		}
	}, nil
}
