package emit

import (
	"testing"

	"github.com/mmoretti/exifcore/internal/ast"
	"github.com/mmoretti/exifcore/internal/value"
)

func TestCompileSafeDivision(t *testing.T) {
	n := ast.New("Node::SafeDivision").WithChildren(
		ast.New("Token::Number").WithNumeric(10),
		ast.New("Token::Number").WithNumeric(0),
	)
	fn, err := Compile(n, KindValueConv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := fn.(CompiledValueConv)(Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := result.AsF64()
	if got != 0 {
		t.Errorf("expected safe division by zero to yield 0, got %v", got)
	}
}

func TestCompileSelfFieldAccess(t *testing.T) {
	n := ast.New("Node::SelfFieldAccess").WithContent("Make")
	fn, err := Compile(n, KindPrintConv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := fn.(CompiledPrintConv)(Context{Fields: map[string]value.Value{
		"Make": value.NewString("Canon"),
	}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result != "Canon" {
		t.Errorf("got %q", result)
	}
}

func TestCompileUnsupportedConstruct(t *testing.T) {
	n := ast.New("Structure::Subscript")
	if _, err := Compile(n, KindValueConv); err == nil {
		t.Fatal("expected unsupported-construct error")
	}
}

func TestCompileBinaryExpression(t *testing.T) {
	n := ast.New("Expression").WithChildren(
		ast.New("Token::Number").WithNumeric(3),
		ast.New("Token::Operator").WithContent("+"),
		ast.New("Token::Number").WithNumeric(4),
	)
	fn, err := Compile(n, KindValueConv)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	result, err := fn.(CompiledValueConv)(Context{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got, _ := result.AsF64()
	if got != 7 {
		t.Errorf("got %v", got)
	}
}
