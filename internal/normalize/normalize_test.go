package normalize

import (
	"testing"

	"github.com/mmoretti/exifcore/internal/ast"
)

func TestNormalizeCanonicalizesSelfField(t *testing.T) {
	n := ast.New("Expression").WithChildren(
		ast.New("Token::Symbol").WithContent("$$self{Make}"),
	)
	out := Normalize(n)
	if out.Children[0].Class != "Node::SelfFieldAccess" || out.Children[0].Content != "Make" {
		t.Fatalf("expected canonicalized self-field node, got %+v", out.Children[0])
	}
}

func TestNormalizeRecognizesSafeDivision(t *testing.T) {
	b := ast.New("Token::Symbol").WithContent("$b")
	a := ast.New("Token::Symbol").WithContent("$a")
	ternary := ast.New("Structure::Ternary").WithChildren(
		ast.New("Token::Symbol").WithContent("$b"),
		ast.New("Expression").WithChildren(a, ast.New("Token::Operator").WithContent("/"), b),
		ast.New("Token::Number").WithNumeric(0),
	)
	out := Normalize(ternary)
	if out.Class != "Node::SafeDivision" {
		t.Fatalf("expected safe-division node, got %s", out.Class)
	}
}

func TestNormalizeFusesSprintfRepeat(t *testing.T) {
	val := ast.New("Token::Symbol").WithContent("$v")
	list := ast.New("Structure::List").WithChildren(
		ast.New("Statement").WithChildren(
			val,
			ast.New("Token::Operator").WithContent("x"),
			ast.New("Token::Number").WithNumeric(3),
		),
	)
	out := Normalize(list)
	if out.Class != "Node::SprintfRepeat" || out.NumericValue != 3 {
		t.Fatalf("expected fused sprintf-repeat node, got %+v", out)
	}
}

func TestNormalizeReachesFixpointWithoutMatches(t *testing.T) {
	n := ast.New("Token::Number").WithNumeric(42)
	out := Normalize(n)
	if out.NumericValue != 42 {
		t.Fatalf("expected unchanged node, got %+v", out)
	}
}
