package normalize

import "github.com/mmoretti/exifcore/internal/ast"

// recognizeSafeDivision rewrites the guarded-division idiom
// `$b ? $a / $b : 0` into a single Node::SafeDivision, which the emitter
// lowers directly to runtime.SafeDivision instead of reproducing the
// conditional. Only the ternary form is matched: the Structure::If that
// eliminatePostfixConditional makes of `$a/$b if $b` is left as it is.
func recognizeSafeDivision(n *ast.Node) (*ast.Node, bool) {
	if n == nil {
		return n, false
	}
	if num, den, ok := matchGuardedDivision(n); ok {
		return ast.New("Node::SafeDivision").WithChildren(num, den), true
	}
	changed := false
	newChildren := make([]*ast.Node, len(n.Children))
	for i, c := range n.Children {
		nc, ch := recognizeSafeDivision(c)
		newChildren[i] = nc
		changed = changed || ch
	}
	if changed {
		cp := n.Clone()
		cp.Children = newChildren
		return cp, true
	}
	return n, false
}

// matchGuardedDivision matches `Structure::Ternary[ COND ? DIV : FALLBACK ]`
// where COND and the divisor side of DIV refer to the same variable content,
// and FALLBACK is the literal 0 — the shape `$b ? $a/$b : 0`.
func matchGuardedDivision(n *ast.Node) (num, den *ast.Node, ok bool) {
	if n.Class != "Structure::Ternary" || len(n.Children) != 3 {
		return nil, nil, false
	}
	cond, thenBranch, elseBranch := n.Children[0], n.Children[1], n.Children[2]
	if !elseBranch.IsNumber() || elseBranch.NumericValue != 0 {
		return nil, nil, false
	}
	if thenBranch.Class != "Expression" || len(thenBranch.Children) != 3 {
		return nil, nil, false
	}
	a, op, b := thenBranch.Children[0], thenBranch.Children[1], thenBranch.Children[2]
	if !op.IsOperator() || op.Content != "/" {
		return nil, nil, false
	}
	if !cond.IsVariable() || !b.IsVariable() || cond.Content != b.Content {
		return nil, nil, false
	}
	return a, b, true
}
