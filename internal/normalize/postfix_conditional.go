package normalize

import "github.com/mmoretti/exifcore/internal/ast"

// eliminatePostfixConditional rewrites Perl's postfix `STATEMENT if COND`
// (and `unless COND`) into a prefix `Structure::If` node carrying the
// statement as its sole body child, so the emitter only ever has to handle
// one If shape rather than two syntactic variants of the same thing.
func eliminatePostfixConditional(n *ast.Node) (*ast.Node, bool) {
	if n == nil {
		return n, false
	}
	if n.Class == "Statement" && hasPostfixKeyword(n.Children) {
		body, keyword, cond := splitPostfix(n.Children)
		negate := keyword == "unless"
		ifNode := ast.New("Structure::If").WithChildren(
			wrapCondition(cond, negate),
			ast.New("Statement::Block").WithChildren(body...),
		)
		return ifNode, true
	}
	changed := false
	newChildren := make([]*ast.Node, len(n.Children))
	for i, c := range n.Children {
		nc, ch := eliminatePostfixConditional(c)
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

func hasPostfixKeyword(children []*ast.Node) bool {
	for _, c := range children {
		if c.IsWord() && (c.Content == "if" || c.Content == "unless") {
			return true
		}
	}
	return false
}

func splitPostfix(children []*ast.Node) (body []*ast.Node, keyword string, cond []*ast.Node) {
	for i, c := range children {
		if c.IsWord() && (c.Content == "if" || c.Content == "unless") {
			return children[:i], c.Content, children[i+1:]
		}
	}
	return children, "", nil
}

func wrapCondition(cond []*ast.Node, negate bool) *ast.Node {
	inner := ast.New("Expression").WithChildren(cond...)
	if !negate {
		return inner
	}
	return ast.New("Expression").WithChildren(
		ast.New("Token::Operator").WithContent("!"),
		inner,
	)
}
