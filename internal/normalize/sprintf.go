package normalize

import "github.com/mmoretti/exifcore/internal/ast"

// fuseSprintfConcatRepeat recognizes the repeated-list shape `($val) x N`
// (as in `join("", ($val) x N)`) and fuses it into a single
// Node::SprintfRepeat whose only child is the value expression and whose
// NumericValue is the repeat count; no format is stored. The emitter hands
// it to the runtime's SprintfWithStringConcatRepeat as N "%s" specifiers,
// avoiding the need to expand the list at emit time.
func fuseSprintfConcatRepeat(n *ast.Node) (*ast.Node, bool) {
	if n == nil {
		return n, false
	}
	if repeat, val, ok := matchConcatRepeat(n); ok {
		return ast.New("Node::SprintfRepeat").
			WithChildren(val).
			WithNumeric(float64(repeat)), true
	}
	changed := false
	newChildren := make([]*ast.Node, len(n.Children))
	for i, c := range n.Children {
		nc, ch := fuseSprintfConcatRepeat(c)
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

// matchConcatRepeat looks for a Structure::List whose sole statement is
// `EXPR x N` — the `x` repetition operator applied to a parenthesized
// single value, which is the AST shape `($val) x N` takes.
func matchConcatRepeat(n *ast.Node) (repeat int, val *ast.Node, ok bool) {
	if n.Class != "Structure::List" || len(n.Children) != 1 {
		return 0, nil, false
	}
	stmt := n.Children[0]
	if len(stmt.Children) != 3 {
		return 0, nil, false
	}
	valNode, opNode, countNode := stmt.Children[0], stmt.Children[1], stmt.Children[2]
	if !opNode.IsOperator() || opNode.Content != "x" || !countNode.IsNumber() {
		return 0, nil, false
	}
	return int(countNode.NumericValue), valNode, true
}
