package normalize

import "github.com/mmoretti/exifcore/internal/ast"

// canonicalizeSelfFieldAccess rewrites every `$$self{Field}` reference into
// a dedicated Node::SelfFieldAccess carrying the field name as Content, so
// the emitter never has to re-parse the `$$self{...}` string form.
func canonicalizeSelfFieldAccess(n *ast.Node) (*ast.Node, bool) {
	if n == nil {
		return n, false
	}
	if field, ok := n.ExtractSelfField(); ok {
		return ast.New("Node::SelfFieldAccess").WithContent(field), true
	}
	changed := false
	newChildren := make([]*ast.Node, len(n.Children))
	for i, c := range n.Children {
		nc, ch := canonicalizeSelfFieldAccess(c)
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
