// Package ast models the generic expression syntax tree spec.md §4.C7
// requires: a single Node type mirroring the reference implementation's
// token tree (class/content/children/symbol-type/numeric/string literal/
// structure-bounds), plus the classification helpers the normalizer and
// emitter both dispatch on.
package ast

// SymbolType distinguishes Perl-style sigil variables.
type SymbolType string

const (
	SymbolScalar SymbolType = "scalar"
	SymbolArray  SymbolType = "array"
	SymbolHash   SymbolType = "hash"
)

// Node is the single node type every expression tree is built from. Only
// the fields relevant to a given Class are populated; the rest are zero
// values, mirroring the reference's loosely-typed PPI node dump.
type Node struct {
	Class           string // e.g. "Token::Symbol", "Statement", "Structure::List"
	Content         string
	HasContent      bool
	Children        []*Node
	SymbolType      SymbolType
	HasSymbolType   bool
	NumericValue    float64
	HasNumericValue bool
	StringValue     string
	HasStringValue  bool
	StructureBounds string // e.g. "(...)"
	HasBounds       bool
}

func New(class string) *Node { return &Node{Class: class} }

func (n *Node) WithContent(c string) *Node { n.Content, n.HasContent = c, true; return n }
func (n *Node) WithChildren(c ...*Node) *Node { n.Children = append(n.Children, c...); return n }
func (n *Node) WithNumeric(f float64) *Node { n.NumericValue, n.HasNumericValue = f, true; return n }
func (n *Node) WithString(s string) *Node { n.StringValue, n.HasStringValue = s, true; return n }
func (n *Node) WithSymbolType(t SymbolType) *Node { n.SymbolType, n.HasSymbolType = t, true; return n }
func (n *Node) WithBounds(b string) *Node { n.StructureBounds, n.HasBounds = b, true; return n }

// Clone returns a deep copy; the normalizer's passes are value-owning
// (spec.md §9: "each pass returns a new AST, avoiding in-place mutation"),
// so every rewrite starts from a clone of its input.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	cp := *n
	cp.Children = make([]*Node, len(n.Children))
	for i, c := range n.Children {
		cp.Children[i] = c.Clone()
	}
	return &cp
}

// --- classification helpers ---

func (n *Node) IsVariable() bool {
	return n.Class == "Token::Symbol" || (n.HasContent && len(n.Content) > 0 && n.Content[0] == '$')
}

func (n *Node) IsSelfReference() bool {
	return n.IsVariable() && len(n.Content) >= 6 && n.Content[:6] == "$$self"
}

func (n *Node) IsOperator() bool { return n.Class == "Token::Operator" }

func (n *Node) IsNumber() bool { return n.Class == "Token::Number" || n.HasNumericValue }

func (n *Node) IsString() bool { return n.Class == "Token::Quote" || n.HasStringValue }

func (n *Node) IsWord() bool { return n.Class == "Token::Word" }

func (n *Node) IsBlock() bool { return n.Class == "Statement::Block" || n.Class == "Structure::Block" }

// ExtractSelfField parses `$$self{Field}` into "Field"; ok is false if the
// node isn't a self-reference in that exact shape.
func (n *Node) ExtractSelfField() (string, bool) {
	if !n.IsSelfReference() || !n.HasContent {
		return "", false
	}
	s := n.Content
	const prefix = "$$self{"
	if len(s) <= len(prefix) || s[:len(prefix)] != prefix || s[len(s)-1] != '}' {
		return "", false
	}
	return s[len(prefix) : len(s)-1], true
}
