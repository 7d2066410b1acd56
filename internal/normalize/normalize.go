// Package normalize rewrites a raw expression AST (internal/ast) into a
// canonical shape the emitter (internal/emit) can pattern-match against,
// by repeatedly applying an ordered set of passes until none of them
// changes the tree (spec.md §9's "normalize to fixpoint").
package normalize

import "github.com/mmoretti/exifcore/internal/ast"

// Pass rewrites one AST into another; ok reports whether it changed
// anything, so the driver can detect fixpoint without a deep-equal walk.
type Pass struct {
	Name string
	Tier Tier
	Run  func(*ast.Node) (*ast.Node, bool)
}

type Tier int

const (
	// TierHigh passes run first every round: they collapse surface
	// syntax (postfix conditionals, guarded division) into simpler
	// shapes that the low-tier passes can then recognize uniformly.
	TierHigh Tier = iota
	TierLow
)

const maxRounds = 64

var registered = []Pass{
	{Name: "postfix_conditional", Tier: TierHigh, Run: eliminatePostfixConditional},
	{Name: "safe_division", Tier: TierHigh, Run: recognizeSafeDivision},
	{Name: "sprintf_concat_repeat", Tier: TierLow, Run: fuseSprintfConcatRepeat},
	{Name: "self_field_access", Tier: TierLow, Run: canonicalizeSelfFieldAccess},
}

// Normalize applies every registered pass, high tier before low tier,
// repeating the full ordered sweep until a round changes nothing or
// maxRounds is hit (a cycle between two passes is a bug, not a fixpoint,
// so this caps it rather than looping forever).
func Normalize(n *ast.Node) *ast.Node {
	cur := n
	for round := 0; round < maxRounds; round++ {
		changedAny := false
		for _, tier := range []Tier{TierHigh, TierLow} {
			for _, p := range registered {
				if p.Tier != tier {
					continue
				}
				next, changed := p.Run(cur)
				if changed {
					cur = next
					changedAny = true
				}
			}
		}
		if !changedAny {
			break
		}
	}
	return cur
}
