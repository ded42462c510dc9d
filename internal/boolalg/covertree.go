package boolalg

import "sort"

// CoverExpr converts a cover back to an Or-of-And expression tree over
// the canonical variable list.
//
// Each implicant yields one term: a literal per care position, folded
// with right-leaning And (the rewrite layer assumes this shape). The
// all-don't-care implicant yields Const(true). Terms are sorted by their
// variable list and folded with left-leaning Or, so the output is
// deterministic.
func CoverExpr(cover []Implicant, vars []string) Expr {
	if len(cover) == 0 {
		return ExprConst{Value: false}
	}
	n := len(vars)

	type term struct {
		names   []string
		pattern string
		expr    Expr
	}
	terms := make([]term, 0, len(cover))
	for _, im := range cover {
		var lits []Expr
		var names []string
		for k := 0; k < n; k++ {
			bit := uint64(1) << (n - 1 - k)
			if im.Mask&bit == 0 {
				continue
			}
			names = append(names, vars[k])
			if im.Value&bit != 0 {
				lits = append(lits, ExprVar{Name: vars[k]})
			} else {
				lits = append(lits, ExprNot{X: ExprVar{Name: vars[k]}})
			}
		}
		if len(lits) == 0 {
			return ExprConst{Value: true}
		}
		expr := lits[len(lits)-1]
		for i := len(lits) - 2; i >= 0; i-- {
			expr = ExprAnd{A: lits[i], B: expr}
		}
		terms = append(terms, term{names: names, pattern: im.Pattern(n), expr: expr})
	}

	sort.Slice(terms, func(i, j int) bool {
		a, b := terms[i], terms[j]
		for k := 0; k < len(a.names) && k < len(b.names); k++ {
			if a.names[k] != b.names[k] {
				return a.names[k] < b.names[k]
			}
		}
		if len(a.names) != len(b.names) {
			return len(a.names) < len(b.names)
		}
		return a.pattern < b.pattern
	})

	out := terms[0].expr
	for _, t := range terms[1:] {
		out = ExprOr{A: out, B: t.expr}
	}
	return out
}
