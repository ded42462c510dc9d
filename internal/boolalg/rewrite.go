package boolalg

// RewriteXor restores XOR structure on a minimized sum-of-products
// tree. It recurses into children first, then matches
//
//	(!a & b) | (a & !b)  =>  a ^ b
//
// modulo commutativity of the outer Or and both inner Ands. The rewrite
// is idempotent and never increases the literal count. Absorption,
// consensus and De Morgan shapes are already eliminated by the
// minimization and are not handled here.
func RewriteXor(e Expr) Expr {
	switch v := e.(type) {
	case ExprNot:
		return ExprNot{X: RewriteXor(v.X)}
	case ExprAnd:
		return ExprAnd{A: RewriteXor(v.A), B: RewriteXor(v.B)}
	case ExprXor:
		return ExprXor{A: RewriteXor(v.A), B: RewriteXor(v.B)}
	case ExprOr:
		a := RewriteXor(v.A)
		b := RewriteXor(v.B)
		if x, ok := matchXor(a, b); ok {
			return x
		}
		if x, ok := matchXor(b, a); ok {
			return x
		}
		return ExprOr{A: a, B: b}
	default:
		return e
	}
}

// matchXor matches l = (!a & b) and r = (a & !b) in any operand order,
// yielding a ^ b.
func matchXor(l, r Expr) (Expr, bool) {
	la, ok := l.(ExprAnd)
	if !ok {
		return nil, false
	}
	ra, ok := r.(ExprAnd)
	if !ok {
		return nil, false
	}
	for _, c := range [2][2]Expr{{la.A, la.B}, {la.B, la.A}} {
		neg, ok := c[0].(ExprNot)
		if !ok {
			continue
		}
		a, b := neg.X, c[1]
		if andHolds(ra, a, b) {
			return ExprXor{A: a, B: b}, true
		}
	}
	return nil, false
}

// andHolds reports whether the And's operands are exactly {a, !b}.
func andHolds(e ExprAnd, a, b Expr) bool {
	return (Equal(e.A, a) && isNotOf(e.B, b)) || (Equal(e.B, a) && isNotOf(e.A, b))
}

func isNotOf(e, x Expr) bool {
	n, ok := e.(ExprNot)
	return ok && Equal(n.X, x)
}
