package boolalg

// Diagnostics collects the artifacts of one minimization: the QMC trace,
// the full prime-implicant list, every minimal cover Petrick found, and
// the cover that was selected.
type Diagnostics struct {
	Vars     []string
	Minterms []uint64
	Trace    []TraceStep
	Primes   []Implicant
	Covers   [][]Implicant
	Selected []Implicant
}

// Simplify minimizes e to a logically-equivalent expression of lowest
// practical literal count.
//
// Pipeline: canonical variable list, truth table, minterms, QMC prime
// implicants, coverage table, Petrick minimal covers, lowest total
// literal count with a deterministic tie-break, cover-to-tree
// conversion, XOR rewrite. A formula with no true rows short-circuits to
// Const(false); a tautology comes out as Const(true) through the
// all-don't-care implicant.
//
// ErrNoMinimalCover signals an internal invariant violation and should
// be treated as fatal.
func Simplify(e Expr) (Expr, *Diagnostics, error) {
	table := NewTruthTable(e)
	minterms := table.Minterms()
	diag := &Diagnostics{Vars: table.Vars, Minterms: minterms}
	if len(minterms) == 0 {
		return ExprConst{Value: false}, diag, nil
	}
	n := len(table.Vars)

	primes, trace := PrimeImplicants(minterms, n)
	diag.Trace = trace
	diag.Primes = primes

	coverage := NewCoverageTable(primes, minterms, n)
	covers := Petrick(coverage)
	if len(covers) == 0 {
		return nil, diag, ErrNoMinimalCover
	}

	best := covers[0]
	bestLits := coverIndexLiteralCount(primes, best)
	for _, c := range covers[1:] {
		lits := coverIndexLiteralCount(primes, c)
		if lits < bestLits || (lits == bestLits && lessIndexList(c, best)) {
			best = c
			bestLits = lits
		}
	}

	diag.Covers = make([][]Implicant, 0, len(covers))
	for _, c := range covers {
		diag.Covers = append(diag.Covers, indexCover(primes, c))
	}
	selected := indexCover(primes, best)
	diag.Selected = selected

	out := CoverExpr(selected, table.Vars)
	out = RewriteXor(out)
	return out, diag, nil
}

func indexCover(primes []Implicant, idxs []int) []Implicant {
	out := make([]Implicant, 0, len(idxs))
	for _, i := range idxs {
		out = append(out, primes[i])
	}
	return out
}

func coverIndexLiteralCount(primes []Implicant, idxs []int) int {
	total := 0
	for _, i := range idxs {
		total += primes[i].LiteralCount()
	}
	return total
}

// lessIndexList orders ascending index lists lexicographically; this is
// the deterministic tie-break across equal-cost covers.
func lessIndexList(a, b []int) bool {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
