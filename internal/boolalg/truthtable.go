package boolalg

// Row is one line of a truth table: the values assigned to the canonical
// variables plus the formula's result. Index is the row's minterm index.
type Row struct {
	Index  uint64
	Values []bool
	Result bool
}

// TruthTable enumerates a formula over every assignment of its
// variables, in ascending minterm order. For index i, the k-th canonical
// variable holds bit (i >> (n-1-k)) & 1: MSB first. The QMC engine and
// the implicant converter rely on this layout.
type TruthTable struct {
	Vars []string
	Rows []Row
}

// NewTruthTable builds the truth table of e. With no variables the table
// has a single row holding only the result bit.
func NewTruthTable(e Expr) *TruthTable {
	vars := Variables(e)
	n := len(vars)
	t := &TruthTable{Vars: vars, Rows: make([]Row, 0, 1<<n)}
	asn := make(Assignment, n)
	for i := uint64(0); i < uint64(1)<<n; i++ {
		values := make([]bool, n)
		for k := 0; k < n; k++ {
			values[k] = (i>>(n-1-k))&1 == 1
			asn[vars[k]] = values[k]
		}
		// The assignment binds every variable of e, so Eval cannot fail.
		res, _ := Eval(e, asn)
		t.Rows = append(t.Rows, Row{Index: i, Values: values, Result: res})
	}
	return t
}

// Minterms returns the indices of the true rows, ascending.
func (t *TruthTable) Minterms() []uint64 {
	var out []uint64
	for _, r := range t.Rows {
		if r.Result {
			out = append(out, r.Index)
		}
	}
	return out
}

// Assignment returns the variable binding of row r.
func (t *TruthTable) Assignment(r Row) Assignment {
	asn := make(Assignment, len(t.Vars))
	for k, name := range t.Vars {
		asn[name] = r.Values[k]
	}
	return asn
}
