package boolalg

import "github.com/pkg/errors"

// ProcessOptions configures the one-shot text pipeline.
type ProcessOptions struct {
	Format FormatOptions
}

// ProcessResult is the outcome of Process: the parsed input, the
// minimized tree with its rendering, the input's truth table and the
// minimization diagnostics.
type ProcessResult struct {
	Input          Expr
	Simplified     Expr
	Simplification string
	Table          *TruthTable
	Diagnostics    *Diagnostics
}

// SimplifyText parses, minimizes and formats a formula with default
// formatting.
func SimplifyText(src string) (string, error) {
	expr, err := Parse(src)
	if err != nil {
		return "", err
	}
	out, _, err := Simplify(expr)
	if err != nil {
		return "", err
	}
	return Format(out, FormatOptions{}), nil
}

// EvalText parses a formula and evaluates it under the assignment.
func EvalText(src string, a Assignment) (bool, error) {
	expr, err := Parse(src)
	if err != nil {
		return false, err
	}
	return Eval(expr, a)
}

// TruthTableText parses a formula and returns its truth table.
func TruthTableText(src string) (*TruthTable, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, err
	}
	return NewTruthTable(expr), nil
}

// Process runs the whole pipeline on a textual formula: parse, build
// the truth table, minimize, format.
func Process(src string, opts ProcessOptions) (*ProcessResult, error) {
	expr, err := Parse(src)
	if err != nil {
		return nil, errors.Wrapf(err, "parse %q", src)
	}
	simplified, diag, err := Simplify(expr)
	if err != nil {
		return nil, errors.Wrapf(err, "simplify %q", src)
	}
	return &ProcessResult{
		Input:          expr,
		Simplified:     simplified,
		Simplification: Format(simplified, opts.Format),
		Table:          NewTruthTable(expr),
		Diagnostics:    diag,
	}, nil
}
