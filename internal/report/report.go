// Package report renders minimization artifacts - truth table, QMC
// trace, covers - as console text.
package report

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/feupos/boolean-algebra/internal/boolalg"
)

type Config struct {
	ShowTable  bool
	ShowTrace  bool
	ShowCovers bool
	Format     boolalg.FormatOptions
}

// Make generates the report text for one processed formula.
func Make(cfg Config, res *boolalg.ProcessResult) string {
	var buf strings.Builder
	fmt.Fprintf(&buf, "input:      %s\n", boolalg.Format(res.Input, cfg.Format))
	fmt.Fprintf(&buf, "simplified: %s\n", res.Simplification)
	if cfg.ShowTable {
		buf.WriteByte('\n')
		buf.WriteString(TruthTable(res.Table))
	}
	if cfg.ShowTrace {
		buf.WriteByte('\n')
		buf.WriteString(Trace(res.Diagnostics))
	}
	if cfg.ShowCovers {
		buf.WriteByte('\n')
		buf.WriteString(Covers(res.Diagnostics))
	}
	return buf.String()
}

// TruthTable renders t with one column per variable plus the result.
func TruthTable(t *boolalg.TruthTable) string {
	var buf strings.Builder
	tw := tablewriter.NewWriter(&buf)
	tw.SetAutoFormatHeaders(false)
	header := append(append([]string{"#"}, t.Vars...), "=")
	tw.SetHeader(header)
	for _, row := range t.Rows {
		cells := make([]string, 0, len(row.Values)+2)
		cells = append(cells, fmt.Sprintf("%d", row.Index))
		for _, v := range row.Values {
			cells = append(cells, bit(v))
		}
		cells = append(cells, bit(row.Result))
		tw.Append(cells)
	}
	tw.Render()
	return buf.String()
}

// Trace renders the QMC pass-by-pass narrative followed by the prime
// implicants.
func Trace(d *boolalg.Diagnostics) string {
	n := len(d.Vars)
	var buf strings.Builder
	for i, step := range d.Trace {
		switch step.Kind {
		case boolalg.TraceGrouping:
			buf.WriteString("initial grouping\n")
			writeGroups(&buf, step.GroupsAfter, n)
		case boolalg.TraceMerge:
			fmt.Fprintf(&buf, "pass %d\n", i)
			for _, m := range step.Merges {
				fmt.Fprintf(&buf, "  groups %d+%d: merged [%s] unmerged [%s]\n",
					m.Key, m.NextKey, patterns(m.Merged, n), patterns(m.Unmerged, n))
			}
			if len(step.UnmergedCarried) > 0 {
				fmt.Fprintf(&buf, "  carried as prime [%s]\n", patterns(step.UnmergedCarried, n))
			}
			writeGroups(&buf, step.GroupsAfter, n)
		}
	}
	fmt.Fprintf(&buf, "prime implicants: %s\n", patterns(d.Primes, n))
	return buf.String()
}

// Covers renders every minimal cover and marks the selected one.
func Covers(d *boolalg.Diagnostics) string {
	n := len(d.Vars)
	var buf strings.Builder
	tw := tablewriter.NewWriter(&buf)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"cover", "literals", "selected"})
	for _, c := range d.Covers {
		mark := ""
		if coverEqual(c, d.Selected) {
			mark = "*"
		}
		tw.Append([]string{patterns(c, n), fmt.Sprintf("%d", literals(c)), mark})
	}
	tw.Render()
	return buf.String()
}

func writeGroups(buf *strings.Builder, groups []boolalg.Group, n int) {
	for _, g := range groups {
		fmt.Fprintf(buf, "  group %d: %s\n", g.Key, patterns(g.Implicants, n))
	}
}

func patterns(imps []boolalg.Implicant, n int) string {
	parts := make([]string, 0, len(imps))
	for _, im := range imps {
		parts = append(parts, im.Pattern(n))
	}
	return strings.Join(parts, " ")
}

func literals(cover []boolalg.Implicant) int {
	total := 0
	for _, im := range cover {
		total += im.LiteralCount()
	}
	return total
}

func coverEqual(a, b []boolalg.Implicant) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func bit(v bool) string {
	if v {
		return "1"
	}
	return "0"
}
