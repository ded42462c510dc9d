package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/feupos/boolean-algebra/internal/boolalg"
	"github.com/feupos/boolean-algebra/internal/report"
)

var (
	wordOperators bool
	fullParens    bool
	showTable     bool
	showTrace     bool
	showCovers    bool
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify <formula>",
	Short: "Minimize a boolean formula",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := strings.Join(args, " ")
		opts := boolalg.ProcessOptions{Format: formatOptions()}
		log.Debugf("processing %q", src)
		res, err := boolalg.Process(src, opts)
		if err != nil {
			log.WithError(err).Fatal("simplify failed")
		}
		if showTable || showTrace || showCovers {
			cfg := report.Config{
				ShowTable:  showTable,
				ShowTrace:  showTrace,
				ShowCovers: showCovers,
				Format:     opts.Format,
			}
			cmd.Print(report.Make(cfg, res))
			return
		}
		cmd.Println(res.Simplification)
	},
}

func formatOptions() boolalg.FormatOptions {
	opts := boolalg.FormatOptions{}
	if wordOperators {
		opts.Operators = boolalg.OperatorsWord
	}
	if fullParens {
		opts.Parentheses = boolalg.ParensFull
	}
	return opts
}

func init() {
	simplifyCmd.Flags().BoolVar(&wordOperators, "word", false, "render NOT/AND/OR/XOR instead of symbols")
	simplifyCmd.Flags().BoolVar(&fullParens, "full-parens", false, "parenthesize every binary operator")
	simplifyCmd.Flags().BoolVar(&showTable, "table", false, "include the input's truth table")
	simplifyCmd.Flags().BoolVar(&showTrace, "trace", false, "include the minimization trace")
	simplifyCmd.Flags().BoolVar(&showCovers, "covers", false, "include every minimal cover")
}
