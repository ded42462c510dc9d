package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/feupos/boolean-algebra/internal/boolalg"
	"github.com/feupos/boolean-algebra/internal/report"
)

var tableCmd = &cobra.Command{
	Use:   "table <formula>",
	Short: "Print the truth table of a formula",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := strings.Join(args, " ")
		t, err := boolalg.TruthTableText(src)
		if err != nil {
			log.WithError(err).Fatal("table failed")
		}
		cmd.Print(report.TruthTable(t))
	},
}
