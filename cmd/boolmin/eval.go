package main

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/feupos/boolean-algebra/internal/boolalg"
)

var evalSets []string

var evalCmd = &cobra.Command{
	Use:   "eval <formula>",
	Short: "Evaluate a formula under an assignment",
	Args:  cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		src := strings.Join(args, " ")
		asn, err := parseAssignment(evalSets)
		if err != nil {
			log.WithError(err).Fatal("eval failed")
		}
		res, err := boolalg.EvalText(src, asn)
		if err != nil {
			log.WithError(err).Fatal("eval failed")
		}
		if res {
			cmd.Println("1")
		} else {
			cmd.Println("0")
		}
	},
}

func parseAssignment(sets []string) (boolalg.Assignment, error) {
	asn := make(boolalg.Assignment, len(sets))
	for _, s := range sets {
		parts := strings.SplitN(s, "=", 2)
		if len(parts) != 2 || parts[0] == "" {
			return nil, errors.Errorf("invalid assignment %q, want name=value", s)
		}
		switch strings.ToLower(strings.TrimSpace(parts[1])) {
		case "1", "true":
			asn[strings.TrimSpace(parts[0])] = true
		case "0", "false":
			asn[strings.TrimSpace(parts[0])] = false
		default:
			return nil, errors.Errorf("invalid value in %q, want 0/1/true/false", s)
		}
	}
	return asn, nil
}

func init() {
	evalCmd.Flags().StringArrayVarP(&evalSets, "set", "s", nil, "variable assignment name=value (repeatable)")
}
