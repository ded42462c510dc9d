package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	boolean "github.com/feupos/boolean-algebra"
)

var (
	verbose bool

	log = logrus.New()
)

var rootCmd = &cobra.Command{
	Use:           "boolmin",
	Short:         "boolmin - minimize boolean expressions",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose {
			log.SetLevel(logrus.DebugLevel)
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the boolmin version",
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Println(boolean.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(evalCmd)
	rootCmd.AddCommand(versionCmd)
}
