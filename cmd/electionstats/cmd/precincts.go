package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"electionstats/lib/tableutil"

	"github.com/spf13/cobra"
)

var (
	flagTowns           bool
	flagPrecinctsFormat string
)

func init() {
	precinctsCmd.Flags().BoolVar(&flagTowns, "towns", false, "aggregate to town level instead of precincts")
	precinctsCmd.Flags().StringVar(&flagPrecinctsFormat, "format", "table", "output format (table or csv)")

	rootCmd.AddCommand(precinctsCmd)
}

var precinctsCmd = &cobra.Command{
	Use:   "precincts <election id>",
	Short: "Download the precinct-by-precinct results for one election.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		electionID := args[0]

		table, err := client.ReadElection(cmd.Context(), electionID, !flagTowns)
		if err != nil {
			fatal("download failed", err)
		}

		switch flagPrecinctsFormat {
		case "table":
			tableutil.RenderPrecincts(os.Stdout, table.Columns, table.Rows)
		case "csv":
			w := csv.NewWriter(os.Stdout)
			w.Write(table.Columns)
			w.WriteAll(table.Rows)
			if err := w.Error(); err != nil {
				fatal("failed to write csv", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown format %q\n", flagPrecinctsFormat)
			os.Exit(1)
		}
	},
}
