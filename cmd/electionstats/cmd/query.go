package cmd

import (
	"encoding/csv"
	"fmt"
	"os"

	"electionstats/lib/elections"
	"electionstats/lib/tableutil"

	"github.com/spf13/cobra"
)

var (
	flagYearFrom        int
	flagYearTo          int
	flagOffice          string
	flagStage           string
	flagIncludeNoCands  bool
	flagIncludeSpecials bool
	flagSkipMalformed   bool
	flagQueryFormat     string
)

func init() {
	queryCmd.Flags().IntVar(&flagYearFrom, "year-from", 0, "first year to return results for")
	queryCmd.Flags().IntVar(&flagYearTo, "year-to", 0, "last year to return results for")
	queryCmd.Flags().StringVar(&flagOffice, "office", string(elections.OfficeStateRep), "office to query")
	queryCmd.Flags().StringVar(&flagStage, "stage", string(elections.StageGeneral), "stage to query (General, Primaries, Democratic, Republican)")
	queryCmd.Flags().BoolVar(&flagIncludeNoCands, "include-no-candidate-contests", false, "keep contests with zero candidates")
	queryCmd.Flags().BoolVar(&flagIncludeSpecials, "include-specials", false, "keep special elections")
	queryCmd.Flags().BoolVar(&flagSkipMalformed, "skip-malformed", false, "skip contest records that fail extraction")
	queryCmd.Flags().StringVar(&flagQueryFormat, "format", "table", "output format (table or csv)")
	queryCmd.MarkFlagRequired("year-from")
	queryCmd.MarkFlagRequired("year-to")

	rootCmd.AddCommand(queryCmd)
}

var queryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query normalized election summaries for a year range.",
	Run: func(cmd *cobra.Command, args []string) {
		summaries, err := elections.QueryElections(
			cmd.Context(),
			provider,
			elections.QueryRequest{
				YearFrom: flagYearFrom,
				YearTo:   flagYearTo,
				Office:   elections.Office(flagOffice),
				Stage:    elections.Stage(flagStage),
			},
			elections.QueryOptions{
				IncludeNoCandidateContests: flagIncludeNoCands,
				IncludeSpecialElections:    flagIncludeSpecials,
				SkipMalformedRecords:       flagSkipMalformed,
			},
		)
		if err != nil {
			fatal("query failed", err)
		}

		switch flagQueryFormat {
		case "table":
			tableutil.RenderSummaries(os.Stdout, summaries)
		case "csv":
			w := csv.NewWriter(os.Stdout)
			w.Write(tableutil.SummaryColumns)
			for _, s := range summaries {
				w.Write(tableutil.SummaryRecord(s))
			}
			w.Flush()
			if err := w.Error(); err != nil {
				fatal("failed to write csv", err)
			}
		default:
			fmt.Fprintf(os.Stderr, "unknown format %q\n", flagQueryFormat)
			os.Exit(1)
		}
	},
}
