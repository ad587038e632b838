package tableutil

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"electionstats/lib/elections"

	"github.com/jedib0t/go-pretty/v6/table"
)

func NewTable(out io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetStyle(table.StyleRounded)
	t.SetOutputMirror(out)
	return t
}

func formatIntPtr(v *int) string {
	if v == nil {
		return ""
	}
	return strconv.Itoa(*v)
}

func formatPctPtr(v *float64) string {
	if v == nil {
		return ""
	}
	return fmt.Sprintf("%.4f", *v)
}

func formatBoolPtr(v *bool) string {
	if v == nil {
		return ""
	}
	return strconv.FormatBool(*v)
}

// SummaryColumns is the flattened header of the output table, in
// stable order. Candidates stay nested on the summary itself for
// consumers that need per-candidate detail.
var SummaryColumns = []string{
	"election_id", "year", "date", "is_special", "office", "district",
	"party_primary", "num_candidates", "dem_candidate", "gop_candidate",
	"other_candidates", "dem_votes", "gop_votes", "total_votes",
	"other_votes", "blank_votes", "winner", "winner_votes", "winner_pct",
	"winning_party", "dem_percent", "incumbent", "prev_party",
	"incumbent_party", "incumbent_status", "open_race",
}

// SummaryRecord flattens one summary into strings matching
// SummaryColumns, suitable for CSV output.
func SummaryRecord(s *elections.ElectionSummary) []string {
	return []string{
		s.ElectionID,
		strconv.Itoa(s.Year),
		s.Date.Format(time.DateOnly),
		strconv.FormatBool(s.IsSpecial),
		s.Office,
		s.District,
		s.PartyPrimary,
		strconv.Itoa(s.NumCandidates),
		s.DemCandidate,
		s.GopCandidate,
		s.OtherCandidates,
		formatIntPtr(s.DemVotes),
		formatIntPtr(s.GopVotes),
		strconv.Itoa(s.TotalVotes),
		strconv.Itoa(s.OtherVotes),
		strconv.Itoa(s.BlankVotes),
		s.Winner,
		formatIntPtr(s.WinnerVotes),
		formatPctPtr(s.WinnerPct),
		s.WinningParty,
		formatPctPtr(s.DemPercent),
		s.Incumbent,
		s.PrevParty,
		s.IncumbentParty,
		s.IncumbentStatus,
		formatBoolPtr(s.OpenRace),
	}
}

// RenderSummaries prints a readable subset of the summary fields.
func RenderSummaries(out io.Writer, summaries []*elections.ElectionSummary) {
	t := NewTable(out)
	t.AppendHeader(table.Row{
		"id", "date", "district", "winner", "party",
		"winner %", "dem %", "incumbent", "status", "open",
	})
	for _, s := range summaries {
		t.AppendRow(table.Row{
			s.ElectionID,
			s.Date.Format(time.DateOnly),
			s.District,
			s.Winner,
			s.WinningParty,
			formatPctPtr(s.WinnerPct),
			formatPctPtr(s.DemPercent),
			s.Incumbent,
			s.IncumbentStatus,
			formatBoolPtr(s.OpenRace),
		})
	}
	t.Render()
}

// RenderPrecincts prints a precinct/town result table.
func RenderPrecincts(out io.Writer, columns []string, rows [][]string) {
	t := NewTable(out)
	header := make(table.Row, len(columns))
	for i, col := range columns {
		header[i] = col
	}
	t.AppendHeader(header)
	for _, row := range rows {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		t.AppendRow(r)
	}
	t.Render()
}
