// Package elections normalizes raw Massachusetts contest records into
// per-contest summaries and derives incumbency from each district's
// election history.
package elections

import (
	"fmt"
	"strings"
	"time"

	"electionstats/lib/elections/api"
)

const (
	PartyDemocratic = "Democratic"
	PartyRepublican = "Republican"
)

type CandidateRecord struct {
	DisplayName string
	Party       string
	Votes       int
	IsWinner    bool
}

// ElectionSummary is one contest, normalized. Optional fields use the
// zero value (or a nil pointer where zero is meaningful) for "none".
type ElectionSummary struct {
	ElectionID   string
	Year         int
	Date         time.Time
	IsSpecial    bool
	Office       string
	District     string
	PartyPrimary string

	Candidates      []CandidateRecord
	NumCandidates   int
	DemCandidate    string
	GopCandidate    string
	OtherCandidates string

	DemVotes   *int
	GopVotes   *int
	TotalVotes int
	OtherVotes int
	BlankVotes int

	Winner       string
	WinnerVotes  *int
	WinnerPct    *float64
	WinningParty string
	DemPercent   *float64

	// set by ResolveIncumbency for every summary except the earliest
	// in its district timeline, where they stay structurally absent
	Incumbent       string
	PrevParty       string
	IncumbentParty  string
	IncumbentStatus string
	OpenRace        *bool
}

func parseDate(raw string) (time.Time, error) {
	date, err := time.Parse(time.DateOnly, raw)
	if err == nil {
		return date, nil
	}
	return time.Parse(time.RFC3339, raw)
}

// The service names the office differently from the office constants
// used in queries; the two comparisons below are against the service's
// own names.
func electionDistrict(raw api.RawRecord) string {
	switch raw.Office.Name {
	case "President":
		return "United States"
	case "U.S. Senate":
		return "Massachusetts"
	}
	return raw.District.DisplayName
}

// Extract normalizes one raw contest record into an ElectionSummary.
// Missing optional data (no Democratic or Republican candidate, no
// declared winner) degrades to zero-valued fields. A malformed
// mandatory numeric field fails this record only; the orchestrator
// decides whether that skips the record or aborts the query.
func Extract(raw api.RawRecord) (*ElectionSummary, error) {
	id := raw.Election.ID.String()
	fail := func(field string, err error) error {
		return fmt.Errorf("election %s: bad %s: %w", id, field, err)
	}

	year, err := raw.Election.Year.Int()
	if err != nil {
		return nil, fail("year", err)
	}
	date, err := parseDate(raw.Election.Date)
	if err != nil {
		return nil, fail("date", err)
	}
	totalVotes, err := raw.Election.NTotalVotes.Int()
	if err != nil {
		return nil, fail("n_total_votes", err)
	}
	otherVotes, err := raw.Election.NAllOtherVotes.Int()
	if err != nil {
		return nil, fail("n_all_other_votes", err)
	}
	blankVotes, err := raw.Election.NBlankVotes.Int()
	if err != nil {
		return nil, fail("n_blank_votes", err)
	}

	candidates := make([]CandidateRecord, len(raw.Candidates))
	for i, c := range raw.Candidates {
		votes := 0
		if c.ToElection.NVotes != "" {
			votes, err = c.ToElection.NVotes.Int()
			if err != nil {
				return nil, fail(fmt.Sprintf("candidate %d n_votes", i), err)
			}
		}
		name := c.ToElection.DisplayName
		if name == "" {
			name = c.DisplayName
		}
		candidates[i] = CandidateRecord{
			DisplayName: name,
			Party:       c.ToElection.Party.String(),
			Votes:       votes,
			IsWinner:    c.ToElection.IsWinner.Bool(),
		}
	}

	partyPrimary := ""
	if raw.Election.PartyPrimary.Bool() {
		partyPrimary = raw.Election.PartyPrimary.String()
	}

	s := &ElectionSummary{
		ElectionID:    id,
		Year:          year,
		Date:          date,
		IsSpecial:     raw.Election.IsSpecial.Bool(),
		Office:        raw.Office.Name,
		District:      electionDistrict(raw),
		PartyPrimary:  partyPrimary,
		Candidates:    candidates,
		NumCandidates: len(candidates),
		TotalVotes:    totalVotes,
		OtherVotes:    otherVotes,
		BlankVotes:    blankVotes,
	}

	fillPartyFields(s)
	fillWinnerFields(s)
	return s, nil
}

// party matching is exact string equality, anything that isn't
// Democratic or Republican counts as "other"
func fillPartyFields(s *ElectionSummary) {
	var others []string
	for _, c := range s.Candidates {
		switch c.Party {
		case PartyDemocratic:
			if s.DemCandidate == "" {
				c := c
				s.DemCandidate = c.DisplayName
				s.DemVotes = &c.Votes
			}
		case PartyRepublican:
			if s.GopCandidate == "" {
				c := c
				s.GopCandidate = c.DisplayName
				s.GopVotes = &c.Votes
			}
		default:
			others = append(others, c.DisplayName)
		}
	}
	s.OtherCandidates = strings.Join(others, ",")

	if s.DemVotes != nil && s.GopVotes != nil && *s.DemVotes+*s.GopVotes > 0 {
		pct := float64(*s.DemVotes) / float64(*s.DemVotes+*s.GopVotes)
		s.DemPercent = &pct
	}
}

// the winner is the first candidate flagged is_winner; zero flagged
// candidates yields a no-winner summary, not an error
func fillWinnerFields(s *ElectionSummary) {
	for _, c := range s.Candidates {
		if !c.IsWinner {
			continue
		}
		c := c
		s.Winner = c.DisplayName
		s.WinnerVotes = &c.Votes
		if s.TotalVotes > 0 {
			pct := float64(c.Votes) / float64(s.TotalVotes)
			s.WinnerPct = &pct
		}
		if s.PartyPrimary != "" {
			s.WinningParty = s.PartyPrimary
		} else {
			s.WinningParty = c.Party
		}
		return
	}
}
