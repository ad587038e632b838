package elections

import (
	"fmt"
	"strconv"
	"time"

	"electionstats/lib/elections/api"
)

func testCandidate(name, party string, votes int, winner bool) api.RawCandidate {
	isWinner := "0"
	if winner {
		isWinner = "1"
	}
	return api.RawCandidate{
		DisplayName: name,
		ToElection: api.RawCandidateToElection{
			DisplayName: name,
			Party:       api.Value(party),
			NVotes:      api.Value(strconv.Itoa(votes)),
			IsWinner:    api.Value(isWinner),
		},
	}
}

type testContest struct {
	id        string
	year      int
	date      string
	office    string
	district  string
	isSpecial bool
	primary   string
	blank     int
	cands     []api.RawCandidate
}

func (c testContest) record() api.RawRecord {
	total := c.blank
	for _, cand := range c.cands {
		votes, _ := cand.ToElection.NVotes.Int()
		total += votes
	}
	date := c.date
	if date == "" {
		date = fmt.Sprintf("%d-11-03", c.year)
	}
	isSpecial := "0"
	if c.isSpecial {
		isSpecial = "1"
	}
	return api.RawRecord{
		Election: api.RawElection{
			ID:             api.Value(c.id),
			Year:           api.Value(strconv.Itoa(c.year)),
			Date:           date,
			IsSpecial:      api.Value(isSpecial),
			PartyPrimary:   api.Value(c.primary),
			NTotalVotes:    api.Value(strconv.Itoa(total)),
			NAllOtherVotes: api.Value("0"),
			NBlankVotes:    api.Value(strconv.Itoa(c.blank)),
		},
		Office:     api.RawOffice{Name: c.office},
		District:   api.RawDistrict{DisplayName: c.district},
		Candidates: c.cands,
	}
}

func mustExtract(records ...api.RawRecord) []*ElectionSummary {
	out := make([]*ElectionSummary, len(records))
	for i, r := range records {
		s, err := Extract(r)
		if err != nil {
			panic(err)
		}
		out[i] = s
	}
	return out
}

func date(value string) time.Time {
	d, err := time.Parse(time.DateOnly, value)
	if err != nil {
		panic(err)
	}
	return d
}
