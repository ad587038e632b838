package elections

import (
	"testing"

	"electionstats/lib/elections/api"

	"github.com/stretchr/testify/require"
)

func resolved(records ...api.RawRecord) []DistrictTimeline {
	timelines := BuildTimelines(mustExtract(records...))
	for _, timeline := range timelines {
		ResolveIncumbency(timeline)
	}
	return timelines
}

func TestResolveIncumbency(t *testing.T) {
	timelines := resolved(
		testContest{
			id: "1", year: 2012, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, true),
				testCandidate("John Doe", PartyRepublican, 700, false),
			},
		}.record(),
		testContest{
			id: "2", year: 2014, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 800, false),
				testCandidate("John Doe", PartyRepublican, 850, true),
			},
		}.record(),
		testContest{
			id: "3", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("John Doe", PartyRepublican, 900, true),
			},
		}.record(),
	)

	require.Len(t, timelines, 1)
	summaries := timelines[0].Summaries
	require.Len(t, summaries, 3)

	// earliest summary has no predecessor, fields stay absent
	first := summaries[0]
	require.Equal(t, "", first.Incumbent)
	require.Equal(t, "", first.PrevParty)
	require.Equal(t, "", first.IncumbentParty)
	require.Equal(t, "", first.IncumbentStatus)
	require.Nil(t, first.OpenRace)

	second := summaries[1]
	require.Equal(t, "Jane Smith", second.Incumbent)
	require.Equal(t, PartyDemocratic, second.PrevParty)
	require.Equal(t, PartyDemocratic, second.IncumbentParty)
	require.Equal(t, StatusDemIncumbent, second.IncumbentStatus)
	require.NotNil(t, second.OpenRace)
	require.False(t, *second.OpenRace)

	third := summaries[2]
	require.Equal(t, "John Doe", third.Incumbent)
	require.Equal(t, PartyRepublican, third.PrevParty)
	require.Equal(t, PartyRepublican, third.IncumbentParty)
	require.Equal(t, StatusGopIncumbent, third.IncumbentStatus)
	require.False(t, *third.OpenRace)
}

func TestResolveIncumbencyOpenRace(t *testing.T) {
	timelines := resolved(
		testContest{
			id: "1", year: 2014, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, true),
			},
		}.record(),
		testContest{
			id: "2", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("New Face", PartyDemocratic, 500, true),
				testCandidate("Other Face", PartyRepublican, 400, false),
			},
		}.record(),
	)

	s := timelines[0].Summaries[1]
	require.Equal(t, "Jane Smith", s.Incumbent)
	require.Equal(t, "", s.IncumbentParty)
	require.Equal(t, StatusNoIncumbent, s.IncumbentStatus)
	require.NotNil(t, s.OpenRace)
	require.True(t, *s.OpenRace)
}

// An incumbent who shows up again under a different ballot line keeps
// the seat's history but resolves to "No incumbent"; this mirrors the
// source data's accounting and is intentional.
func TestResolveIncumbencyPartySwitch(t *testing.T) {
	timelines := resolved(
		testContest{
			id: "1", year: 2014, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, true),
			},
		}.record(),
		testContest{
			id: "2", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", "Unenrolled", 700, true),
				testCandidate("John Doe", PartyRepublican, 600, false),
			},
		}.record(),
	)

	s := timelines[0].Summaries[1]
	require.Equal(t, "Jane Smith", s.Incumbent)
	require.Equal(t, "Unenrolled", s.IncumbentParty)
	require.Equal(t, StatusNoIncumbent, s.IncumbentStatus)
	// the incumbent did run, so the race is not open
	require.False(t, *s.OpenRace)
}

func TestResolveIncumbencyNoWinnerPredecessor(t *testing.T) {
	timelines := resolved(
		testContest{
			id: "1", year: 2014, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, false),
			},
		}.record(),
		testContest{
			id: "2", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, true),
			},
		}.record(),
	)

	s := timelines[0].Summaries[1]
	require.Equal(t, "", s.Incumbent)
	require.Equal(t, "", s.PrevParty)
	require.Equal(t, "", s.IncumbentParty)
	require.Equal(t, StatusNoIncumbent, s.IncumbentStatus)
	// no incumbent name to find among the candidates, so the literal
	// membership test reports an open race
	require.True(t, *s.OpenRace)
}

func TestResolveIncumbencyAcrossGaps(t *testing.T) {
	// the immediately preceding contest supplies the incumbent no
	// matter how many years separate the two
	timelines := resolved(
		testContest{
			id: "1", year: 2008, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 900, true),
			},
		}.record(),
		testContest{
			id: "2", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{
				testCandidate("Jane Smith", PartyDemocratic, 800, true),
			},
		}.record(),
	)

	s := timelines[0].Summaries[1]
	require.Equal(t, "Jane Smith", s.Incumbent)
	require.Equal(t, StatusDemIncumbent, s.IncumbentStatus)
}
