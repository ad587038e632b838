package elections

import (
	"testing"

	"electionstats/lib/elections/api"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func timelineFixture() []api.RawRecord {
	return []api.RawRecord{
		testContest{
			id: "1", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{testCandidate("A", PartyDemocratic, 10, true)},
		}.record(),
		testContest{
			id: "2", year: 2014, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{testCandidate("B", PartyRepublican, 10, true)},
		}.record(),
		testContest{
			id: "3", year: 2014, office: "State Representative", district: "Second Essex",
			cands: []api.RawCandidate{testCandidate("C", PartyDemocratic, 10, true)},
		}.record(),
		testContest{
			id: "4", year: 2016, office: "State Representative", district: "Second Essex",
			cands: []api.RawCandidate{testCandidate("D", PartyDemocratic, 10, true)},
		}.record(),
	}
}

func TestBuildTimelines(t *testing.T) {
	summaries := mustExtract(timelineFixture()...)
	timelines := BuildTimelines(summaries)

	require.Len(t, timelines, 2)
	require.Equal(t, "First Middlesex", timelines[0].District)
	require.Equal(t, "Second Essex", timelines[1].District)

	// chronological within each timeline, regardless of retrieval order
	for _, timeline := range timelines {
		require.NotEmpty(t, timeline.Summaries)
		for i := 1; i < len(timeline.Summaries); i++ {
			prev := timeline.Summaries[i-1]
			cur := timeline.Summaries[i]
			require.Equal(t, timeline.District, cur.District)
			require.False(t, cur.Date.Before(prev.Date))
		}
	}
	require.Equal(t, "2", timelines[0].Summaries[0].ElectionID)
	require.Equal(t, "1", timelines[0].Summaries[1].ElectionID)
}

func TestBuildTimelinesSameDayKeepsRetrievalOrder(t *testing.T) {
	summaries := mustExtract(
		testContest{
			id: "10", year: 2014, date: "2014-11-04",
			office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{testCandidate("A", PartyDemocratic, 10, true)},
		}.record(),
		testContest{
			id: "11", year: 2014, date: "2014-11-04",
			office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{testCandidate("B", PartyDemocratic, 10, true)},
		}.record(),
	)

	timelines := BuildTimelines(summaries)
	require.Len(t, timelines, 1)
	require.Equal(t, "10", timelines[0].Summaries[0].ElectionID)
	require.Equal(t, "11", timelines[0].Summaries[1].ElectionID)
}

func TestBuildTimelinesDeterministic(t *testing.T) {
	first := BuildTimelines(mustExtract(timelineFixture()...))
	second := BuildTimelines(mustExtract(timelineFixture()...))

	diff := cmp.Diff(first, second)
	require.Empty(t, diff)
}

func TestSortSummaries(t *testing.T) {
	summaries := mustExtract(
		testContest{
			id: "20", year: 2016, office: "State Representative", district: "Second Essex",
			cands: []api.RawCandidate{testCandidate("A", PartyDemocratic, 10, true)},
		}.record(),
		testContest{
			id: "21", year: 2016, office: "State Representative", district: "First Middlesex",
			cands: []api.RawCandidate{testCandidate("B", PartyDemocratic, 10, true)},
		}.record(),
		testContest{
			id: "22", year: 2014, office: "State Representative", district: "Second Essex",
			cands: []api.RawCandidate{testCandidate("C", PartyDemocratic, 10, true)},
		}.record(),
	)

	SortSummaries(summaries)

	require.Equal(t, "22", summaries[0].ElectionID)
	require.Equal(t, "21", summaries[1].ElectionID)
	require.Equal(t, "20", summaries[2].ElectionID)
}
