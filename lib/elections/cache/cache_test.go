package cache

import (
	"context"
	"errors"
	"testing"

	"electionstats/lib/elections/api"

	"github.com/stretchr/testify/require"
)

type countingProvider struct {
	calls   int
	records []api.RawRecord
	err     error
}

func (c *countingProvider) Search(ctx context.Context, req api.SearchRequest) ([]api.RawRecord, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.records, nil
}

func testRecords() []api.RawRecord {
	return []api.RawRecord{
		{
			Election: api.RawElection{
				ID:             api.Value("131567"),
				Year:           api.Value("2016"),
				Date:           "2016-11-08",
				NTotalVotes:    api.Value("1675"),
				NAllOtherVotes: api.Value("0"),
				NBlankVotes:    api.Value("100"),
			},
			Office:   api.RawOffice{Name: "State Representative"},
			District: api.RawDistrict{DisplayName: "First Middlesex"},
			Candidates: []api.RawCandidate{
				{
					DisplayName: "Jane Smith",
					ToElection: api.RawCandidateToElection{
						DisplayName: "Jane Smith",
						Party:       api.Value("Democratic"),
						NVotes:      api.Value("1000"),
						IsWinner:    api.Value("1"),
					},
				},
			},
		},
	}
}

func TestProviderCachesResponses(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	inner := &countingProvider{records: testRecords()}
	provider, err := NewProvider(db, inner)
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	req := api.SearchRequest{YearFrom: 2014, YearTo: 2016, OfficeID: 8, Stage: "General"}

	first, err := provider.Search(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, inner.calls)
	require.Len(t, first, 1)

	second, err := provider.Search(ctx, req)
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 1, inner.calls)
	require.Equal(t, first, second)

	// the round trip through the cache keeps the wire scalars intact
	require.Equal(t, "131567", second[0].Election.ID.String())
	require.True(t, second[0].Candidates[0].ToElection.IsWinner.Bool())

	// a different window is its own cache entry
	_, err = provider.Search(ctx, api.SearchRequest{
		YearFrom: 2012, YearTo: 2014, OfficeID: 8, Stage: "General",
	})
	if err != nil {
		t.Fatal(err)
	}
	require.Equal(t, 2, inner.calls)
}

func TestProviderPassesThroughErrors(t *testing.T) {
	db, err := Open(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	inner := &countingProvider{err: errors.New("service unavailable")}
	provider, err := NewProvider(db, inner)
	if err != nil {
		t.Fatal(err)
	}

	_, err = provider.Search(context.Background(), api.SearchRequest{
		YearFrom: 2014, YearTo: 2016, OfficeID: 8, Stage: "General",
	})
	require.Error(t, err)

	// failures are not cached
	_, err = provider.Search(context.Background(), api.SearchRequest{
		YearFrom: 2014, YearTo: 2016, OfficeID: 8, Stage: "General",
	})
	require.Error(t, err)
	require.Equal(t, 2, inner.calls)
}
