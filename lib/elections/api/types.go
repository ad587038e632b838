// Package api speaks the wire format of the electionstats.state.ma.us
// election-data service: the JSON search endpoint and the CSV
// precinct/town download endpoint.
package api

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"
)

// The service is loose about scalar types: depending on the endpoint
// and the age of the record, numeric fields arrive as JSON numbers or
// as strings, and nullable fields arrive as null, false or "". Value
// captures any scalar without failing; coercion to a concrete type
// happens in the extractor where a bad value can be rejected for that
// record alone.
type Value string

func (v *Value) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*v = ""
		return nil
	}
	if len(trimmed) > 0 && trimmed[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		*v = Value(s)
		return nil
	}
	*v = Value(trimmed)
	return nil
}

func (v Value) String() string {
	return string(v)
}

// Int coerces the value to an integer, failing on anything that is not
// a plain base-10 number.
func (v Value) Int() (int, error) {
	return strconv.Atoi(strings.TrimSpace(string(v)))
}

// Bool interprets the value the way the service means it: absent,
// null, zero and false are false, anything else is true.
func (v Value) Bool() bool {
	switch strings.ToLower(strings.TrimSpace(string(v))) {
	case "", "0", "false", "null":
		return false
	}
	return true
}

type RawElection struct {
	ID             Value  `json:"id"`
	Year           Value  `json:"year"`
	Date           string `json:"date"`
	IsSpecial      Value  `json:"is_special"`
	PartyPrimary   Value  `json:"party_primary"`
	NTotalVotes    Value  `json:"n_total_votes"`
	NAllOtherVotes Value  `json:"n_all_other_votes"`
	NBlankVotes    Value  `json:"n_blank_votes"`
}

type RawOffice struct {
	Name string `json:"name"`
}

type RawDistrict struct {
	DisplayName string `json:"display_name"`
}

type RawCandidateToElection struct {
	DisplayName string `json:"display_name"`
	Party       Value  `json:"party"`
	NVotes      Value  `json:"n_votes"`
	IsWinner    Value  `json:"is_winner"`
}

type RawCandidate struct {
	DisplayName string                 `json:"display_name"`
	ToElection  RawCandidateToElection `json:"CandidateToElection"`
}

// RawRecord is one contest as returned by the search endpoint.
type RawRecord struct {
	Election   RawElection    `json:"Election"`
	Office     RawOffice      `json:"Office"`
	District   RawDistrict    `json:"District"`
	Candidates []RawCandidate `json:"Candidate"`
}

type SearchResponse struct {
	Output []RawRecord `json:"output"`
}

type SearchRequest struct {
	YearFrom int
	YearTo   int
	OfficeID int
	Stage    string
}

// Provider returns raw contest records for a (year range, office,
// stage) query.
type Provider interface {
	Search(ctx context.Context, req SearchRequest) ([]RawRecord, error)
}

// PrecinctReader returns the per-precinct (or per-town) result table
// for a single election.
type PrecinctReader interface {
	ReadElection(ctx context.Context, electionID string, includePrecincts bool) (*PrecinctTable, error)
}
