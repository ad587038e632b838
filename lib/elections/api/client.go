package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"electionstats/lib/telemetry"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("elections/api")

const DefaultBaseURL = "http://electionstats.state.ma.us"

// Client implements Provider and PrecinctReader against the live
// service. It is safe for concurrent use.
type Client struct {
	http *resty.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetHeader("Accept", "application/json")

	telemetry.InstrumentResty(client, "elections/http")

	return &Client{http: client}
}

func (c *Client) Search(ctx context.Context, req SearchRequest) ([]RawRecord, error) {
	ctx, span := tracer.Start(ctx, "client:Search")
	defer span.End()

	res, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf(
			"/elections/search/year_from:%d/year_to:%d/office_id:%d/stage:%s",
			req.YearFrom, req.YearTo, req.OfficeID, req.Stage,
		))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch search results")
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("search returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var body SearchResponse
	err = json.Unmarshal(res.Body(), &body)
	if err != nil {
		span.SetStatus(codes.Error, "failed to decode search results")
		return nil, fmt.Errorf("decode search results: %w", err)
	}
	return body.Output, nil
}

// ViewURL returns the human-facing page for a single election.
func (c *Client) ViewURL(electionID string) string {
	return fmt.Sprintf("%s/elections/view/%s/", c.http.BaseURL, electionID)
}

func (c *Client) ReadElection(ctx context.Context, electionID string, includePrecincts bool) (*PrecinctTable, error) {
	ctx, span := tracer.Start(ctx, "client:ReadElection")
	defer span.End()

	include := 0
	if includePrecincts {
		include = 1
	}
	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "text/csv").
		Get(fmt.Sprintf(
			"/elections/download/%s/precincts_include:%d/",
			electionID, include,
		))
	if err != nil {
		span.SetStatus(codes.Error, "failed to fetch results csv")
		return nil, err
	}
	if res.StatusCode() != 200 {
		err := fmt.Errorf("download returned status %d", res.StatusCode())
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	table, err := DecodePrecinctCSV(electionID, bytes.NewReader(res.Body()), includePrecincts)
	if err != nil {
		span.SetStatus(codes.Error, "failed to decode results csv")
		return nil, err
	}
	return table, nil
}
