package elections

import (
	"context"
	"fmt"
	"log/slog"

	"electionstats/lib/elections/api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("elections")

type QueryRequest struct {
	YearFrom int
	YearTo   int
	Office   Office
	Stage    Stage
}

type QueryOptions struct {
	// keep contests with zero candidates
	IncludeNoCandidateContests bool
	// keep special elections
	IncludeSpecialElections bool
	// skip contest records that fail extraction instead of aborting
	// the whole query
	SkipMalformedRecords bool
}

// QueryElections retrieves, normalizes and resolves every contest for
// the office and stage in [YearFrom, YearTo], returned sorted by
// (date, district). Each year is fetched with one extra election cycle
// of lookback so the preceding contest in the same district is always
// available for incumbency derivation; lookback-only rows are not
// returned. A year with zero qualifying contests contributes no rows.
// A provider fetch failure aborts the whole range.
func QueryElections(ctx context.Context, provider api.Provider, req QueryRequest, opts QueryOptions) ([]*ElectionSummary, error) {
	ctx, span := tracer.Start(ctx, "query:QueryElections")
	defer span.End()
	span.SetAttributes(
		attribute.Int("year_from", req.YearFrom),
		attribute.Int("year_to", req.YearTo),
		attribute.String("office", string(req.Office)),
		attribute.String("stage", string(req.Stage)),
	)

	officeID, err := req.Office.ID()
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	if req.YearFrom > req.YearTo {
		err := fmt.Errorf("year_from %d is after year_to %d", req.YearFrom, req.YearTo)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	var merged []*ElectionSummary
	for year := req.YearFrom; year <= req.YearTo; year++ {
		rows, err := queryElectionsYear(ctx, provider, year, officeID, req, opts)
		if err != nil {
			span.SetStatus(codes.Error, err.Error())
			return nil, err
		}
		merged = append(merged, rows...)
	}

	SortSummaries(merged)
	return merged, nil
}

func queryElectionsYear(ctx context.Context, provider api.Provider, year, officeID int, req QueryRequest, opts QueryOptions) ([]*ElectionSummary, error) {
	ctx, span := tracer.Start(ctx, "query:year")
	defer span.End()
	span.SetAttributes(attribute.Int("year", year))

	// include the previous election for incumbency determination
	records, err := provider.Search(ctx, api.SearchRequest{
		YearFrom: year - req.Office.CycleLength(),
		YearTo:   year,
		OfficeID: officeID,
		Stage:    string(req.Stage),
	})
	if err != nil {
		span.SetStatus(codes.Error, "provider search failed")
		return nil, fmt.Errorf("search year %d: %w", year, err)
	}

	summaries := make([]*ElectionSummary, 0, len(records))
	for _, record := range records {
		s, err := Extract(record)
		if err != nil {
			if opts.SkipMalformedRecords {
				slog.WarnContext(ctx, "skipping malformed contest record", "error", err)
				continue
			}
			span.SetStatus(codes.Error, "extraction failed")
			return nil, err
		}
		summaries = append(summaries, s)
	}

	if !opts.IncludeNoCandidateContests {
		summaries = filterSummaries(summaries, func(s *ElectionSummary) bool {
			return s.NumCandidates != 0
		})
	}

	for _, timeline := range BuildTimelines(summaries) {
		ResolveIncumbency(timeline)
	}

	// drop lookback-only rows
	summaries = filterSummaries(summaries, func(s *ElectionSummary) bool {
		return s.Year == year
	})
	if !opts.IncludeSpecialElections {
		summaries = filterSummaries(summaries, func(s *ElectionSummary) bool {
			return !s.IsSpecial
		})
	}

	slog.DebugContext(ctx, "queried elections",
		"year", year,
		"office", req.Office,
		"stage", req.Stage,
		"contests", len(summaries),
	)
	return summaries, nil
}

func filterSummaries(summaries []*ElectionSummary, keep func(*ElectionSummary) bool) []*ElectionSummary {
	out := summaries[:0]
	for _, s := range summaries {
		if keep(s) {
			out = append(out, s)
		}
	}
	return out
}
