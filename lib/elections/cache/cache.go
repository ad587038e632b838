// Package cache wraps a search Provider with a sqlite-backed response
// cache. Historical election results never change, so a cached search
// response stays valid indefinitely; the cache exists to keep repeated
// multi-year queries from hammering the service.
package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"electionstats/lib/elections/api"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	_ "modernc.org/sqlite"
)

var tracer = otel.Tracer("elections/cache")

const schema = `
CREATE TABLE IF NOT EXISTS search_cache (
	year_from INTEGER NOT NULL,
	year_to INTEGER NOT NULL,
	office_id INTEGER NOT NULL,
	stage TEXT NOT NULL,
	response BLOB NOT NULL,
	fetched_at TEXT NOT NULL,
	PRIMARY KEY (year_from, year_to, office_id, stage)
);
`

func Open(path string) (*sql.DB, error) {
	if path == "" {
		path = ":memory:"
	}
	return sql.Open("sqlite", path)
}

// Provider caches search responses from an inner provider.
type Provider struct {
	db    *sql.DB
	inner api.Provider
}

func NewProvider(db *sql.DB, inner api.Provider) (*Provider, error) {
	_, err := db.Exec(schema)
	if err != nil {
		return nil, err
	}
	return &Provider{db: db, inner: inner}, nil
}

func (p *Provider) Search(ctx context.Context, req api.SearchRequest) ([]api.RawRecord, error) {
	ctx, span := tracer.Start(ctx, "cache:Search")
	defer span.End()

	var cached []byte
	err := p.db.QueryRowContext(
		ctx,
		`SELECT response FROM search_cache
		 WHERE year_from = ? AND year_to = ? AND office_id = ? AND stage = ?`,
		req.YearFrom, req.YearTo, req.OfficeID, req.Stage,
	).Scan(&cached)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		span.SetStatus(codes.Error, "cache read failed")
		return nil, err
	}
	if err == nil {
		var records []api.RawRecord
		err = json.Unmarshal(cached, &records)
		if err == nil {
			span.SetAttributes(attribute.Bool("cache_hit", true))
			return records, nil
		}
		// undecodable entry, fall through to a refetch
		slog.WarnContext(ctx, "dropping corrupt cache entry", "error", err)
	}
	span.SetAttributes(attribute.Bool("cache_hit", false))

	records, err := p.inner.Search(ctx, req)
	if err != nil {
		return nil, err
	}

	encoded, err := json.Marshal(records)
	if err != nil {
		span.SetStatus(codes.Error, "cache encode failed")
		return nil, err
	}
	_, err = p.db.ExecContext(
		ctx,
		`INSERT OR REPLACE INTO search_cache
		 (year_from, year_to, office_id, stage, response, fetched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		req.YearFrom, req.YearTo, req.OfficeID, req.Stage,
		encoded, time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		span.SetStatus(codes.Error, "cache write failed")
		return nil, err
	}
	return records, nil
}
