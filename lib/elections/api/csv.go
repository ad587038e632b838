package api

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

// PrecinctTable is the decoded result of the download endpoint: one
// row per precinct (or per town), vote columns per candidate. It is
// joined to summaries by ElectionID only.
type PrecinctTable struct {
	ElectionID string
	Columns    []string
	Rows       [][]string
}

func (t *PrecinctTable) ColumnIndex(name string) int {
	for i, col := range t.Columns {
		if col == name {
			return i
		}
	}
	return -1
}

// Ints returns a numeric column as integers.
func (t *PrecinctTable) Ints(name string) ([]int, error) {
	idx := t.ColumnIndex(name)
	if idx < 0 {
		return nil, fmt.Errorf("no column named %q", name)
	}
	out := make([]int, len(t.Rows))
	for i, row := range t.Rows {
		n, err := strconv.Atoi(row[idx])
		if err != nil {
			return nil, fmt.Errorf("column %q row %d: %w", name, i, err)
		}
		out[i] = n
	}
	return out, nil
}

var thousandsPattern = regexp.MustCompile(`^-?\d{1,3}(,\d{3})+$`)

func normalizeCell(cell string) string {
	cell = strings.TrimSpace(cell)
	if thousandsPattern.MatchString(cell) {
		return strings.ReplaceAll(cell, ",", "")
	}
	return cell
}

// The download CSV has three quirks: a second sub-header row under the
// real header, a trailing totals row, and comma thousands separators
// in vote counts. Town-level downloads additionally carry empty-named
// and Ward/Pct columns that only make sense per precinct, which are
// dropped when includePrecincts is false.
func DecodePrecinctCSV(electionID string, r io.Reader, includePrecincts bool) (*PrecinctTable, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read results csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("results csv for election %s is empty", electionID)
	}

	header := records[0]
	keep := make([]int, 0, len(header))
	for i, col := range header {
		col = strings.TrimSpace(col)
		if !includePrecincts && (col == "" || col == "Ward" || col == "Pct") {
			continue
		}
		keep = append(keep, i)
	}

	columns := make([]string, len(keep))
	for i, idx := range keep {
		columns[i] = strings.TrimSpace(header[idx])
	}

	// skip the sub-header row, drop the totals footer
	var data [][]string
	if len(records) > 2 {
		data = records[2 : len(records)-1]
	}

	rows := make([][]string, 0, len(data))
	for _, record := range data {
		row := make([]string, len(keep))
		for i, idx := range keep {
			if idx >= len(record) {
				continue
			}
			row[i] = normalizeCell(record[idx])
		}
		rows = append(rows, row)
	}

	return &PrecinctTable{
		ElectionID: electionID,
		Columns:    columns,
		Rows:       rows,
	}, nil
}
