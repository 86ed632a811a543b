package io

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/blydeben/sankey-app/pkg/flow"
)

// Clean drops edges that would be invalid input for the engine: empty
// source or target, or a value that is negative or not finite. The input
// order of surviving edges is preserved, since it drives builder order.
func Clean(edges []flow.Edge) []flow.Edge {
	out := make([]flow.Edge, 0, len(edges))
	for _, e := range edges {
		if e.Source == "" || e.Target == "" {
			continue
		}
		if e.Value < 0 || math.IsNaN(e.Value) || math.IsInf(e.Value, 0) {
			continue
		}
		out = append(out, e)
	}
	return out
}

// ReadCSV reads source,target,value rows from r.
//
// A header row matching "source,target,value" (any case) is skipped.
// Malformed rows (too few columns, blank labels, unparsable or negative
// values) are dropped, not reported: the upstream editor produces partial
// rows during normal use. Only a structurally broken CSV stream is an error.
func ReadCSV(r io.Reader) ([]flow.Edge, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}

	var edges []flow.Edge
	for i, record := range records {
		if i == 0 && isHeader(record) {
			continue
		}
		if len(record) < 3 {
			continue
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(record[2]), 64)
		if err != nil {
			continue
		}
		edges = append(edges, flow.Edge{
			Source: strings.TrimSpace(record[0]),
			Target: strings.TrimSpace(record[1]),
			Value:  value,
		})
	}
	return Clean(edges), nil
}

// isHeader reports whether the record is the conventional column header.
func isHeader(record []string) bool {
	return len(record) >= 3 &&
		strings.EqualFold(strings.TrimSpace(record[0]), "source") &&
		strings.EqualFold(strings.TrimSpace(record[1]), "target") &&
		strings.EqualFold(strings.TrimSpace(record[2]), "value")
}

// ImportCSV reads a CSV edge table from the file at path.
func ImportCSV(path string) ([]flow.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadCSV(f)
}

// edgeList is the JSON wire format: {"edges": [{"source","target","value"}]}.
type edgeList struct {
	Edges []flow.Edge `json:"edges"`
}

// ReadJSON decodes a JSON edge list from r. Malformed rows are dropped the
// same way [ReadCSV] drops them; malformed JSON is an error.
func ReadJSON(r io.Reader) ([]flow.Edge, error) {
	var data edgeList
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return Clean(data.Edges), nil
}

// ImportJSON reads a JSON edge list from the file at path.
func ImportJSON(path string) ([]flow.Edge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}
