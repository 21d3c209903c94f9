// Package ingest builds the entity graph from tabular dataset files. Each
// reader is a pure function: file path in, linked domain objects out. Column
// names are the contract (header-driven, order-independent); optional
// numeric fields fall back to "absent" when they fail to parse; unresolved
// foreign keys skip the link instead of failing the row.
package ingest

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// readRows reads a CSV file into header-keyed records. The file handle is
// released on every exit path; a leading UTF-8 BOM on the header is
// tolerated. Short rows leave missing columns empty.
func readRows(path string) ([]map[string]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	header := records[0]
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	rows := make([]map[string]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(map[string]string, len(header))
		for i, col := range header {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

// optInt parses an optional integer field. A field that does not parse is
// absent, not an error.
func optInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// optFloat parses an optional float field. A field that does not parse is
// absent, not an error.
func optFloat(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// splitList splits a comma-separated list field. Items keep their raw
// spacing; entity constructors normalize.
func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return strings.Split(s, ",")
}
