package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
)

// readTable reads a comma-delimited UTF-8 file with a header row and maps
// the expected columns by header position. Extra columns are ignored; a
// missing expected column is an error. Returns the file-open error
// unwrapped so callers can distinguish a missing file.
func readTable(path string, columns []string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
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
	indexes := make([]int, len(columns))
	for i, column := range columns {
		indexes[i] = -1
		for j, h := range header {
			if strings.TrimSpace(h) == column {
				indexes[i] = j
				break
			}
		}
		if indexes[i] < 0 {
			return nil, fmt.Errorf("%s: missing column %q", path, column)
		}
	}

	rows := make([][]string, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make([]string, len(columns))
		for i, j := range indexes {
			if j < len(record) {
				row[i] = record[j]
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
