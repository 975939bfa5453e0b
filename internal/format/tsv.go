package format

import (
	"bytes"
	"encoding/csv"
	"fmt"
)

// The wire format is tab-separated with CRLF row endings and CSV-style
// double-quote quoting: a quoted cell may contain tabs, doubled quotes, and
// newlines. encoding/csv covers all of it once the comma is swapped for a
// tab; LazyQuotes tolerates the stray quotes the original game editor leaves
// in free-text cells.

func readRows(data []byte) ([][]string, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.Comma = '\t'
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	rows, err := r.ReadAll()
	if err != nil {
		return nil, &StructuralError{Reason: fmt.Sprintf("malformed delimited text: %v", err)}
	}
	return rows, nil
}

func writeRows(rows [][]string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = '\t'
	w.UseCRLF = true
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("serialising rows: %w", err)
	}
	return buf.Bytes(), nil
}

// padded returns row extended with empty cells to at least width.
func padded(row []string, width int) []string {
	if len(row) >= width {
		return row
	}
	out := make([]string, width)
	copy(out, row)
	return out
}
