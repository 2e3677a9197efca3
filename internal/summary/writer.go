package summary

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Header is the column row of every report
var Header = []string{
	"URL Path",
	"Avg Response Time (s)",
	"Min Response Time (s)",
	"Max Response Time (s)",
	"Error %",
	"Total Samples",
}

// record converts a row to its text fields in Header order
func (s EndpointSummary) record() []string {
	return []string{
		s.Label,
		FormatFloat(s.AvgSeconds),
		FormatFloat(s.MinSeconds),
		FormatFloat(s.MaxSeconds),
		FormatFloat(s.ErrorPercent),
		strconv.Itoa(s.TotalSamples),
	}
}

// WriteCSV writes the header and one line per row, in row order
func WriteCSV(w io.Writer, rows []EndpointSummary) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(Header); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}
	for _, row := range rows {
		if err := writer.Write(row.record()); err != nil {
			return fmt.Errorf("failed to write row %q: %w", row.Label, err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteFile renders the report and writes it to path using a temp file and
// rename, so a failed run never leaves a partial report behind.
// Returns the xxhash64 fingerprint of the written bytes.
func WriteFile(path string, rows []EndpointSummary) (uint64, error) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		return 0, err
	}

	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, buf.Bytes(), 0644); err != nil {
		return 0, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return 0, fmt.Errorf("failed to rename temp file: %w", err)
	}

	return xxhash.Sum64(buf.Bytes()), nil
}

// Fingerprint returns the xxhash64 of the rendered report without writing it
func Fingerprint(rows []EndpointSummary) (uint64, error) {
	digest := xxhash.New()
	if err := WriteCSV(digest, rows); err != nil {
		return 0, err
	}
	return digest.Sum64(), nil
}
