package jtl

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/edgecomet/jtl-summary/internal/common/configtypes"
)

const (
	utf8BOM = "\ufeff"

	// headerPeekSize bounds how much of the input is inspected for delimiter detection
	headerPeekSize = 64 * 1024
)

// LoadOptions controls parsing of the result log
type LoadOptions struct {
	// Delimiter is a single-character separator or configtypes.DelimiterAuto.
	// Empty means comma.
	Delimiter string
}

type columnIndex struct {
	label        int
	elapsed      int
	responseCode int
	success      int
}

func (c columnIndex) maxIndex() int {
	return max(c.label, c.elapsed, c.responseCode, c.success)
}

// Load reads all samples from the file at path, in file order.
// Files ending in .gz, .zst or .lz4 are decompressed on the fly.
func Load(path string, opts LoadOptions) ([]Sample, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open input: %w", err)
	}
	defer file.Close()

	reader, closeDecoder, err := newDecoder(file, DetectAlgorithmFromPath(path))
	if err != nil {
		return nil, err
	}
	defer closeDecoder()

	return Read(reader, opts)
}

// Read parses samples from r. Only the label, elapsed, responseCode and
// success columns are read; other columns are ignored.
func Read(r io.Reader, opts LoadOptions) ([]Sample, error) {
	buffered := bufio.NewReaderSize(r, headerPeekSize)

	delimiter, err := resolveDelimiter(buffered, opts.Delimiter)
	if err != nil {
		return nil, err
	}

	reader := csv.NewReader(buffered)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.ReuseRecord = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, ErrEmptyInput
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	columns, err := findColumnIndices(header)
	if err != nil {
		return nil, err
	}

	var samples []Sample
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV: %w", err)
		}

		line, _ := reader.FieldPos(0)
		sample, err := parseRecord(record, columns, line)
		if err != nil {
			return nil, err
		}
		samples = append(samples, sample)
	}

	return samples, nil
}

func parseRecord(record []string, columns columnIndex, line int) (Sample, error) {
	if len(record) <= columns.maxIndex() {
		return Sample{}, fmt.Errorf("%w: line %d has %d fields, expected at least %d",
			ErrInvalidValue, line, len(record), columns.maxIndex()+1)
	}

	elapsedStr := strings.TrimSpace(record[columns.elapsed])
	elapsed, err := strconv.ParseFloat(elapsedStr, 64)
	if err != nil || math.IsNaN(elapsed) || math.IsInf(elapsed, 0) || elapsed < 0 {
		return Sample{}, fmt.Errorf("%w: line %d column %s: %q is not a non-negative number",
			ErrInvalidValue, line, ColumnElapsed, elapsedStr)
	}

	successStr := strings.TrimSpace(record[columns.success])
	success, err := strconv.ParseBool(successStr)
	if err != nil {
		return Sample{}, fmt.Errorf("%w: line %d column %s: %q is not a boolean",
			ErrInvalidValue, line, ColumnSuccess, successStr)
	}

	// Clone so retained samples do not pin the whole input line
	return Sample{
		Label:        strings.Clone(record[columns.label]),
		Elapsed:      elapsed,
		ResponseCode: strings.Clone(record[columns.responseCode]),
		Success:      success,
		Line:         line,
	}, nil
}

// findColumnIndices locates the required columns. The first occurrence wins
// when a name repeats.
func findColumnIndices(header []string) (columnIndex, error) {
	found := make(map[string]int, len(header))
	names := make([]string, len(header))

	for i, col := range header {
		if i == 0 {
			col = strings.TrimPrefix(col, utf8BOM)
		}
		col = strings.TrimSpace(col)
		names[i] = col
		if _, exists := found[col]; !exists {
			found[col] = i
		}
	}

	var missing []string
	for _, name := range RequiredColumns {
		if _, ok := found[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return columnIndex{}, fmt.Errorf("%w: %s (found columns: %s)",
			ErrMissingColumn, strings.Join(missing, ", "), strings.Join(names, ", "))
	}

	return columnIndex{
		label:        found[ColumnLabel],
		elapsed:      found[ColumnElapsed],
		responseCode: found[ColumnResponseCode],
		success:      found[ColumnSuccess],
	}, nil
}

func resolveDelimiter(r *bufio.Reader, option string) (rune, error) {
	switch option {
	case "":
		return ',', nil
	case configtypes.DelimiterAuto:
		// Peek returns what it has together with io.EOF or ErrBufferFull
		head, _ := r.Peek(headerPeekSize)
		return detectDelimiter(head), nil
	}

	delimiter, size := utf8.DecodeRuneInString(option)
	if size != len(option) || delimiter == '"' || delimiter == '\r' || delimiter == '\n' {
		return 0, fmt.Errorf("invalid delimiter %q", option)
	}
	return delimiter, nil
}

// detectDelimiter picks the most frequent candidate on the header line, comma on ties
func detectDelimiter(content []byte) rune {
	firstLine := content
	if idx := bytes.IndexByte(content, '\n'); idx >= 0 {
		firstLine = content[:idx]
	}

	best := ','
	bestCount := bytes.Count(firstLine, []byte{','})
	for _, candidate := range []rune{';', '\t', '|'} {
		count := bytes.Count(firstLine, []byte(string(candidate)))
		if count > bestCount {
			best = candidate
			bestCount = count
		}
	}
	return best
}
