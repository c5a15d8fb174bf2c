package dataset

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"golang.org/x/text/encoding/charmap"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Options controls how a dataset file is parsed.
type Options struct {
	// Delimiter separates cells. Zero means ','.
	Delimiter rune
}

// DefaultOptions returns the options for the comma separated dataset.
func DefaultOptions() Options {
	return Options{Delimiter: ','}
}

// Load reads the dataset file at path into a Table. The file is read once
// and never modified. Every failure is a *LoadError.
func Load(path string, opts Options) (*Table, error) {
	start := time.Now()

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, newLoadError("open", path, 0, ErrFileNotFound)
		}
		return nil, newLoadError("open", path, 0, err)
	}
	defer file.Close()

	table, err := Read(file, opts)
	if err != nil {
		var loadErr *LoadError
		if errors.As(err, &loadErr) {
			loadErr.Path = path
			return nil, loadErr
		}
		return nil, newLoadError("read", path, 0, err)
	}

	log.Debugf("Loaded %d rows, %d columns from %s in %v",
		table.Len(), len(table.columns), path, time.Since(start))
	return table, nil
}

// Read parses delimited text with a header row from r. Input that is not
// valid UTF-8 is decoded as ISO-8859-1.
func Read(r io.Reader, opts Options) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, newLoadError("read", "", 0, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, newLoadError("read", "", 0, ErrEmptyFile)
	}

	if !utf8.Valid(data) {
		log.Debug("Dataset is not valid UTF-8, decoding as ISO-8859-1")
		data, err = charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return nil, newLoadError("read", "", 0, err)
		}
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = opts.Delimiter
	if reader.Comma == 0 {
		reader.Comma = ','
	}
	reader.FieldsPerRecord = -1
	reader.ReuseRecord = true

	rawHeader, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, newLoadError("parse", "", 1, ErrEmptyFile)
		}
		return nil, parseError(err)
	}
	columns := normalizeHeaders(rawHeader)

	var rows [][]string
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, parseError(err)
		}
		if len(record) > len(columns) {
			line, _ := reader.FieldPos(0)
			return nil, newLoadError("parse", "", line, fmt.Errorf(
				"%w: %d fields, header has %d", ErrInvalidCSV, len(record), len(columns)))
		}
		// ReuseRecord shares the backing array between reads
		row := make([]string, len(record))
		copy(row, record)
		rows = append(rows, row)
	}

	table, err := NewTable(columns, rows)
	if err != nil {
		return nil, newLoadError("validate", "", 1, err)
	}
	return table, nil
}

func parseError(err error) *LoadError {
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return newLoadError("parse", "", pe.Line, fmt.Errorf("%w: %w", ErrInvalidCSV, pe.Err))
	}
	return newLoadError("parse", "", 0, fmt.Errorf("%w: %w", ErrInvalidCSV, err))
}

// normalizeHeaders names blank header cells "Unnamed: <col>" and suffixes
// repeated names with ".1", ".2", ... so that every column is addressable.
func normalizeHeaders(raw []string) []string {
	columns := make([]string, len(raw))
	used := make(map[string]bool, len(raw))
	counts := make(map[string]int)

	for i, h := range raw {
		name := strings.TrimSpace(h)
		if name == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}
		base := name
		for used[name] {
			counts[base]++
			name = fmt.Sprintf("%s.%d", base, counts[base])
		}
		used[name] = true
		columns[i] = name
	}
	return columns
}
