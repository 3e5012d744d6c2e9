package runlog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Entry is one analyze run recorded in the run log.
type Entry struct {
	RunID        string
	Timestamp    time.Time
	File         string
	RowsTotal    int // data rows in the file, header excluded
	RowsParsed   int
	RowsSkipped  int
	DaysReported int
}

// Header is the CSV header for runs.csv.
const Header = "run_id,timestamp,file,rows_total,rows_parsed,rows_skipped,days_reported"

const (
	numFields    = 7
	logFile      = "runs.csv"
	colRunID     = 0
	colTimestamp = 1
	colFile      = 2
	colTotal     = 3
	colParsed    = 4
	colSkipped   = 5
	colDays      = 6
)

// NewEntry creates an Entry with a fresh run ID and the current time.
func NewEntry(file string) Entry {
	return Entry{
		RunID:     uuid.NewString(),
		Timestamp: time.Now().UTC(),
		File:      file,
	}
}

// MarshalEntry converts an Entry to a CSV row.
func MarshalEntry(e Entry) []string {
	row := make([]string, numFields)
	row[colRunID] = e.RunID
	row[colTimestamp] = e.Timestamp.Format(time.RFC3339)
	row[colFile] = e.File
	row[colTotal] = strconv.Itoa(e.RowsTotal)
	row[colParsed] = strconv.Itoa(e.RowsParsed)
	row[colSkipped] = strconv.Itoa(e.RowsSkipped)
	row[colDays] = strconv.Itoa(e.DaysReported)
	return row
}

// UnmarshalEntry converts a CSV row to an Entry.
func UnmarshalEntry(record []string) (Entry, error) {
	if len(record) != numFields {
		return Entry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	ts, err := time.Parse(time.RFC3339, record[colTimestamp])
	if err != nil {
		return Entry{}, fmt.Errorf("parsing timestamp %q: %w", record[colTimestamp], err)
	}

	counts := make([]int, 4)
	for i, col := range []int{colTotal, colParsed, colSkipped, colDays} {
		counts[i], err = strconv.Atoi(record[col])
		if err != nil {
			return Entry{}, fmt.Errorf("parsing count %q: %w", record[col], err)
		}
	}

	return Entry{
		RunID:        record[colRunID],
		Timestamp:    ts,
		File:         record[colFile],
		RowsTotal:    counts[0],
		RowsParsed:   counts[1],
		RowsSkipped:  counts[2],
		DaysReported: counts[3],
	}, nil
}

// Append writes entries to <dir>/runs.csv, creating the file and header if needed.
func Append(dir string, entries []Entry) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating log dir: %w", err)
	}

	path := filepath.Join(dir, logFile)
	needsHeader := false
	if _, err := os.Stat(path); os.IsNotExist(err) {
		needsHeader = true
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	cw := csv.NewWriter(f)
	defer cw.Flush()

	if needsHeader {
		if err := cw.Write(strings.Split(Header, ",")); err != nil {
			return fmt.Errorf("writing header: %w", err)
		}
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e)); err != nil {
			return fmt.Errorf("writing entry %d: %w", i, err)
		}
	}

	return cw.Error()
}

// Read returns all entries from <dir>/runs.csv.
// Returns nil if the file does not exist.
func Read(dir string) ([]Entry, error) {
	f, err := os.Open(filepath.Join(dir, logFile))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("opening run log: %w", err)
	}
	defer f.Close()

	return readEntries(f)
}

func readEntries(r io.Reader) ([]Entry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading run log CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, nil
	}

	var entries []Entry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
