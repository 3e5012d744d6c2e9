package cashbook

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tillview-dev/tillview/internal/model"
)

// ErrNoEntries is returned when the export holds no parseable data rows.
var ErrNoEntries = errors.New("cash book contains no usable entries")

const (
	minFields     = 15
	colDate       = 1
	colName       = 5
	colReason     = 6
	colNote       = 7
	colIncome     = 8
	colExpense    = 9
	colBalance    = 12
	colExpected   = 13
	colDifference = 14
)

// SkippedRow records one data row that was dropped during parsing.
type SkippedRow struct {
	Line   int // 1-based line number in the file
	Reason string
}

// ParseResult holds the movements that survived parsing plus per-row
// diagnostics for the ones that did not.
type ParseResult struct {
	Rows      int // data rows seen, header excluded
	Movements []model.CashMovement
	Skipped   []SkippedRow
}

// ParseFile parses a cash-book export from disk.
func ParseFile(path string) (*ParseResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening cash book: %w", err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads a cash-book export. The first row is a header and is
// discarded; rows with fewer than 15 cells are skipped silently; rows with
// a malformed date are dropped with a diagnostic. Parse fails only when no
// data row survives.
func Parse(r io.Reader) (*ParseResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading cash book: %w", err)
	}

	cr := csv.NewReader(bytes.NewReader(data))
	cr.Comma = sniffDelimiter(data)
	cr.FieldsPerRecord = -1

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading cash book CSV: %w", err)
	}

	if len(records) <= 1 {
		return nil, ErrNoEntries
	}

	res := &ParseResult{Rows: len(records) - 1}
	for i, rec := range records[1:] {
		line := i + 2
		if len(rec) < minFields {
			continue
		}
		m, err := parseRow(rec)
		if err != nil {
			res.Skipped = append(res.Skipped, SkippedRow{Line: line, Reason: err.Error()})
			continue
		}
		res.Movements = append(res.Movements, m)
	}

	if len(res.Movements) == 0 {
		return nil, ErrNoEntries
	}
	return res, nil
}

func parseRow(rec []string) (model.CashMovement, error) {
	ts, err := parseTimestamp(rec[colDate])
	if err != nil {
		return model.CashMovement{}, err
	}

	name := strings.TrimSpace(rec[colName])

	return model.CashMovement{
		Timestamp:  ts,
		Category:   model.CategoryOf(name),
		RawName:    name,
		Reason:     strings.TrimSpace(rec[colReason]),
		Note:       strings.TrimSpace(rec[colNote]),
		Income:     parseAmount(rec[colIncome]),
		Expense:    parseAmount(rec[colExpense]),
		Balance:    parseAmount(rec[colBalance]),
		Expected:   parseOptional(rec[colExpected]),
		Difference: parseOptional(rec[colDifference]),
	}, nil
}

// parseTimestamp handles the export's "DD.MM.YYYY" and "DD.MM.YYYY HH:MM"
// date cells. Out-of-range components fail rather than rolling over.
func parseTimestamp(cell string) (time.Time, error) {
	cell = strings.TrimSpace(cell)
	dateStr, timeStr, hasTime := strings.Cut(cell, " ")

	parts := strings.Split(dateStr, ".")
	if len(parts) != 3 || parts[0] == "" || parts[1] == "" || parts[2] == "" {
		return time.Time{}, fmt.Errorf("invalid date format %q", cell)
	}

	day, err1 := strconv.Atoi(parts[0])
	month, err2 := strconv.Atoi(parts[1])
	year, err3 := strconv.Atoi(parts[2])
	if err1 != nil || err2 != nil || err3 != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q", cell)
	}

	hour, minute := 0, 0
	if hasTime {
		hh, mm, ok := strings.Cut(strings.TrimSpace(timeStr), ":")
		if !ok {
			return time.Time{}, fmt.Errorf("invalid time format %q", cell)
		}
		hour, err1 = strconv.Atoi(hh)
		minute, err2 = strconv.Atoi(mm)
		if err1 != nil || err2 != nil || hour < 0 || hour > 23 || minute < 0 || minute > 59 {
			return time.Time{}, fmt.Errorf("invalid time format %q", cell)
		}
	}

	ts := time.Date(year, time.Month(month), day, hour, minute, 0, 0, time.UTC)
	// time.Date normalizes out-of-range components (32.01. becomes 01.02.),
	// so compare back to catch impossible dates.
	if ts.Day() != day || ts.Month() != time.Month(month) || ts.Year() != year {
		return time.Time{}, fmt.Errorf("invalid date %q", cell)
	}
	return ts, nil
}

// parseAmount reads a required numeric cell. The export writes decimal
// commas; empty or unparseable cells count as zero.
func parseAmount(cell string) decimal.Decimal {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", "."))
	if err != nil {
		return decimal.Zero
	}
	return d
}

// parseOptional reads an optional numeric cell. Absence and zero are
// distinct: an empty or unparseable cell stays Null, a literal "0" is a
// valid zero.
func parseOptional(cell string) decimal.NullDecimal {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return decimal.NullDecimal{}
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(cell, ",", "."))
	if err != nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: d, Valid: true}
}

// sniffDelimiter picks the separator by counting candidates in the header
// line. Ties go to the semicolon, the usual delimiter in these exports.
func sniffDelimiter(data []byte) rune {
	header := data
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		header = data[:i]
	}

	semis := bytes.Count(header, []byte{';'})
	commas := bytes.Count(header, []byte{','})
	tabs := bytes.Count(header, []byte{'\t'})

	switch {
	case semis >= commas && semis >= tabs && semis > 0:
		return ';'
	case tabs > commas && tabs > 0:
		return '\t'
	default:
		return ','
	}
}
