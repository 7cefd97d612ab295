package report

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/lepinkainen/paupercube/internal/csvutil"
)

// EncodeSetCSV writes the by-set table with its header to w.
func EncodeSetCSV(w io.Writer, rows []SetRow) error {
	return csvutil.Encode(w, BySetHeader, setRecords(rows))
}

// EncodeNameCSV writes the by-name table with its header to w.
func EncodeNameCSV(w io.Writer, rows []NameRow) error {
	return csvutil.Encode(w, ByNameHeader, nameRecords(rows))
}

// WriteSetCSV writes the by-set table to filename, replacing it atomically.
func WriteSetCSV(filename string, rows []SetRow) error {
	if err := csvutil.WriteCSV(filename, BySetHeader, setRecords(rows)); err != nil {
		return fmt.Errorf("failed to write by-set report: %w", err)
	}
	slog.Info("Wrote by-set report", "path", filename, "rows", len(rows))
	return nil
}

// WriteNameCSV writes the by-name table to filename, replacing it atomically.
func WriteNameCSV(filename string, rows []NameRow) error {
	if err := csvutil.WriteCSV(filename, ByNameHeader, nameRecords(rows)); err != nil {
		return fmt.Errorf("failed to write by-name report: %w", err)
	}
	slog.Info("Wrote by-name report", "path", filename, "rows", len(rows))
	return nil
}

func setRecords(rows []SetRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records
}

func nameRecords(rows []NameRow) [][]string {
	records := make([][]string, 0, len(rows))
	for _, row := range rows {
		records = append(records, row.Record())
	}
	return records
}

// ReadNameCSV reads a by-name report written by WriteNameCSV.
func ReadNameCSV(filename string) ([]NameRow, error) {
	rows, err := csvutil.ReadCSV(filename, ByNameHeader, parseNameRecord)
	if err != nil {
		return nil, fmt.Errorf("failed to read by-name report: %w", err)
	}
	return rows, nil
}

func parseNameRecord(record []string) (NameRow, error) {
	count, err := strconv.Atoi(record[1])
	if err != nil {
		return NameRow{}, fmt.Errorf("bad occurrence count %q for %q", record[1], record[0])
	}
	return NameRow{
		CardName: record[0],
		Count:    count,
		Sets:     record[2],
		ManaCost: record[3],
		TypeLine: record[4],
	}, nil
}
