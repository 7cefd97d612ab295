package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"
)

// ReadCSV reads filename and parses every record after the header with
// parse. When header is non-empty the file's first row must match it and
// every record must have the same number of fields.
func ReadCSV[T any](filename string, header []string, parse func([]string) (T, error)) ([]T, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Decode(file, header, parse)
}

// Decode is ReadCSV for an already open reader.
func Decode[T any](r io.Reader, header []string, parse func([]string) (T, error)) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(header)

	got, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("CSV file is empty")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}
	if len(header) > 0 && !slices.Equal(got, header) {
		return nil, fmt.Errorf("unexpected CSV header %q", got)
	}

	var items []T
	for line := 2; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		item, err := parse(record)
		if err != nil {
			return nil, fmt.Errorf("invalid record on line %d: %w", line, err)
		}
		items = append(items, item)
	}

	return items, nil
}
