package csvutil

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"

	"github.com/lepinkainen/paupercube/internal/fileutil"
)

// Encode writes header and rows as CSV. Fields containing the delimiter,
// quotes or line breaks are quoted instead of being rewritten.
func Encode(w io.Writer, header []string, rows [][]string) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header: %w", err)
	}

	for i, row := range rows {
		if len(row) != len(header) {
			return fmt.Errorf("CSV row %d has %d fields, header has %d", i, len(row), len(header))
		}
		if err := writer.Write(row); err != nil {
			return fmt.Errorf("failed to write CSV row %d: %w", i, err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV: %w", err)
	}
	return nil
}

// WriteCSV encodes the rows and atomically replaces filename with the result.
func WriteCSV(filename string, header []string, rows [][]string) error {
	var buf bytes.Buffer
	if err := Encode(&buf, header, rows); err != nil {
		return err
	}

	if err := fileutil.WriteFileAtomic(filename, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}
