// Package csvio reads product import files and writes product exports.
package csvio

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
)

const utf8BOM = "\ufeff"

// ErrUnreadable is returned when the input cannot be parsed as CSV at all
var ErrUnreadable = errors.New("unreadable csv input")

// Record is one import row. Columns missing from the header stay empty and
// unknown columns are ignored.
type Record struct {
	Name     string `csv:"name"`
	Unit     string `csv:"unit"`
	Category string `csv:"category"`
	Brand    string `csv:"brand"`
	Stock    string `csv:"stock"`
	Status   string `csv:"status"`
	Image    string `csv:"image"`
}

// ReadRecords decodes a header-driven CSV stream into records, in input order
func ReadRecords(r io.Reader) ([]Record, error) {
	br := bufio.NewReader(r)
	if err := skipBOM(br); err != nil {
		return nil, err
	}
	if _, err := br.Peek(1); errors.Is(err, io.EOF) {
		return []Record{}, nil
	}

	reader := csv.NewReader(br)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	var rows []*Record
	if err := gocsv.UnmarshalCSV(reader, &rows); err != nil {
		// blank lines only
		if errors.Is(err, gocsv.ErrEmptyCSVFile) {
			return []Record{}, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreadable, err)
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, *row)
	}
	return records, nil
}

func skipBOM(br *bufio.Reader) error {
	head, err := br.Peek(len(utf8BOM))
	if err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %v", ErrUnreadable, err)
	}
	if string(head) == utf8BOM {
		_, _ = br.Discard(len(utf8BOM))
	}
	return nil
}
