package csvio

import (
	"bufio"
	"bytes"
	"encoding/json"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/tair/inventory-tracker/internal/product/domain"
)

// Header is the fixed first line of every export
var Header = []string{"id", "name", "unit", "category", "brand", "stock", "status", "image", "createdAt", "updatedAt"}

// TimestampLayout renders export timestamps in UTC with millisecond precision
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// Writer encodes products one per line. Text fields are written as JSON
// string literals rather than RFC 4180 fields; id and stock are bare numbers.
type Writer struct {
	w *bufio.Writer
}

// NewWriter creates a Writer on w
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// WriteHeader writes the header line
func (w *Writer) WriteHeader() error {
	_, err := w.w.WriteString(strings.Join(Header, ",") + "\n")
	return err
}

// Write writes one product line
func (w *Writer) Write(p domain.Product) error {
	fields := []string{
		strconv.FormatUint(uint64(p.ID), 10),
		Quote(p.Name),
		Quote(p.Unit),
		Quote(p.Category),
		Quote(p.Brand),
		strconv.Itoa(p.Stock),
		Quote(p.Status),
		Quote(p.Image),
		Quote(FormatTimestamp(p.CreatedAt)),
		Quote(FormatTimestamp(p.UpdatedAt)),
	}
	_, err := w.w.WriteString(strings.Join(fields, ",") + "\n")
	return err
}

// Flush writes any buffered data to the underlying writer
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// WriteAll writes the header and every product, then flushes
func WriteAll(out io.Writer, products []domain.Product) error {
	w := NewWriter(out)
	if err := w.WriteHeader(); err != nil {
		return err
	}
	for _, p := range products {
		if err := w.Write(p); err != nil {
			return err
		}
	}
	return w.Flush()
}

// Quote returns s as a JSON string literal without HTML escaping
func Quote(s string) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a string cannot fail
	_ = enc.Encode(s)
	return strings.TrimSuffix(buf.String(), "\n")
}

// FormatTimestamp renders t for export
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
