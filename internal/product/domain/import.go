package domain

// Reasons recorded for skipped import rows
const (
	SkipReasonMissingFields = "Missing required fields"
	SkipReasonStorage       = "Storage error"
)

// ImportSummary reports the outcome of a bulk import
type ImportSummary struct {
	Added       int            `json:"added"`
	Skipped     int            `json:"skipped"`
	Duplicates  []DuplicateRow `json:"duplicates"`
	AddedIDs    []uint         `json:"addedIds"`
	SkippedRows []SkippedRow   `json:"skippedRows"`
}

// NewImportSummary returns an empty summary whose lists encode as []
func NewImportSummary() *ImportSummary {
	return &ImportSummary{
		Duplicates:  []DuplicateRow{},
		AddedIDs:    []uint{},
		SkippedRows: []SkippedRow{},
	}
}

// DuplicateRow is an input row whose name matched an existing product
type DuplicateRow struct {
	Name       string `json:"name"`
	ExistingID uint   `json:"existingId"`
}

// SkippedRow is an input row that was not imported. Row is 1-based, header excluded.
type SkippedRow struct {
	Row    int    `json:"row"`
	Name   string `json:"name,omitempty"`
	Reason string `json:"reason"`
}

// RecordAdded counts an inserted product
func (s *ImportSummary) RecordAdded(id uint) {
	s.Added++
	s.AddedIDs = append(s.AddedIDs, id)
}

// RecordSkipped counts a rejected row
func (s *ImportSummary) RecordSkipped(row int, name, reason string) {
	s.Skipped++
	s.SkippedRows = append(s.SkippedRows, SkippedRow{Row: row, Name: name, Reason: reason})
}

// RecordDuplicate records a row that collided with an existing product
func (s *ImportSummary) RecordDuplicate(name string, existingID uint) {
	s.Duplicates = append(s.Duplicates, DuplicateRow{Name: name, ExistingID: existingID})
}
