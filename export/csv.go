package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tunepath-askeva/eram/api/payload"
)

// Column renders one CSV column from a row.
type Column[T any] struct {
	Header string
	Value  func(T) string
}

// Write emits a header line and one record per row. Fields holding commas,
// quotes or line breaks are quoted with inner quotes doubled.
func Write[T any](w io.Writer, columns []Column[T], rows []T) error {
	writer := csv.NewWriter(w)

	header := make([]string, len(columns))
	for i, column := range columns {
		header[i] = column.Header
	}

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	record := make([]string, len(columns))
	for n, row := range rows {
		for i, column := range columns {
			record[i] = column.Value(row)
		}

		if err := writer.Write(record); err != nil {
			return fmt.Errorf("write row %d: %w", n+1, err)
		}
	}

	writer.Flush()

	return writer.Error()
}

// WriteFile creates path and writes the rows to it. A failed close is
// reported since it can lose buffered data.
func WriteFile[T any](path string, columns []Column[T], rows []T) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}

	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close export: %w", closeErr)
		}
	}()

	return Write(file, columns, rows)
}

func CandidateColumns() []Column[payload.Candidate] {
	return []Column[payload.Candidate]{
		{Header: "Full Name", Value: func(c payload.Candidate) string { return c.FullName }},
		{Header: "Email", Value: func(c payload.Candidate) string { return c.Email }},
		{Header: "Phone", Value: func(c payload.Candidate) string { return c.Phone }},
		{Header: "Job Title", Value: func(c payload.Candidate) string { return c.Title() }},
		{Header: "Experience", Value: func(c payload.Candidate) string { return c.TotalExperience }},
		{Header: "Skills", Value: func(c payload.Candidate) string { return strings.Join(c.Skills, ", ") }},
		{Header: "Location", Value: func(c payload.Candidate) string { return c.Location }},
		{Header: "Nationality", Value: func(c payload.Candidate) string { return c.Nationality }},
		{Header: "Notice Period", Value: func(c payload.Candidate) string { return c.NoticePeriod }},
		{Header: "Status", Value: func(c payload.Candidate) string { return c.Status }},
	}
}
