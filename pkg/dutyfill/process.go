// Package dutyfill turns one day of a duty-roster workbook into a filled
// distribution table.
package dutyfill

import (
	"bytes"
	"fmt"
	"io"
	"slices"

	"github.com/xuri/excelize/v2"

	"github.com/yctsai/dutyfill-go/pkg/dutyfill/extract"
	"github.com/yctsai/dutyfill-go/pkg/dutyfill/fill"
	"github.com/yctsai/dutyfill-go/pkg/dutyfill/models"
)

// ListAvailableDates reads the duty workbook and returns its date-sheet
// names (4-digit MMDD keys) in ascending order. The reader is drained into
// memory first, so one-shot streams are fine.
func ListAvailableDates(duty io.Reader) ([]string, error) {
	f, err := openWorkbook(duty)
	if err != nil {
		return nil, fmt.Errorf("open duty workbook: %w", err)
	}
	defer f.Close()

	return extract.ListAvailableDates(f), nil
}

// Process extracts the dateKey sheet from the duty workbook, fills the
// distribution-table template, and returns the serialized result with a
// suggested filename. Both readers are consumed exactly once. On error no
// partial output is returned.
func Process(duty, template io.Reader, dateKey string, s Settings) ([]byte, string, error) {
	dutyFile, err := openWorkbook(duty)
	if err != nil {
		return nil, "", fmt.Errorf("open duty workbook: %w", err)
	}
	defer dutyFile.Close()

	dates := extract.ListAvailableDates(dutyFile)
	if len(dates) == 0 {
		return nil, "", ErrNoDateSheets
	}
	if !slices.Contains(dates, dateKey) {
		return nil, "", fmt.Errorf("%w: %s", ErrDateNotFound, dateKey)
	}

	rec, err := extract.Extract(dutyFile, dateKey)
	if err != nil {
		return nil, "", fmt.Errorf("extract %s: %w", dateKey, err)
	}
	rec.FixedNote = s.FixedNote

	templateFile, err := openWorkbook(template)
	if err != nil {
		return nil, "", fmt.Errorf("open template workbook: %w", err)
	}
	defer templateFile.Close()

	out, err := fill.Fill(templateFile, rec, fill.Options{MaintenancePad: s.MaintenancePad})
	if err != nil {
		return nil, "", fmt.Errorf("fill template: %w", err)
	}

	return out.Bytes(), SuggestedFilename(dateKey, s), nil
}

// Extract reads the dateKey sheet of the duty workbook into a DutyRecord,
// with the boilerplate note from the settings attached.
func Extract(duty io.Reader, dateKey string, s Settings) (models.DutyRecord, error) {
	f, err := openWorkbook(duty)
	if err != nil {
		return models.DutyRecord{}, fmt.Errorf("open duty workbook: %w", err)
	}
	defer f.Close()

	if !slices.Contains(extract.ListAvailableDates(f), dateKey) {
		return models.DutyRecord{}, fmt.Errorf("%w: %s", ErrDateNotFound, dateKey)
	}

	rec, err := extract.Extract(f, dateKey)
	if err != nil {
		return models.DutyRecord{}, err
	}
	rec.FixedNote = s.FixedNote
	return rec, nil
}

// SuggestedFilename names the output after the external convention:
// [<year><MMDD>] <unit>勤務分配表.xlsx.
func SuggestedFilename(dateKey string, s Settings) string {
	return fmt.Sprintf("[%s%s] %s勤務分配表.xlsx", s.Year, dateKey, s.Unit)
}

// openWorkbook copies the reader into memory and parses it, so callers can
// hand over streams that cannot be rewound.
func openWorkbook(r io.Reader) (*excelize.File, error) {
	var buf bytes.Buffer
	if _, err := buf.ReadFrom(r); err != nil {
		return nil, err
	}
	return excelize.OpenReader(&buf)
}
