// Package fill writes a DutyRecord into the distribution-table template.
package fill

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yctsai/dutyfill-go/pkg/dutyfill/models"
)

// ErrNoActiveSheet indicates a structurally incompatible template. The
// request is aborted; no partial output is produced.
var ErrNoActiveSheet = errors.New("template has no active sheet")

// Options controls the composition of the combined remarks cell.
type Options struct {
	// MaintenancePad is appended to the vehicle-maintenance block; the target
	// cell's legacy layout expects the trailing spaces.
	MaintenancePad string
}

// Fill writes the record into the template's active sheet and serializes the
// workbook to a buffer. Only the fixed target cells change; every other cell,
// style and merge of the template comes through untouched. Empty record
// fields leave their target cells alone rather than blanking them.
func Fill(f *excelize.File, rec models.DutyRecord, opts Options) (*bytes.Buffer, error) {
	sheet := f.GetSheetName(f.GetActiveSheetIndex())
	if sheet == "" {
		return nil, ErrNoActiveSheet
	}

	for i, slot := range rec.TimeSlots {
		col := slotFirstCol + i
		if err := setSlotCell(f, sheet, col, dutyRow, slot.Duty); err != nil {
			return nil, err
		}
		if err := setSlotCell(f, sheet, col, rescueRow, slot.Rescue); err != nil {
			return nil, err
		}
		if err := setSlotCell(f, sheet, col, standbyRow, slot.Standby); err != nil {
			return nil, err
		}
		if err := setSlotCell(f, sheet, col, restRow, slot.Rest); err != nil {
			return nil, err
		}
	}

	if rec.Dispatch != "" {
		if err := f.SetCellStr(sheet, dispatchCell, rec.Dispatch); err != nil {
			return nil, fmt.Errorf("write dispatch: %w", err)
		}
	}

	if remarks := combinedRemarks(rec, opts); remarks != "" {
		if err := f.SetCellStr(sheet, remarksCell, remarks); err != nil {
			return nil, fmt.Errorf("write remarks: %w", err)
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("serialize workbook: %w", err)
	}
	return buf, nil
}

// combinedRemarks joins the remarks, the padded vehicle-maintenance block,
// and the boilerplate note, one section per line, skipping empty sections.
func combinedRemarks(rec models.DutyRecord, opts Options) string {
	var parts []string
	if rec.Remarks != "" {
		parts = append(parts, rec.Remarks)
	}
	if rec.VehicleMaintenance != "" {
		parts = append(parts, rec.VehicleMaintenance+opts.MaintenancePad)
	}
	if rec.FixedNote != "" {
		parts = append(parts, rec.FixedNote)
	}
	return strings.Join(parts, "\n")
}

func setSlotCell(f *excelize.File, sheet string, col, row int, value string) error {
	if value == "" {
		return nil
	}
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return err
	}
	if err := f.SetCellStr(sheet, cell, value); err != nil {
		return fmt.Errorf("write %s: %w", cell, err)
	}
	return nil
}
