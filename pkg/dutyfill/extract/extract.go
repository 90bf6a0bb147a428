// Package extract reads one day of duty-roster data out of an xlsx workbook.
package extract

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/yctsai/dutyfill-go/pkg/dutyfill/models"
)

var dateSheetRe = regexp.MustCompile(`^\d{4}$`)

// ListAvailableDates returns the workbook's date-sheet names (4-digit MMDD
// keys) in ascending order. Sheets with other names, like the 範本 template
// sheet, are skipped. The result is empty when no date sheets exist.
func ListAvailableDates(f *excelize.File) []string {
	var dates []string
	for _, name := range f.GetSheetList() {
		if dateSheetRe.MatchString(name) {
			dates = append(dates, name)
		}
	}
	sort.Strings(dates)
	return dates
}

// Extract reads the worksheet named dateKey into a DutyRecord. Column
// positions are located by header keywords; a missing column leaves its
// fields empty. Reads past the sheet's extent yield empty strings, so
// rosters with a few trailing rows missing still extract cleanly.
func Extract(f *excelize.File, dateKey string) (models.DutyRecord, error) {
	rows, err := f.GetRows(dateKey)
	if err != nil {
		return models.DutyRecord{}, fmt.Errorf("read sheet %q: %w", dateKey, err)
	}

	width := sheetWidth(rows)
	header := rowAt(rows, headerRow)

	colDuty := locateColumn(header, dutyKeywords)
	colRescue := locateColumn(header, rescueKeywords)
	colStandby := locateColumn(header, standbyKeywords)
	colRest := locateColumn(header, restKeywords)

	rec := models.DutyRecord{
		TimeSlots: make([]models.TimeSlot, 0, slotCount),
	}

	for i := 0; i < slotCount; i++ {
		row := slotFirstRow + i
		slot := models.TimeSlot{
			Time: cellAt(rows, row, timeLabelCol),
		}
		if colDuty != colNotFound {
			slot.Duty = FormatNumber(cellAt(rows, row, colDuty))
		}
		if colRescue != colNotFound {
			slot.Rescue = ParseRescueNumbers(
				cellAt(rows, row, colRescue),
				cellAt(rows, row, colRescue+1),
			)
		}
		if colStandby != colNotFound {
			slot.Standby = ParseDutyString(cellAt(rows, row, colStandby))
		}
		if colRest != colNotFound {
			slot.Rest = ParseDutyString(cellAt(rows, row, colRest))
		}
		rec.TimeSlots = append(rec.TimeSlots, slot)
	}

	rec.RotationOff = strings.TrimSpace(cellAt(rows, leaveRow, rotationOffCol))
	if width >= compensatoryMinWidth {
		rec.CompensatoryOff = strings.TrimSpace(cellAt(rows, leaveRow, compensatoryOffCol))
	}

	rec.Remarks = normalizeRemarks(strings.TrimSpace(cellAt(rows, remarksRow, remarksCol)))
	rec.Dispatch = normalizeDispatch(strings.TrimSpace(cellAt(rows, dispatchRow, dispatchCol)))

	if width >= maintMinWidth {
		rec.VehicleMaintenance = extractMaintenance(rows)
	}

	return rec, nil
}

// extractMaintenance builds the vehicle-maintenance block. A line is emitted
// only when type, vehicle and maintainer are all present.
func extractMaintenance(rows [][]string) string {
	var lines []string
	for i := 0; i < maintRowCount; i++ {
		row := maintFirstRow + i
		vehicleType := strings.TrimSpace(cellAt(rows, row, maintTypeCol))
		vehicleNum := strings.TrimSpace(cellAt(rows, row, maintVehicleCol))
		maintainer := strings.TrimSpace(cellAt(rows, row, maintPersonCol))
		if vehicleType != "" && vehicleNum != "" && maintainer != "" {
			lines = append(lines, fmt.Sprintf("(%s)保養車輛:%s 保養人:%s", vehicleType, vehicleNum, maintainer))
		}
	}
	return strings.Join(lines, "\n")
}

// cellAt returns the cell value at (row, col), or "" when the coordinate is
// outside the matrix. GetRows trims trailing empty cells per row, so short
// reads are expected rather than exceptional.
func cellAt(rows [][]string, row, col int) string {
	if row < 0 || row >= len(rows) {
		return ""
	}
	if col < 0 || col >= len(rows[row]) {
		return ""
	}
	return rows[row][col]
}

// rowAt returns the row slice at the given index, or nil past the extent.
func rowAt(rows [][]string, row int) []string {
	if row < 0 || row >= len(rows) {
		return nil
	}
	return rows[row]
}

// sheetWidth is the widest row of the matrix, the equivalent of the sheet's
// column count for the optional-field guards.
func sheetWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
