package extract

// Source-sheet geometry of the duty-roster workbook. One worksheet per day,
// named with a 4-digit MMDD key. All values are 0-based indexes into the row
// matrix returned by excelize GetRows; reads outside the matrix are empty,
// never an error.
const (
	// headerRow is the row scanned for column headers (值班/救護/備勤/休息).
	headerRow = 2

	// slotFirstRow..slotFirstRow+slotCount-1 hold the hourly assignments,
	// one row per period from 08:00 to next-day 08:00.
	slotFirstRow = 4
	slotCount    = 24

	// timeLabelCol holds the period label of each slot row.
	timeLabelCol = 0

	// Leave lists share one row below the slot grid.
	leaveRow           = 28
	rotationOffCol     = 3
	compensatoryOffCol = 9

	remarksRow = 30
	remarksCol = 0

	dispatchRow = 42
	dispatchCol = 2

	// Vehicle-maintenance block: three rows of (type, vehicle, maintainer).
	maintFirstRow   = 35
	maintRowCount   = 3
	maintTypeCol    = 19
	maintVehicleCol = 20
	maintPersonCol  = 22
)

// Sheets narrower than these widths predate the corresponding columns and
// simply omit the field.
const (
	compensatoryMinWidth = compensatoryOffCol + 1
	maintMinWidth        = maintPersonCol + 1
)

// Header keyword sets. A column matches when its header text, with spaces and
// line breaks removed, contains any keyword.
var (
	dutyKeywords    = []string{"值班"}
	rescueKeywords  = []string{"第一救護", "救護"}
	standbyKeywords = []string{"備勤"}
	restKeywords    = []string{"休息"}
)
