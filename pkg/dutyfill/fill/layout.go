package fill

// Target geometry of the distribution-table template (1-based excelize
// coordinates, active sheet). The 24 time slots run left to right from
// slotFirstCol, one column per hourly period.
const (
	slotFirstCol = 5 // column E

	dutyRow    = 4
	rescueRow  = 5
	standbyRow = 11
	restRow    = 12

	dispatchCell = "E17"
	remarksCell  = "E18"
)
