// Package models defines the data structures exchanged between extraction and filling.
package models

// TimeSlot holds the assignments for one hourly period of the roster day.
type TimeSlot struct {
	// Time is the period label as written in the roster (e.g. "08~09").
	Time string `json:"time"`
	// Duty is the duty officer's two-digit ID, or "" when the slot is blank.
	Duty string `json:"duty"`
	// Rescue is the comma-joined two-digit IDs of the rescue pair (0-2 entries).
	Rescue string `json:"rescue"`
	// Standby is the comma-joined two-digit IDs on standby.
	Standby string `json:"standby"`
	// Rest is the comma-joined two-digit IDs at rest.
	Rest string `json:"rest"`
}

// DutyRecord is one day of roster data, normalized for the distribution table.
// It is built fresh per request and never mutated after extraction.
type DutyRecord struct {
	// TimeSlots covers the 24 hourly periods from 08:00 to next-day 08:00.
	TimeSlots []TimeSlot `json:"time_slots"`
	// RotationOff lists personnel on rotation leave (free text).
	RotationOff string `json:"rotation_off"`
	// CompensatoryOff lists personnel on compensatory leave (free text).
	CompensatoryOff string `json:"compensatory_off"`
	// Remarks is the normalized remarks text.
	Remarks string `json:"remarks"`
	// Dispatch is the dispatch-tier text with numeric groups normalized.
	Dispatch string `json:"dispatch"`
	// VehicleMaintenance is the newline-joined maintenance lines (up to 3).
	VehicleMaintenance string `json:"vehicle_maintenance"`
	// FixedNote is the constant boilerplate appended to the remarks cell.
	FixedNote string `json:"fixed_note"`
}
