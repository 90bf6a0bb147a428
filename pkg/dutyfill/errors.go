package dutyfill

import "errors"

// ErrNoDateSheets indicates the duty workbook has no 4-digit date sheets.
var ErrNoDateSheets = errors.New("no date sheets in duty workbook")

// ErrDateNotFound indicates the requested date key is not among the
// workbook's date sheets. Surfaced to the user as-is; never retried.
var ErrDateNotFound = errors.New("date sheet not found")
