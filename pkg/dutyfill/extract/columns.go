package extract

import "strings"

// colNotFound is the sentinel for a header keyword miss. Callers leave the
// dependent fields empty instead of failing: older distribution tables omit
// some columns.
const colNotFound = -1

// locateColumn scans the header row left to right and returns the first
// column whose text contains any of the keywords. Spaces and line breaks in
// the header cell are ignored.
func locateColumn(header []string, keywords []string) int {
	for col, cell := range header {
		text := strings.NewReplacer("\n", "", " ", "").Replace(cell)
		if text == "" {
			continue
		}
		for _, keyword := range keywords {
			if strings.Contains(text, keyword) {
				return col
			}
		}
	}
	return colNotFound
}
