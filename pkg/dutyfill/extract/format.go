package extract

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// \s in Go regexps is ASCII-only, so the ideographic space U+3000, common in
// CJK spreadsheet cells, is spelled out alongside it.
var (
	tokenSplitRe   = regexp.MustCompile(`[.\s\x{3000}]+`)
	remarksLabelRe = regexp.MustCompile(`^備註[:：][\s\x{3000}]*`)
	parenGroupRe   = regexp.MustCompile(`\(([^)]+)\)`)
)

// FormatNumber renders a cell value as a personnel ID. Numeric values become
// zero-padded two-digit strings (fractional parts truncated); text passes
// through trimmed; empty cells yield "".
func FormatNumber(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return pad2(int(n))
	}
	return s
}

// ParseDutyString converts a roster ID list like "10.14.1" to the
// distribution-table form "10,14,01". Tokens are split on runs of dots or
// whitespace; tokens that fail numeric parsing pass through verbatim.
func ParseDutyString(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}

	var formatted []string
	for _, part := range tokenSplitRe.Split(s, -1) {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if n, err := strconv.ParseFloat(part, 64); err == nil {
			formatted = append(formatted, pad2(int(n)))
		} else {
			formatted = append(formatted, part)
		}
	}
	return strings.Join(formatted, ",")
}

// ParseRescueNumbers merges the primary and secondary rescue IDs. Each value
// is parsed independently; empty or non-numeric values are dropped, so the
// result carries 0, 1, or 2 comma-separated IDs.
func ParseRescueNumbers(primary, secondary string) string {
	var numbers []string
	for _, v := range []string{primary, secondary} {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if n, err := strconv.ParseFloat(v, 64); err == nil {
			numbers = append(numbers, pad2(int(n)))
		}
	}
	return strings.Join(numbers, ",")
}

// normalizeRemarks rewrites the raw remarks cell for the distribution table:
// the leading 備註 label goes, 。※ becomes a line break before ※, full-width
// colons become half-width, and a trailing 。 is dropped.
func normalizeRemarks(raw string) string {
	s := remarksLabelRe.ReplaceAllString(raw, "")
	s = strings.ReplaceAll(s, "。※", "\n※")
	s = strings.ReplaceAll(s, "：", ":")
	s = strings.TrimSuffix(s, "。")
	return s
}

// normalizeDispatch zero-pads the numeric lists inside every parenthesized
// group of the dispatch text, e.g. "16車(10.1)" -> "16車(10,01)". Text outside
// parentheses is untouched.
func normalizeDispatch(raw string) string {
	return parenGroupRe.ReplaceAllStringFunc(raw, func(group string) string {
		content := group[1 : len(group)-1]
		var formatted []string
		for _, part := range tokenSplitRe.Split(content, -1) {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			if n, err := strconv.ParseFloat(part, 64); err == nil {
				formatted = append(formatted, pad2(int(n)))
			} else {
				formatted = append(formatted, part)
			}
		}
		return "(" + strings.Join(formatted, ",") + ")"
	})
}

func pad2(n int) string {
	return fmt.Sprintf("%02d", n)
}
