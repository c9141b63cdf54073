package core

import "strings"

// NormalizeHeader lowercases a column header and strips it to alphanumeric
// characters, so hint matching is insensitive to spacing and punctuation.
func NormalizeHeader(header string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(header)) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ShouldRedactColumn reports whether a header marks its column for whole-column
// redaction: any hint appearing as a substring of the normalized header. An
// empty or unnamed header never triggers full redaction.
func ShouldRedactColumn(header string, hints []string) bool {
	if header == "" {
		return false
	}
	clean := NormalizeHeader(header)
	if clean == "" {
		return false
	}
	for _, hint := range hints {
		if hint != "" && strings.Contains(clean, hint) {
			return true
		}
	}
	return false
}

// classifyColumns maps a header row to per-column full-redaction flags.
// Classification happens once per sheet, from row 1 only.
func classifyColumns(headers []string, hints []string) []bool {
	flags := make([]bool, len(headers))
	for i, h := range headers {
		flags[i] = ShouldRedactColumn(h, hints)
	}
	return flags
}
