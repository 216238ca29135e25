package pwaux

import "strings"

// ParseDataLine splits a line into whitespace-delimited fields while
// respecting double-quoted strings. A quote immediately preceded by a
// backslash does not toggle quote state, and contiguous runs that embed
// quoted segments form a single field. The trailing partial field is
// flushed at end of line; empty fields are dropped.
func ParseDataLine(line string) []Field {
	var fields []Field

	inQuotes := false
	start := -1

	for i := 0; i < len(line); i++ {
		c := line[i]

		switch {
		case c == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes

			if start < 0 {
				start = i
			}
		case (c == ' ' || c == '\t') && !inQuotes:
			if start >= 0 {
				fields = append(fields, Field{Text: line[start:i], Start: start, End: i})
				start = -1
			}
		default:
			if start < 0 {
				start = i
			}
		}
	}

	if start >= 0 {
		fields = append(fields, Field{Text: line[start:], Start: start, End: len(line)})
	}

	return fields
}

// RemoveEOLComment truncates a line at the first // found outside a
// quoted string, trimming trailing whitespace from the kept prefix. A //
// inside an open quote is not a comment start. Lines without a comment
// are returned unchanged.
func RemoveEOLComment(line string) string {
	inQuotes := false

	for i := 0; i < len(line); i++ {
		switch {
		case line[i] == '"' && (i == 0 || line[i-1] != '\\'):
			inQuotes = !inQuotes
		case !inQuotes && line[i] == '/' && i+1 < len(line) && line[i+1] == '/':
			return strings.TrimRight(line[:i], " \t")
		}
	}

	return line
}

// IsCommentLine reports whether a line holds nothing but a comment.
func IsCommentLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "//")
}
