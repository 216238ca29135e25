package pwaux

import (
	"regexp"
	"strings"
)

var (
	subdataOpenRe  = regexp.MustCompile(`(?i)<SUBDATA(\s[^>]*)?>`)
	subdataCloseRe = regexp.MustCompile(`(?i)</SUBDATA\s*>`)
)

// InsideSubdata reports whether the given 0-indexed line lies inside a
// <SUBDATA ...> ... </SUBDATA> sub-region. SUBDATA content is free-form
// and exempt from field-count checks. The backward scan stops at the
// first structural boundary, so the answer never leaks across blocks.
func InsideSubdata(lines []string, line int) bool {
	if line >= len(lines) {
		return false
	}

	for i := line; i >= 0; i-- {
		l := lines[i]

		if subdataCloseRe.MatchString(l) {
			return false
		}

		if subdataOpenRe.MatchString(l) {
			return true
		}

		if isStructuralBoundary(l) {
			return false
		}
	}

	return false
}

// IsSubdataTag reports whether a line carries a SUBDATA open or close
// tag. Tag lines themselves are skipped by the validator.
func IsSubdataTag(line string) bool {
	return subdataOpenRe.MatchString(line) || subdataCloseRe.MatchString(line)
}

// isStructuralBoundary reports whether a line delimits block structure:
// a standalone closing brace, any opening brace, or a block header.
func isStructuralBoundary(line string) bool {
	if strings.TrimSpace(line) == "}" || strings.Contains(line, "{") {
		return true
	}

	return DetectDataBlock(line).Kind != DataNone
}
