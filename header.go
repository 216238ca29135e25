package pwaux

import (
	"regexp"
	"strings"
)

// dataHeaderRe matches the DATA(name, [p1, p2, ...]) header shape with
// the bracketed parameter list on one line.
var dataHeaderRe = regexp.MustCompile(`(?i)^\s*DATA\s*\(\s*([A-Za-z_]\w*)?\s*,?\s*\[([^\]]*)\]`)

// identOpenRe matches a bare name( header at any indentation. Unlike
// DetectDataBlock, indentation is permitted here: the backward scan is
// looking for the header of the block the query line already sits in.
var identOpenRe = regexp.MustCompile(`^\s*([A-Za-z_]\w*)\s*\(`)

// FindDataBlockHeader scans backward from fromLine (inclusive) for the
// nearest enclosing DATA/function block header and returns its declared
// parameter list. The scan keeps walking over data rows, blanks, and
// comments, but stops without a result at block boundaries: a standalone
// closing brace, a header that yields no parameters, or a DATA( line
// that does not carry a bracketed list. Stopping at boundaries is what
// keeps a query from leaking into a sibling block above.
func FindDataBlockHeader(lines []string, fromLine int) *HeaderInfo {
	if fromLine >= len(lines) {
		fromLine = len(lines) - 1
	}

	for i := fromLine; i >= 0; i-- {
		line := lines[i]

		if m := dataHeaderRe.FindStringSubmatch(line); m != nil {
			params := splitParams(m[2])
			if len(params) == 0 {
				return nil
			}

			name := m[1]
			if name == "" {
				name = "DATA"
			}

			return &HeaderInfo{BlockName: name, Parameters: params, Line: i}
		}

		if m := identOpenRe.FindStringSubmatch(line); m != nil {
			// DATA( without a bracketed list is a boundary, not a
			// resolvable header; rule one above owns that shape.
			if strings.EqualFold(m[1], "data") {
				return nil
			}

			params := ExtractParameters(lines, i)
			if len(params) == 0 {
				return nil
			}

			return &HeaderInfo{BlockName: m[1], Parameters: params, Line: i}
		}

		if strings.TrimSpace(line) == "}" {
			return nil
		}
	}

	return nil
}

// ExtractParameters collects the full parenthesized parameter list
// starting at the first ( on startLine, concatenating content across
// lines and counting nested parens until the matching ). Returns nil for
// an unterminated list.
func ExtractParameters(lines []string, startLine int) []string {
	if startLine >= len(lines) {
		return nil
	}

	open := strings.IndexByte(lines[startLine], '(')
	if open < 0 {
		return nil
	}

	var (
		b     strings.Builder
		depth = 1
	)

	line := lines[startLine][open+1:]

	for i := startLine; i < len(lines); i++ {
		if i > startLine {
			line = lines[i]

			b.WriteByte(' ')
		}

		for j := 0; j < len(line); j++ {
			switch line[j] {
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return splitParams(b.String())
				}
			}

			b.WriteByte(line[j])
		}
	}

	return nil
}

// splitParams splits a comma-separated parameter list, trimming each
// entry and dropping empty ones.
func splitParams(s string) []string {
	var params []string

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			params = append(params, p)
		}
	}

	return params
}
