package pwaux

import (
	"regexp"
	"strings"
)

// ScriptKind classifies how a line opens a SCRIPT block.
type ScriptKind int

// Script detection results.
const (
	// ScriptNone means the line is not a SCRIPT header.
	ScriptNone ScriptKind = iota
	// ScriptSameLineComplete is a self-contained single-line block:
	// header, opening brace, and closing brace on one line.
	ScriptSameLineComplete
	// ScriptSameLineOpen is a header with the opening brace on the same
	// line and the body continuing below.
	ScriptSameLineOpen
	// ScriptNextLine is a bare header; the brace-delimited body starts
	// on a following line.
	ScriptNextLine
)

// ScriptDetection is the result of DetectScriptBlock.
type ScriptDetection struct {
	Kind ScriptKind
	Name string

	// NameStart/NameEnd are byte offsets of the name, or -1 if unnamed.
	NameStart int
	NameEnd   int

	// ContentStart is the 0-indexed line where block content begins.
	ContentStart int

	// Complete reports whether the block closes on the header line.
	Complete bool
}

var (
	scriptBraceRe = regexp.MustCompile(`(?i)^\s*SCRIPT\s*(\w+)?\s*\{`)
	scriptBareRe  = regexp.MustCompile(`(?i)^\s*SCRIPT\s*(\w+)?\s*$`)
)

// DetectScriptBlock classifies a line as a SCRIPT block header. The
// check is case-insensitive and tolerant of a missing name.
func DetectScriptBlock(line string, lineIndex int) ScriptDetection {
	if m := scriptBraceRe.FindStringSubmatchIndex(line); m != nil {
		d := ScriptDetection{
			Name:         submatch(line, m, 1),
			NameStart:    m[2],
			NameEnd:      m[3],
			ContentStart: lineIndex,
		}

		open := strings.IndexByte(line, '{')
		if close := strings.LastIndexByte(line, '}'); close > open {
			d.Kind = ScriptSameLineComplete
			d.Complete = true
		} else {
			d.Kind = ScriptSameLineOpen
		}

		return d
	}

	if m := scriptBareRe.FindStringSubmatchIndex(line); m != nil {
		return ScriptDetection{
			Kind:         ScriptNextLine,
			Name:         submatch(line, m, 1),
			NameStart:    m[2],
			NameEnd:      m[3],
			ContentStart: lineIndex + 1,
		}
	}

	return ScriptDetection{Kind: ScriptNone, NameStart: -1, NameEnd: -1}
}

// DataKind classifies a DATA/function header line.
type DataKind int

// Data detection results.
const (
	// DataNone means the line is not a DATA or function header.
	DataNone DataKind = iota
	// DataBlock is a DATA(...) header.
	DataBlock
	// DataFunction is a name(...) header anchored at column 0.
	DataFunction
)

// DataDetection is the result of DetectDataBlock.
type DataDetection struct {
	Kind DataKind
	Name string

	// NameStart/NameEnd are byte offsets of the name.
	NameStart int
	NameEnd   int

	// HasParameters reports whether the parenthesized list has content
	// on the header line.
	HasParameters bool
}

var (
	dataOpenRe = regexp.MustCompile(`(?i)^\s*(DATA)\s*\(`)
	// Anchored at column 0: an indented identifier-paren line is a data
	// row, not a header.
	funcOpenRe = regexp.MustCompile(`^([A-Za-z_]\w*)\s*\(`)
)

// DetectDataBlock classifies a line as a DATA or function block header.
func DetectDataBlock(line string) DataDetection {
	if m := dataOpenRe.FindStringSubmatchIndex(line); m != nil {
		return DataDetection{
			Kind:          DataBlock,
			Name:          "DATA",
			NameStart:     m[2],
			NameEnd:       m[3],
			HasParameters: parenHasContent(line, m[1]),
		}
	}

	if m := funcOpenRe.FindStringSubmatchIndex(line); m != nil {
		name := submatch(line, m, 1)
		if strings.EqualFold(name, "data") {
			return DataDetection{Kind: DataNone, NameStart: -1, NameEnd: -1}
		}

		return DataDetection{
			Kind:          DataFunction,
			Name:          name,
			NameStart:     m[2],
			NameEnd:       m[3],
			HasParameters: parenHasContent(line, m[1]),
		}
	}

	return DataDetection{Kind: DataNone, NameStart: -1, NameEnd: -1}
}

// FindClosingBrace scans forward from startLine counting braces and
// returns the 0-indexed line where the depth first returns to zero. If
// the block never closes it returns the last line index as a sentinel:
// validation reports it unterminated, folding folds the remainder.
func FindClosingBrace(lines []string, startLine int) int {
	depth := 0
	opened := false

	for i := startLine; i < len(lines); i++ {
		for j := 0; j < len(lines[i]); j++ {
			switch lines[i][j] {
			case '{':
				depth++
				opened = true
			case '}':
				depth--
			}

			if opened && depth <= 0 {
				return i
			}
		}
	}

	return len(lines) - 1
}

// submatch returns capture group n of a FindStringSubmatchIndex result.
func submatch(line string, m []int, n int) string {
	if m[2*n] < 0 {
		return ""
	}

	return line[m[2*n]:m[2*n+1]]
}

// parenHasContent reports whether the parenthesized list opening after
// byte offset from has any content before the closing paren (or the end
// of the line, for a multi-line list).
func parenHasContent(line string, from int) bool {
	open := strings.IndexByte(line[from:], '(')
	if open < 0 {
		return false
	}

	rest := line[from+open+1:]
	if close := strings.IndexByte(rest, ')'); close >= 0 {
		rest = rest[:close]
	}

	return strings.TrimSpace(rest) != ""
}
