package analysis

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/auxtools/pwaux"
)

// Rule represents a validation check.
// Inspired by go/analysis.Analyzer pattern.
type Rule struct {
	// Name is a short identifier for the rule (used in diagnostic codes
	// and config).
	Name string

	// Doc is a brief description of what the rule checks.
	Doc string

	// Severity is the default severity for diagnostics from this rule.
	Severity DiagnosticSeverity

	// Run executes the rule and appends any diagnostics to the file.
	Run func(f *AnalyzedFile)
}

// DefaultRules returns all built-in validation rules.
func DefaultRules() []*Rule {
	return []*Rule{
		unclosedBlockRule,
		scriptSemicolonRule,
		fieldCountRule,
	}
}

// ----------------------------------------------------------------------------
// Rule: unclosed-block
// ----------------------------------------------------------------------------

var unclosedBlockRule = &Rule{
	Name:     "unclosed-block",
	Doc:      "Reports SCRIPT and DATA blocks that are never closed.",
	Severity: SeverityError,
	Run:      checkUnclosedBlocks,
}

func checkUnclosedBlocks(f *AnalyzedFile) {
	for _, b := range f.Doc.Blocks {
		if b.Closed {
			continue
		}

		kind := "DATA"
		if b.Kind == pwaux.BlockScript {
			kind = "SCRIPT"
		}

		msg := kind + " block is missing a closing brace"
		if b.Name != "" {
			msg = fmt.Sprintf("%s block %q is missing a closing brace", kind, b.Name)
		}

		f.Diagnostics = append(f.Diagnostics, Diagnostic{
			Span:     b.HeaderSpan(f.Doc.Lines),
			Severity: SeverityError,
			Message:  msg,
			Code:     "unclosed-block",
			Source:   diagnosticSource,
		})
	}
}

// ----------------------------------------------------------------------------
// Rule: script-semicolon
// ----------------------------------------------------------------------------

var scriptSemicolonRule = &Rule{
	Name:     "script-semicolon",
	Doc:      "Reports SCRIPT function calls without a terminating semicolon.",
	Severity: SeverityError,
	Run:      checkScriptStatements,
}

// funcCallRe matches a function-call-shaped statement.
var funcCallRe = regexp.MustCompile(`^[A-Za-z_]\w*\s*\(`)

func checkScriptStatements(f *AnalyzedFile) {
	lines := f.Doc.Lines

	for _, b := range f.Doc.Blocks {
		if b.Kind != pwaux.BlockScript {
			continue
		}

		if b.SingleLine {
			checkInlineStatement(f, b.HeaderLine)

			continue
		}

		for i := b.BodyStart; i <= b.BodyEnd && i < len(lines); i++ {
			raw := lines[i]

			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, "//") || trimmed == "}" {
				continue
			}

			if strings.HasPrefix(trimmed, "{") {
				// A brace-complete line carries its whole body inline.
				if strings.Contains(trimmed, "}") {
					checkInlineStatement(f, i)
				}

				continue
			}

			checkStatement(f, i, pwaux.RemoveEOLComment(raw), 0)
		}
	}
}

// checkInlineStatement validates the content between the braces of a
// brace-complete line. The closing brace is not part of the statement;
// a function call still requires its semicolon before the brace.
func checkInlineStatement(f *AnalyzedFile, line int) {
	stripped := pwaux.RemoveEOLComment(f.Doc.Lines[line])

	open := strings.IndexByte(stripped, '{')
	close := strings.LastIndexByte(stripped, '}')

	if open < 0 || close <= open {
		return
	}

	checkStatement(f, line, stripped[open+1:close], open+1)
}

// checkStatement emits a diagnostic when a function-call-shaped
// statement does not end with a semicolon. base is the byte offset of
// content within its line.
func checkStatement(f *AnalyzedFile, line int, content string, base int) {
	lead := len(content) - len(strings.TrimLeft(content, " \t"))
	stmt := strings.TrimSpace(content)

	if stmt == "" || !funcCallRe.MatchString(stmt) {
		return
	}

	if strings.HasSuffix(stmt, ";") {
		return
	}

	// Position immediately after the last non-comment character.
	col := base + lead + len(stmt)

	f.Diagnostics = append(f.Diagnostics, Diagnostic{
		Span:     pwaux.LineSpan(line, col, col+1),
		Severity: SeverityError,
		Message:  "Function call in SCRIPT block must end with a semicolon (;)",
		Code:     "script-semicolon",
		Source:   diagnosticSource,
	})
}

// ----------------------------------------------------------------------------
// Rule: field-count
// ----------------------------------------------------------------------------

var fieldCountRule = &Rule{
	Name:     "field-count",
	Doc:      "Compares data row field counts against the declared header.",
	Severity: SeverityError,
	Run:      checkFieldCounts,
}

func checkFieldCounts(f *AnalyzedFile) {
	lines := f.Doc.Lines

	for _, b := range f.Doc.Blocks {
		if b.Kind == pwaux.BlockScript || b.Header == nil || len(b.Header.Parameters) == 0 {
			continue
		}

		want := len(b.Header.Parameters)

		for i := b.BodyStart; i <= b.BodyEnd && i < len(lines); i++ {
			raw := lines[i]

			trimmed := strings.TrimSpace(raw)
			if trimmed == "" || strings.HasPrefix(trimmed, "//") ||
				strings.HasPrefix(trimmed, "{") || trimmed == "}" {
				continue
			}

			// SUBDATA regions are free-form; their rows do not follow
			// the declared schema.
			if pwaux.IsSubdataTag(raw) || pwaux.InsideSubdata(lines, i) {
				continue
			}

			stripped := pwaux.RemoveEOLComment(raw)

			fields := pwaux.ParseDataLine(stripped)
			if len(fields) == 0 || len(fields) == want {
				continue
			}

			if len(fields) > want {
				extra := len(fields) - want
				f.Diagnostics = append(f.Diagnostics, Diagnostic{
					Span: pwaux.LineSpan(i, fields[want].Start, len(stripped)),
					Severity: SeverityError,
					Message: fmt.Sprintf(
						"Too many fields: expected %d, found %d. Extra field(s): %d",
						want, len(fields), extra),
					Code:   "field-count",
					Source: diagnosticSource,
				})

				continue
			}

			missing := want - len(fields)
			f.Diagnostics = append(f.Diagnostics, Diagnostic{
				Span: pwaux.LineSpan(i, 0, len(stripped)),
				Severity: SeverityWarning,
				Message: fmt.Sprintf(
					"Missing fields: expected %d, found %d. Missing field(s): %d",
					want, len(fields), missing),
				Code:   "field-count",
				Source: diagnosticSource,
			})
		}
	}
}
