package pwaux

import "strings"

// scanState is the validator's structural state while walking lines.
type scanState int

const (
	stateIdle scanState = iota
	stateInScript
	stateInData
)

// SplitLines splits a buffer into lines, tolerating CRLF endings.
func SplitLines(content []byte) []string {
	lines := strings.Split(string(content), "\n")
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}

	return lines
}

// Scan performs the single forward pass over a buffer snapshot and
// returns the detected block structure. It is the one place the
// structural state machine runs; validation rules and the LSP providers
// answer their queries from the result instead of re-scanning.
//
// Transition order per line (blank and comment-only lines are skipped):
// SCRIPT header, DATA/function header (only while idle), opening brace,
// standalone closing brace, body line.
func Scan(content []byte) *Document {
	doc := &Document{Lines: SplitLines(content)}
	lines := doc.Lines

	st := stateIdle

	var (
		open    *Block // block whose body is being walked
		pending *Block // DATA/function header awaiting its opening brace
	)

	// flush implicitly terminates whatever is still open when a new
	// header begins. Blocks closed this way stay Closed=false and are
	// reported unterminated.
	flush := func(line int) {
		if open != nil {
			open.BodyEnd = line - 1
			open = nil
		}

		if pending != nil {
			// A header whose body never opened: nothing to validate.
			pending.BodyStart = pending.HeaderLine + 1
			pending.BodyEnd = pending.HeaderLine
			pending.Closed = true
			pending = nil
		}

		st = stateIdle
	}

	for i, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if trimmed == "" || strings.HasPrefix(trimmed, "//") {
			continue
		}

		if sd := DetectScriptBlock(raw, i); sd.Kind != ScriptNone {
			flush(i)

			b := &Block{
				Kind:       BlockScript,
				Name:       sd.Name,
				HeaderLine: i,
				NameStart:  sd.NameStart,
				NameEnd:    sd.NameEnd,
				End:        FindClosingBrace(lines, i),
			}
			doc.Blocks = append(doc.Blocks, b)

			switch sd.Kind {
			case ScriptSameLineComplete:
				b.BodyStart = i
				b.BodyEnd = i
				b.SingleLine = true
				b.Closed = true
			case ScriptSameLineOpen, ScriptNextLine:
				b.BodyStart = i + 1
				b.BodyEnd = len(lines) - 1

				open = b
				st = stateInScript
			case ScriptNone:
			}

			continue
		}

		if st == stateIdle {
			if dd := DetectDataBlock(raw); dd.Kind != DataNone {
				flush(i)

				kind := BlockData
				if dd.Kind == DataFunction {
					kind = BlockFunction
				}

				b := &Block{
					Kind:       kind,
					Name:       dd.Name,
					HeaderLine: i,
					NameStart:  dd.NameStart,
					NameEnd:    dd.NameEnd,
					BodyStart:  i + 1,
					BodyEnd:    len(lines) - 1,
					End:        FindClosingBrace(lines, i),
					Header:     FindDataBlockHeader(lines, i),
				}
				doc.Blocks = append(doc.Blocks, b)
				pending = b

				continue
			}
		}

		if strings.HasPrefix(trimmed, "{") {
			if st == stateInScript {
				// A brace-complete line closes the block; its inline
				// content is validated as a statement by the rules.
				if open != nil && strings.Contains(trimmed, "}") {
					open.BodyEnd = i
					open.Closed = true
					open = nil
					st = stateIdle
				}

				continue
			}

			st = stateInData

			if pending != nil {
				pending.BodyStart = i + 1
				open = pending
				pending = nil
			}

			continue
		}

		if trimmed == "}" {
			if open != nil {
				open.BodyEnd = i
				open.Closed = true
				open = nil
			}

			if pending != nil {
				pending.BodyStart = pending.HeaderLine + 1
				pending.BodyEnd = pending.HeaderLine
				pending.Closed = true
				pending = nil
			}

			st = stateIdle

			continue
		}
	}

	flush(len(lines))

	return doc
}
