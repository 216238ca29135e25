// Package pwaux provides structural analysis of PowerWorld auxiliary
// (.aux) files: block detection, quote-aware field tokenization, header
// resolution, and a single-pass document scan that the validator and the
// LSP providers are built on.
package pwaux

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// Span is a source region. Positions are 1-based line/column, matching
// lexer.Position; LSP conversions subtract one at the boundary.
type Span struct {
	Start lexer.Position
	End   lexer.Position
}

// LineSpan builds a span within a single 0-indexed line from 0-based
// column offsets.
func LineSpan(line, startCol, endCol int) Span {
	return Span{
		Start: lexer.Position{Line: line + 1, Column: startCol + 1, Offset: startCol},
		End:   lexer.Position{Line: line + 1, Column: endCol + 1, Offset: endCol},
	}
}

// BlockKind classifies a detected structural region.
type BlockKind int

// Block kind constants. The classification is mutually exclusive: the
// SCRIPT check always precedes the DATA/function check.
const (
	BlockScript BlockKind = iota
	BlockData
	BlockFunction
)

// String returns a human-readable kind name.
func (k BlockKind) String() string {
	switch k {
	case BlockScript:
		return "SCRIPT"
	case BlockData:
		return "DATA"
	case BlockFunction:
		return "data"
	default:
		return "unknown"
	}
}

// Block is a detected structural region. Blocks are recomputed fresh on
// every scan and never mutated afterwards.
type Block struct {
	Kind BlockKind
	Name string

	// HeaderLine is the 0-indexed line of the block header.
	HeaderLine int

	// NameStart/NameEnd are byte offsets of the name on the header line,
	// or -1 for an unnamed block.
	NameStart int
	NameEnd   int

	// BodyStart and BodyEnd delimit the lines the validator walks.
	// BodyEnd is the closing-brace line for a closed block, the line
	// before the next header for a block terminated implicitly, or the
	// last line of the document for an unterminated block.
	BodyStart int
	BodyEnd   int

	// End is the closing-brace line found by depth counting from the
	// header (outline and folding ranges). The last document line acts
	// as the unterminated sentinel.
	End int

	// SingleLine marks a brace-complete block on one line.
	SingleLine bool

	// Closed reports whether the block was terminated by a closing
	// brace. Unclosed blocks produce diagnostics.
	Closed bool

	// Header holds the resolved parameter list for DATA/function
	// blocks; nil when no header could be resolved.
	Header *HeaderInfo
}

// HeaderSpan returns the span of the header line.
func (b *Block) HeaderSpan(lines []string) Span {
	end := 0
	if b.HeaderLine < len(lines) {
		end = len(lines[b.HeaderLine])
	}

	return LineSpan(b.HeaderLine, 0, end)
}

// NameSpan returns the span of the block name on the header line, or the
// header span when the block is unnamed.
func (b *Block) NameSpan(lines []string) Span {
	if b.NameStart < 0 {
		return b.HeaderSpan(lines)
	}

	return LineSpan(b.HeaderLine, b.NameStart, b.NameEnd)
}

// HeaderInfo is the declared schema of a DATA/function block: the block
// name and its ordered (order-significant, possibly repeating) parameter
// names. Derived on demand; never cached across edits.
type HeaderInfo struct {
	BlockName  string
	Parameters []string

	// Line is the 0-indexed line the header was resolved on.
	Line int
}

// Field is one whitespace-delimited, quote-aware token of a data row.
// Quoted content is a single field including the quotes. Start and End
// are byte offsets into the (comment-stripped) line.
type Field struct {
	Text  string
	Start int
	End   int
}

// Document is the result of scanning one buffer snapshot: the split
// lines and the ordered list of detected blocks.
type Document struct {
	Lines  []string
	Blocks []*Block
}

// BlockAt returns the block whose outline range contains the given
// 0-indexed line, or nil. Later blocks win so that a block following an
// unterminated one shadows its sentinel range.
func (d *Document) BlockAt(line int) *Block {
	var found *Block

	for _, b := range d.Blocks {
		if b.HeaderLine <= line && line <= b.End {
			found = b
		}
	}

	return found
}
