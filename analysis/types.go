// Package analysis provides structural validation for PowerWorld
// auxiliary files.
package analysis

import (
	"github.com/auxtools/pwaux"
)

// AnalyzedFile holds analysis results for a single buffer snapshot.
// Every analysis pass produces a fresh instance; the diagnostic set
// replaces the previous one wholesale.
type AnalyzedFile struct {
	// Path is the file path (URI in LSP terms).
	Path string

	// Doc is the scanned block structure.
	Doc *pwaux.Document

	// Diagnostics contains all errors and warnings found during
	// validation.
	Diagnostics []Diagnostic

	// Symbols lists the blocks found in this file, in document order.
	Symbols *SymbolTable
}

// SymbolTable holds the block definitions of a file.
type SymbolTable struct {
	// Blocks in document order.
	Blocks []*BlockSymbol

	// ByName groups blocks by name; names may repeat.
	ByName map[string][]*BlockSymbol
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		ByName: make(map[string][]*BlockSymbol),
	}
}

// BlockSymbol represents one SCRIPT/DATA/function block.
type BlockSymbol struct {
	Name string
	Kind pwaux.BlockKind
	Span pwaux.Span

	// NameSpan is the range of the name on the header line.
	NameSpan pwaux.Span

	// Block is the underlying scanned block.
	Block *pwaux.Block
}

// Diagnostic represents an error or warning found during validation.
type Diagnostic struct {
	Span     pwaux.Span
	Severity DiagnosticSeverity
	Message  string
	Code     string // e.g., "unclosed-block", "field-count"
	Source   string // "validator"
}

// DiagnosticSeverity indicates the severity of a diagnostic.
type DiagnosticSeverity int

// Diagnostic severity constants.
const (
	SeverityError DiagnosticSeverity = iota + 1
	SeverityWarning
	SeverityInformation
	SeverityHint
)

// diagnosticSource is the Source attached to every diagnostic.
const diagnosticSource = "validator"
