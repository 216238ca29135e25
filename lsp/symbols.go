package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/auxtools/pwaux"
	"github.com/auxtools/pwaux/analysis"
)

// DocumentSymbol handles textDocument/documentSymbol requests.
// Returns one symbol per SCRIPT/DATA/function block for the outline view.
func (s *Server) DocumentSymbol(_ context.Context, params *protocol.DocumentSymbolParams) ([]any, error) {
	s.logger.Debug("DocumentSymbol",
		zap.String("uri", string(params.TextDocument.URI)))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok || doc.Analysis == nil {
		return nil, nil
	}

	symbols := buildDocumentSymbols(doc.Analysis)

	// Convert to []any for the protocol
	result := make([]any, len(symbols))
	for i, sym := range symbols {
		result[i] = sym
	}

	return result, nil
}

// buildDocumentSymbols creates the flat outline from the scanned blocks.
func buildDocumentSymbols(f *analysis.AnalyzedFile) []protocol.DocumentSymbol {
	var symbols []protocol.DocumentSymbol

	for _, sym := range f.Symbols.Blocks {
		symbols = append(symbols, protocol.DocumentSymbol{
			Name:           sym.Name,
			Kind:           symbolKind(sym.Kind),
			Detail:         symbolDetail(sym.Kind),
			Range:          spanToRange(sym.Span),
			SelectionRange: spanToRange(sym.NameSpan),
		})
	}

	return symbols
}

// symbolKind maps block kinds to LSP symbol kinds.
func symbolKind(kind pwaux.BlockKind) protocol.SymbolKind {
	switch kind {
	case pwaux.BlockScript:
		return protocol.SymbolKindFunction
	case pwaux.BlockData:
		return protocol.SymbolKindStruct
	case pwaux.BlockFunction:
		return protocol.SymbolKindClass
	default:
		return protocol.SymbolKindObject
	}
}

// symbolDetail describes the block kind in the outline.
func symbolDetail(kind pwaux.BlockKind) string {
	switch kind {
	case pwaux.BlockScript:
		return "SCRIPT block"
	case pwaux.BlockData:
		return "DATA block"
	case pwaux.BlockFunction:
		return "data block"
	default:
		return ""
	}
}
