package lsp

import (
	"context"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// FoldingRanges handles textDocument/foldingRange requests.
// Returns one region per multi-line SCRIPT/DATA block; an unterminated
// block folds through the end of the document.
func (s *Server) FoldingRanges(_ context.Context, params *protocol.FoldingRangeParams) ([]protocol.FoldingRange, error) {
	s.logger.Debug("FoldingRanges",
		zap.String("uri", string(params.TextDocument.URI)))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok || doc.Analysis == nil {
		return nil, nil
	}

	var ranges []protocol.FoldingRange

	for _, b := range doc.Analysis.Doc.Blocks {
		if b.End <= b.HeaderLine {
			continue
		}

		ranges = append(ranges, protocol.FoldingRange{
			StartLine: uint32(b.HeaderLine), //nolint:gosec
			EndLine:   uint32(b.End),        //nolint:gosec
			Kind:      protocol.RegionFoldingRange,
		})
	}

	return ranges, nil
}
