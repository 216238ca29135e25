package lsp

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/auxtools/pwaux"
	"github.com/auxtools/pwaux/analysis"
)

// Hover handles textDocument/hover requests. For a data row it reports
// which declared field the cursor is on, the enclosing block, and the
// field's value. SCRIPT bodies and SUBDATA regions yield no hover.
func (s *Server) Hover(_ context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	s.logger.Debug("Hover",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok || doc.Analysis == nil {
		return nil, nil //nolint:nilnil
	}

	lines := doc.Analysis.Doc.Lines

	line := int(params.Position.Line)
	col := int(params.Position.Character)

	if line >= len(lines) {
		return nil, nil //nolint:nilnil
	}

	// Field hover only applies to data rows.
	if b := analysis.BlockAt(doc.Analysis, line); b != nil && b.Kind == pwaux.BlockScript {
		return nil, nil //nolint:nilnil
	}

	if pwaux.IsSubdataTag(lines[line]) || pwaux.InsideSubdata(lines, line) {
		return nil, nil //nolint:nilnil
	}

	header := pwaux.FindDataBlockHeader(lines, line)
	if header == nil || header.Line == line {
		return nil, nil //nolint:nilnil
	}

	stripped := pwaux.RemoveEOLComment(lines[line])

	idx, field := analysis.FieldAt(pwaux.ParseDataLine(stripped), col)
	if field == nil || idx >= len(header.Parameters) {
		return nil, nil //nolint:nilnil
	}

	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: hoverContent(header, idx, field),
		},
		Range: rangePtr(spanToRange(pwaux.LineSpan(line, field.Start, field.End))),
	}, nil
}

// hoverContent renders the field hover markdown.
func hoverContent(header *pwaux.HeaderInfo, idx int, field *pwaux.Field) string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("**Field:** `%s` (%d of %d)\n\n",
		header.Parameters[idx], idx+1, len(header.Parameters)))
	b.WriteString(fmt.Sprintf("**Block:** `%s`\n\n", header.BlockName))
	b.WriteString(fmt.Sprintf("**Value:** `%s`", field.Text))

	return b.String()
}
