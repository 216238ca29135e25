package lsp

import (
	"context"
	"strings"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"
)

// Completion handles textDocument/completion requests. The dictionary
// is static; no parsing happens here. Trigger-character invocations are
// gated on the configured trigger set.
func (s *Server) Completion(_ context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	s.logger.Debug("Completion",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Uint32("line", params.Position.Line),
		zap.Uint32("character", params.Position.Character))

	doc, ok := s.getDocument(params.TextDocument.URI)
	if !ok {
		return nil, nil //nolint:nilnil
	}

	var triggerChar string

	if params.Context != nil && params.Context.TriggerCharacter != "" {
		triggerChar = params.Context.TriggerCharacter
		if !s.triggerCharacter(triggerChar) {
			return nil, nil //nolint:nilnil
		}
	}

	items := completionItems()

	prefix := completionPrefix(doc, params.Position, triggerChar)
	if prefix != "" {
		items = filterByPrefix(items, prefix)
	}

	return &protocol.CompletionList{
		IsIncomplete: false,
		Items:        items,
	}, nil
}

// triggerCharacter reports whether ch is a configured trigger character.
func (s *Server) triggerCharacter(ch string) bool {
	for _, t := range s.triggerCharacters {
		if t == ch {
			return true
		}
	}

	return false
}

// completionPrefix extracts the word (or tag opener) before the cursor
// used to narrow the dictionary.
func completionPrefix(doc *Document, pos protocol.Position, triggerChar string) string {
	if triggerChar != "" {
		return triggerChar
	}

	if doc.Analysis == nil || int(pos.Line) >= len(doc.Analysis.Doc.Lines) {
		return ""
	}

	line := doc.Analysis.Doc.Lines[pos.Line]

	col := int(pos.Character)
	if col > len(line) {
		col = len(line)
	}

	start := col
	for start > 0 && isWordByte(line[start-1]) {
		start--
	}

	// Include a tag opener so "<SUB" matches the SUBDATA tags.
	if start > 0 && (line[start-1] == '<' || (start > 1 && line[start-1] == '/' && line[start-2] == '<')) {
		start--
		if line[start] == '/' {
			start--
		}
	}

	return line[start:col]
}

func isWordByte(c byte) bool {
	return c == '_' || ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// filterByPrefix keeps items whose label or insert text matches the
// prefix case-insensitively.
func filterByPrefix(items []protocol.CompletionItem, prefix string) []protocol.CompletionItem {
	lower := strings.ToLower(prefix)

	var filtered []protocol.CompletionItem

	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item.Label), lower) ||
			strings.HasPrefix(strings.ToLower(item.InsertText), lower) {
			filtered = append(filtered, item)
		}
	}

	return filtered
}
