package lsp_test

import (
	"context"
	"strings"
	"testing"

	"go.lsp.dev/protocol"
)

func TestServer_Completion_Keywords(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	openDoc(t, server, "SCRIPT Test\n{\n\n}\n")

	// Request completion on the empty body line.
	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.aux"},
			Position:     protocol.Position{Line: 2, Character: 0},
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result == nil || len(result.Items) == 0 {
		t.Fatal("Expected completion items")
	}

	// The full dictionary is offered without a prefix.
	var hasCommand, hasObjectType, hasStructure bool

	for _, item := range result.Items {
		switch {
		case item.Label == "SolvePowerFlow" && item.Kind == protocol.CompletionItemKindFunction:
			hasCommand = true
		case item.Label == "BUS" && item.Kind == protocol.CompletionItemKindClass:
			hasObjectType = true
		case item.Label == "SCRIPT" && item.Kind == protocol.CompletionItemKindKeyword:
			hasStructure = true
		}
	}

	if !hasCommand {
		t.Error("Expected SolvePowerFlow command in completion")
	}

	if !hasObjectType {
		t.Error("Expected BUS object type in completion")
	}

	if !hasStructure {
		t.Error("Expected SCRIPT keyword in completion")
	}
}

func TestServer_Completion_PrefixFilter(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	openDoc(t, server, "SCRIPT Test\n{\nsolv\n}\n")

	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.aux"},
			Position:     protocol.Position{Line: 2, Character: 4},
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result == nil || len(result.Items) == 0 {
		t.Fatal("Expected completion items for prefix")
	}

	// Matching is case-insensitive; everything offered starts with the
	// prefix.
	for _, item := range result.Items {
		if !strings.HasPrefix(strings.ToLower(item.Label), "solv") &&
			!strings.HasPrefix(strings.ToLower(item.InsertText), "solv") {
			t.Errorf("item %q does not match prefix", item.Label)
		}
	}
}

func TestServer_Completion_SubdataTagPrefix(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	openDoc(t, server, "DATA (Bus, [BusNum])\n{\n<SUB\n}\n")

	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.aux"},
			Position:     protocol.Position{Line: 2, Character: 4},
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result == nil || len(result.Items) == 0 {
		t.Fatal("Expected SUBDATA tag completion")
	}

	found := false

	for _, item := range result.Items {
		if item.Label == "<SUBDATA>" {
			found = true

			break
		}
	}

	if !found {
		t.Errorf("Expected <SUBDATA> in items, got: %v", result.Items)
	}
}

func TestServer_Completion_TriggerCharacter(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	openDoc(t, server, "DATA (Bus, [BusNum])\n{\n<\n}\n")

	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.aux"},
			Position:     protocol.Position{Line: 2, Character: 1},
		},
		Context: &protocol.CompletionContext{
			TriggerKind:      protocol.CompletionTriggerKindTriggerCharacter,
			TriggerCharacter: "<",
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result == nil || len(result.Items) == 0 {
		t.Fatal("Expected items for configured trigger character")
	}

	for _, item := range result.Items {
		if !strings.HasPrefix(item.Label, "<") {
			t.Errorf("item %q does not match trigger prefix", item.Label)
		}
	}
}

func TestServer_Completion_UnconfiguredTrigger(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	openDoc(t, server, "SCRIPT Test\n{\n\n}\n")

	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///test.aux"},
			Position:     protocol.Position{Line: 2, Character: 0},
		},
		Context: &protocol.CompletionContext{
			TriggerKind:      protocol.CompletionTriggerKindTriggerCharacter,
			TriggerCharacter: "(",
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result != nil {
		t.Errorf("Expected nil for unconfigured trigger character, got %d items", len(result.Items))
	}
}

func TestServer_Completion_UnknownDocument(t *testing.T) {
	t.Parallel()

	server, _ := newTestServer(t)
	ctx := context.Background()

	_, _ = server.Initialize(ctx, &protocol.InitializeParams{})

	result, err := server.Completion(ctx, &protocol.CompletionParams{
		TextDocumentPositionParams: protocol.TextDocumentPositionParams{
			TextDocument: protocol.TextDocumentIdentifier{URI: "file:///missing.aux"},
			Position:     protocol.Position{Line: 0, Character: 0},
		},
	})
	if err != nil {
		t.Fatalf("Completion() error: %v", err)
	}

	if result != nil {
		t.Error("Expected nil for unknown document")
	}
}
