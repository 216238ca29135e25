// Package lsp implements a Language Server Protocol server for
// PowerWorld auxiliary files.
package lsp

import (
	"context"
	"errors"
	"sync"

	"go.lsp.dev/protocol"
	"go.uber.org/zap"

	"github.com/auxtools/pwaux"
	"github.com/auxtools/pwaux/analysis"
)

// defaultTriggerCharacters opens SUBDATA tag completion.
var defaultTriggerCharacters = []string{"<"}

// Server implements the LSP Server interface for aux files.
type Server struct {
	client protocol.Client
	logger *zap.Logger

	// Document state
	mu        sync.RWMutex
	documents map[protocol.DocumentURI]*Document

	// Analyzer for structural validation
	analyzer *analysis.Analyzer

	// Completion trigger characters (config-overridable)
	triggerCharacters []string

	// Server state
	initialized   bool
	shutdown      bool
	workspaceRoot string
}

// Document represents an open document in the server.
type Document struct {
	URI      protocol.DocumentURI
	Version  int32
	Content  string
	Analysis *analysis.AnalyzedFile
}

// NewServer creates a new LSP server. cfg may be nil; the workspace
// config is picked up at Initialize when one exists.
func NewServer(client protocol.Client, logger *zap.Logger, cfg *pwaux.Config) *Server {
	s := &Server{
		client:            client,
		logger:            logger,
		documents:         make(map[protocol.DocumentURI]*Document),
		analyzer:          analysis.NewAnalyzerFromConfig(cfg),
		triggerCharacters: defaultTriggerCharacters,
	}

	if cfg != nil && len(cfg.TriggerCharacters) > 0 {
		s.triggerCharacters = cfg.TriggerCharacters
	}

	return s
}

// Initialize handles the initialize request.
func (s *Server) Initialize(_ context.Context, params *protocol.InitializeParams) (*protocol.InitializeResult, error) {
	s.logger.Info("Initialize")

	// Extract workspace root from params
	if params.RootURI != "" {
		s.workspaceRoot = URIToPath(params.RootURI)
	} else if params.RootPath != "" {
		s.workspaceRoot = params.RootPath
	}

	if s.workspaceRoot != "" {
		s.logger.Info("Workspace root", zap.String("root", s.workspaceRoot))
		s.loadWorkspaceConfig()
	}

	return &protocol.InitializeResult{
		Capabilities: protocol.ServerCapabilities{
			// Full document sync - client sends entire content on change
			TextDocumentSync: &protocol.TextDocumentSyncOptions{
				OpenClose: true,
				Change:    protocol.TextDocumentSyncKindFull,
			},
			// Hover support (field under cursor)
			HoverProvider: true,
			// Keyword completion
			CompletionProvider: &protocol.CompletionOptions{
				TriggerCharacters: s.triggerCharacters,
				ResolveProvider:   false,
			},
			// Document symbol support for outline view
			DocumentSymbolProvider: true,
			// Folding ranges for SCRIPT/DATA blocks
			FoldingRangeProvider: true,
		},
		ServerInfo: &protocol.ServerInfo{
			Name:    "pwaux-lsp",
			Version: "0.1.0",
		},
	}, nil
}

// loadWorkspaceConfig applies the nearest .pwaux.yaml, if any.
func (s *Server) loadWorkspaceConfig() {
	cfg, err := pwaux.LoadConfig(s.workspaceRoot)
	if err != nil {
		if !errors.Is(err, pwaux.ErrConfigNotFound) {
			s.logger.Warn("Failed to load config", zap.Error(err))
		}

		return
	}

	s.logger.Info("Loaded workspace config",
		zap.Strings("disabled-rules", cfg.DisabledRules))

	s.analyzer = analysis.NewAnalyzerFromConfig(cfg)

	if len(cfg.TriggerCharacters) > 0 {
		s.triggerCharacters = cfg.TriggerCharacters
	}
}

// Initialized handles the initialized notification.
func (s *Server) Initialized(_ context.Context, _ *protocol.InitializedParams) error {
	s.logger.Info("Initialized")
	s.initialized = true

	return nil
}

// Shutdown handles the shutdown request.
func (s *Server) Shutdown(_ context.Context) error {
	s.logger.Info("Shutdown")
	s.shutdown = true

	return nil
}

// Exit handles the exit notification.
func (s *Server) Exit(_ context.Context) error {
	s.logger.Info("Exit")
	// The main loop should handle exiting after this
	return nil
}

// DidOpen handles textDocument/didOpen notifications.
func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.logger.Info("DidOpen", zap.String("uri", string(params.TextDocument.URI)))

	s.mu.Lock()
	defer s.mu.Unlock()

	doc := &Document{
		URI:     params.TextDocument.URI,
		Version: params.TextDocument.Version,
		Content: params.TextDocument.Text,
	}

	doc.Analysis = s.analyzer.Analyze(URIToPath(doc.URI), []byte(doc.Content))
	s.documents[params.TextDocument.URI] = doc

	// Publish diagnostics
	s.publishDiagnostics(ctx, doc)

	return nil
}

// DidChange handles textDocument/didChange notifications.
func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	s.logger.Debug("DidChange",
		zap.String("uri", string(params.TextDocument.URI)),
		zap.Int32("version", params.TextDocument.Version))

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, ok := s.documents[params.TextDocument.URI]
	if !ok {
		s.logger.Warn("DidChange for unknown document", zap.String("uri", string(params.TextDocument.URI)))

		return nil
	}

	// Full sync - take the last content change (should only be one with full sync)
	if len(params.ContentChanges) > 0 {
		doc.Content = params.ContentChanges[len(params.ContentChanges)-1].Text
		doc.Version = params.TextDocument.Version
		doc.Analysis = s.analyzer.Analyze(URIToPath(doc.URI), []byte(doc.Content))

		// Publish diagnostics
		s.publishDiagnostics(ctx, doc)
	}

	return nil
}

// DidClose handles textDocument/didClose notifications.
func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.logger.Info("DidClose", zap.String("uri", string(params.TextDocument.URI)))

	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.documents, params.TextDocument.URI)

	// Clear diagnostics for closed document
	err := s.client.PublishDiagnostics(ctx, &protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	if err != nil {
		s.logger.Error("Failed to clear diagnostics", zap.Error(err))
	}

	return nil
}

// DidSave handles textDocument/didSave notifications.
func (s *Server) DidSave(_ context.Context, params *protocol.DidSaveTextDocumentParams) error {
	s.logger.Info("DidSave", zap.String("uri", string(params.TextDocument.URI)))

	return nil
}

// getDocument returns a document by URI (read-locked).
func (s *Server) getDocument(uri protocol.DocumentURI) (*Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	doc, ok := s.documents[uri]

	return doc, ok
}
