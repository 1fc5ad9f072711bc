package main

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/signadot/menutree/parse"
	"go.lsp.dev/protocol"
)

func (s *Server) publishDiagnostics(ctx context.Context, uri string) {
	doc := s.docs.get(uri)
	if doc == nil {
		return
	}

	diagnostics := validateDocument(doc)

	if s.conn != nil {
		s.conn.Notify(ctx, protocol.MethodTextDocumentPublishDiagnostics, &protocol.PublishDiagnosticsParams{
			URI:         protocol.DocumentURI(uri),
			Diagnostics: diagnostics,
		})
	}
}

func validateDocument(doc *document) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}
	for _, w := range doc.warnings {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    lineRange(w.Line-1, w.Col-1, w.Col),
			Severity: protocol.DiagnosticSeverityWarning,
			Message:  "unexpected character " + string(w.Char),
			Source:   lsName,
		})
	}
	if doc.err == nil {
		return diagnostics
	}
	d := protocol.Diagnostic{
		Range:    lineRange(0, 0, 0),
		Severity: protocol.DiagnosticSeverityError,
		Message:  doc.err.Error(),
		Source:   lsName,
	}
	var pe *parse.Error
	if errors.As(doc.err, &pe) {
		line := pe.Line - 1
		d.Range = lineRange(line, pe.Col-1, len(doc.line(line)))
		d.Message = pe.Kind.String() + " error: " + pe.Detail
	}
	return append(diagnostics, d)
}

func lineRange(line, start, end int) protocol.Range {
	line, start = max(line, 0), max(start, 0)
	end = max(end, start)
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(start)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(end)},
	}
}

func (s *Server) DidOpen(ctx context.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.docs.put(string(params.TextDocument.URI), params.TextDocument.Text, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidChange(ctx context.Context, params *protocol.DidChangeTextDocumentParams) error {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil
	}
	content := doc.content
	for _, change := range params.ContentChanges {
		content = applyChange(content, change)
	}
	s.docs.put(string(params.TextDocument.URI), content, params.TextDocument.Version)
	s.publishDiagnostics(ctx, string(params.TextDocument.URI))
	return nil
}

func (s *Server) DidClose(ctx context.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.docs.remove(string(params.TextDocument.URI))
	return nil
}

// applyChange applies an edit; a zero range replaces the whole document.
func applyChange(content string, change protocol.TextDocumentContentChangeEvent) string {
	r := change.Range
	if r.Start.Line == 0 && r.Start.Character == 0 && r.End.Line == 0 && r.End.Character == 0 {
		return change.Text
	}
	start := lineColToOffset(content, int(r.Start.Line), int(r.Start.Character))
	end := lineColToOffset(content, int(r.End.Line), int(r.End.Character))
	if end < start {
		return content
	}
	return content[:start] + change.Text + content[end:]
}

// lineColToOffset converts a 0-based line and character to a byte offset,
// clamping to the end of the line or of content.
func lineColToOffset(content string, line, col int) int {
	off := 0
	for i := 0; i < line; i++ {
		j := strings.IndexByte(content[off:], '\n')
		if j < 0 {
			return len(content)
		}
		off += j + 1
	}
	for c := 0; c < col && off < len(content) && content[off] != '\n'; c++ {
		_, size := utf8.DecodeRuneInString(content[off:])
		off += size
	}
	return off
}
