package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
)

func (s *Server) SemanticTokensFull(ctx context.Context, params *protocol.SemanticTokensParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content, 0, -1)}, nil
}

func (s *Server) SemanticTokensRange(ctx context.Context, params *protocol.SemanticTokensRangeParams) (*protocol.SemanticTokens, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return &protocol.SemanticTokens{Data: []uint32{}}, nil
	}
	r := params.Range
	return &protocol.SemanticTokens{Data: semanticTokens(doc.content, int(r.Start.Line), int(r.End.Line))}, nil
}

// semanticTokens encodes the fields of lines first through last, with
// last < 0 meaning the end of content.
func semanticTokens(content string, first, last int) []uint32 {
	data := []uint32{}
	prevLine, prevChar := 0, 0
	for n, line := range strings.Split(content, "\n") {
		if n < first || (last >= 0 && n > last) {
			continue
		}
		for _, sp := range lexLine(strings.TrimSuffix(line, "\r")) {
			deltaChar := sp.start
			if n == prevLine {
				deltaChar -= prevChar
			}
			data = append(data, uint32(n-prevLine), uint32(deltaChar), uint32(sp.end-sp.start), uint32(sp.kind), 0)
			prevLine, prevChar = n, sp.start
		}
	}
	return data
}

// Completion offers declared ids within edge records.
func (s *Server) Completion(ctx context.Context, params *protocol.CompletionParams) (*protocol.CompletionList, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	line := doc.line(int(params.Position.Line))
	if line == "" || line[0] != 'B' {
		return &protocol.CompletionList{Items: []protocol.CompletionItem{}}, nil
	}
	return &protocol.CompletionList{Items: completions(doc.content)}, nil
}

func completions(content string) []protocol.CompletionItem {
	items := []protocol.CompletionItem{
		{
			Label:      "0000",
			Kind:       protocol.CompletionItemKindValue,
			Detail:     "top level",
			InsertText: "0000",
		},
	}
	seen := map[int]bool{}
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		spans := lexLine(line)
		id, ok := lineID(line, spans)
		if !ok || seen[id] {
			continue
		}
		seen[id] = true
		label := ""
		if len(spans) > 2 {
			label = line[spans[2].start:spans[2].end]
		}
		num := fmt.Sprintf("%04d", id)
		items = append(items, protocol.CompletionItem{
			Label:      num,
			Kind:       protocol.CompletionItemKindValue,
			Detail:     label,
			InsertText: num,
		})
	}
	return items
}
