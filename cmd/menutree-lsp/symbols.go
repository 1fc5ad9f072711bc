package main

import (
	"context"
	"fmt"
	"strings"

	"go.lsp.dev/protocol"
)

// DocumentSymbol lists one symbol per data record, named by its label.
func (s *Server) DocumentSymbol(ctx context.Context, params *protocol.DocumentSymbolParams) ([]interface{}, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	res := []interface{}{}
	for _, sym := range symbols(doc.content) {
		res = append(res, sym)
	}
	return res, nil
}

func symbols(content string) []protocol.DocumentSymbol {
	res := []protocol.DocumentSymbol{}
	for n, line := range strings.Split(content, "\n") {
		line = strings.TrimSuffix(line, "\r")
		spans := lexLine(line)
		id, ok := lineID(line, spans)
		if !ok {
			continue
		}
		num := fmt.Sprintf("%04d", id)
		name := num
		if len(spans) > 2 {
			name = line[spans[2].start:spans[2].end]
		}
		res = append(res, protocol.DocumentSymbol{
			Name:           name,
			Detail:         num,
			Kind:           protocol.SymbolKindField,
			Range:          lineRange(n, 0, len(line)),
			SelectionRange: lineRange(n, spans[1].start, spans[1].end),
		})
	}
	return res
}
