package main

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/signadot/menutree/ir"
	"go.lsp.dev/protocol"
)

func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil {
		return nil, nil
	}
	text := hoverText(doc, int(params.Position.Line), int(params.Position.Character))
	if text == "" {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: text,
		},
	}, nil
}

func hoverText(doc *document, line, col int) string {
	text := doc.line(line)
	spans := lexLine(text)
	for _, sp := range spans {
		if !sp.contains(col) {
			continue
		}
		if sp.kind == spanNumber && sp.end-sp.start == 4 {
			id, err := strconv.Atoi(text[sp.start:sp.end])
			if err != nil {
				return ""
			}
			return describe(doc, id)
		}
		if id, ok := lineID(text, spans); ok {
			return describe(doc, id)
		}
	}
	return ""
}

func describe(doc *document, id int) string {
	if id == ir.RootID {
		return "**0000** top level"
	}
	if doc.err != nil {
		return fmt.Sprintf("**%04d**", id)
	}
	rec, ok := doc.record(id)
	if !ok {
		return fmt.Sprintf("**%04d** is not declared", id)
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "**%04d** %s\n\ndeclared on line %d", rec.ID, rec.Label, rec.Line)
	nums := doc.numbers[id]
	if len(nums) == 0 {
		b.WriteString("\n\nnot in the outline")
		return b.String()
	}
	fmt.Fprintf(b, "\n\noutline: %s", strings.Join(nums, ", "))
	return b.String()
}
