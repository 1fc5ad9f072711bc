package main

import (
	"strconv"

	"go.lsp.dev/protocol"
)

const (
	spanKeyword = iota
	spanNumber
	spanString
)

var tokenTypes = []protocol.SemanticTokenTypes{
	spanKeyword: protocol.SemanticTokenKeyword,
	spanNumber:  protocol.SemanticTokenNumber,
	spanString:  protocol.SemanticTokenString,
}

// span is a field of a menu line, as byte offsets into the line.
type span struct {
	kind       int
	start, end int
}

func (sp span) contains(col int) bool {
	return col >= sp.start && col < sp.end
}

// lexLine splits a record line into its fields. It is lenient: fields are
// reported as far as the line goes, and lines that are not records yield
// nothing.
func lexLine(line string) []span {
	if line == "" {
		return nil
	}
	var ids int
	switch line[0] {
	case 'A':
		ids = 1
	case 'B':
		ids = 2
	default:
		return nil
	}
	res := []span{{kind: spanKeyword, start: 0, end: 1}}
	i := 1
	for k := 0; k < ids; k++ {
		for k > 0 && i < len(line) && (line[i] == ' ' || line[i] == '\t') {
			i++
		}
		j := i
		for j < len(line) && j-i < 4 && line[j] >= '0' && line[j] <= '9' {
			j++
		}
		if j == i {
			return res
		}
		res = append(res, span{kind: spanNumber, start: i, end: j})
		i = j
	}
	if ids == 1 && i < len(line) {
		res = append(res, span{kind: spanString, start: i, end: len(line)})
	}
	return res
}

// lineID returns the id declared by an A line.
func lineID(line string, spans []span) (int, bool) {
	if len(spans) < 2 || line[0] != 'A' || spans[1].end-spans[1].start != 4 {
		return 0, false
	}
	id, err := strconv.Atoi(line[spans[1].start:spans[1].end])
	return id, err == nil
}
