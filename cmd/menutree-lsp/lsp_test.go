package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.lsp.dev/protocol"
)

const menu = `A0001Drinks
A0002Coffee
A0003Specials
B0001 0000
B0003 0000
B0002 0001
B0002 0003
`

func TestAnalyze(t *testing.T) {
	doc := analyze("file:///menu.txt", menu)
	if doc.err != nil {
		t.Fatal(doc.err)
	}
	if len(doc.records) != 3 {
		t.Errorf("got %d records", len(doc.records))
	}
	if len(doc.edges) != 4 {
		t.Errorf("got %d edges", len(doc.edges))
	}
	if d := cmp.Diff([]string{"1.1", "2.1"}, doc.numbers[2]); d != "" {
		t.Errorf("numbers (-want +got):\n%s", d)
	}
	if doc.menu != menu {
		t.Errorf("canonical form differs:\n%s", doc.menu)
	}
	if got := validateDocument(doc); len(got) != 0 {
		t.Errorf("unexpected diagnostics %v", got)
	}
}

func TestValidateDocument(t *testing.T) {
	doc := analyze("file:///menu.txt", "A0001Drinks\n#\nB0001 0000\nB0002 0001\n")
	ds := validateDocument(doc)
	if len(ds) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %v", len(ds), ds)
	}
	w, e := ds[0], ds[1]
	if w.Severity != protocol.DiagnosticSeverityWarning || w.Range.Start.Line != 1 || w.Range.Start.Character != 0 {
		t.Errorf("bad warning %+v", w)
	}
	if e.Severity != protocol.DiagnosticSeverityError || e.Range.Start.Line != 3 {
		t.Errorf("bad error %+v", e)
	}
	if !strings.Contains(e.Message, "No node with ID 0002") {
		t.Errorf("got message %q", e.Message)
	}
	if edits := formatEdits(doc); edits != nil {
		t.Errorf("formatting a broken document gave %v", edits)
	}
}

func TestHoverText(t *testing.T) {
	doc := analyze("file:///menu.txt", menu)
	tests := []struct {
		line, col int
		want      string
	}{
		{1, 0, "**0002** Coffee\n\ndeclared on line 2\n\noutline: 1.1, 2.1"},
		{1, 3, "**0002** Coffee\n\ndeclared on line 2\n\noutline: 1.1, 2.1"},
		{1, 7, "**0002** Coffee\n\ndeclared on line 2\n\noutline: 1.1, 2.1"},
		{3, 2, "**0001** Drinks\n\ndeclared on line 1\n\noutline: 1"},
		{3, 7, "**0000** top level"},
		{3, 0, ""},
		{3, 5, ""},
		{20, 0, ""},
	}
	for _, tc := range tests {
		if got := hoverText(doc, tc.line, tc.col); got != tc.want {
			t.Errorf("%d:%d: got %q want %q", tc.line, tc.col, got, tc.want)
		}
	}
}

func TestLexLine(t *testing.T) {
	tests := []struct {
		line string
		want []span
	}{
		{"A0001Drinks", []span{{spanKeyword, 0, 1}, {spanNumber, 1, 5}, {spanString, 5, 11}}},
		{"B0002 0001", []span{{spanKeyword, 0, 1}, {spanNumber, 1, 5}, {spanNumber, 6, 10}}},
		{"B0002", []span{{spanKeyword, 0, 1}, {spanNumber, 1, 5}}},
		{"A", []span{{spanKeyword, 0, 1}}},
		{"A 0001x", []span{{spanKeyword, 0, 1}}},
		{"B0002\t0001", []span{{spanKeyword, 0, 1}, {spanNumber, 1, 5}, {spanNumber, 6, 10}}},
		{"# note", nil},
		{"", nil},
	}
	for _, tc := range tests {
		got := lexLine(tc.line)
		if d := cmp.Diff(tc.want, got, cmp.AllowUnexported(span{})); d != "" {
			t.Errorf("%q (-want +got):\n%s", tc.line, d)
		}
	}
}

func TestSemanticTokens(t *testing.T) {
	got := semanticTokens("A0001Drinks\nB0001 0000\n", 0, -1)
	want := []uint32{
		0, 0, 1, spanKeyword, 0,
		0, 1, 4, spanNumber, 0,
		0, 4, 6, spanString, 0,
		1, 0, 1, spanKeyword, 0,
		0, 1, 4, spanNumber, 0,
		0, 5, 4, spanNumber, 0,
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
	got = semanticTokens("A0001Drinks\nB0001 0000\n", 1, 1)
	if len(got) != 15 || got[0] != 1 {
		t.Errorf("range tokens: %v", got)
	}
}

func TestApplyChange(t *testing.T) {
	content := "A0001Drinks\nB0001 0000\n"
	full := applyChange(content, protocol.TextDocumentContentChangeEvent{Text: "A0002Tea\n"})
	if full != "A0002Tea\n" {
		t.Errorf("got %q", full)
	}
	edit := applyChange(content, protocol.TextDocumentContentChangeEvent{
		Range: protocol.Range{
			Start: protocol.Position{Line: 0, Character: 5},
			End:   protocol.Position{Line: 0, Character: 11},
		},
		Text: "Tea",
	})
	if edit != "A0001Tea\nB0001 0000\n" {
		t.Errorf("got %q", edit)
	}
}

func TestFormatEdits(t *testing.T) {
	doc := analyze("file:///menu.txt", "A0002Coffee\nA0001Drinks\nB0002 0001\nB0001 0000")
	edits := formatEdits(doc)
	if len(edits) != 1 {
		t.Fatalf("got %d edits", len(edits))
	}
	want := "A0002Coffee\nA0001Drinks\nB0001 0000\nB0002 0001\n"
	if edits[0].NewText != want {
		t.Errorf("got %q want %q", edits[0].NewText, want)
	}
	if edits[0].Range.End.Line != 4 {
		t.Errorf("got end line %d", edits[0].Range.End.Line)
	}
}

func TestCompletions(t *testing.T) {
	items := completions(menu)
	var got []string
	for _, it := range items {
		got = append(got, it.Label+" "+it.Detail)
	}
	want := []string{"0000 top level", "0001 Drinks", "0002 Coffee", "0003 Specials"}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}

func TestSymbols(t *testing.T) {
	got := symbols("A0001Drinks\r\n# note\nA0002\nA 0003Bad\nB0001 0000\n")
	want := []protocol.DocumentSymbol{
		{
			Name:           "Drinks",
			Detail:         "0001",
			Kind:           protocol.SymbolKindField,
			Range:          lineRange(0, 0, 11),
			SelectionRange: lineRange(0, 1, 5),
		},
		{
			Name:           "0002",
			Detail:         "0002",
			Kind:           protocol.SymbolKindField,
			Range:          lineRange(2, 0, 5),
			SelectionRange: lineRange(2, 1, 5),
		},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}
}
