package main

import (
	"strings"
	"sync"

	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/format"
	"github.com/signadot/menutree/ir"
	"github.com/signadot/menutree/parse"
)

type documentStore struct {
	mu   sync.RWMutex
	docs map[string]*document
}

// document is an open menu file and what was learned building its tree.
// The tree itself is released once analyzed.
type document struct {
	uri     string
	content string
	version int32

	err      error
	warnings []*parse.Warning
	records  []ir.Record
	edges    []ir.Edge
	numbers  map[int][]string
	menu     string
}

func (ds *documentStore) get(uri string) *document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.docs[uri]
}

func (ds *documentStore) put(uri string, content string, version int32) *document {
	doc := analyze(uri, content)
	doc.version = version
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = doc
	return doc
}

func (ds *documentStore) remove(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}

func analyze(uri, content string) *document {
	doc := &document{uri: uri, content: content, numbers: map[int][]string{}}
	tree, err := parse.Parse(strings.NewReader(content), uri,
		parse.ParseWarnings(func(w *parse.Warning) {
			doc.warnings = append(doc.warnings, w)
		}))
	if err != nil {
		doc.err = err
		return doc
	}
	defer tree.Release()
	for _, rec := range tree.Registry().All() {
		doc.records = append(doc.records, rec)
	}
	doc.edges = append(doc.edges, tree.EdgeLog()...)
	items, err := encode.Outline(tree)
	if err != nil {
		doc.err = err
		return doc
	}
	var visit func([]*encode.Item)
	visit = func(items []*encode.Item) {
		for _, it := range items {
			doc.numbers[it.ID] = append(doc.numbers[it.ID], it.Number)
			visit(it.Children)
		}
	}
	visit(items)
	buf := &strings.Builder{}
	if err := encode.Encode(tree, buf, encode.EncodeFormat(format.MenuFormat)); err == nil {
		doc.menu = buf.String()
	}
	return doc
}

func (doc *document) record(id int) (ir.Record, bool) {
	for _, rec := range doc.records {
		if rec.ID == id {
			return rec, true
		}
	}
	return ir.Record{}, false
}

// line returns the 0-based line n of the document, without its line break.
func (doc *document) line(n int) string {
	lines := strings.Split(doc.content, "\n")
	if n < 0 || n >= len(lines) {
		return ""
	}
	return strings.TrimSuffix(lines[n], "\r")
}
