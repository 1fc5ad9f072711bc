package encode

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/signadot/menutree/debug"
	"github.com/signadot/menutree/filter"
	"github.com/signadot/menutree/format"
	"github.com/signadot/menutree/ir"
)

type EncState struct {
	format   format.Format
	indent   int
	maxDepth int
	filter   *filter.Filter

	Color func(ColorAttr, string) string
}

// Item is one rendered tree position. Depth is 1 for top level items.
type Item struct {
	Number   string  `json:"number" yaml:"number"`
	ID       int     `json:"id" yaml:"id"`
	Label    string  `json:"label" yaml:"label"`
	Depth    int     `json:"-" yaml:"-"`
	Children []*Item `json:"children,omitempty" yaml:"children,omitempty"`
}

func newState(opts []EncodeOption) *EncState {
	es := &EncState{indent: DefaultIndent}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func Encode(t *ir.Tree, w io.Writer, opts ...EncodeOption) error {
	if err := t.Check(); err != nil {
		return err
	}
	es := newState(opts)
	if es.format == format.MenuFormat {
		return encodeMenu(t, w)
	}
	items, err := es.outline(t, t.Root(), "", 1)
	if err != nil {
		return err
	}
	if debug.Encode() {
		debug.LogAny(items)
	}
	switch es.format {
	case format.OutlineFormat:
		return es.writeOutline(w, items)
	case format.YAMLFormat:
		return encodeYAML(w, items)
	case format.JSONFormat:
		return encodeJSON(w, items)
	case format.FlatFormat:
		return encodeJSON(w, Flatten(items))
	}
	return fmt.Errorf("%w: %s", format.ErrBadFormat, es.format)
}

// Outline returns the items Encode would render for t.
func Outline(t *ir.Tree, opts ...EncodeOption) ([]*Item, error) {
	if err := t.Check(); err != nil {
		return nil, err
	}
	return newState(opts).outline(t, t.Root(), "", 1)
}

func (es *EncState) outline(t *ir.Tree, parent *ir.Node, prefix string, depth int) ([]*Item, error) {
	res := []*Item{}
	k := 0
	for _, c := range parent.Children {
		num := strconv.Itoa(k + 1)
		if prefix != "" {
			num = prefix + "." + num
		}
		rec := t.Record(c)
		if es.filter != nil {
			ok, err := es.filter.Match(filter.Env{
				ID:       rec.ID,
				Parent:   parent.ID(),
				Label:    rec.Label,
				Depth:    depth,
				Number:   num,
				Children: len(c.Children),
			})
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
		}
		k++
		it := &Item{Number: num, ID: rec.ID, Label: rec.Label, Depth: depth}
		if es.maxDepth <= 0 || depth < es.maxDepth {
			kids, err := es.outline(t, c, num, depth+1)
			if err != nil {
				return nil, err
			}
			if len(kids) != 0 {
				it.Children = kids
			}
		}
		res = append(res, it)
	}
	return res, nil
}

func (es *EncState) writeOutline(w io.Writer, items []*Item) error {
	for _, it := range items {
		num, label := it.Number, it.Label
		if es.Color != nil {
			num = es.Color(NumberColor, num)
			label = es.Color(LabelColor, label)
		}
		indent := strings.Repeat(" ", es.indent*(it.Depth-1))
		if err := writeString(w, indent+num+" "+label+"\n"); err != nil {
			return err
		}
		if err := es.writeOutline(w, it.Children); err != nil {
			return err
		}
	}
	return nil
}

// Flatten maps outline numbers to labels.
func Flatten(items []*Item) map[string]string {
	res := map[string]string{}
	var visit func([]*Item)
	visit = func(items []*Item) {
		for _, it := range items {
			res[it.Number] = it.Label
			visit(it.Children)
		}
	}
	visit(items)
	return res
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
