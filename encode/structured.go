package encode

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
	"github.com/signadot/menutree/ir"
)

var ErrEncoding = errors.New("encoding error")

func encodeYAML(w io.Writer, items []*Item) error {
	d, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(d)
	return err
}

func encodeJSON(w io.Writer, v any) error {
	d, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	_, err = w.Write(append(d, '\n'))
	return err
}

// encodeMenu writes canonical menu source: every data record in declaration
// order, then every accepted edge in the order it was attached, which is an
// order in which each parent precedes its children.
func encodeMenu(t *ir.Tree, w io.Writer) error {
	for _, rec := range t.Registry().All() {
		if err := writeString(w, fmt.Sprintf("A%04d%s\n", rec.ID, rec.Label)); err != nil {
			return err
		}
	}
	for _, e := range t.EdgeLog() {
		if err := writeString(w, fmt.Sprintf("B%04d %04d\n", e.Child, e.Parent)); err != nil {
			return err
		}
	}
	return nil
}
