package encode

import (
	"github.com/signadot/menutree/filter"
	"github.com/signadot/menutree/format"
)

const DefaultIndent = 3

type EncodeOption func(*EncState)

func EncodeFormat(f format.Format) EncodeOption {
	return func(es *EncState) { es.format = f }
}

// FormatFromOpts extracts the format from encode options.
func FormatFromOpts(opts ...EncodeOption) format.Format {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	return es.format
}

// Indent sets the number of spaces per outline level.
func Indent(n int) EncodeOption {
	return func(es *EncState) {
		if n >= 0 {
			es.indent = n
		}
	}
}

// MaxDepth limits output to n outline levels; 0 means no limit.
func MaxDepth(n int) EncodeOption {
	return func(es *EncState) { es.maxDepth = n }
}

// EncodeFilter drops every position for which f does not match, together
// with everything below it. Numbering counts only the positions kept.
func EncodeFilter(f *filter.Filter) EncodeOption {
	return func(es *EncState) { es.filter = f }
}
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
