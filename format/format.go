package format

import (
	"errors"
	"fmt"
)

type Format int

const (
	OutlineFormat Format = iota
	YAMLFormat
	JSONFormat
	FlatFormat
	MenuFormat
)

var ErrBadFormat = errors.New("bad format")

func ParseFormat(v string) (Format, error) {
	f, ok := map[string]Format{
		"o":       OutlineFormat,
		"outline": OutlineFormat,
		"y":       YAMLFormat,
		"yaml":    YAMLFormat,
		"j":       JSONFormat,
		"json":    JSONFormat,
		"f":       FlatFormat,
		"flat":    FlatFormat,
		"m":       MenuFormat,
		"menu":    MenuFormat,
	}[v]
	if ok {
		return f, nil
	}
	return 0, fmt.Errorf("%w: %q (want one of %v)", ErrBadFormat, v, AllFormats())
}

func (f Format) String() string {
	d, err := f.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (f Format) MarshalText() ([]byte, error) {
	switch f {
	case OutlineFormat:
		return []byte("outline"), nil
	case YAMLFormat:
		return []byte("yaml"), nil
	case JSONFormat:
		return []byte("json"), nil
	case FlatFormat:
		return []byte("flat"), nil
	case MenuFormat:
		return []byte("menu"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a format>", f)
	}
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

// Separator returns what goes between two documents written one after
// the other in this format.
func (f Format) Separator() string {
	switch f {
	case YAMLFormat:
		return "---\n"
	case JSONFormat, FlatFormat:
		return ""
	default:
		return "\n"
	}
}

// AllFormats returns all supported formats.
func AllFormats() []Format {
	return []Format{OutlineFormat, YAMLFormat, JSONFormat, FlatFormat, MenuFormat}
}
