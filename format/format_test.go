package format

import (
	"errors"
	"testing"
)

func TestParseFormat(t *testing.T) {
	for _, f := range AllFormats() {
		got, err := ParseFormat(f.String())
		if err != nil {
			t.Errorf("ParseFormat(%q): %v", f, err)
			continue
		}
		if got != f {
			t.Errorf("ParseFormat(%q) = %v", f, got)
		}
		var u Format
		if err := u.UnmarshalText([]byte(f.String()[:1])); err != nil || u != f {
			t.Errorf("short name for %v gave %v %v", f, u, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrBadFormat) {
		t.Errorf("expected ErrBadFormat, got %v", err)
	}
}

func TestSeparator(t *testing.T) {
	tests := []struct {
		f    Format
		want string
	}{
		{OutlineFormat, "\n"},
		{MenuFormat, "\n"},
		{YAMLFormat, "---\n"},
		{JSONFormat, ""},
		{FlatFormat, ""},
	}
	for _, tt := range tests {
		if got := tt.f.Separator(); got != tt.want {
			t.Errorf("%v.Separator() = %q, want %q", tt.f, got, tt.want)
		}
	}
}

func TestParseFormatError(t *testing.T) {
	_, err := ParseFormat("xml")
	want := `bad format: "xml" (want one of [outline yaml json flat menu])`
	if err == nil || err.Error() != want {
		t.Errorf("got %v, want %s", err, want)
	}
}
