package menutree

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/signadot/menutree/encode"
	"github.com/signadot/menutree/format"
	"github.com/signadot/menutree/ir"
	"github.com/signadot/menutree/parse"
)

type closeCounter struct {
	io.Reader
	closes int
	err    error
}

func (c *closeCounter) Close() error {
	c.closes++
	return c.err
}

func run(t *testing.T, in string, opts ...RunOption) (string, *Summary, *closeCounter, error) {
	t.Helper()
	rc := &closeCounter{Reader: strings.NewReader(in)}
	out := bytes.NewBuffer(nil)
	sum, err := Run(rc, "menu.txt", out, opts...)
	if rc.closes != 1 {
		t.Errorf("input closed %d times", rc.closes)
	}
	return out.String(), sum, rc, err
}

func TestScenarios(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "two top level nodes",
			in:   "A0001Drinks\nA0002Food\nB0001 0000B0002 0000",
			want: "1 Drinks\n2 Food\n",
		},
		{
			name: "child before parent",
			in:   "A0001Drinks\nA0002Coffee\nB0002 0001B0001 0000",
			want: "1 Drinks\n   1.1 Coffee\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sum, _, err := run(t, tt.in)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("(-want +got):\n%s", diff)
			}
			if n := strings.Count(got, "\n"); n != sum.Nodes {
				t.Errorf("%d lines, %d nodes", n, sum.Nodes)
			}
			again, _, _, err := run(t, tt.in)
			if err != nil || again != got {
				t.Errorf("second run differs: %q %v", again, err)
			}
		})
	}
}

func TestScenarioFailures(t *testing.T) {
	tests := []struct {
		name string
		in   string
		err  error
	}{
		{
			name: "undeclared child",
			in:   "A0001Drinks\nB0001 0000\nB0007 0001\n",
			err:  parse.ErrReference,
		},
		{
			name: "A after B",
			in:   "A0001Drinks\nB0001 0000\nA0002Food\nB0002 0000\n",
			err:  parse.ErrDataAfterEdge,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, sum, _, err := run(t, tt.in)
			if !errors.Is(err, tt.err) {
				t.Fatalf("expected %v, got %v", tt.err, err)
			}
			if got != "" {
				t.Errorf("output written on failure: %q", got)
			}
			if sum != nil {
				t.Errorf("summary returned on failure")
			}
		})
	}
}

func TestRunSummary(t *testing.T) {
	in := `A0001Drinks
A0002Food
A0003Specials
A0004Unused
B0001 0000
B0002 0000
B0003 0001
B0003 0002
!
`
	var warned []byte
	_, sum, _, err := run(t, in, WithWarnings(func(w *parse.Warning) {
		warned = append(warned, w.Char)
	}))
	if err != nil {
		t.Fatal(err)
	}
	want := &Summary{
		Name:     "menu.txt",
		Records:  4,
		Edges:    4,
		Nodes:    4,
		Warnings: 1,
		Released: ir.ReleaseStats{Records: 4, Nodes: 4, Root: true},
	}
	if diff := cmp.Diff(want, sum); diff != "" {
		t.Errorf("(-want +got):\n%s", diff)
	}
	if string(warned) != "!" {
		t.Errorf("warnings forwarded: %q", warned)
	}
}

func TestRunOptions(t *testing.T) {
	in := "A0001Drinks\nA0002Coffee\nB0002 0001\nB0001 0000\n"
	got, _, _, err := run(t, in, WithEncodeOptions(encode.EncodeFormat(format.MenuFormat)))
	if err != nil {
		t.Fatal(err)
	}
	if want := "A0001Drinks\nA0002Coffee\nB0001 0000\nB0002 0001\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	_, _, _, err = run(t, in, WithParseOptions(parse.Strict()))
	if !errors.Is(err, parse.ErrNoParent) {
		t.Errorf("expected ErrNoParent with Strict, got %v", err)
	}
}

func TestRunCloseError(t *testing.T) {
	rc := &closeCounter{Reader: strings.NewReader("A0001x\nB0001 0000\n"), err: errors.New("boom")}
	sum, err := Run(rc, "menu.txt", io.Discard)
	if err == nil || sum != nil {
		t.Fatalf("close error not reported: %v", err)
	}
	if rc.closes != 1 {
		t.Errorf("closed %d times", rc.closes)
	}
}
