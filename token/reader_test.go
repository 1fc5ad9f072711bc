package token

import (
	"errors"
	"strings"
	"testing"
)

func TestReadLabel(t *testing.T) {
	tests := []struct {
		name string
		in   string
		size int
		want string
		rest string
	}{
		{name: "line", in: "Drinks\nFood", size: 20, want: "Drinks", rest: "Food"},
		{name: "eof", in: "Drinks", size: 20, want: "Drinks"},
		{name: "empty", in: "\nA", size: 20, want: "", rest: "A"},
		{name: "empty eof", in: "", size: 20, want: ""},
		{name: "crlf", in: "Drinks\r\nB", size: 20, want: "Drinks", rest: "B"},
		{name: "grows", in: "a label longer than two bytes\n", size: 2, want: "a label longer than two bytes"},
		{name: "zero size", in: "xyz\n", size: 0, want: "xyz"},
		{name: "inner spaces", in: "  Hot  Coffee \n", size: 4, want: "  Hot  Coffee "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewReader(strings.NewReader(tt.in))
			got, err := r.ReadLabel(tt.size)
			if err != nil {
				t.Fatalf("ReadLabel: %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadLabel() = %q, want %q", got, tt.want)
			}
			rest, err := r.ReadLabel(tt.size)
			if err != nil {
				t.Fatalf("ReadLabel rest: %v", err)
			}
			if rest != tt.rest {
				t.Errorf("rest = %q, want %q", rest, tt.rest)
			}
		})
	}
}

func TestReadLabelTooLong(t *testing.T) {
	r := NewReader(strings.NewReader("0123456789\n"), MaxLabel(8))
	_, err := r.ReadLabel(2)
	if !errors.Is(err, ErrLabelTooLong) {
		t.Fatalf("expected ErrLabelTooLong, got %v", err)
	}

	r = NewReader(strings.NewReader("01234567\n"), MaxLabel(8))
	got, err := r.ReadLabel(2)
	if err != nil {
		t.Fatalf("label at the limit: %v", err)
	}
	if got != "01234567" {
		t.Errorf("got %q", got)
	}
}

func TestReadFixedDigits(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"0000", 0},
		{"0001", 1},
		{"0042", 42},
		{"9999", 9999},
		{"12345", 1234},
	}
	for _, tt := range tests {
		r := NewReader(strings.NewReader(tt.in))
		got, err := r.ReadFixedDigits(4)
		if err != nil {
			t.Errorf("%q: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("%q: got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestReadFixedDigitsNonDigit(t *testing.T) {
	for i, in := range []string{"x123", "0x23", "00x3", "000x"} {
		r := NewReader(strings.NewReader(in))
		_, err := r.ReadFixedDigits(4)
		de := &DigitError{}
		if !errors.As(err, &de) {
			t.Fatalf("%q: expected DigitError, got %v", in, err)
		}
		if !errors.Is(err, ErrDigit) {
			t.Errorf("%q: expected ErrDigit", in)
		}
		if de.Index != i || de.Char != 'x' {
			t.Errorf("%q: got index %d char %q", in, de.Index, de.Char)
		}
		if r.Pos().Off != i {
			t.Errorf("%q: consumed %d bytes, want %d", in, r.Pos().Off, i)
		}
		c, err := r.ReadByte()
		if err != nil || c != 'x' {
			t.Errorf("%q: offending byte not left unread: %q %v", in, c, err)
		}
	}
}

func TestReadFixedDigitsShort(t *testing.T) {
	r := NewReader(strings.NewReader("12"))
	_, err := r.ReadFixedDigits(4)
	if !errors.Is(err, ErrShortField) {
		t.Fatalf("expected ErrShortField, got %v", err)
	}
}

func TestSkipBlanks(t *testing.T) {
	r := NewReader(strings.NewReader(" \t 0001\n"))
	if err := r.SkipBlanks(); err != nil {
		t.Fatal(err)
	}
	v, err := r.ReadFixedDigits(4)
	if err != nil || v != 1 {
		t.Fatalf("got %d %v", v, err)
	}
	r = NewReader(strings.NewReader("\n0001"))
	if err := r.SkipBlanks(); err != nil {
		t.Fatal(err)
	}
	if c, _ := r.ReadByte(); c != '\n' {
		t.Errorf("SkipBlanks consumed a line break")
	}
}

func TestPosTracking(t *testing.T) {
	r := NewReader(strings.NewReader("ab\ncd"))
	for i := 0; i < 4; i++ {
		if _, err := r.ReadByte(); err != nil {
			t.Fatal(err)
		}
	}
	p := r.Pos()
	if p.Line != 2 || p.Col != 2 || p.Off != 4 {
		t.Errorf("got %+v", p)
	}
	if err := r.UnreadByte(); err != nil {
		t.Fatal(err)
	}
	p = r.Pos()
	if p.Line != 2 || p.Col != 1 || p.Off != 3 {
		t.Errorf("after unread got %+v", p)
	}
}
