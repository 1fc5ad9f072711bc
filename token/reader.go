package token

import (
	"bufio"
	"fmt"
	"io"
)

const (
	// DefaultMaxLabel bounds the storage a single label may grow to.
	DefaultMaxLabel = 64 * 1024
	// DefaultLabelSize is the initial label capacity.
	DefaultLabelSize = 20
)

// Reader is a forward only byte reader for menu source.
type Reader struct {
	rd       *bufio.Reader
	pos      Pos
	prev     Pos
	maxLabel int
}

type ReaderOpt func(*Reader)

// MaxLabel sets the largest label in bytes ReadLabel will accumulate.
func MaxLabel(n int) ReaderOpt {
	return func(r *Reader) {
		if n > 0 {
			r.maxLabel = n
		}
	}
}

func NewReader(r io.Reader, opts ...ReaderOpt) *Reader {
	res := &Reader{
		rd:       bufio.NewReader(r),
		pos:      StartPos(),
		maxLabel: DefaultMaxLabel,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Pos returns the position of the next byte to be read.
func (r *Reader) Pos() Pos {
	return r.pos
}

func (r *Reader) ReadByte() (byte, error) {
	c, err := r.rd.ReadByte()
	if err != nil {
		return 0, err
	}
	r.prev = r.pos
	r.pos = r.pos.advance(c)
	return c, nil
}

// UnreadByte unreads the last byte. Only the most recently read byte can be
// unread.
func (r *Reader) UnreadByte() error {
	if err := r.rd.UnreadByte(); err != nil {
		return err
	}
	r.pos = r.prev
	return nil
}

// SkipBlanks consumes spaces and tabs. Line breaks are not consumed.
func (r *Reader) SkipBlanks() error {
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if c == ' ' || c == '\t' {
			continue
		}
		return r.UnreadByte()
	}
}

// ReadLabel reads bytes up to a line break or end of input. The line break
// is consumed but not returned, nor is a carriage return preceding it.
// Storage starts at size bytes and doubles as needed; a label that would
// grow past the reader's maximum gives ErrLabelTooLong.
func (r *Reader) ReadLabel(size int) (string, error) {
	size = max(1, min(size, r.maxLabel))
	buf := make([]byte, 0, size)
	for {
		c, err := r.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if c == '\n' {
			break
		}
		if len(buf) == cap(buf) {
			if len(buf) >= r.maxLabel {
				return "", fmt.Errorf("%w: exceeds %d bytes at %s", ErrLabelTooLong, r.maxLabel, r.pos)
			}
			grown := make([]byte, len(buf), min(2*cap(buf), r.maxLabel))
			copy(grown, buf)
			buf = grown
		}
		buf = append(buf, c)
	}
	if n := len(buf); n > 0 && buf[n-1] == '\r' {
		buf = buf[:n-1]
	}
	return string(buf), nil
}

// ReadFixedDigits reads exactly width ASCII decimal digits and returns their
// base 10 value. It stops at the first byte which is not a digit, leaving
// that byte unread.
func (r *Reader) ReadFixedDigits(width int) (int, error) {
	v := 0
	for i := 0; i < width; i++ {
		pos := r.pos
		c, err := r.ReadByte()
		if err == io.EOF {
			return 0, ShortFieldErr(i, width, pos)
		}
		if err != nil {
			return 0, err
		}
		if c < '0' || c > '9' {
			if err := r.UnreadByte(); err != nil {
				return 0, err
			}
			return 0, &DigitError{Char: c, Index: i, Width: width, Pos: pos}
		}
		v = v*10 + int(c-'0')
	}
	return v, nil
}
