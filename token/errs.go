package token

import (
	"errors"
	"fmt"
)

var (
	ErrDigit        = errors.New("not a decimal digit")
	ErrShortField   = errors.New("short numeric field")
	ErrLabelTooLong = errors.New("label too long")
)

// DigitError reports a byte in a fixed width numeric field that is not an
// ASCII decimal digit. The offending byte is left unread.
type DigitError struct {
	Char  byte
	Index int
	Width int
	Pos   Pos
}

func (e *DigitError) Unwrap() error {
	return ErrDigit
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%s: %q at position %d of %d (%s)",
		ErrDigit.Error(), e.Char, e.Index+1, e.Width, e.Pos.String())
}

func ShortFieldErr(got, width int, pos Pos) error {
	return fmt.Errorf("%w: got %d of %d digits before end of input (%s)", ErrShortField, got, width, pos.String())
}
