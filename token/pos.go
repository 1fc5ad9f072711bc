package token

import "fmt"

// Pos is a position in a byte stream. Line and Col are 1-based.
type Pos struct {
	Off  int
	Line int
	Col  int
}

func StartPos() Pos {
	return Pos{Line: 1, Col: 1}
}

func (p Pos) advance(c byte) Pos {
	p.Off++
	if c == '\n' {
		p.Line++
		p.Col = 1
		return p
	}
	p.Col++
	return p
}

func (p Pos) String() string {
	return fmt.Sprintf("offset %d (line=%d, col=%d)", p.Off, p.Line, p.Col)
}
