package chess

import "fmt"

type Color int8

const (
	NoColor Color = iota
	White
	Black
)

func (c Color) Opposite() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

func (c Color) String() string {
	switch c {
	case White:
		return "white"
	case Black:
		return "black"
	}
	return "none"
}

// ParseColor accepts "white"/"w" and "black"/"b".
func ParseColor(s string) (Color, bool) {
	switch s {
	case "white", "w", "White":
		return White, true
	case "black", "b", "Black":
		return Black, true
	}
	return NoColor, false
}

type Kind int8

const (
	NoKind Kind = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

var kindLetters = [...]byte{'.', 'p', 'n', 'b', 'r', 'q', 'k'}

// Piece is an explicit {color, kind} pair. The zero value is an empty square.
type Piece struct {
	Color Color
	Kind  Kind
}

var Empty = Piece{}

func MakePiece(c Color, k Kind) Piece {
	if k == NoKind || c == NoColor {
		return Empty
	}
	return Piece{Color: c, Kind: k}
}

func (p Piece) IsEmpty() bool { return p.Kind == NoKind }

// Letter returns the FEN letter: uppercase for White, '.' for empty.
func (p Piece) Letter() byte {
	if p.IsEmpty() || int(p.Kind) >= len(kindLetters) {
		return '.'
	}
	l := kindLetters[p.Kind]
	if p.Color == White {
		l -= 'a' - 'A'
	}
	return l
}

func (p Piece) String() string { return string(p.Letter()) }

func pieceFromLetter(ch byte) (Piece, bool) {
	color := Black
	if ch >= 'A' && ch <= 'Z' {
		color = White
		ch += 'a' - 'A'
	}
	for k := Pawn; k <= King; k++ {
		if kindLetters[k] == ch {
			return MakePiece(color, k), true
		}
	}
	return Empty, false
}

// Square is a (row, col) coordinate; row 0 is Black's back rank.
type Square struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func Sq(row, col int) Square { return Square{Row: row, Col: col} }

func (s Square) Valid() bool { return onBoard(s.Row, s.Col) }

// String uses algebraic notation, e.g. row 7 col 4 is "e1".
func (s Square) String() string {
	if !s.Valid() {
		return fmt.Sprintf("(%d,%d)", s.Row, s.Col)
	}
	return string([]byte{byte('a' + s.Col), byte('8' - s.Row)})
}

type Move struct {
	From Square `json:"from"`
	To   Square `json:"to"`
}

func (m Move) String() string { return m.From.String() + m.To.String() }
