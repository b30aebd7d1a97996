package chess

import (
	"errors"
	"strings"
)

// Encode writes a FEN string. Castling and en passant are not part of this
// rule set, so those fields are always "-".
func (b *Board) Encode(toMove Color) string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		if r > 0 {
			sb.WriteByte('/')
		}
		empty := 0
		for c := 0; c < Cols; c++ {
			pc := b.Squares[r][c]
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.Letter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
	}
	sb.WriteByte(' ')
	if toMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}
	sb.WriteString(" - - 0 1")
	return sb.String()
}

var ErrInvalidFEN = errors.New("invalid FEN")

const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1"

// DecodeFEN reads piece placement and side to move; remaining fields are ignored.
// A side may have at most one king.
func DecodeFEN(fen string) (*Board, Color, error) {
	parts := strings.Fields(fen)
	if len(parts) < 2 {
		return nil, NoColor, ErrInvalidFEN
	}
	rows := strings.Split(parts[0], "/")
	if len(rows) != Rows {
		return nil, NoColor, ErrInvalidFEN
	}
	b := &Board{}
	var kings [3]int // by Color
	for r, row := range rows {
		c := 0
		for i := 0; i < len(row); i++ {
			ch := row[i]
			if ch >= '1' && ch <= '8' {
				c += int(ch - '0')
				if c > Cols {
					return nil, NoColor, ErrInvalidFEN
				}
				continue
			}
			if c >= Cols {
				return nil, NoColor, ErrInvalidFEN
			}
			pc, ok := pieceFromLetter(ch)
			if !ok {
				return nil, NoColor, ErrInvalidFEN
			}
			if pc.Kind == King {
				if kings[pc.Color]++; kings[pc.Color] > 1 {
					return nil, NoColor, ErrInvalidFEN
				}
			}
			b.Squares[r][c] = pc
			c++
		}
		if c != Cols {
			return nil, NoColor, ErrInvalidFEN
		}
	}
	var stm Color
	switch parts[1] {
	case "w":
		stm = White
	case "b":
		stm = Black
	default:
		return nil, NoColor, ErrInvalidFEN
	}
	return b, stm, nil
}
