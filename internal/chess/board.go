// Package chess holds the board, piece encoding and the move rules: pseudo-legal
// generation, check detection and the simulate/revert legal filter.
package chess

import "strings"

const (
	Rows = 8
	Cols = 8
)

func onBoard(row, col int) bool {
	return row >= 0 && row < Rows && col >= 0 && col < Cols
}

// Pawn direction: White moves up (-1), Black moves down (+1).
func pawnDir(c Color) int {
	switch c {
	case White:
		return -1
	case Black:
		return +1
	}
	return 0
}

func pawnStartRow(c Color) int {
	if c == White {
		return Rows - 2
	}
	return 1
}

// promotionRow is the opponent's back rank for c.
func promotionRow(c Color) int {
	if c == White {
		return 0
	}
	return Rows - 1
}

type Board struct {
	Squares [Rows][Cols]Piece
}

var backRank = [Cols]Kind{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// NewInitialBoard returns the standard starting layout, Black on rows 0/1.
func NewInitialBoard() *Board {
	b := &Board{}
	for c := 0; c < Cols; c++ {
		b.Squares[0][c] = MakePiece(Black, backRank[c])
		b.Squares[1][c] = MakePiece(Black, Pawn)
		b.Squares[Rows-2][c] = MakePiece(White, Pawn)
		b.Squares[Rows-1][c] = MakePiece(White, backRank[c])
	}
	return b
}

func (b *Board) At(s Square) Piece { return b.Squares[s.Row][s.Col] }

func (b *Board) Set(s Square, p Piece) { b.Squares[s.Row][s.Col] = p }

func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

// KingSquare returns the first square in scan order holding c's king.
func (b *Board) KingSquare(c Color) (Square, bool) {
	king := MakePiece(c, King)
	for r := 0; r < Rows; r++ {
		for col := 0; col < Cols; col++ {
			if b.Squares[r][col] == king {
				return Sq(r, col), true
			}
		}
	}
	return Square{}, false
}

// Apply moves the origin piece onto the destination and returns whatever was
// there before. A pawn reaching the far back rank becomes a queen.
// The move is assumed to be well formed; legality is the caller's job.
func (b *Board) Apply(m Move) Piece {
	pc := b.At(m.From)
	captured := b.At(m.To)
	if pc.Kind == Pawn && m.To.Row == promotionRow(pc.Color) {
		pc.Kind = Queen
	}
	b.Set(m.To, pc)
	b.Set(m.From, Empty)
	return captured
}

// Undo reverses Apply. moved is the origin piece as it was before Apply, so a
// promotion is taken back too.
func (b *Board) Undo(m Move, captured, moved Piece) {
	b.Set(m.From, moved)
	b.Set(m.To, captured)
}

// Play applies m and returns the closure that restores the board.
func (b *Board) Play(m Move) (undo func()) {
	moved := b.At(m.From)
	captured := b.Apply(m)
	return func() { b.Undo(m, captured, moved) }
}

// String draws the board with rank/file labels, White at the bottom.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < Rows; r++ {
		sb.WriteByte(byte('8' - r))
		sb.WriteByte(' ')
		for c := 0; c < Cols; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(b.Squares[r][c].Letter())
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("  a b c d e f g h\n")
	return sb.String()
}
