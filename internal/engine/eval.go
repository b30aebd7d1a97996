package engine

import "chessai/internal/chess"

// Material only. The king's weight makes losing it dominate any other trade;
// checkmate itself is never scored.
var pieceValue = [...]int{
	chess.NoKind: 0,
	chess.Pawn:   1,
	chess.Knight: 3,
	chess.Bishop: 3,
	chess.Rook:   5,
	chess.Queen:  9,
	chess.King:   1000,
}

// Evaluate scores b from White's side: positive favours White.
func Evaluate(b *chess.Board) int {
	score := 0
	for r := 0; r < chess.Rows; r++ {
		for c := 0; c < chess.Cols; c++ {
			pc := b.Squares[r][c]
			switch pc.Color {
			case chess.White:
				score += pieceValue[pc.Kind]
			case chess.Black:
				score -= pieceValue[pc.Kind]
			}
		}
	}
	return score
}
