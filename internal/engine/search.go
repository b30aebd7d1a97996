package engine

import (
	"math"

	"chessai/internal/chess"
)

const (
	// Large enough to act as ±infinity for any material score.
	scoreInf = 1_000_000_000

	DefaultDepth = 3
	// Deepest search a game session may request; one ply deeper already
	// takes seconds from the opening.
	MaxDepth = 5
)

func sideOf(maximizing bool) chess.Color {
	if maximizing {
		return chess.White
	}
	return chess.Black
}

// AlphaBeta searches depth plies with the given window. The maximizing side is
// White. ok is false when no move was searched (depth 0 or no legal moves), in
// which case score is the static evaluation.
//
// Candidates come from chess.AllLegalMoves, so the order is board scan order
// and a later move replaces the best only with a strictly better score.
// b is mutated during the search and restored before return.
func AlphaBeta(b *chess.Board, depth, alpha, beta int, maximizing bool) (score int, best chess.Move, ok bool) {
	return alphaBeta(b, depth, alpha, beta, maximizing, nil)
}

func alphaBeta(b *chess.Board, depth, alpha, beta int, maximizing bool, nodes *int64) (int, chess.Move, bool) {
	if nodes != nil {
		*nodes++
	}
	if depth <= 0 {
		return Evaluate(b), chess.Move{}, false
	}
	moves := chess.AllLegalMoves(b, sideOf(maximizing))
	if len(moves) == 0 {
		return Evaluate(b), chess.Move{}, false
	}

	var bestMove chess.Move
	if maximizing {
		bestScore := math.MinInt
		for _, mv := range moves {
			score := searchChild(b, mv, func() int {
				s, _, _ := alphaBeta(b, depth-1, alpha, beta, false, nodes)
				return s
			})
			if score > bestScore {
				bestScore = score
				bestMove = mv
			}
			alpha = max(alpha, score)
			if beta <= alpha {
				break
			}
		}
		return bestScore, bestMove, true
	}

	bestScore := math.MaxInt
	for _, mv := range moves {
		score := searchChild(b, mv, func() int {
			s, _, _ := alphaBeta(b, depth-1, alpha, beta, true, nodes)
			return s
		})
		if score < bestScore {
			bestScore = score
			bestMove = mv
		}
		beta = min(beta, score)
		if beta <= alpha {
			break
		}
	}
	return bestScore, bestMove, true
}

// searchChild plays mv, runs fn and takes mv back even if fn panics.
func searchChild(b *chess.Board, mv chess.Move, fn func() int) int {
	undo := b.Play(mv)
	defer undo()
	return fn()
}

// Minimax is the unpruned search with the same move order and tie-breaking
// as AlphaBeta. It exists to check that pruning changes nothing.
func Minimax(b *chess.Board, depth int, maximizing bool) (int, chess.Move, bool) {
	if depth <= 0 {
		return Evaluate(b), chess.Move{}, false
	}
	moves := chess.AllLegalMoves(b, sideOf(maximizing))
	if len(moves) == 0 {
		return Evaluate(b), chess.Move{}, false
	}
	var bestMove chess.Move
	bestScore := math.MaxInt
	if maximizing {
		bestScore = math.MinInt
	}
	for _, mv := range moves {
		score := searchChild(b, mv, func() int {
			s, _, _ := Minimax(b, depth-1, !maximizing)
			return s
		})
		if (maximizing && score > bestScore) || (!maximizing && score < bestScore) {
			bestScore = score
			bestMove = mv
		}
	}
	return bestScore, bestMove, true
}

// ChooseMove returns the move side would play at the given depth.
func ChooseMove(b *chess.Board, side chess.Color, depth int) (chess.Move, bool) {
	_, mv, ok := AlphaBeta(b, depth, -scoreInf, scoreInf, side == chess.White)
	return mv, ok
}
