package chess

// Attacked reports whether any piece of bySide could move onto sq.
// Brute force over every square; no attack maps are kept.
func Attacked(b *Board, sq Square, bySide Color) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := b.Squares[r][c]
			if pc.IsEmpty() || pc.Color != bySide {
				continue
			}
			for _, to := range PseudoMoves(b, Sq(r, c)) {
				if to == sq {
					return true
				}
			}
		}
	}
	return false
}

// InCheck reports whether side's king is attacked.
// A board without that king counts as in check.
func InCheck(b *Board, side Color) bool {
	kingSq, ok := b.KingSquare(side)
	if !ok {
		// TODO: decide whether a captured king should be reported as a distinct game-over state
		return true
	}
	return Attacked(b, kingSq, side.Opposite())
}
