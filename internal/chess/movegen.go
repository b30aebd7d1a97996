package chess

var (
	rookDirs   = [4][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}}
	bishopDirs = [4][2]int{{-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}
	queenDirs  = [8][2]int{{-1, 0}, {+1, 0}, {0, -1}, {0, +1}, {-1, -1}, {-1, +1}, {+1, -1}, {+1, +1}}

	knightJumps = [8][2]int{
		{-2, -1}, {-2, +1},
		{-1, -2}, {-1, +2},
		{+1, -2}, {+1, +2},
		{+2, -1}, {+2, +1},
	}
	kingSteps = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, +1},
		{0, -1}, {0, +1},
		{+1, -1}, {+1, 0}, {+1, +1},
	}
)

// PseudoMoves returns destinations for the piece on from, ignoring whether the
// move exposes its own king. Empty squares yield nil.
func PseudoMoves(b *Board, from Square) []Square {
	pc := b.At(from)
	if pc.IsEmpty() {
		return nil
	}
	var moves []Square
	switch pc.Kind {
	case Pawn:
		genPawnMoves(b, from, pc.Color, &moves)
	case Knight:
		genStepMoves(b, from, pc.Color, knightJumps[:], &moves)
	case Bishop:
		genSlideMoves(b, from, pc.Color, bishopDirs[:], &moves)
	case Rook:
		genSlideMoves(b, from, pc.Color, rookDirs[:], &moves)
	case Queen:
		genSlideMoves(b, from, pc.Color, queenDirs[:], &moves)
	case King:
		genStepMoves(b, from, pc.Color, kingSteps[:], &moves)
	}
	return moves
}

func genPawnMoves(b *Board, from Square, side Color, moves *[]Square) {
	dir := pawnDir(side)
	r := from.Row + dir

	// pushes never capture
	if onBoard(r, from.Col) && b.Squares[r][from.Col].IsEmpty() {
		*moves = append(*moves, Sq(r, from.Col))
		r2 := r + dir
		if from.Row == pawnStartRow(side) && onBoard(r2, from.Col) && b.Squares[r2][from.Col].IsEmpty() {
			*moves = append(*moves, Sq(r2, from.Col))
		}
	}

	// diagonals only when an enemy sits there
	for _, dc := range [2]int{-1, +1} {
		c := from.Col + dc
		if !onBoard(r, c) {
			continue
		}
		dst := b.Squares[r][c]
		if !dst.IsEmpty() && dst.Color != side {
			*moves = append(*moves, Sq(r, c))
		}
	}
}

// Knight and king: one step per offset, blocked only by own pieces.
func genStepMoves(b *Board, from Square, side Color, offsets [][2]int, moves *[]Square) {
	for _, d := range offsets {
		r, c := from.Row+d[0], from.Col+d[1]
		if !onBoard(r, c) {
			continue
		}
		if dst := b.Squares[r][c]; dst.Color != side {
			*moves = append(*moves, Sq(r, c))
		}
	}
}

// Sliders stop before an own piece and on (including) an enemy piece.
func genSlideMoves(b *Board, from Square, side Color, dirs [][2]int, moves *[]Square) {
	for _, d := range dirs {
		r, c := from.Row+d[0], from.Col+d[1]
		for onBoard(r, c) {
			dst := b.Squares[r][c]
			if dst.IsEmpty() {
				*moves = append(*moves, Sq(r, c))
			} else {
				if dst.Color != side {
					*moves = append(*moves, Sq(r, c))
				}
				break
			}
			r += d[0]
			c += d[1]
		}
	}
}
