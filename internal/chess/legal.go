package chess

// LegalMoves filters the pseudo-moves of the piece on from down to those that
// do not leave its own king in check. Each candidate is applied on b, tested
// and taken back, so b is unchanged on return.
func LegalMoves(b *Board, from Square) []Square {
	pc := b.At(from)
	if pc.IsEmpty() {
		return nil
	}
	pseudo := PseudoMoves(b, from)
	out := make([]Square, 0, len(pseudo))
	for _, to := range pseudo {
		if leavesKingSafe(b, Move{From: from, To: to}, pc.Color) {
			out = append(out, to)
		}
	}
	return out
}

func leavesKingSafe(b *Board, m Move, side Color) bool {
	undo := b.Play(m)
	defer undo()
	return !InCheck(b, side)
}

// AllLegalMoves flattens the legal moves of every side piece in row-major
// board order, then per-square generation order.
func AllLegalMoves(b *Board, side Color) []Move {
	var out []Move
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := b.Squares[r][c]
			if pc.IsEmpty() || pc.Color != side {
				continue
			}
			from := Sq(r, c)
			for _, to := range LegalMoves(b, from) {
				out = append(out, Move{From: from, To: to})
			}
		}
	}
	return out
}

func HasAnyLegalMove(b *Board, side Color) bool {
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			pc := b.Squares[r][c]
			if pc.IsEmpty() || pc.Color != side {
				continue
			}
			if len(LegalMoves(b, Sq(r, c))) > 0 {
				return true
			}
		}
	}
	return false
}

type Status int

const (
	Ongoing Status = iota
	Check
	Checkmate
	Stalemate
)

func (s Status) String() string {
	switch s {
	case Check:
		return "check"
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	}
	return "ongoing"
}

func (s Status) Over() bool { return s == Checkmate || s == Stalemate }

// Classify gives the state of the game for side to move.
func Classify(b *Board, side Color) Status {
	check := InCheck(b, side)
	if !HasAnyLegalMove(b, side) {
		if check {
			return Checkmate
		}
		return Stalemate
	}
	if check {
		return Check
	}
	return Ongoing
}

// Perft counts the leaves of the legal move tree depth plies deep.
func Perft(b *Board, side Color, depth int) int64 {
	if depth <= 0 {
		return 1
	}
	moves := AllLegalMoves(b, side)
	if depth == 1 {
		return int64(len(moves))
	}
	var n int64
	for _, m := range moves {
		undo := b.Play(m)
		n += Perft(b, side.Opposite(), depth-1)
		undo()
	}
	return n
}
