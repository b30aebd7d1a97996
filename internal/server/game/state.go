package game

import (
	"sync"
	"time"

	"chessai/internal/chess"
)

// GameState is one running game. The core never owns whose turn it is; this
// is where the turn lives.
type GameState struct {
	mu sync.Mutex

	ID        string
	Board     *chess.Board
	ToMove    chess.Color
	Human     chess.Color // NoColor when both sides are played through Play
	Depth     int
	Status    chess.Status
	LastMove  *chess.Move
	History   []chess.Move
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Snapshot is a copy of the parts of a game a client renders.
type Snapshot struct {
	ID       string
	FEN      string
	Board    chess.Board
	ToMove   chess.Color
	Status   chess.Status
	LastMove *chess.Move
	Plies    int
}

func (g *GameState) snapshot() Snapshot {
	s := Snapshot{
		ID:     g.ID,
		FEN:    g.Board.Encode(g.ToMove),
		Board:  *g.Board,
		ToMove: g.ToMove,
		Status: g.Status,
		Plies:  len(g.History),
	}
	if g.LastMove != nil {
		mv := *g.LastMove
		s.LastMove = &mv
	}
	return s
}

// apply plays an already validated move and hands the turn over.
func (g *GameState) apply(mv chess.Move) {
	g.Board.Apply(mv)
	g.History = append(g.History, mv)
	g.LastMove = &mv
	g.ToMove = g.ToMove.Opposite()
	g.Status = chess.Classify(g.Board, g.ToMove)
	g.UpdatedAt = time.Now()
}
