package game

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
	ErrIllegalMove  = errors.New("illegal move")
	ErrOffBoard     = errors.New("square off the board")
	ErrNotYourTurn  = errors.New("not that side's turn")
	ErrBadDepth     = errors.New("search depth out of range")
)

type Manager struct {
	mu    sync.RWMutex
	games map[string]*GameState

	workers int
}

type Option func(*Manager)

// WithWorkers sets how many goroutines an engine move may use.
func WithWorkers(n int) Option {
	return func(m *Manager) {
		if n >= 1 {
			m.workers = n
		}
	}
}

func NewManager(opts ...Option) *Manager {
	m := &Manager{games: make(map[string]*GameState), workers: 1}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// NewGame starts from the standard layout with White to move. human is the
// side a person plays; the engine is expected to answer for the other one.
// depth <= 0 selects engine.DefaultDepth; anything above engine.MaxDepth is
// rejected since the search holds the game lock until it finishes.
func (m *Manager) NewGame(human chess.Color, depth int) (Snapshot, error) {
	if depth > engine.MaxDepth {
		return Snapshot{}, fmt.Errorf("%w: %d > %d", ErrBadDepth, depth, engine.MaxDepth)
	}
	if depth <= 0 {
		depth = engine.DefaultDepth
	}
	now := time.Now()
	g := &GameState{
		ID:        uuid.NewString(),
		Board:     chess.NewInitialBoard(),
		ToMove:    chess.White,
		Human:     human,
		Depth:     depth,
		Status:    chess.Ongoing,
		CreatedAt: now,
		UpdatedAt: now,
	}

	m.mu.Lock()
	m.games[g.ID] = g
	m.mu.Unlock()

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(), nil
}

func (m *Manager) get(id string) (*GameState, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	g, ok := m.games[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	return g, nil
}

func (m *Manager) State(id string) (Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot(), nil
}

func (m *Manager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.games[id]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, id)
	}
	delete(m.games, id)
	return nil
}

// Len reports the number of live games.
func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// LegalMoves lists destinations for the piece on sq. A square without a piece
// of the side to move yields no moves.
func (m *Manager) LegalMoves(id string, sq chess.Square) ([]chess.Square, error) {
	if !sq.Valid() {
		return nil, fmt.Errorf("%w: %v", ErrOffBoard, sq)
	}
	g, err := m.get(id)
	if err != nil {
		return nil, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.Status.Over() || g.Board.At(sq).Color != g.ToMove {
		return []chess.Square{}, nil
	}
	return chess.LegalMoves(g.Board, sq), nil
}

// Play validates mv against the side to move and applies it.
func (m *Manager) Play(id string, mv chess.Move) (Snapshot, error) {
	if !mv.From.Valid() || !mv.To.Valid() {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrOffBoard, mv)
	}
	g, err := m.get(id)
	if err != nil {
		return Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status.Over() {
		return Snapshot{}, ErrGameOver
	}
	pc := g.Board.At(mv.From)
	if pc.IsEmpty() {
		return Snapshot{}, fmt.Errorf("%w: no piece on %v", ErrIllegalMove, mv.From)
	}
	if pc.Color != g.ToMove {
		return Snapshot{}, fmt.Errorf("%w: %v to move", ErrNotYourTurn, g.ToMove)
	}
	if !slices.Contains(chess.LegalMoves(g.Board, mv.From), mv.To) {
		return Snapshot{}, fmt.Errorf("%w: %v", ErrIllegalMove, mv)
	}

	g.apply(mv)
	return g.snapshot(), nil
}

// EngineMove searches for the side to move and plays the result.
func (m *Manager) EngineMove(id string) (engine.SearchResult, Snapshot, error) {
	g, err := m.get(id)
	if err != nil {
		return engine.SearchResult{}, Snapshot{}, err
	}
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.Status.Over() {
		return engine.SearchResult{}, Snapshot{}, ErrGameOver
	}
	if g.ToMove == g.Human {
		return engine.SearchResult{}, Snapshot{}, fmt.Errorf("%w: %v is played by the human", ErrNotYourTurn, g.ToMove)
	}

	res := engine.NewEngine().Search(g.Board, g.ToMove, engine.SearchConfig{
		Depth:   g.Depth,
		Workers: m.workers,
	})
	if !res.Found {
		// Classify already marks such positions as over; keep the state as is.
		return res, g.snapshot(), ErrGameOver
	}
	g.apply(res.BestMove)
	return res, g.snapshot(), nil
}
