// Package engine scores positions by material and picks moves with a
// fixed-depth alpha-beta search.
package engine

import (
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"chessai/internal/chess"
)

type SearchConfig struct {
	Depth   int // plies; <= 0 means DefaultDepth
	Workers int // > 1 searches root moves concurrently on board copies
}

type SearchResult struct {
	BestMove chess.Move
	Found    bool // false when the side has no legal move
	Score    int  // White-positive
	Depth    int
	Nodes    int64
	TimeUsed time.Duration
}

type Engine struct {
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Nodes reports how many positions the last Search visited.
func (e *Engine) Nodes() int64 { return atomic.LoadInt64(&e.nodes) }

// Search picks a move for side. b is left exactly as it was given.
// The parallel path returns the same move and score as the sequential one.
func (e *Engine) Search(b *chess.Board, side chess.Color, cfg SearchConfig) SearchResult {
	depth := cfg.Depth
	if depth <= 0 {
		depth = DefaultDepth
	}
	start := time.Now()
	atomic.StoreInt64(&e.nodes, 0)

	var (
		score int
		mv    chess.Move
		ok    bool
	)
	if cfg.Workers > 1 {
		score, mv, ok = e.searchRootParallel(b, depth, side == chess.White, cfg.Workers)
	} else {
		var n int64
		score, mv, ok = alphaBeta(b, depth, -scoreInf, scoreInf, side == chess.White, &n)
		atomic.StoreInt64(&e.nodes, n)
	}

	return SearchResult{
		BestMove: mv,
		Found:    ok,
		Score:    score,
		Depth:    depth,
		Nodes:    atomic.LoadInt64(&e.nodes),
		TimeUsed: time.Since(start),
	}
}

// Each root move gets its own board copy and a full window, so every root
// score is exact and the first strictly best one in scan order wins, same as
// the sequential search.
func (e *Engine) searchRootParallel(b *chess.Board, depth int, maximizing bool, workers int) (int, chess.Move, bool) {
	atomic.AddInt64(&e.nodes, 1)
	moves := chess.AllLegalMoves(b, sideOf(maximizing))
	if len(moves) == 0 {
		return Evaluate(b), chess.Move{}, false
	}

	scores := make([]int, len(moves))
	var g errgroup.Group
	g.SetLimit(workers)
	for i, mv := range moves {
		i, mv := i, mv
		g.Go(func() error {
			child := b.Clone()
			child.Apply(mv)
			var n int64
			scores[i], _, _ = alphaBeta(child, depth-1, -scoreInf, scoreInf, !maximizing, &n)
			atomic.AddInt64(&e.nodes, n)
			return nil
		})
	}
	_ = g.Wait() // workers never fail; the group only caps concurrency

	best := 0
	for i := 1; i < len(moves); i++ {
		if (maximizing && scores[i] > scores[best]) || (!maximizing && scores[i] < scores[best]) {
			best = i
		}
	}
	return scores[best], moves[best], true
}
