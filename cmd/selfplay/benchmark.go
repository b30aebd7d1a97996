package main

import (
	"fmt"
	"log"
	"time"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

type Player struct {
	Name string
	Cfg  engine.SearchConfig
}

type Outcome struct {
	Status chess.Status
	Loser  chess.Color // side to move when the game stopped
	Plies  int
	Nodes  int64
}

func (o Outcome) Describe() string {
	switch o.Status {
	case chess.Checkmate:
		return fmt.Sprintf("%v mated", o.Loser)
	case chess.Stalemate:
		return "stalemate"
	}
	return "unfinished"
}

// playGame is the driver loop: classify, search for the side to move, apply,
// hand the turn over.
func playGame(white, black Player, maxPlies int, verbose bool) Outcome {
	b := chess.NewInitialBoard()
	side := chess.White
	e := engine.NewEngine()
	var out Outcome

	for out.Plies = 0; out.Plies < maxPlies; out.Plies++ {
		if status := chess.Classify(b, side); status.Over() {
			out.Status = status
			out.Loser = side
			break
		}

		p := white
		if side == chess.Black {
			p = black
		}
		start := time.Now()
		res := e.Search(b, side, p.Cfg)
		if !res.Found {
			log.Printf("no move for %v", side)
			break
		}
		out.Nodes += res.Nodes
		b.Apply(res.BestMove)
		if verbose {
			log.Printf("%3d %v %v score=%d nodes=%d time=%v", out.Plies+1, side, res.BestMove, res.Score, res.Nodes, time.Since(start))
		}
		side = side.Opposite()
	}

	if verbose {
		fmt.Print(b)
	}
	return out
}
