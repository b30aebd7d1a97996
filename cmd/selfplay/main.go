package main

import (
	"flag"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"chessai/internal/chess"
	"chessai/internal/engine"
)

func main() {
	whiteDepth := flag.Int("white-depth", engine.DefaultDepth, "White search depth")
	blackDepth := flag.Int("black-depth", engine.DefaultDepth, "Black search depth")
	workers := flag.Int("workers", 1, "goroutines per search")
	games := flag.Int("games", 1, "number of games to play")
	maxPlies := flag.Int("maxplies", 200, "stop a game after this many plies")
	pprofAddr := flag.String("pprof", "", "serve pprof on this address, e.g. localhost:6060")
	verbose := flag.Bool("v", false, "print every move and the final board")
	flag.Parse()

	if *pprofAddr != "" {
		go func() {
			log.Printf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Printf("pprof failed: %v", err)
			}
		}()
	}

	white := Player{Name: fmt.Sprintf("depth %d", *whiteDepth), Cfg: engine.SearchConfig{Depth: *whiteDepth, Workers: *workers}}
	black := Player{Name: fmt.Sprintf("depth %d", *blackDepth), Cfg: engine.SearchConfig{Depth: *blackDepth, Workers: *workers}}

	var tally [3]int // white wins, black wins, unfinished/stalemate
	for g := 0; g < *games; g++ {
		fmt.Printf("\n=== Game %d: White [%s] vs Black [%s] ===\n", g+1, white.Name, black.Name)
		out := playGame(white, black, *maxPlies, *verbose)
		fmt.Printf("Result: %s after %d plies (%d nodes)\n", out.Describe(), out.Plies, out.Nodes)
		switch {
		case out.Status == chess.Checkmate && out.Loser == chess.Black:
			tally[0]++
		case out.Status == chess.Checkmate && out.Loser == chess.White:
			tally[1]++
		default:
			tally[2]++
		}
	}

	fmt.Printf("\nWhite %d, Black %d, other %d\n", tally[0], tally[1], tally[2])
	os.Exit(0)
}
