package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"chessai/internal/chess"
)

func main() {
	fen := flag.String("fen", chess.InitialFEN, "position to inspect")
	depth := flag.Int("perft", 3, "perft depth")
	flag.Parse()

	b, side, err := chess.DecodeFEN(*fen)
	if err != nil {
		log.Fatalf("decode %q: %v", *fen, err)
	}
	fmt.Print(b)
	fmt.Println("FEN:", b.Encode(side))
	fmt.Println("Status:", chess.Classify(b, side))
	fmt.Println("Legal moves:", len(chess.AllLegalMoves(b, side)))
	for d := 1; d <= *depth; d++ {
		start := time.Now()
		n := chess.Perft(b, side, d)
		fmt.Printf("perft(%d) = %d (%v)\n", d, n, time.Since(start))
	}
}
