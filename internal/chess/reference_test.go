package chess

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/dylhunn/dragontoothmg"
	"github.com/google/go-cmp/cmp"
)

// dragontoothmg numbers squares from a1 = 0 upward; row 0 here is rank 8.
func fromReferenceSquare(sq uint8) Square {
	return Sq(Rows-1-int(sq/8), int(sq%8))
}

// referenceMoves returns the distinct from/to pairs dragontoothmg considers
// legal. Under-promotions collapse into one entry.
func referenceMoves(fen string) []string {
	rb := dragontoothmg.ParseFen(fen)
	seen := make(map[string]bool)
	for _, m := range rb.GenerateLegalMoves() {
		mv := Move{From: fromReferenceSquare(m.From()), To: fromReferenceSquare(m.To())}
		seen[mv.String()] = true
	}
	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func ourMoves(b *Board, side Color) []string {
	moves := AllLegalMoves(b, side)
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func TestLegalMovesMatchReferenceGenerator(t *testing.T) {
	fens := []string{
		InitialFEN,
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR w - - 0 1",
		"4k3/8/8/8/8/8/8/r3K3 w - - 0 1",
		"k3r3/8/8/8/8/8/4N3/4K3 w - - 0 1",
		"3rk3/2P5/8/8/8/8/8/4K3 w - - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w - - 0 1",
	}
	for _, fen := range fens {
		b, side := mustDecode(t, fen)
		if diff := cmp.Diff(referenceMoves(fen), ourMoves(b, side)); diff != "" {
			t.Errorf("%s (-reference +ours):\n%s", fen, diff)
		}
	}
}

func TestRandomGamesMatchReferenceGenerator(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for game := 0; game < 6; game++ {
		b := NewInitialBoard()
		side := White
		for ply := 0; ply < 60; ply++ {
			fen := b.Encode(side)
			want := referenceMoves(fen)
			got := ourMoves(b, side)
			if diff := cmp.Diff(want, got); diff != "" {
				t.Fatalf("game %d ply %d %s (-reference +ours):\n%s", game, ply, fen, diff)
			}
			moves := AllLegalMoves(b, side)
			if len(moves) == 0 {
				break
			}
			b.Apply(moves[rng.Intn(len(moves))])
			side = side.Opposite()
		}
	}
}
