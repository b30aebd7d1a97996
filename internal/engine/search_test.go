package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"chessai/internal/chess"
)

func decode(t *testing.T, fen string) *chess.Board {
	t.Helper()
	b, _, err := chess.DecodeFEN(fen)
	if err != nil {
		t.Fatalf("decode %q: %v", fen, err)
	}
	return b
}

var searchPositions = []string{
	chess.InitialFEN,
	"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1",
	"k7/8/8/8/8/8/6PP/r6K w - - 0 1",
	"K7/8/1q6/8/8/8/8/7k w - - 0 1",
	"4k3/8/2n5/3p4/4P3/5N2/8/4K3 w - - 0 1",
	"r3k3/1p6/8/8/8/8/6P1/3QK2R w - - 0 1",
	"3rk3/2P5/8/8/8/8/8/4K3 w - - 0 1",
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		fen  string
		want int
	}{
		{chess.InitialFEN, 0},
		{"rnb1kbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w - - 0 1", 9},
		{"4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1", 5 - 9},
		{"4k3/8/8/8/8/8/8/3RK3 w - - 0 1", 5},
		{"8/8/8/8/8/8/8/4K3 w - - 0 1", 1000},
	}
	for _, tc := range cases {
		if got := Evaluate(decode(t, tc.fen)); got != tc.want {
			t.Errorf("Evaluate(%s) = %d, want %d", tc.fen, got, tc.want)
		}
	}
}

func TestDepthZeroIsStaticEvaluation(t *testing.T) {
	for _, fen := range searchPositions {
		for _, maximizing := range []bool{true, false} {
			b := decode(t, fen)
			score, _, ok := AlphaBeta(b, 0, -scoreInf, scoreInf, maximizing)
			if ok || score != Evaluate(b) {
				t.Errorf("%s: got (%d, %v) want (%d, false)", fen, score, ok, Evaluate(b))
			}
		}
	}
}

func TestNoMovesIsStaticEvaluation(t *testing.T) {
	// White is mated: there is nothing to search and no mate score is added.
	b := decode(t, "k7/8/8/8/8/8/6PP/r6K w - - 0 1")
	score, _, ok := AlphaBeta(b, 3, -scoreInf, scoreInf, true)
	if ok || score != Evaluate(b) {
		t.Fatalf("got (%d, %v) want (%d, false)", score, ok, Evaluate(b))
	}
	if _, ok := ChooseMove(b, chess.White, 3); ok {
		t.Fatalf("mated side should have no move")
	}
}

type searchOutcome struct {
	Score int
	Move  chess.Move
	OK    bool
}

func TestAlphaBetaMatchesMinimax(t *testing.T) {
	for _, fen := range searchPositions {
		for depth := 1; depth <= 3; depth++ {
			if fen == chess.InitialFEN && depth == 3 {
				continue
			}
			for _, maximizing := range []bool{true, false} {
				b := decode(t, fen)
				before := *b

				var ab, mm searchOutcome
				ab.Score, ab.Move, ab.OK = AlphaBeta(b, depth, -scoreInf, scoreInf, maximizing)
				if *b != before {
					t.Fatalf("%s depth %d: alpha-beta left the board modified", fen, depth)
				}
				mm.Score, mm.Move, mm.OK = Minimax(b, depth, maximizing)
				if *b != before {
					t.Fatalf("%s depth %d: minimax left the board modified", fen, depth)
				}
				if diff := cmp.Diff(mm, ab); diff != "" {
					t.Errorf("%s depth %d max=%v (-minimax +alphabeta):\n%s", fen, depth, maximizing, diff)
				}
			}
		}
	}
}

func TestChooseMoveTakesHangingQueen(t *testing.T) {
	want := chess.Move{From: chess.Sq(7, 3), To: chess.Sq(3, 3)}
	for depth := 1; depth <= 3; depth++ {
		b := decode(t, "4k3/8/8/3q4/8/8/8/3RK3 w - - 0 1")
		got, ok := ChooseMove(b, chess.White, depth)
		if !ok || got != want {
			t.Errorf("depth %d: got %v (%v) want %v", depth, got, ok, want)
		}
	}
}

func TestChooseMoveForBlack(t *testing.T) {
	// Mirror of the hanging queen: black rook takes the white queen.
	b := decode(t, "3rk3/8/8/8/3Q4/8/8/4K3 b - - 0 1")
	got, ok := ChooseMove(b, chess.Black, 2)
	want := chess.Move{From: chess.Sq(0, 3), To: chess.Sq(4, 3)}
	if !ok || got != want {
		t.Fatalf("got %v (%v) want %v", got, ok, want)
	}
}

func TestSearchLeavesBoardUntouched(t *testing.T) {
	b := chess.NewInitialBoard()
	before := *b
	e := NewEngine()
	res := e.Search(b, chess.Black, SearchConfig{})
	if *b != before {
		t.Fatalf("board modified by search:\n%s", b)
	}
	if !res.Found || res.Depth != DefaultDepth || res.Nodes == 0 {
		t.Fatalf("unexpected result %+v", res)
	}
	if e.Nodes() != res.Nodes {
		t.Fatalf("Nodes() = %d, result has %d", e.Nodes(), res.Nodes)
	}
}

func TestParallelSearchMatchesSequential(t *testing.T) {
	e := NewEngine()
	for _, fen := range searchPositions[1:] {
		for _, side := range []chess.Color{chess.White, chess.Black} {
			b := decode(t, fen)
			before := *b
			seq := e.Search(b, side, SearchConfig{Depth: 3})
			par := e.Search(b, side, SearchConfig{Depth: 3, Workers: 4})
			if *b != before {
				t.Fatalf("%s: board modified", fen)
			}
			if seq.BestMove != par.BestMove || seq.Score != par.Score || seq.Found != par.Found {
				t.Errorf("%s %v: sequential %v/%d/%v parallel %v/%d/%v", fen, side,
					seq.BestMove, seq.Score, seq.Found, par.BestMove, par.Score, par.Found)
			}
		}
	}
}
