package chess

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeInitial(t *testing.T) {
	if got := NewInitialBoard().Encode(White); got != InitialFEN {
		t.Fatalf("got %q want %q", got, InitialFEN)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"k7/8/8/8/8/8/6PP/r6K w - - 0 1",
		"r1bqkb1r/pppp1ppp/2n2n2/4p2Q/2B1P3/8/PPPP1PPP/RNB1K1NR b - - 0 1",
	}
	for _, fen := range fens {
		b, side, err := DecodeFEN(fen)
		if err != nil {
			t.Fatalf("decode %q: %v", fen, err)
		}
		if diff := cmp.Diff(fen, b.Encode(side)); diff != "" {
			t.Fatalf("round trip (-want +got):\n%s", diff)
		}
	}
}

func TestDecodeIgnoresCastlingFields(t *testing.T) {
	b, side, err := DecodeFEN("rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if side != Black || b.At(Sq(4, 4)) != MakePiece(White, Pawn) {
		t.Fatalf("unexpected decode: side=%v\n%s", side, b)
	}
}

func TestDecodeKingless(t *testing.T) {
	b, _, err := DecodeFEN("8/8/8/8/8/8/8/7K w - - 0 1")
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if _, ok := b.KingSquare(Black); ok {
		t.Fatalf("found a black king in\n%s", b)
	}
}

func TestDecodeRejectsMalformed(t *testing.T) {
	bad := []string{
		"",
		"8/8/8/8/8/8/8 w",
		"9/8/8/8/8/8/8/8 w",
		"rnbqkbnrp/8/8/8/8/8/8/8 w",
		"xnbqkbnr/8/8/8/8/8/8/8 w",
		"8/8/8/8/8/8/8/8 x",
		"8/8/8/8/8/8/8/7 w",
		"k7/8/8/8/8/8/8/K6K w - - 0 1",
		"kk6/8/8/8/8/8/8/7K b - - 0 1",
	}
	for _, fen := range bad {
		if _, _, err := DecodeFEN(fen); !errors.Is(err, ErrInvalidFEN) {
			t.Errorf("DecodeFEN(%q) err = %v, want ErrInvalidFEN", fen, err)
		}
	}
}
