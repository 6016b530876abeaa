package core

import "testing"

var makeUndoFENs = []string{
	FENStartPos,
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"2r3k1/5pp1/8/8/8/2B5/5PP1/3R2K1 w - - 0 1",
	"8/2k5/8/1q6/8/2K5/8/4R3 b - - 3 20",
}

func TestMakeUndoRestoresState(t *testing.T) {
	gen := NewMailboxGenerator()
	for _, fen := range makeUndoFENs {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		orig := b.Copy()
		for _, m := range gen.Legal(b) {
			rec, ok := b.MakeMove(m)
			if !ok {
				t.Fatalf("%s: MakeMove(%s) rejected a legal move", fen, m)
			}
			if got := b.ComputeZobrist(); got != b.Hash() {
				t.Errorf("%s: after %s incremental hash %#x != recomputed %#x", fen, m, b.Hash(), got)
			}
			b.UndoMove(rec)
			if !b.Equal(orig) {
				t.Fatalf("%s: undo of %s did not restore the board", fen, m)
			}
		}
	}
}

func TestMakeMoveRejections(t *testing.T) {
	b := NewBoard()
	orig := b.Copy()
	cases := []struct {
		name string
		move Move
	}{
		{"empty origin", Move{SquareAt(3, 4), SquareAt(4, 4)}},
		{"opponent piece", Move{SquareAt(6, 4), SquareAt(5, 4)}},
		{"friendly capture", Move{SquareAt(0, 1), SquareAt(1, 3)}},
		{"null move", Move{SquareAt(1, 4), SquareAt(1, 4)}},
		{"off board", Move{NoSquare, SquareAt(3, 3)}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := b.MakeMove(tc.move); ok {
				t.Fatalf("MakeMove(%v) accepted", tc.move)
			}
			if !b.Equal(orig) {
				t.Fatal("rejected move mutated the board")
			}
		})
	}
}

func TestClocksAndCounters(t *testing.T) {
	b := NewBoard()

	// quiet knight move increments the halfmove clock
	if _, ok := b.MakeMove(Move{SquareAt(0, 6), SquareAt(2, 5)}); !ok {
		t.Fatal("Nf3 rejected")
	}
	if b.HalfmoveClock() != 1 || b.FullmoveNumber() != 1 {
		t.Errorf("after Nf3: halfmove %d fullmove %d, want 1 1", b.HalfmoveClock(), b.FullmoveNumber())
	}

	// Black's reply bumps the fullmove number
	if _, ok := b.MakeMove(Move{SquareAt(7, 6), SquareAt(5, 5)}); !ok {
		t.Fatal("Nf6 rejected")
	}
	if b.HalfmoveClock() != 2 || b.FullmoveNumber() != 2 {
		t.Errorf("after Nf6: halfmove %d fullmove %d, want 2 2", b.HalfmoveClock(), b.FullmoveNumber())
	}

	// pawn move resets the clock
	if _, ok := b.MakeMove(Move{SquareAt(1, 4), SquareAt(3, 4)}); !ok {
		t.Fatal("e4 rejected")
	}
	if b.HalfmoveClock() != 0 {
		t.Errorf("after e4: halfmove %d, want 0", b.HalfmoveClock())
	}
}

func TestCaptureResetsClock(t *testing.T) {
	b, err := ParseFEN("4k3/8/8/3p4/4N3/8/8/4K3 w - - 7 12")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := b.MakeMove(Move{SquareAt(3, 4), SquareAt(4, 3)}); !ok {
		t.Fatal("Nxd5 rejected")
	}
	if b.HalfmoveClock() != 0 {
		t.Errorf("halfmove clock = %d after capture, want 0", b.HalfmoveClock())
	}
}

func TestHashDistinguishesSideToMove(t *testing.T) {
	w, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	b, err := ParseFEN("4k3/8/8/8/8/8/8/4K3 b - - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	if w.Hash() == b.Hash() {
		t.Error("identical hash for both sides to move")
	}
}
