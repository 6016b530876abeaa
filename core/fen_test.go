package core

import (
	"strings"
	"testing"
)

func TestParseFENRoundTrip(t *testing.T) {
	fens := []string{
		FENStartPos,
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 4 30",
		"8/8/8/8/8/kq6/8/K7 w - - 0 1",
		"7k/5Q2/6K1/8/8/8/8/8 b - - 0 1",
		"2r3k1/5pp1/8/8/8/2B5/5PP1/3R2K1 w - - 12 40",
	}
	for _, fen := range fens {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		if err := b.Validate(); err != nil {
			t.Fatalf("Validate(%q): %v", fen, err)
		}
		if got := b.ToFEN(); got != fen {
			t.Errorf("round trip mismatch:\n in  %s\n out %s", fen, got)
		}
	}
}

func TestParseFENErrors(t *testing.T) {
	cases := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few fields", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq -"},
		{"seven ranks", "pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad piece char", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"short rank", "rnbqkbnr/ppppppp1/7/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR x KQkq - 0 1"},
		{"bad castling", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KX - 0 1"},
		{"bad ep square", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e9 0 1"},
		{"ep on wrong rank", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq e4 0 1"},
		{"negative halfmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - -1 1"},
		{"zero fullmove", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 0"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseFEN(tc.fen); err == nil {
				t.Fatalf("ParseFEN(%q): want error, got nil", tc.fen)
			} else if !strings.Contains(err.Error(), "invalid FEN") {
				t.Errorf("error %q does not name the FEN", err)
			}
		})
	}
}

func TestNewBoardStartPosition(t *testing.T) {
	b := NewBoard()
	if b.SideToMove() != White {
		t.Errorf("side to move = %v, want white", b.SideToMove())
	}
	if b.Castling() != CastlingWhiteK|CastlingWhiteQ|CastlingBlackK|CastlingBlackQ {
		t.Errorf("castling = %b, want all four flags", b.Castling())
	}
	pieces := 0
	for sq := Square(0); sq < 64; sq++ {
		if b.PieceAt(sq) != Empty {
			pieces++
		}
	}
	if pieces != 32 {
		t.Errorf("piece count = %d, want 32", pieces)
	}
	if b.PieceAt(SquareAt(0, 4)) != WhiteKing || b.PieceAt(SquareAt(7, 4)) != BlackKing {
		t.Error("kings not on e1/e8")
	}
}
