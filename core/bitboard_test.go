package core

import (
	"math/bits"
	"testing"
)

var conversionFENs = []string{
	FENStartPos,
	"r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4",
	"8/8/8/8/8/kq6/8/K7 w - - 0 1",
	"2r3k1/5pp1/8/8/8/2B5/5PP1/3R2K1 b - - 12 40",
}

func TestBitboardRoundTrip(t *testing.T) {
	for _, fen := range conversionFENs {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatalf("ParseFEN(%q): %v", fen, err)
		}
		bb := b.ToBitboard()
		back := bb.ToBoard()
		if !back.Equal(b) {
			t.Errorf("%s: mailbox -> planes -> mailbox is not the identity", fen)
		}
	}
}

func TestBitboardAgreesWithMailbox(t *testing.T) {
	for _, fen := range conversionFENs {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		bb := b.ToBitboard()
		for sq := Square(0); sq < 64; sq++ {
			if got, want := bb.PieceAt(sq), b.PieceAt(sq); got != want {
				t.Errorf("%s: square %s: plane piece %d, mailbox piece %d", fen, sq, got, want)
			}
		}
	}
}

func TestBitboardPlanesDisjoint(t *testing.T) {
	for _, fen := range conversionFENs {
		b, err := ParseFEN(fen)
		if err != nil {
			t.Fatal(err)
		}
		bb := b.ToBitboard()
		var union uint64
		total := 0
		for _, plane := range bb.Planes {
			union |= plane
			total += bits.OnesCount64(plane)
		}
		if bits.OnesCount64(union) != total {
			t.Errorf("%s: planes overlap", fen)
		}
		if union != bb.All() {
			t.Errorf("%s: occupancy does not match plane union", fen)
		}
		var whitePlanes uint64
		for plane := 0; plane < 6; plane++ {
			whitePlanes |= bb.Planes[plane]
		}
		if whitePlanes != bb.Occupancy[White] {
			t.Errorf("%s: white occupancy inconsistent", fen)
		}
	}
}
