package core

import "math/bits"

// BitBoard is the plane-based view of a position: one 64-bit mask per
// (piece type, color) pair plus per-color occupancy and the same metadata
// as the mailbox Board. Conversions in both directions are lossless.
type BitBoard struct {
	// Planes are indexed white pawn..king (0-5), then black pawn..king (6-11).
	Planes    [12]uint64
	Occupancy [2]uint64

	SideToMove Color
	Castling   CastlingRights
	EnPassant  Square
	Halfmove   int
	Fullmove   int
}

// ToBitboard converts the mailbox board to plane form.
func (b *Board) ToBitboard() *BitBoard {
	bb := &BitBoard{
		SideToMove: b.sideToMove,
		Castling:   b.castling,
		EnPassant:  b.enPassant,
		Halfmove:   b.halfmove,
		Fullmove:   b.fullmove,
	}
	for sq := Square(0); sq < 64; sq++ {
		p := b.squares[sq]
		if p == Empty {
			continue
		}
		bb.Planes[planeIndex(p)] |= squareBit(sq)
		bb.Occupancy[p.Color()] |= squareBit(sq)
	}
	return bb
}

// ToBoard converts the plane form back to a mailbox board, recomputing the
// Zobrist key. Exact inverse of Board.ToBitboard.
func (bb *BitBoard) ToBoard() *Board {
	b := &Board{
		sideToMove: bb.SideToMove,
		castling:   bb.Castling,
		enPassant:  bb.EnPassant,
		halfmove:   bb.Halfmove,
		fullmove:   bb.Fullmove,
	}
	for plane := 0; plane < 12; plane++ {
		p := pieceForPlane(plane)
		mask := bb.Planes[plane]
		for mask != 0 {
			b.squares[popLSB(&mask)] = p
		}
	}
	b.hash = b.ComputeZobrist()
	return b
}

// pieceForPlane is the inverse of planeIndex.
func pieceForPlane(plane int) Piece {
	if plane < 6 {
		return Piece(plane + 1)
	}
	return Piece(-(plane - 5))
}

// plane returns the mask for one piece on one side.
func (bb *BitBoard) plane(c Color, pt PieceType) uint64 {
	return bb.Planes[planeIndex(PieceFromType(c, pt))]
}

// All returns the combined occupancy of both sides.
func (bb *BitBoard) All() uint64 { return bb.Occupancy[White] | bb.Occupancy[Black] }

// PieceAt returns the piece whose plane covers sq, or Empty.
func (bb *BitBoard) PieceAt(sq Square) Piece {
	bit := squareBit(sq)
	if bb.All()&bit == 0 {
		return Empty
	}
	for plane := 0; plane < 12; plane++ {
		if bb.Planes[plane]&bit != 0 {
			return pieceForPlane(plane)
		}
	}
	return Empty
}

// Count returns the number of pieces of one kind on the board.
func (bb *BitBoard) Count(c Color, pt PieceType) int {
	return bits.OnesCount64(bb.plane(c, pt))
}
